package theme

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the optional nine-slice textures. Zero-value slots fall back
// to flat drawing.
var Skin skinAssets

type skinAssets struct {
	Frame NineSlice // window border
	Panel NineSlice
	Input NineSlice // search field

	loaded bool
}

// Slice guides of the skin textures, in source pixels.
const (
	frameSlice = int32(12)
	panelSlice = int32(8)
	inputSlice = int32(6)
)

// SkinDir holds frame_temple.png, panel_parchment.png and input_tray.png.
var SkinDir = "assets/ui"

// InitSkin loads the skin textures. Call once after rl.InitWindow; missing
// files leave their slot empty.
func InitSkin() {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Frame = loadNineSlice(filepath.Join(SkinDir, "frame_temple.png"), frameSlice, frameSlice, frameSlice, frameSlice)
	Skin.Panel = loadNineSlice(filepath.Join(SkinDir, "panel_parchment.png"), panelSlice, panelSlice, panelSlice, panelSlice)
	Skin.Input = loadNineSlice(filepath.Join(SkinDir, "input_tray.png"), inputSlice, inputSlice, inputSlice, inputSlice)
}

// UnloadSkin releases the textures. Call before rl.CloseWindow.
func UnloadSkin() {
	unloadTex(&Skin.Frame.Tex)
	unloadTex(&Skin.Panel.Tex)
	unloadTex(&Skin.Input.Tex)
	Skin.loaded = false
}

// FrameInset is the drawable area inside the window border.
func FrameInset(screenW, screenH int32) rl.Rectangle {
	m := float32(frameSlice)
	return rl.NewRectangle(m, m, float32(screenW)-m*2, float32(screenH)-m*2)
}

func loadNineSlice(path string, left, right, top, bottom int32) NineSlice {
	if _, err := os.Stat(path); err != nil {
		return NineSlice{Left: left, Right: right, Top: top, Bottom: bottom}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return NineSlice{Left: left, Right: right, Top: top, Bottom: bottom}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return NineSlice{Tex: tex, Left: left, Right: right, Top: top, Bottom: bottom}
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
