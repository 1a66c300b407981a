package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/forge-and-field/internal/ui/theme"
)

type typographyState struct {
	base       rl.Font
	display    rl.Font
	ownsBase   bool
	ownsDisp   bool
	lineFactor float32
}

var (
	typeScale = uitheme.Type
	uiType    = typographyState{lineFactor: uitheme.Type.LineFactor}
)

func initTypography() {
	uiType.base = rl.GetFontDefault()
	uiType.display = uiType.base

	bodyCandidates := []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(bodyCandidates, 36); ok {
		uiType.base = f
		uiType.display = f
		uiType.ownsBase = true
	}
	displayCandidates := []string{
		filepath.Join("assets", "fonts", "Cinzel-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(displayCandidates, 48); ok {
		uiType.display = f
		uiType.ownsDisp = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.ownsDisp && uiType.display.Texture.ID != 0 {
		rl.UnloadFont(uiType.display)
	}
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

// drawTitle uses the display face for screen titles.
func drawTitle(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.display.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.display, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 2, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
