//go:build ignore

// gen_ui_placeholders.go writes the optional skin textures:
//
//	go run scripts/gen_ui_placeholders.go
//
// Each PNG is a flat border around a flat centre so the 9-slice guides are
// easy to see. Slice sizes must match internal/ui/theme/textures.go.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	if err := os.MkdirAll(filepath.Join("assets", "ui"), 0o755); err != nil {
		log.Fatal(err)
	}

	// 64x64, slice 12: deep temple stone around the background colour.
	genTexture("assets/ui/frame_temple.png", 64, 64, 12,
		color.RGBA{0x15, 0x26, 0x2F, 0xFF},
		color.RGBA{0x1E, 0x34, 0x40, 0xFF},
	)

	// 48x48, slice 8: parchment with an aged edge.
	genTexture("assets/ui/panel_parchment.png", 48, 48, 8,
		color.RGBA{0x8C, 0x7A, 0x5B, 0xFF},
		color.RGBA{0xE8, 0xDD, 0xC7, 0xFF},
	)

	// 24x24, slice 6: rune-edged tray for the search field.
	genTexture("assets/ui/input_tray.png", 24, 24, 6,
		color.RGBA{0x78, 0xB7, 0xC3, 0xFF},
		color.RGBA{0xF3, 0xEC, 0xDD, 0xFF},
	)

	log.Println("Placeholder textures written to assets/ui/")
}

// genTexture writes a w x h PNG whose outer slice pixels are border and
// whose centre is centre.
func genTexture(path string, w, h, slice int, border, centre color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < slice || y < slice || x >= w-slice || y >= h-slice {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, centre)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d slice=%d)", path, w, h, slice)
}
