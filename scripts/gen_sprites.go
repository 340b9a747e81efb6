//go:build ignore

// gen_sprites.go, run with:
//
//	go run scripts/gen_sprites.go
//
// Creates assets/sprites/*.png placeholder sheets for the island features.
// Each sheet covers the source rectangles the features draw from; the
// rectangle itself is filled and outlined so misaligned source offsets show
// up immediately. Replace with real art at any time.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

type sheet struct {
	name   string
	w, h   int
	src    image.Rectangle
	fill   color.RGBA
	border color.RGBA
}

func main() {
	dir := filepath.Join("assets", "sprites")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	sheets := []sheet{
		// statue: 16x32 at the origin.
		{"statue", 16, 32, image.Rect(0, 0, 16, 32),
			color.RGBA{0x9A, 0x9A, 0xA4, 0xFF}, color.RGBA{0x4A, 0x4A, 0x54, 0xFF}},
		// raccoon_god: 48x80 at the origin.
		{"raccoon_god", 48, 80, image.Rect(0, 0, 48, 80),
			color.RGBA{0x7C, 0x6A, 0x5A, 0xFF}, color.RGBA{0x2C, 0x22, 0x1A, 0xFF}},
		// mine_entrance: 16x16 at the origin.
		{"mine_entrance", 16, 16, image.Rect(0, 0, 16, 16),
			color.RGBA{0x1E, 0x16, 0x10, 0xFF}, color.RGBA{0x5C, 0x44, 0x2C, 0xFF}},
		// tent_back: 64x48 at 48,208.
		{"tent_back", 112, 256, image.Rect(48, 208, 112, 256),
			color.RGBA{0x6E, 0x4E, 0x2E, 0xFF}, color.RGBA{0x3A, 0x26, 0x14, 0xFF}},
		// tent_front: 48x64 at 0,192.
		{"tent_front", 48, 256, image.Rect(0, 192, 48, 256),
			color.RGBA{0xC8, 0x9A, 0x5A, 0xFF}, color.RGBA{0x5C, 0x38, 0x18, 0xFF}},
	}
	for _, s := range sheets {
		genSheet(filepath.Join(dir, s.name+".png"), s)
	}

	log.Println("Placeholder sprites written to assets/sprites/")
}

// genSheet writes a transparent w×h PNG with s.src filled and outlined.
func genSheet(path string, s sheet) {
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	for y := s.src.Min.Y; y < s.src.Max.Y; y++ {
		for x := s.src.Min.X; x < s.src.Max.X; x++ {
			edge := x == s.src.Min.X || y == s.src.Min.Y || x == s.src.Max.X-1 || y == s.src.Max.Y-1
			if edge {
				img.SetRGBA(x, y, s.border)
			} else {
				img.SetRGBA(x, y, s.fill)
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
	log.Printf("  wrote %s (%dx%d src=%v)", path, s.w, s.h, s.src)
}
