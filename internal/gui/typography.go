package gui

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontLoadSize   = 36
	lineHeightMult = 1.34
)

var typeScale = struct {
	Header, Body, Small, Log int32
}{Header: 21, Body: 19, Small: 16, Log: 18}

// uiFont is the bundled font, or the raylib default when none ships.
var (
	uiFont      rl.Font
	uiFontOwned bool
)

var fontPaths = []string{
	filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
	filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
}

func initTypography() {
	uiFont, uiFontOwned = rl.GetFontDefault(), false
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if f := rl.LoadFontEx(path, fontLoadSize, nil, 0); f.Texture.ID != 0 {
			uiFont, uiFontOwned = f, true
			break
		}
	}
	rl.SetTextureFilter(uiFont.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiFontOwned {
		rl.UnloadFont(uiFont)
	}
	uiFont, uiFontOwned = rl.Font{}, false
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	if uiFont.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(uiFont, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, clr)
}

func measureText(text string, size int32) int32 {
	if uiFont.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiFont, text, float32(size), 1).X)))
}

func textLineHeight(size int32) int32 {
	return int32(math.Round(float64(max(size, 1)) * lineHeightMult))
}

// wrapText splits text into lines no wider than maxWidth pixels.
func wrapText(text string, size, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if next := line + " " + word; measureText(next, size) <= maxWidth {
			line = next
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}
