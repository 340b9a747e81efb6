package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

type Theme struct {
	Background  rl.Color
	Panel       rl.Color
	PanelRaised rl.Color
	Border      rl.Color
	Divider     rl.Color
	TextPrimary rl.Color
	TextMuted   rl.Color
	Accent      rl.Color
	Warning     rl.Color
}

const (
	spaceS = float32(12)
	spaceM = float32(18)

	cornerRadius   = float32(0.08)
	cornerSegments = int32(8)
)

var AppTheme = Theme{
	Background:  rl.NewColor(0x12, 0x1C, 0x22, 255),
	Panel:       rl.NewColor(0x1A, 0x26, 0x2C, 255),
	PanelRaised: rl.NewColor(0x22, 0x30, 0x37, 255),
	Border:      rl.NewColor(0x2E, 0x44, 0x4A, 255),
	Divider:     rl.NewColor(0x26, 0x36, 0x3C, 255),
	TextPrimary: rl.NewColor(0xEA, 0xE4, 0xD6, 255),
	TextMuted:   rl.NewColor(0x8A, 0x96, 0x9A, 255),
	Accent:      rl.NewColor(0xE0, 0x9A, 0x3E, 255),
	Warning:     rl.NewColor(0xD2, 0x8B, 0x2F, 255),
}

var (
	colorBG     = AppTheme.Background
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorWarn   = AppTheme.Warning
)

// Tile palette.
var (
	colorPath   = rl.NewColor(150, 140, 120, 255)
	colorDock   = rl.NewColor(122, 88, 56, 255)
	colorPlayer = rl.NewColor(255, 88, 88, 255)
	colorCursor = rl.NewColor(255, 240, 160, 255)
	colorFloor  = rl.NewColor(104, 84, 66, 255)
)

func zoneColor(z island.Zone, water [3]uint8) rl.Color {
	switch z {
	case island.ZoneTown:
		return rl.NewColor(118, 140, 86, 255)
	case island.ZoneForest:
		return rl.NewColor(72, 110, 76, 255)
	case island.ZoneBeach:
		return rl.NewColor(214, 196, 142, 255)
	default:
		return rl.NewColor(water[0], water[1], water[2], 255)
	}
}

func treeColor(t island.TerrainFeature) rl.Color {
	if t.Fruit {
		return rl.NewColor(178, 92, 70, 255)
	}
	return rl.NewColor(36, 74, 44, 255)
}

func itemColor(id placement.Category) rl.Color {
	spec, ok := island.ItemByID(id)
	if !ok {
		return rl.NewColor(200, 200, 200, 255)
	}
	if spec.Kind == island.ItemKindBeach {
		return rl.NewColor(236, 236, 250, 255)
	}
	return rl.NewColor(226, 120, 190, 255)
}

// DrawPanel draws a rounded panel with an optional header.
func DrawPanel(rect rl.Rectangle, title string, raised bool) {
	fill := AppTheme.Panel
	if raised {
		fill = AppTheme.PanelRaised
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, 1.2, AppTheme.Border)
	if title == "" {
		return
	}
	drawText(title, int32(rect.X+spaceM), int32(rect.Y+spaceS), typeScale.Header, colorAccent)
	dividerY := rect.Y + spaceS + float32(typeScale.Header) + 8
	rl.DrawLineEx(rl.Vector2{X: rect.X + spaceM, Y: dividerY}, rl.Vector2{X: rect.X + rect.Width - spaceM, Y: dividerY}, 1, AppTheme.Divider)
}

func DrawHintText(text string, x, y int32) {
	drawText(text, x, y, typeScale.Small, colorDim)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
