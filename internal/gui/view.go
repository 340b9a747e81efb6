package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const (
	viewCells     = 41
	layoutPadding = 16
	layoutGap     = 10
	sideWidth     = 360
)

type viewLayout struct {
	MapRect  rl.Rectangle
	SideRect rl.Rectangle
	LogRect  rl.Rectangle
}

func screenLayout(width, height int32) viewLayout {
	outer := rl.NewRectangle(layoutPadding, layoutPadding, float32(width-layoutPadding*2), float32(height-layoutPadding*2))
	side := float32(sideWidth)
	if outer.Width < 900 {
		side = outer.Width * 0.34
	}
	mapW := outer.Width - side - layoutGap
	sideX := outer.X + mapW + layoutGap
	statusH := outer.Height * 0.42
	return viewLayout{
		MapRect:  rl.NewRectangle(outer.X, outer.Y, mapW, outer.Height),
		SideRect: rl.NewRectangle(sideX, outer.Y, side, statusH),
		LogRect:  rl.NewRectangle(sideX, outer.Y+statusH+layoutGap, side, outer.Height-statusH-layoutGap),
	}
}

type squareGridGeometry struct {
	OriginX  float32
	OriginY  float32
	CellSize float32
	Cols     int
	Rows     int
	DrawRect rl.Rectangle
}

func computeSquareGridGeometry(area rl.Rectangle, cols, rows int) (squareGridGeometry, bool) {
	if cols <= 0 || rows <= 0 || area.Width <= 1 || area.Height <= 1 {
		return squareGridGeometry{}, false
	}
	cellSize := float32(math.Min(float64(area.Width/float32(cols)), float64(area.Height/float32(rows))))
	if cellSize < 1 {
		cellSize = 1
	}
	drawWidth := cellSize * float32(cols)
	drawHeight := cellSize * float32(rows)
	originX := area.X + (area.Width-drawWidth)/2
	originY := area.Y + (area.Height-drawHeight)/2
	return squareGridGeometry{
		OriginX:  originX,
		OriginY:  originY,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		DrawRect: rl.NewRectangle(originX, originY, drawWidth, drawHeight),
	}, true
}

// computeViewWindow centers a window of up to desired cells on the player,
// clamped to the map.
func computeViewWindow(mapW, mapH, playerX, playerY, desired int) (startX, startY, cols, rows int) {
	if mapW <= 0 || mapH <= 0 {
		return 0, 0, 0, 0
	}
	if desired < 5 {
		desired = 5
	}
	cols = min(mapW, desired)
	rows = min(mapH, desired)
	startX = clampInt(playerX-cols/2, 0, max(0, mapW-cols))
	startY = clampInt(playerY-rows/2, 0, max(0, mapH-rows))
	return startX, startY, cols, rows
}

// mapView is a window of a location drawn into a screen rectangle.
type mapView struct {
	geo    squareGridGeometry
	startX int
	startY int
}

func (v mapView) cellRect(at placement.Coord) rl.Rectangle {
	x := v.geo.OriginX + float32(at.X-v.startX)*v.geo.CellSize
	y := v.geo.OriginY + float32(at.Y-v.startY)*v.geo.CellSize
	return rl.NewRectangle(x, y, v.geo.CellSize, v.geo.CellSize)
}

func (v mapView) visible(at placement.Coord) bool {
	return at.X >= v.startX && at.X < v.startX+v.geo.Cols && at.Y >= v.startY && at.Y < v.startY+v.geo.Rows
}

// cellAt maps a screen point to the map cell under it.
func (v mapView) cellAt(x, y float32) (placement.Coord, bool) {
	if v.geo.CellSize <= 0 {
		return placement.Coord{}, false
	}
	lx := x - v.geo.OriginX
	ly := y - v.geo.OriginY
	if lx < 0 || ly < 0 {
		return placement.Coord{}, false
	}
	cx := int(lx / v.geo.CellSize)
	cy := int(ly / v.geo.CellSize)
	if cx >= v.geo.Cols || cy >= v.geo.Rows {
		return placement.Coord{}, false
	}
	return placement.Coord{X: v.startX + cx, Y: v.startY + cy}, true
}

// worldToScreen converts world pixels (64 per tile) to screen pixels.
func (v mapView) worldToScreen(wx, wy float64) (float32, float32) {
	scale := v.geo.CellSize / island.TileSize
	x := v.geo.OriginX + (float32(wx)-float32(v.startX*island.TileSize))*scale
	y := v.geo.OriginY + (float32(wy)-float32(v.startY*island.TileSize))*scale
	return x, y
}

func (v mapView) worldScale() float32 {
	return v.geo.CellSize / island.TileSize
}
