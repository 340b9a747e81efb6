package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func TestComputeViewWindowClampsAtBounds(t *testing.T) {
	startX, startY, cols, rows := computeViewWindow(80, 80, 40, 40, 21)
	if cols != 21 || rows != 21 {
		t.Fatalf("expected 21x21 window, got %dx%d", cols, rows)
	}
	if startX != 30 || startY != 30 {
		t.Fatalf("expected centered window start 30,30 got %d,%d", startX, startY)
	}

	startX, startY, _, _ = computeViewWindow(80, 80, 1, 2, 21)
	if startX != 0 || startY != 0 {
		t.Fatalf("expected clamped start at origin, got %d,%d", startX, startY)
	}

	startX, startY, _, _ = computeViewWindow(80, 80, 79, 79, 21)
	if startX != 59 || startY != 59 {
		t.Fatalf("expected clamped end window start 59,59 got %d,%d", startX, startY)
	}

	_, _, cols, rows = computeViewWindow(12, 14, 3, 8, 41)
	if cols != 12 || rows != 14 {
		t.Fatalf("expected small map to fit whole, got %dx%d", cols, rows)
	}
}

func TestComputeSquareGridGeometryUsesMinDimension(t *testing.T) {
	area := rl.NewRectangle(0, 0, 300, 180)
	geo, ok := computeSquareGridGeometry(area, 20, 20)
	if !ok {
		t.Fatalf("expected valid geometry")
	}
	if math.Abs(float64(geo.CellSize-9.0)) > 0.0001 {
		t.Fatalf("expected cell size 9, got %.4f", geo.CellSize)
	}
	if math.Abs(float64(geo.OriginX-60.0)) > 0.0001 {
		t.Fatalf("expected centered originX 60, got %.4f", geo.OriginX)
	}
}

func TestMapViewCellAtRoundTrip(t *testing.T) {
	geo, _ := computeSquareGridGeometry(rl.NewRectangle(100, 50, 400, 400), 20, 20)
	v := mapView{geo: geo, startX: 30, startY: 10}

	at := placement.Coord{X: 35, Y: 17}
	r := v.cellRect(at)
	got, ok := v.cellAt(r.X+r.Width/2, r.Y+r.Height/2)
	if !ok || got != at {
		t.Fatalf("expected %+v, got %+v ok=%v", at, got, ok)
	}
	if _, ok := v.cellAt(99, 60); ok {
		t.Fatalf("expected point left of the map to miss")
	}
	if _, ok := v.cellAt(100+400, 60); ok {
		t.Fatalf("expected point past the last column to miss")
	}
}

func TestMapViewWorldToScreenMatchesCells(t *testing.T) {
	geo, _ := computeSquareGridGeometry(rl.NewRectangle(0, 0, 320, 320), 10, 10)
	v := mapView{geo: geo, startX: 5, startY: 5}
	x, y := v.worldToScreen(7*64, 9*64)
	r := v.cellRect(placement.Coord{X: 7, Y: 9})
	if math.Abs(float64(x-r.X)) > 0.001 || math.Abs(float64(y-r.Y)) > 0.001 {
		t.Fatalf("expected world origin of tile to match cell rect, got %.2f,%.2f vs %.2f,%.2f", x, y, r.X, r.Y)
	}
}

func TestTextLineHeight(t *testing.T) {
	if got := textLineHeight(typeScale.Log); got != 24 {
		t.Fatalf("expected 24px log line, got %d", got)
	}
	if got := textLineHeight(0); got != 1 {
		t.Fatalf("expected minimum line height 1, got %d", got)
	}
}
