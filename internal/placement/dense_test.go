package placement

import (
	"slices"
	"testing"
)

func forestOptions(categories []Category) DenseOptions {
	return DenseOptions{
		Width:  80,
		Height: 80,
		Region: Band{
			Ring:    Ring{CenterX: 40, CenterY: 40, Inner: 14, Outer: 22},
			Exclude: Cross{Xs: []int{39, 40}, Ys: []int{39, 40}},
		},
		Categories: categories,
		Spacing:    2,
	}
}

func TestPlaceDenseDeterministic(t *testing.T) {
	opts := forestOptions([]Category{"1", "2", "3", "6", "632", "633", "630", "628", "629"})
	first := PlaceDense(opts)
	second := PlaceDense(opts)
	if len(first) == 0 {
		t.Fatalf("expected placements in the forest ring")
	}
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical placements on repeated calls")
	}
}

func TestPlaceDenseSpacingInvariant(t *testing.T) {
	opts := forestOptions([]Category{"a", "b"})
	got := PlaceDense(opts)
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if d := Chebyshev(got[i].Coord, got[j].Coord); d <= opts.Spacing {
				t.Fatalf("placements %v and %v are %d apart, want > %d", got[i].Coord, got[j].Coord, d, opts.Spacing)
			}
		}
	}
}

func TestPlaceDenseRegionContainment(t *testing.T) {
	opts := forestOptions([]Category{"a"})
	for _, p := range PlaceDense(opts) {
		if !opts.Region.Contains(p.Coord) {
			t.Fatalf("placement %v outside region", p.Coord)
		}
		if p.Coord.X == 39 || p.Coord.X == 40 || p.Coord.Y == 39 || p.Coord.Y == 40 {
			t.Fatalf("placement %v on the excluded path cross", p.Coord)
		}
	}
}

func TestPlaceDenseRoundRobin(t *testing.T) {
	opts := DenseOptions{
		Width:      7,
		Height:     1,
		Region:     RegionFunc(func(Coord) bool { return true }),
		Categories: []Category{"X", "Y", "Z"},
		Spacing:    0,
	}
	got := PlaceDense(opts)
	want := []Category{"X", "Y", "Z", "X", "Y", "Z", "X"}
	if len(got) != len(want) {
		t.Fatalf("expected %d placements, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Category != want[i] {
			t.Fatalf("placement %d: expected %s, got %s", i, want[i], p.Category)
		}
		if p.Coord.X != i {
			t.Fatalf("placement %d: expected scan order x=%d, got %v", i, i, p.Coord)
		}
	}
}

func TestPlaceDenseEarlierCellWinsConflict(t *testing.T) {
	opts := DenseOptions{
		Width:      5,
		Height:     5,
		Region:     RegionFunc(func(Coord) bool { return true }),
		Categories: []Category{"t"},
		Spacing:    1,
	}
	got := PlaceDense(opts)
	if len(got) == 0 || got[0].Coord != (Coord{X: 0, Y: 0}) {
		t.Fatalf("expected the first scanned cell to be placed first, got %v", got)
	}
	for _, p := range got[1:] {
		if p.Coord == (Coord{X: 1, Y: 0}) || p.Coord == (Coord{X: 1, Y: 1}) {
			t.Fatalf("cell %v should be reserved by the origin placement", p.Coord)
		}
	}
}

func TestPlaceDenseEmptyCategories(t *testing.T) {
	if got := PlaceDense(forestOptions(nil)); got != nil {
		t.Fatalf("expected no placements without categories, got %d", len(got))
	}
}
