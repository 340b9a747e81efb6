package placement

import "slices"

// Coord is a cell on a bounded integer grid.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Category identifies what gets placed on a cell (a tree or item id).
type Category string

type Placement struct {
	Coord    Coord
	Category Category
}

// Region decides whether a cell is admissible for placement.
type Region interface {
	Contains(c Coord) bool
}

// Ring admits cells whose Euclidean distance from the center lies in (Inner, Outer].
type Ring struct {
	CenterX float64 `yaml:"centerX"`
	CenterY float64 `yaml:"centerY"`
	Inner   float64 `yaml:"inner"`
	Outer   float64 `yaml:"outer"`
}

func (r Ring) Contains(c Coord) bool {
	d2 := r.DistanceSquared(c)
	return d2 > r.Inner*r.Inner && d2 <= r.Outer*r.Outer
}

func (r Ring) DistanceSquared(c Coord) float64 {
	dx := float64(c.X) - r.CenterX
	dy := float64(c.Y) - r.CenterY
	return dx*dx + dy*dy
}

// Cross admits every cell on one of the listed columns or rows.
type Cross struct {
	Xs []int `yaml:"xs"`
	Ys []int `yaml:"ys"`
}

func (c Cross) Contains(at Coord) bool {
	return slices.Contains(c.Xs, at.X) || slices.Contains(c.Ys, at.Y)
}

// Band is a ring minus an optional excluded region.
type Band struct {
	Ring    Ring
	Exclude Region
}

func (b Band) Contains(c Coord) bool {
	if !b.Ring.Contains(c) {
		return false
	}
	return b.Exclude == nil || !b.Exclude.Contains(c)
}

// RegionFunc adapts a plain predicate to Region.
type RegionFunc func(Coord) bool

func (f RegionFunc) Contains(c Coord) bool {
	return f(c)
}

// CollectRegion lists the cells of a width x height grid admitted by region,
// in row-major order.
func CollectRegion(width, height int, region Region) []Coord {
	if width <= 0 || height <= 0 || region == nil {
		return nil
	}
	out := make([]Coord, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if region.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// Chebyshev returns the king-move distance between two cells.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
