package island

import (
	"math"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

type Zone uint8

const (
	ZoneTown Zone = iota
	ZoneForest
	ZoneBeach
	ZoneWater
)

func (z Zone) String() string {
	switch z {
	case ZoneTown:
		return "town"
	case ZoneForest:
		return "forest"
	case ZoneBeach:
		return "beach"
	default:
		return "water"
	}
}

// ZoneAt classifies a tile by its distance from the island center.
func (c Config) ZoneAt(at placement.Coord) Zone {
	d2 := c.Center().DistanceSquared(at)
	switch {
	case d2 > c.SwimStart*c.SwimStart:
		return ZoneWater
	case d2 > c.Beach.Inner*c.Beach.Inner:
		return ZoneBeach
	case d2 > c.Forest.Inner*c.Forest.Inner:
		return ZoneForest
	default:
		return ZoneTown
	}
}

func (c Config) OnPath(at placement.Coord) bool {
	if z := c.ZoneAt(at); z != ZoneForest && z != ZoneTown {
		return false
	}
	return c.Paths.Contains(at)
}

func (c Config) OnDock(at placement.Coord) bool {
	return c.Dock.Contains(at)
}

// InBounds reports whether the tile lies on the island grid.
func (c Config) InBounds(at placement.Coord) bool {
	return at.X >= 0 && at.Y >= 0 && at.X < c.Grid.Width && at.Y < c.Grid.Height
}

// DistanceFromCenter measures a fractional tile position against the center.
func (c Config) DistanceFromCenter(x, y float64) float64 {
	dx := x - c.Grid.CenterX
	dy := y - c.Grid.CenterY
	return math.Sqrt(dx*dx + dy*dy)
}

func tileOf(px, py float64) placement.Coord {
	return placement.Coord{X: int(px), Y: int(py)}
}
