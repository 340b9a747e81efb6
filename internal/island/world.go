package island

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const (
	FarmLocation  = "Farm"
	BeachLocation = "Beach"
)

// Tree growth stages applied to freshly spawned trees.
const (
	TreeStageMature      = 5
	FruitTreeStageMature = 4
)

type TerrainFeature struct {
	TreeID     placement.Category
	Fruit      bool
	Stage      int
	Greenhouse bool
}

type Object struct {
	ItemID  placement.Category
	Spawned bool
}

type Furniture struct {
	ID   string
	Name string
	Tile placement.Coord
}

type Warp struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Target  string `yaml:"target"`
	TargetX int    `yaml:"targetX"`
	TargetY int    `yaml:"targetY"`
}

type Location struct {
	Name       string
	MapPath    string
	Outdoors   bool
	WaterColor [3]uint8

	Terrain   map[placement.Coord]TerrainFeature
	Objects   map[placement.Coord]Object
	Furniture []Furniture
	Warps     []Warp
	// Features are rebuilt from config on every load and never persisted.
	Features []Feature
}

func NewLocation(name, mapPath string, outdoors bool) *Location {
	return &Location{
		Name:     name,
		MapPath:  mapPath,
		Outdoors: outdoors,
		Terrain:  make(map[placement.Coord]TerrainFeature),
		Objects:  make(map[placement.Coord]Object),
	}
}

// Occupied reports whether a terrain feature or an object sits on the tile.
func (l *Location) Occupied(at placement.Coord) bool {
	if l == nil {
		return false
	}
	if _, ok := l.Terrain[at]; ok {
		return true
	}
	_, ok := l.Objects[at]
	return ok
}

func (l *Location) HasWarpTo(target string) bool {
	if l == nil {
		return false
	}
	for _, w := range l.Warps {
		if w.Target == target {
			return true
		}
	}
	return false
}

// AddWarp appends w unless the location already warps to the same target.
func (l *Location) AddWarp(w Warp) bool {
	if l == nil || l.HasWarpTo(w.Target) {
		return false
	}
	l.Warps = append(l.Warps, w)
	return true
}

func (l *Location) WarpAt(at placement.Coord) (Warp, bool) {
	if l == nil {
		return Warp{}, false
	}
	for _, w := range l.Warps {
		if w.X == at.X && w.Y == at.Y {
			return w, true
		}
	}
	return Warp{}, false
}

// FeaturesAt lists the features whose tile or bounding box covers at, in
// placement order.
func (l *Location) FeaturesAt(at placement.Coord) []Feature {
	if l == nil {
		return nil
	}
	px := at.X*TileSize + TileSize/2
	py := at.Y*TileSize + TileSize/2
	var out []Feature
	for _, f := range l.Features {
		if f.Tile() == at || f.BoundingBox().ContainsPoint(px, py) {
			out = append(out, f)
		}
	}
	return out
}

type World struct {
	ID        string
	UniqueID  uint64
	TotalDays int
	Locations map[string]*Location
}

// NewWorld creates a world with a fresh unique id and the host locations
// the island links into.
func NewWorld() *World {
	id := uuid.New()
	return newWorld(id.String(), binary.BigEndian.Uint64(id[:8]))
}

// NewWorldWithID creates a world with a fixed numeric id, for reproducible
// generation.
func NewWorldWithID(uniqueID uint64) *World {
	return newWorld(fmt.Sprintf("world-%d", uniqueID), uniqueID)
}

func newWorld(id string, uniqueID uint64) *World {
	w := &World{
		ID:        id,
		UniqueID:  uniqueID,
		Locations: make(map[string]*Location),
	}
	w.AddLocation(NewLocation(FarmLocation, "Maps/Farm", true))
	w.AddLocation(NewLocation(BeachLocation, "Maps/Beach", true))
	return w
}

func (w *World) Location(name string) (*Location, bool) {
	if w == nil {
		return nil, false
	}
	loc, ok := w.Locations[name]
	return loc, ok
}

// AddLocation registers loc, replacing any location with the same name.
func (w *World) AddLocation(loc *Location) {
	if w == nil || loc == nil {
		return
	}
	if w.Locations == nil {
		w.Locations = make(map[string]*Location)
	}
	w.Locations[loc.Name] = loc
}

func (w *World) RemoveLocation(name string) {
	if w == nil {
		return
	}
	delete(w.Locations, name)
}

// Season returns the season of the current day.
func (w *World) Season() Season {
	return SeasonForDay(w.TotalDays)
}

// GetOrCreateLocation returns the named location, creating it when the world
// has none. The second result reports whether it was created.
func (w *World) GetOrCreateLocation(name, mapPath string, outdoors bool) (*Location, bool) {
	if loc, ok := w.Location(name); ok {
		return loc, false
	}
	loc := NewLocation(name, mapPath, outdoors)
	w.AddLocation(loc)
	return loc, true
}

// LocationNames lists the world's locations in name order.
func (w *World) LocationNames() []string {
	if w == nil {
		return nil
	}
	names := make([]string, 0, len(w.Locations))
	for name := range w.Locations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Blocked reports whether the player cannot stand on at: a tree grows there
// or a feature's collision box covers the tile center.
func (l *Location) Blocked(at placement.Coord) bool {
	if l == nil {
		return false
	}
	if _, ok := l.Terrain[at]; ok {
		return true
	}
	px := at.X*TileSize + TileSize/2
	py := at.Y*TileSize + TileSize/2
	for _, f := range l.Features {
		if f.BoundingBox().ContainsPoint(px, py) {
			return true
		}
	}
	return false
}
