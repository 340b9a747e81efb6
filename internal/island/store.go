package island

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const (
	// AppName is the gdata application directory.
	AppName     = "raccoon_island"
	worldObject = "world"
)

var ErrNoWorld = errors.New("no saved world")

// Store persists worlds per slot. A nil gdata manager keeps saves in memory
// only, so the game still runs where no data directory is available.
type Store struct {
	manager *gdata.Manager
	memory  map[string][]byte
}

func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager, memory: make(map[string][]byte)}
}

// OpenStore opens the gdata store for appName, falling back to memory-only
// mode when the platform storage cannot be opened.
func OpenStore(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Store] gdata unavailable, saves stay in memory: %v", err)
		return NewStore(nil)
	}
	return NewStore(manager)
}

// Persistent reports whether saves survive the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

func validSlot(slot string) error {
	if slot == "" {
		return fmt.Errorf("slot name cannot be empty")
	}
	for _, r := range slot {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("slot %q: invalid character %q", slot, r)
		}
	}
	return nil
}

func (s *Store) HasWorld(slot string) bool {
	if validSlot(slot) != nil {
		return false
	}
	if s.manager == nil {
		_, ok := s.memory[slot]
		return ok
	}
	return s.manager.ObjectPropExists(worldObject, slot)
}

func (s *Store) SaveWorld(slot string, w *World) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("save %s: nil world", slot)
	}
	data, err := yaml.Marshal(snapshotWorld(w))
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	if s.manager == nil {
		s.memory[slot] = data
		return nil
	}
	if err := s.manager.SaveObjectProp(worldObject, slot, data); err != nil {
		return fmt.Errorf("save world %s: %w", slot, err)
	}
	return nil
}

// LoadWorld restores a saved world. Map features are not part of the save;
// Controller.Load rebuilds them.
func (s *Store) LoadWorld(slot string) (*World, error) {
	if err := validSlot(slot); err != nil {
		return nil, err
	}
	var data []byte
	if s.manager == nil {
		var ok bool
		if data, ok = s.memory[slot]; !ok {
			return nil, fmt.Errorf("load %s: %w", slot, ErrNoWorld)
		}
	} else {
		if !s.manager.ObjectPropExists(worldObject, slot) {
			return nil, fmt.Errorf("load %s: %w", slot, ErrNoWorld)
		}
		var err error
		data, err = s.manager.LoadObjectProp(worldObject, slot)
		if err != nil {
			return nil, fmt.Errorf("load world %s: %w", slot, err)
		}
	}
	var save worldSave
	if err := yaml.Unmarshal(data, &save); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", slot, err)
	}
	return save.restore(), nil
}

type worldSave struct {
	ID        string         `yaml:"id"`
	UniqueID  uint64         `yaml:"uniqueId"`
	TotalDays int            `yaml:"totalDays"`
	Locations []locationSave `yaml:"locations"`
}

type locationSave struct {
	Name       string          `yaml:"name"`
	MapPath    string          `yaml:"mapPath"`
	Outdoors   bool            `yaml:"outdoors"`
	WaterColor [3]uint8        `yaml:"waterColor"`
	Trees      []treeSave      `yaml:"trees,omitempty"`
	Objects    []objectSave    `yaml:"objects,omitempty"`
	Furniture  []furnitureSave `yaml:"furniture,omitempty"`
	Warps      []Warp          `yaml:"warps,omitempty"`
}

type treeSave struct {
	placement.Coord `yaml:",inline"`
	TreeID          placement.Category `yaml:"id"`
	Fruit           bool               `yaml:"fruit,omitempty"`
	Stage           int                `yaml:"stage"`
	Greenhouse      bool               `yaml:"greenhouse,omitempty"`
}

type objectSave struct {
	placement.Coord `yaml:",inline"`
	ItemID          placement.Category `yaml:"id"`
	Spawned         bool               `yaml:"spawned,omitempty"`
}

type furnitureSave struct {
	placement.Coord `yaml:",inline"`
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
}

func compareCoord(a, b placement.Coord) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

func snapshotWorld(w *World) worldSave {
	save := worldSave{ID: w.ID, UniqueID: w.UniqueID, TotalDays: w.TotalDays}
	for _, name := range w.LocationNames() {
		loc := w.Locations[name]
		ls := locationSave{
			Name:       loc.Name,
			MapPath:    loc.MapPath,
			Outdoors:   loc.Outdoors,
			WaterColor: loc.WaterColor,
			Warps:      slices.Clone(loc.Warps),
		}
		for at, t := range loc.Terrain {
			ls.Trees = append(ls.Trees, treeSave{Coord: at, TreeID: t.TreeID, Fruit: t.Fruit, Stage: t.Stage, Greenhouse: t.Greenhouse})
		}
		slices.SortFunc(ls.Trees, func(a, b treeSave) int { return compareCoord(a.Coord, b.Coord) })
		for at, o := range loc.Objects {
			ls.Objects = append(ls.Objects, objectSave{Coord: at, ItemID: o.ItemID, Spawned: o.Spawned})
		}
		slices.SortFunc(ls.Objects, func(a, b objectSave) int { return compareCoord(a.Coord, b.Coord) })
		for _, f := range loc.Furniture {
			ls.Furniture = append(ls.Furniture, furnitureSave{Coord: f.Tile, ID: f.ID, Name: f.Name})
		}
		save.Locations = append(save.Locations, ls)
	}
	return save
}

func (s worldSave) restore() *World {
	w := &World{
		ID:        s.ID,
		UniqueID:  s.UniqueID,
		TotalDays: s.TotalDays,
		Locations: make(map[string]*Location, len(s.Locations)),
	}
	for _, ls := range s.Locations {
		loc := NewLocation(ls.Name, ls.MapPath, ls.Outdoors)
		loc.WaterColor = ls.WaterColor
		loc.Warps = slices.Clone(ls.Warps)
		for _, t := range ls.Trees {
			loc.Terrain[t.Coord] = TerrainFeature{TreeID: t.TreeID, Fruit: t.Fruit, Stage: t.Stage, Greenhouse: t.Greenhouse}
		}
		for _, o := range ls.Objects {
			loc.Objects[o.Coord] = Object{ItemID: o.ItemID, Spawned: o.Spawned}
		}
		for _, f := range ls.Furniture {
			loc.Furniture = append(loc.Furniture, Furniture{ID: f.ID, Name: f.Name, Tile: f.Coord})
		}
		w.AddLocation(loc)
	}
	return w
}
