package island

import (
	"slices"
	"testing"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func forestedIsland(cfg Config) *Location {
	loc := NewLocation(cfg.LocationName, cfg.MapPath, true)
	SpawnForestTrees(loc, cfg, nil)
	return loc
}

func TestBeachForageInRingAndSeason(t *testing.T) {
	cfg := DefaultConfig()
	for day := 0; day < 112; day += 7 {
		w := NewWorldWithID(424242)
		w.TotalDays = day
		res := PlanBeachForage(forestedIsland(cfg), w, cfg)
		if res.Requested < cfg.Beach.MinCount || res.Requested >= cfg.Beach.MaxCount {
			t.Fatalf("day %d: requested %d out of range", day, res.Requested)
		}
		table := cfg.BeachTable(w.Season())
		for _, p := range res.Placements {
			if cfg.ZoneAt(p.Coord) != ZoneBeach {
				t.Fatalf("day %d: %+v not on the beach", day, p.Coord)
			}
			if !slices.ContainsFunc(table, func(e placement.WeightedCategory) bool { return e.Category == p.Category }) {
				t.Fatalf("day %d: %s not in %s table", day, p.Category, w.Season())
			}
		}
	}
}

func TestTownForageAvoidsPathsAndOccupiedCells(t *testing.T) {
	cfg := DefaultConfig()
	loc := forestedIsland(cfg)
	w := NewWorldWithID(7)
	blocked := placement.Coord{X: 45, Y: 45}
	for day := 0; day < 30; day++ {
		w.TotalDays = day
		// Fill the whole town ring except one cell to prove occupancy is honoured.
		if day == 29 {
			for _, c := range placement.CollectRegion(cfg.Grid.Width, cfg.Grid.Height, cfg.TownRegion()) {
				if c != blocked {
					loc.Objects[c] = Object{ItemID: "x"}
				}
			}
		}
		res := PlanTownForage(loc, w, cfg)
		seen := map[placement.Coord]bool{}
		for _, p := range res.Placements {
			if cfg.Paths.Contains(p.Coord) {
				t.Fatalf("day %d: %+v on a path", day, p.Coord)
			}
			if d := cfg.Center().DistanceSquared(p.Coord); d <= cfg.Town.Inner*cfg.Town.Inner || d > cfg.Town.Outer*cfg.Town.Outer {
				t.Fatalf("day %d: %+v outside town ring", day, p.Coord)
			}
			if seen[p.Coord] {
				t.Fatalf("day %d: duplicate %+v", day, p.Coord)
			}
			seen[p.Coord] = true
			if day == 29 && p.Coord != blocked {
				t.Fatalf("expected only the free cell to be used, got %+v", p.Coord)
			}
		}
	}
}

func TestForageDeterministicPerDay(t *testing.T) {
	cfg := DefaultConfig()
	a := NewWorldWithID(99)
	b := NewWorldWithID(99)
	a.TotalDays, b.TotalDays = 12, 12

	ra := PlanTownForage(forestedIsland(cfg), a, cfg)
	rb := PlanTownForage(forestedIsland(cfg), b, cfg)
	if !slices.Equal(ra.Placements, rb.Placements) {
		t.Fatalf("expected identical placements for identical world and day")
	}
}

func TestSpawnForageAppliesObjects(t *testing.T) {
	cfg := DefaultConfig()
	loc := forestedIsland(cfg)
	w := NewWorldWithID(3)
	beach := SpawnBeachForageables(loc, w, cfg, nil)
	town := SpawnTownForageables(loc, w, cfg, nil)
	want := len(beach.Placements) + len(town.Placements)
	if len(loc.Objects) != want {
		t.Fatalf("expected %d objects, got %d", want, len(loc.Objects))
	}
	for _, p := range town.Placements {
		obj, ok := loc.Objects[p.Coord]
		if !ok || obj.ItemID != p.Category || !obj.Spawned {
			t.Fatalf("expected spawned %s at %+v", p.Category, p.Coord)
		}
	}
}
