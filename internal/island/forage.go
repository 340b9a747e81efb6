package island

import (
	"log/slog"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

// BeachTable returns the weighted beach table for a season.
func (c Config) BeachTable(season Season) placement.WeightTable {
	return c.Beach.Tables.For(season)
}

// PlanBeachForage rolls the day's beach forageables for a world.
func PlanBeachForage(loc *Location, w *World, cfg Config) placement.SparseResult {
	rng := placement.NewRNG(placement.DaySeed(w.UniqueID, w.TotalDays, cfg.Beach.Salt))
	return placement.PlaceSparse(rng, placement.SparseOptions{
		Eligible: placement.CollectRegion(cfg.Grid.Width, cfg.Grid.Height, cfg.BeachRegion()),
		MinCount: cfg.Beach.MinCount,
		MaxCount: cfg.Beach.MaxCount,
		Attempts: cfg.Beach.Attempts,
		Picker:   cfg.BeachTable(w.Season()),
		Occupied: loc.Occupied,
	})
}

// PlanTownForage rolls the day's town forageables for a world.
func PlanTownForage(loc *Location, w *World, cfg Config) placement.SparseResult {
	rng := placement.NewRNG(placement.DaySeed(w.UniqueID, w.TotalDays, cfg.Town.Salt))
	return placement.PlaceSparse(rng, placement.SparseOptions{
		Eligible: placement.CollectRegion(cfg.Grid.Width, cfg.Grid.Height, cfg.TownRegion()),
		MinCount: cfg.Town.MinCount,
		MaxCount: cfg.Town.MaxCount,
		Attempts: cfg.Town.Attempts,
		Picker:   placement.Uniform(cfg.Town.Pool),
		Occupied: loc.Occupied,
	})
}

func SpawnBeachForageables(loc *Location, w *World, cfg Config, logger *slog.Logger) placement.SparseResult {
	if loc == nil || w == nil {
		return placement.SparseResult{}
	}
	res := PlanBeachForage(loc, w, cfg)
	applyForage(loc, res.Placements)
	logForage(logger, "beach", loc, w, res)
	return res
}

func SpawnTownForageables(loc *Location, w *World, cfg Config, logger *slog.Logger) placement.SparseResult {
	if loc == nil || w == nil {
		return placement.SparseResult{}
	}
	res := PlanTownForage(loc, w, cfg)
	applyForage(loc, res.Placements)
	logForage(logger, "town", loc, w, res)
	return res
}

func applyForage(loc *Location, placements []placement.Placement) {
	for _, p := range placements {
		loc.Objects[p.Coord] = Object{ItemID: p.Category, Spawned: true}
	}
}

func logForage(logger *slog.Logger, zone string, loc *Location, w *World, res placement.SparseResult) {
	if logger == nil {
		return
	}
	attrs := []any{
		"zone", zone,
		"location", loc.Name,
		"day", w.TotalDays,
		"spawned", len(res.Placements),
		"requested", res.Requested,
	}
	if res.Exhausted() {
		logger.Warn("forage attempt budget exhausted", append(attrs, "attempts", res.AttemptsUsed)...)
		return
	}
	logger.Debug("spawned forageables", attrs...)
}
