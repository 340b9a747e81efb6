package island

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

// Frame is what the viewer observed during one update.
type Frame struct {
	Location string
	// PlayerX and PlayerY are fractional tile positions.
	PlayerX float64
	PlayerY float64
	Cursor  placement.Coord
	Now     time.Time
}

type FrameResult struct {
	Swim     SwimEvent
	Swimming bool
	Label    string
	HasLabel bool
}

// DayReport summarises the forageables spawned at the start of a day.
type DayReport struct {
	Day   int
	Beach placement.SparseResult
	Town  placement.SparseResult
}

// Controller owns all per-session island state. Load and Unload bracket a
// session; nothing is kept between sessions.
type Controller struct {
	cfg       Config
	logger    *slog.Logger
	furniture FurnitureCatalog

	hover  *HoverTimer
	swim   *SwimTracker
	loaded bool
}

func NewController(cfg Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:       cfg,
		logger:    logger,
		furniture: DefaultFurnitureCatalog(),
		hover:     NewHoverTimer(cfg.HoverDwell),
		swim:      NewSwimTracker(cfg),
	}
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Loaded() bool {
	return c.loaded
}

// SetFurnitureCatalog replaces the catalog used to furnish tent interiors.
func (c *Controller) SetFurnitureCatalog(catalog FurnitureCatalog) {
	c.furniture = catalog
}

// Load attaches the island to world. It is safe to call on every world load:
// the forest is planted only when the island location is first created,
// warps are added once per target and features are rebuilt from scratch.
func (c *Controller) Load(w *World) error {
	if w == nil {
		return fmt.Errorf("load island: nil world")
	}
	islandLoc, created := w.GetOrCreateLocation(c.cfg.LocationName, c.cfg.MapPath, true)
	if created {
		islandLoc.WaterColor = c.cfg.WaterColor
		SpawnForestTrees(islandLoc, c.cfg, c.logger)
	}
	if _, created := w.GetOrCreateLocation(c.cfg.Mine.Name, c.cfg.Mine.MapPath, false); created {
		c.logger.Debug("created location", "location", c.cfg.Mine.Name)
	}

	for _, loc := range w.Locations {
		loc.Features = nil
	}

	for _, wc := range c.cfg.Warps {
		loc, ok := w.Location(wc.Location)
		if !ok {
			c.logger.Debug("warp source missing", "location", wc.Location, "target", wc.Target)
			continue
		}
		if loc.AddWarp(wc.Warp) {
			c.logger.Info("added warp", "location", wc.Location, "target", wc.Target)
		}
	}

	c.loadTents(w, islandLoc)

	for _, rec := range c.cfg.Features {
		f, err := FeatureFromRecord(rec)
		if err != nil {
			return fmt.Errorf("load island feature: %w", err)
		}
		loc, ok := w.Location(rec.Location)
		if !ok {
			c.logger.Warn("feature location missing", "location", rec.Location, "kind", rec.Kind)
			continue
		}
		loc.Features = append(loc.Features, f)
	}

	c.hover.Reset()
	c.swim.Reset()
	c.loaded = true
	c.logger.Info("island loaded", "location", c.cfg.LocationName, "world", w.ID)
	return nil
}

// loadTents recreates every tent interior. Interiors carry no player state,
// so they are rebuilt rather than migrated.
func (c *Controller) loadTents(w *World, islandLoc *Location) {
	tents := c.cfg.Tents
	for _, t := range tents.Tents {
		w.RemoveLocation(t.Name)
		interior := NewLocation(t.Name, tents.InteriorMap, false)
		w.AddLocation(interior)
		c.furnish(interior)

		islandLoc.Features = append(islandLoc.Features, &Tent{
			At: placement.Coord{X: t.X, Y: t.Y},
			Interior: Warp{
				X:       t.X,
				Y:       t.Y,
				Target:  t.Name,
				TargetX: tents.EntryX,
				TargetY: tents.EntryY,
			},
		})

		interior.Warps = interior.Warps[:0]
		for _, exit := range tents.Exits {
			interior.Warps = append(interior.Warps, Warp{
				X:       exit.X,
				Y:       exit.Y,
				Target:  c.cfg.LocationName,
				TargetX: t.ExitX,
				TargetY: t.Y + 1,
			})
		}
	}
}

func (c *Controller) furnish(loc *Location) {
	placed := 0
	for _, item := range c.cfg.Tents.Furniture {
		id, ok := c.furniture.Find(item.Name)
		if !ok {
			c.logger.Warn("furniture not found", "name", item.Name, "location", loc.Name)
			continue
		}
		loc.Furniture = append(loc.Furniture, Furniture{
			ID:   id,
			Name: c.furniture.name(id),
			Tile: placement.Coord{X: item.X, Y: item.Y},
		})
		placed++
	}
	c.logger.Debug("furnished interior", "location", loc.Name, "items", placed)
}

// StartDay spawns the day's forageables on the island.
func (c *Controller) StartDay(w *World) (DayReport, bool) {
	loc, ok := w.Location(c.cfg.LocationName)
	if !ok {
		return DayReport{}, false
	}
	return DayReport{
		Day:   w.TotalDays,
		Beach: SpawnBeachForageables(loc, w, c.cfg, c.logger),
		Town:  SpawnTownForageables(loc, w, c.cfg, c.logger),
	}, true
}

// AdvanceDay moves the world to the next day and runs StartDay.
func (c *Controller) AdvanceDay(w *World) (DayReport, bool) {
	if w == nil {
		return DayReport{}, false
	}
	w.TotalDays++
	return c.StartDay(w)
}

// Tick runs the per-frame swim and hover logic.
func (c *Controller) Tick(w *World, f Frame) FrameResult {
	if f.Location != c.cfg.LocationName {
		ev := c.swim.Update(false, f.PlayerX, f.PlayerY)
		c.hover.Reset()
		return FrameResult{Swim: ev}
	}

	res := FrameResult{Swim: c.swim.Update(true, f.PlayerX, f.PlayerY)}
	res.Swimming = c.swim.Swimming()

	loc, _ := w.Location(f.Location)
	res.Label, res.HasLabel = c.hover.Observe(f.Cursor, f.Now, func(cell placement.Coord) (string, bool) {
		return treeLabelAt(loc, cell)
	})
	return res
}

func treeLabelAt(loc *Location, cell placement.Coord) (string, bool) {
	if loc == nil {
		return "", false
	}
	tree, ok := loc.Terrain[cell]
	if !ok {
		return "", false
	}
	return TreeLabel(tree.TreeID)
}

// Interact resolves what happens when the player uses a tile.
func (c *Controller) Interact(w *World, location string, tile placement.Coord) (Warp, bool) {
	loc, ok := w.Location(location)
	if !ok {
		return Warp{}, false
	}
	for _, f := range loc.FeaturesAt(tile) {
		if warp, ok := f.Interact(); ok {
			return warp, true
		}
	}
	return loc.WarpAt(tile)
}

// DrawWorld paints the location's features and configured overlays.
func (c *Controller) DrawWorld(loc *Location, canvas Canvas) {
	if loc == nil || canvas == nil {
		return
	}
	for _, f := range loc.Features {
		f.Draw(canvas)
	}
	for _, o := range c.cfg.Overlays {
		if o.Location == loc.Name {
			drawOverlay(canvas, o.Sprite, placement.Coord{X: o.X, Y: o.Y})
		}
	}
}

// ReportPosition logs the player's tile and returns the logged line.
func (c *Controller) ReportPosition(location string, tile placement.Coord) string {
	line := fmt.Sprintf("[%s] X:%d Y:%d", location, tile.X, tile.Y)
	c.logger.Info("player position", "location", location, "x", tile.X, "y", tile.Y)
	return line
}

func (c *Controller) Unload() {
	c.hover.Reset()
	c.swim.Reset()
	c.loaded = false
}
