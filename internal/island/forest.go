package island

import (
	"log/slog"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

// PlanForest computes the tree layout of the forest ring.
func PlanForest(cfg Config) []placement.Placement {
	return placement.PlaceDense(placement.DenseOptions{
		Width:      cfg.Grid.Width,
		Height:     cfg.Grid.Height,
		Region:     cfg.ForestRegion(),
		Categories: cfg.Forest.Trees,
		Spacing:    cfg.Forest.Spacing,
	})
}

// NewTree builds the terrain feature for a tree id. Ids at or above the
// fruit threshold become greenhouse fruit trees so they ignore seasons.
func NewTree(id placement.Category, fruitThreshold int) TerrainFeature {
	if IsFruitTree(id, fruitThreshold) {
		return TerrainFeature{TreeID: id, Fruit: true, Stage: FruitTreeStageMature, Greenhouse: true}
	}
	return TerrainFeature{TreeID: id, Stage: TreeStageMature}
}

// SpawnForestTrees plants the forest ring on loc and returns the number of
// trees placed. Existing terrain on a planned tile is overwritten.
func SpawnForestTrees(loc *Location, cfg Config, logger *slog.Logger) int {
	if loc == nil {
		return 0
	}
	plan := PlanForest(cfg)
	for _, p := range plan {
		loc.Terrain[p.Coord] = NewTree(p.Category, cfg.Forest.FruitThreshold)
	}
	if logger != nil {
		logger.Info("spawned forest", "location", loc.Name, "trees", len(plan), "kinds", len(cfg.Forest.Trees))
	}
	return len(plan)
}
