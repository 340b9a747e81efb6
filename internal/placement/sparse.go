package placement

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// DefaultAttempts bounds the rejection-sampling loop of PlaceSparse.
const DefaultAttempts = 200

// Picker chooses a category for an accepted cell.
type Picker interface {
	PickRand(rng *rand.Rand) (Category, bool)
}

type WeightedCategory struct {
	Category   Category `yaml:"id"`
	Cumulative int      `yaml:"weight"`
}

// WeightTable is a cumulative-weight table rolled against [0,100).
type WeightTable []WeightedCategory

// Pick returns the first entry whose cumulative weight exceeds roll. Rolls
// past the last declared weight fall back to the last entry.
func (t WeightTable) Pick(roll int) (Category, bool) {
	if len(t) == 0 {
		return "", false
	}
	for _, entry := range t {
		if roll < entry.Cumulative {
			return entry.Category, true
		}
	}
	return t[len(t)-1].Category, true
}

func (t WeightTable) PickRand(rng *rand.Rand) (Category, bool) {
	if len(t) == 0 {
		return "", false
	}
	return t.Pick(rng.IntN(100))
}

// Total is the cumulative weight of the last entry.
func (t WeightTable) Total() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Cumulative
}

// Uniform picks from a flat pool with equal probability.
type Uniform []Category

func (u Uniform) PickRand(rng *rand.Rand) (Category, bool) {
	if len(u) == 0 {
		return "", false
	}
	return u[rng.IntN(len(u))], true
}

type SparseOptions struct {
	Eligible []Coord
	// MinCount is inclusive, MaxCount exclusive.
	MinCount int
	MaxCount int
	Attempts int
	Picker   Picker
	// Occupied reports cells already holding content outside this pass.
	Occupied func(Coord) bool
}

type SparseResult struct {
	Placements   []Placement
	Requested    int
	AttemptsUsed int
	Budget       int
}

// Exhausted reports whether the attempt budget ran out before the requested
// count was reached.
func (r SparseResult) Exhausted() bool {
	return len(r.Placements) < r.Requested
}

// PlaceSparse draws a target count, then samples eligible cells at random
// until the count is met or the attempt budget is spent. A rejected cell
// costs one attempt; nothing is retried with a different strategy.
func PlaceSparse(rng *rand.Rand, opts SparseOptions) SparseResult {
	budget := opts.Attempts
	if budget <= 0 {
		budget = DefaultAttempts
	}
	result := SparseResult{Budget: budget}
	if rng == nil {
		return result
	}

	count := opts.MinCount
	if opts.MaxCount > opts.MinCount {
		count = opts.MinCount + rng.IntN(opts.MaxCount-opts.MinCount)
	}
	result.Requested = max(0, count)
	if result.Requested == 0 || len(opts.Eligible) == 0 || opts.Picker == nil {
		return result
	}

	taken := mapset.New[Coord]()
	for len(result.Placements) < result.Requested && result.AttemptsUsed < budget {
		result.AttemptsUsed++
		c := opts.Eligible[rng.IntN(len(opts.Eligible))]
		if taken.Has(c) || (opts.Occupied != nil && opts.Occupied(c)) {
			continue
		}
		category, ok := opts.Picker.PickRand(rng)
		if !ok {
			continue
		}
		result.Placements = append(result.Placements, Placement{Coord: c, Category: category})
		taken.Put(c)
	}
	return result
}
