package island

import "github.com/appengine-ltd/raccoon-island/internal/placement"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

const DaysPerSeason = 28

var seasonOrder = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Seasons lists the seasons in calendar order.
func Seasons() []Season {
	return append([]Season(nil), seasonOrder...)
}

// SeasonForDay returns the season for a 0-based elapsed day count.
func SeasonForDay(totalDays int) Season {
	if totalDays < 0 {
		return SeasonSpring
	}
	return seasonOrder[(totalDays/DaysPerSeason)%len(seasonOrder)]
}

// DayOfSeason returns the 1-based day within the current season.
func DayOfSeason(totalDays int) int {
	if totalDays < 0 {
		return 1
	}
	return totalDays%DaysPerSeason + 1
}

// ParseSeason accepts season names in any case and with small typos.
func ParseSeason(raw string) (Season, bool) {
	candidates := make([]nameCandidate, 0, len(seasonOrder)+1)
	for _, s := range seasonOrder {
		candidates = append(candidates, nameCandidate{key: string(s), alias: string(s)})
	}
	candidates = append(candidates, nameCandidate{key: string(SeasonFall), alias: "autumn"})
	key, ok := matchName(raw, candidates)
	if !ok {
		return "", false
	}
	return Season(key), true
}

// SeasonalTables holds the beach forage tables keyed by season, with a
// fallback used for every season that has no table of its own.
type SeasonalTables struct {
	BySeason map[Season]placement.WeightTable `yaml:"bySeason"`
	Default  placement.WeightTable            `yaml:"default"`
}

func (t SeasonalTables) For(season Season) placement.WeightTable {
	if table, ok := t.BySeason[season]; ok && len(table) > 0 {
		return table
	}
	return t.Default
}
