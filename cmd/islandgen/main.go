package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func main() {
	var worldID uint64
	var day int
	var seasonRaw string
	var zone string
	var itemRaw string
	var configPath string

	flag.Uint64Var(&worldID, "world", 1, "world unique id used for day seeds")
	flag.IntVar(&day, "day", 0, "elapsed days since the world started (0-based)")
	flag.StringVar(&seasonRaw, "season", "", "move the day into this season, keeping the day of season")
	flag.StringVar(&zone, "zone", "all", "forest, beach, town or all")
	flag.StringVar(&itemRaw, "item", "", "only print placements of this item (name or id)")
	flag.StringVar(&configPath, "config", "", "island config YAML")
	flag.Parse()

	if day < 0 {
		die("--day cannot be negative")
	}
	zone = strings.ToLower(strings.TrimSpace(zone))
	switch zone {
	case "all", "forest", "beach", "town":
	default:
		die(fmt.Sprintf("unknown zone %q", zone))
	}
	cfg, err := island.LoadConfig(configPath)
	if err != nil {
		die(err.Error())
	}
	if strings.TrimSpace(seasonRaw) != "" {
		season, ok := island.ParseSeason(seasonRaw)
		if !ok {
			die(fmt.Sprintf("unknown season %q", seasonRaw))
		}
		day = dayInSeason(day, season)
	}
	var filter placement.Category
	if strings.TrimSpace(itemRaw) != "" {
		spec, ok := island.LookupItem(itemRaw)
		if !ok {
			die(fmt.Sprintf("unknown item %q", itemRaw))
		}
		filter = spec.ID
	}

	w := island.NewWorldWithID(worldID)
	w.TotalDays = day
	loc := island.NewLocation(cfg.LocationName, cfg.MapPath, true)
	island.SpawnForestTrees(loc, cfg, nil)

	fmt.Printf("world=%d day=%d (%s day %d)\n", worldID, day, w.Season(), island.DayOfSeason(day))
	if zone == "all" || zone == "forest" {
		printPlacements("forest", island.PlanForest(cfg), filter)
	}
	if zone == "all" || zone == "beach" {
		res := island.PlanBeachForage(loc, w, cfg)
		printSparse("beach", res, filter)
		applyObjects(loc, res.Placements)
	}
	if zone == "all" || zone == "town" {
		printSparse("town", island.PlanTownForage(loc, w, cfg), filter)
	}
}

// dayInSeason moves day into season within the same year.
func dayInSeason(day int, season island.Season) int {
	year := day / (4 * island.DaysPerSeason)
	index := 0
	for i, s := range island.Seasons() {
		if s == season {
			index = i
		}
	}
	return (year*4+index)*island.DaysPerSeason + island.DayOfSeason(day) - 1
}

// applyObjects marks beach placements as occupied before the town roll, the
// same order the day start uses.
func applyObjects(loc *island.Location, placements []placement.Placement) {
	for _, p := range placements {
		loc.Objects[p.Coord] = island.Object{ItemID: p.Category, Spawned: true}
	}
}

func printSparse(zone string, res placement.SparseResult, filter placement.Category) {
	fmt.Printf("%s: %d/%d placed, %d/%d attempts\n", zone, len(res.Placements), res.Requested, res.AttemptsUsed, res.Budget)
	printPlacements(zone, res.Placements, filter)
}

func printPlacements(zone string, placements []placement.Placement, filter placement.Category) {
	printed := 0
	for _, p := range placements {
		if filter != "" && p.Category != filter {
			continue
		}
		fmt.Printf("  %-6s %3d,%-3d %-5s %s\n", zone, p.Coord.X, p.Coord.Y, p.Category, island.ItemName(p.Category))
		printed++
	}
	if filter != "" {
		fmt.Printf("  %s: %d matching %s\n", zone, printed, island.ItemName(filter))
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
