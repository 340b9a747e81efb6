package island

import (
	"testing"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func placementCoord(x, y int) placement.Coord {
	return placement.Coord{X: x, Y: y}
}

func TestTreeLabel(t *testing.T) {
	if label, ok := TreeLabel("632"); !ok || label != "Pomegranate Tree" {
		t.Fatalf("expected Pomegranate Tree, got %q ok=%v", label, ok)
	}
	for _, spec := range ItemsOfKind(ItemKindTree, ItemKindFruitTree) {
		if _, ok := treeLabels()[spec.ID]; !ok {
			t.Fatalf("tree %s has no label entry", spec.ID)
		}
		if label, _ := TreeLabel(spec.ID); label != spec.Name {
			t.Fatalf("expected untranslated label %q, got %q", spec.Name, label)
		}
	}
	if _, ok := TreeLabel("372"); ok {
		t.Fatalf("expected forageables to have no tree label")
	}
	if _, ok := TreeLabel("9999"); ok {
		t.Fatalf("expected unknown id to have no label")
	}
}

func TestIsFruitTree(t *testing.T) {
	cases := map[placement.Category]bool{
		"1": false, "6": false, "627": false, "628": true, "633": true, "oak": false,
	}
	for id, want := range cases {
		if got := IsFruitTree(id, FruitTreeThreshold); got != want {
			t.Fatalf("%s: expected %v, got %v", id, want, got)
		}
	}
}

func TestLookupItem(t *testing.T) {
	cases := map[string]placement.Category{
		"372":          "372",
		"clam":         "372",
		"Rainbw Shell": "394",
		"chanterelle":  "281",
		"pomegr":       "632",
	}
	for query, want := range cases {
		spec, ok := LookupItem(query)
		if !ok || spec.ID != want {
			t.Fatalf("%q: expected %s, got %s ok=%v", query, want, spec.ID, ok)
		}
	}
	if _, ok := LookupItem("submarine"); ok {
		t.Fatalf("expected nonsense query to miss")
	}
}

func TestFurnitureCatalogFind(t *testing.T) {
	c := DefaultFurnitureCatalog()
	cases := map[string]string{
		"Junimo Hut":        "1226",
		"Dark Cat Tree":     "DarkCatTree",
		"Long Elixir Table": "LongElixirTable",
		"Junimo Hutt":       "1226",
	}
	for name, want := range cases {
		id, ok := c.Find(name)
		if !ok || id != want {
			t.Fatalf("%q: expected %s, got %s ok=%v", name, want, id, ok)
		}
	}
	if _, ok := c.Find("Grandfather Clock"); ok {
		t.Fatalf("expected missing furniture to miss")
	}
	if got := c.name("1226"); got != "Junimo Hut" {
		t.Fatalf("expected display name, got %q", got)
	}
}

func TestSeasons(t *testing.T) {
	if SeasonForDay(0) != SeasonSpring || SeasonForDay(28) != SeasonSummer || SeasonForDay(84) != SeasonWinter || SeasonForDay(112) != SeasonSpring {
		t.Fatalf("unexpected season cycle")
	}
	if DayOfSeason(29) != 2 {
		t.Fatalf("expected day 2 of summer, got %d", DayOfSeason(29))
	}
	cases := map[string]Season{
		"Winter": SeasonWinter,
		"autumn": SeasonFall,
		"sumer":  SeasonSummer,
	}
	for raw, want := range cases {
		got, ok := ParseSeason(raw)
		if !ok || got != want {
			t.Fatalf("%q: expected %s, got %s ok=%v", raw, want, got, ok)
		}
	}
	if _, ok := ParseSeason("monsoon"); ok {
		t.Fatalf("expected unknown season to miss")
	}
}

func TestSeasonalTablesFallback(t *testing.T) {
	tables := DefaultConfig().Beach.Tables
	if got, _ := tables.For(SeasonSpring).Pick(0); got != "372" {
		t.Fatalf("expected default table for spring, got %s", got)
	}
	if got, _ := tables.For(SeasonWinter).Pick(0); got != "392" {
		t.Fatalf("expected winter table, got %s", got)
	}
	if got, _ := tables.For(Season("monsoon")).Pick(99); got != "718" {
		t.Fatalf("expected default table for unknown season, got %s", got)
	}
}
