package island

import (
	"sort"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

type ItemKind string

const (
	ItemKindTree      ItemKind = "tree"
	ItemKindFruitTree ItemKind = "fruit_tree"
	ItemKindBeach     ItemKind = "beach"
	ItemKindForage    ItemKind = "forage"
)

type ItemSpec struct {
	ID   placement.Category
	Name string
	Kind ItemKind
}

// FruitTreeThreshold is the first numeric tree id that denotes a fruit tree.
const FruitTreeThreshold = 628

func ItemCatalog() []ItemSpec {
	return []ItemSpec{
		{ID: "1", Name: "Oak Tree", Kind: ItemKindTree},
		{ID: "2", Name: "Maple Tree", Kind: ItemKindTree},
		{ID: "3", Name: "Pine Tree", Kind: ItemKindTree},
		{ID: "6", Name: "Coconut Palm", Kind: ItemKindTree},
		{ID: "628", Name: "Cherry Tree", Kind: ItemKindFruitTree},
		{ID: "629", Name: "Apricot Tree", Kind: ItemKindFruitTree},
		{ID: "630", Name: "Orange Tree", Kind: ItemKindFruitTree},
		{ID: "631", Name: "Peach Tree", Kind: ItemKindFruitTree},
		{ID: "632", Name: "Pomegranate Tree", Kind: ItemKindFruitTree},
		{ID: "633", Name: "Apple Tree", Kind: ItemKindFruitTree},

		{ID: "372", Name: "Clam", Kind: ItemKindBeach},
		{ID: "392", Name: "Nautilus Shell", Kind: ItemKindBeach},
		{ID: "394", Name: "Rainbow Shell", Kind: ItemKindBeach},
		{ID: "718", Name: "Cockle", Kind: ItemKindBeach},
		{ID: "719", Name: "Mussel", Kind: ItemKindBeach},
		{ID: "723", Name: "Oyster", Kind: ItemKindBeach},

		{ID: "16", Name: "Wild Horseradish", Kind: ItemKindForage},
		{ID: "18", Name: "Daffodil", Kind: ItemKindForage},
		{ID: "20", Name: "Leek", Kind: ItemKindForage},
		{ID: "22", Name: "Dandelion", Kind: ItemKindForage},
		{ID: "396", Name: "Spice Berry", Kind: ItemKindForage},
		{ID: "398", Name: "Grape", Kind: ItemKindForage},
		{ID: "402", Name: "Sweet Pea", Kind: ItemKindForage},
		{ID: "259", Name: "Fiddlehead Fern", Kind: ItemKindForage},
		{ID: "281", Name: "Chanterelle", Kind: ItemKindForage},
		{ID: "406", Name: "Wild Plum", Kind: ItemKindForage},
		{ID: "408", Name: "Hazelnut", Kind: ItemKindForage},
		{ID: "410", Name: "Blackberry", Kind: ItemKindForage},
		{ID: "88", Name: "Coconut", Kind: ItemKindForage},
		{ID: "90", Name: "Cactus Fruit", Kind: ItemKindForage},
		{ID: "829", Name: "Ginger", Kind: ItemKindForage},
		{ID: "851", Name: "Magma Cap", Kind: ItemKindForage},
	}
}

var itemsByID = func() map[placement.Category]ItemSpec {
	out := make(map[placement.Category]ItemSpec)
	for _, spec := range ItemCatalog() {
		out[spec.ID] = spec
	}
	return out
}()

func ItemByID(id placement.Category) (ItemSpec, bool) {
	spec, ok := itemsByID[id]
	return spec, ok
}

// ItemName returns the display name for id, or the id itself when unknown.
func ItemName(id placement.Category) string {
	if spec, ok := itemsByID[id]; ok {
		return spec.Name
	}
	return string(id)
}

// TreeLabel resolves the hover label for a tree id. Non-tree ids never resolve.
func TreeLabel(id placement.Category) (string, bool) {
	spec, ok := itemsByID[id]
	if !ok || (spec.Kind != ItemKindTree && spec.Kind != ItemKindFruitTree) {
		return "", false
	}
	if label, ok := treeLabels()[id]; ok {
		return label, true
	}
	return spec.Name, true
}

// treeLabels resolves the localised tree names. It runs on every lookup so
// labels follow the catalog loaded by gotext.Configure.
func treeLabels() map[placement.Category]string {
	return map[placement.Category]string{
		"1":   gotext.Get("Oak Tree"),
		"2":   gotext.Get("Maple Tree"),
		"3":   gotext.Get("Pine Tree"),
		"6":   gotext.Get("Coconut Palm"),
		"628": gotext.Get("Cherry Tree"),
		"629": gotext.Get("Apricot Tree"),
		"630": gotext.Get("Orange Tree"),
		"631": gotext.Get("Peach Tree"),
		"632": gotext.Get("Pomegranate Tree"),
		"633": gotext.Get("Apple Tree"),
	}
}

// IsFruitTree reports whether a tree id belongs to the fruit tree range.
func IsFruitTree(id placement.Category, threshold int) bool {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return false
	}
	return n >= threshold
}

// LookupItem resolves an item by id or by (possibly misspelled) name.
func LookupItem(query string) (ItemSpec, bool) {
	query = strings.TrimSpace(query)
	if spec, ok := itemsByID[placement.Category(query)]; ok {
		return spec, true
	}
	candidates := make([]nameCandidate, 0, len(itemsByID))
	for _, spec := range ItemCatalog() {
		candidates = append(candidates, nameCandidate{key: string(spec.ID), alias: spec.Name})
	}
	key, ok := matchName(query, candidates)
	if !ok {
		return ItemSpec{}, false
	}
	return itemsByID[placement.Category(key)], true
}

func ItemsOfKind(kinds ...ItemKind) []ItemSpec {
	out := make([]ItemSpec, 0)
	for _, spec := range ItemCatalog() {
		for _, k := range kinds {
			if spec.Kind == k {
				out = append(out, spec)
				break
			}
		}
	}
	return out
}

// FurnitureCatalog maps furniture ids to their raw data rows (name first).
type FurnitureCatalog map[string]string

func DefaultFurnitureCatalog() FurnitureCatalog {
	return FurnitureCatalog{
		"1226":            "Junimo Hut/decor/3 2/3 1/1/2000",
		"DarkCatTree":     "Dark Cat Tree/decor/2 3/2 1/1/3500",
		"LongElixirTable": "Long Elixir Table/table/5 3/5 2/1/1500",
		"1120":            "Oak Table/table/2 3/2 2/1/750",
		"1294":            "Indoor Palm/decor/1 2/1 1/1/500",
	}
}

func (c FurnitureCatalog) name(id string) string {
	row := c[id]
	if i := strings.IndexByte(row, '/'); i >= 0 {
		return row[:i]
	}
	return row
}

// Find returns the id of the furniture named name. Keys spelled without
// spaces or with underscores match as well, and misspellings fall back to
// fuzzy matching on display names.
func (c FurnitureCatalog) Find(name string) (string, bool) {
	if len(c) == 0 || strings.TrimSpace(name) == "" {
		return "", false
	}
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	compact := strings.ReplaceAll(name, " ", "")
	snake := strings.ReplaceAll(name, " ", "_")
	for _, id := range ids {
		if strings.Contains(c[id], name) || strings.Contains(id, compact) || strings.Contains(id, snake) {
			return id, true
		}
	}

	candidates := make([]nameCandidate, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, nameCandidate{key: id, alias: c.name(id)})
	}
	return matchName(name, candidates)
}
