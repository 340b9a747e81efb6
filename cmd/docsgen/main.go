package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	cfg := island.DefaultConfig()
	files := []docFile{
		generateTreesDoc(cfg),
		generateForageDoc(cfg),
		generateBeachTablesDoc(cfg),
		generateFurnitureDoc(),
		generateFeaturesDoc(cfg),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Island Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateTreesDoc(cfg island.Config) docFile {
	items := island.ItemsOfKind(island.ItemKindTree, island.ItemKindFruitTree)
	sortItems(items)
	planted := map[placement.Category]int{}
	for _, p := range island.PlanForest(cfg) {
		planted[p.Category]++
	}

	var b strings.Builder
	b.WriteString("# Trees\n\n")
	b.WriteString("Source: `internal/island/catalog.go` (`ItemCatalog`), forest layout from `island.yaml`.\n\n")
	b.WriteString(fmt.Sprintf("Forest ring %.0f-%.0f tiles from the center, spacing %d. Ids from %d up are greenhouse fruit trees.\n\n",
		cfg.Forest.Inner, cfg.Forest.Outer, cfg.Forest.Spacing, cfg.Forest.FruitThreshold))
	b.WriteString("| ID | Name | Kind | Planted |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, it := range items {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %d |\n", escape(string(it.ID)), escape(it.Name), it.Kind, planted[it.ID]))
	}
	return docFile{Name: "trees.md", Title: "Trees", Content: b.String()}
}

func generateForageDoc(cfg island.Config) docFile {
	inPool := map[placement.Category]bool{}
	for _, id := range cfg.Town.Pool {
		inPool[id] = true
	}
	items := island.ItemsOfKind(island.ItemKindForage, island.ItemKindBeach)
	sortItems(items)

	var b strings.Builder
	b.WriteString("# Forageables\n\n")
	b.WriteString("Source: `internal/island/catalog.go` (`ItemCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Town: %d-%d per day, ring %.0f-%.0f. Beach: %d-%d per day, ring %.0f-%.0f.\n\n",
		cfg.Town.MinCount, cfg.Town.MaxCount, cfg.Town.Inner, cfg.Town.Outer,
		cfg.Beach.MinCount, cfg.Beach.MaxCount, cfg.Beach.Inner, cfg.Beach.Outer))
	b.WriteString("| ID | Name | Kind | Town Pool |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, it := range items {
		pool := ""
		if inPool[it.ID] {
			pool = "yes"
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", escape(string(it.ID)), escape(it.Name), it.Kind, pool))
	}
	return docFile{Name: "forageables.md", Title: "Forageables", Content: b.String()}
}

func generateBeachTablesDoc(cfg island.Config) docFile {
	var b strings.Builder
	b.WriteString("# Beach Tables\n\n")
	b.WriteString("Cumulative weights rolled against 0-99. Seasons without a table use the default.\n\n")
	for _, season := range island.Seasons() {
		table := cfg.BeachTable(season)
		b.WriteString(fmt.Sprintf("## %s\n\n", strings.ToUpper(string(season[:1]))+string(season[1:])))
		b.WriteString("| ID | Name | Chance |\n")
		b.WriteString("| --- | --- | --- |\n")
		prev := 0
		for _, entry := range table {
			b.WriteString(fmt.Sprintf("| %s | %s | %d%% |\n", escape(string(entry.Category)), escape(island.ItemName(entry.Category)), entry.Cumulative-prev))
			prev = entry.Cumulative
		}
		b.WriteString("\n")
	}
	return docFile{Name: "beach-tables.md", Title: "Beach Tables", Content: b.String()}
}

func generateFurnitureDoc() docFile {
	catalog := island.DefaultFurnitureCatalog()
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("# Furniture\n\n")
	b.WriteString("Source: `internal/island/catalog.go` (`DefaultFurnitureCatalog`).\n\n")
	b.WriteString("| ID | Row |\n")
	b.WriteString("| --- | --- |\n")
	for _, id := range ids {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", escape(id), escape(catalog[id])))
	}
	return docFile{Name: "furniture.md", Title: "Furniture", Content: b.String()}
}

func generateFeaturesDoc(cfg island.Config) docFile {
	var b strings.Builder
	b.WriteString("# Map Features\n\n")
	b.WriteString("Source: `internal/island/island.yaml` (`features`, `tents`).\n\n")
	b.WriteString("| Kind | Location | Tile | Leads To |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, rec := range cfg.Features {
		b.WriteString(fmt.Sprintf("| %s | %s | %d,%d | %s |\n", rec.Kind, escape(rec.Location), rec.X, rec.Y, target(rec.Target, rec.TargetX, rec.TargetY)))
	}
	for _, t := range cfg.Tents.Tents {
		b.WriteString(fmt.Sprintf("| %s | %s | %d,%d | %s |\n", island.FeatureTent, escape(cfg.LocationName), t.X, t.Y, target(t.Name, cfg.Tents.EntryX, cfg.Tents.EntryY)))
	}
	return docFile{Name: "features.md", Title: "Map Features", Content: b.String()}
}

func target(name string, x, y int) string {
	if name == "" {
		return "-"
	}
	return fmt.Sprintf("%s %d,%d", escape(name), x, y)
}

func sortItems(items []island.ItemSpec) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].Name < items[j].Name
	})
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
