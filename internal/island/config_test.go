package island

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected embedded config to validate: %v", err)
	}
	if cfg.Grid.Width != 80 || cfg.Grid.Height != 80 {
		t.Fatalf("expected 80x80 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.HoverDwell != 3*time.Second {
		t.Fatalf("expected 3s hover dwell, got %s", cfg.HoverDwell)
	}
	if len(cfg.Town.Pool) != 16 {
		t.Fatalf("expected 16 town forageables, got %d", len(cfg.Town.Pool))
	}
	if len(cfg.Tents.Tents) != 12 {
		t.Fatalf("expected 12 tents, got %d", len(cfg.Tents.Tents))
	}
	if got := cfg.BeachTable(SeasonSummer).Total(); got != 100 {
		t.Fatalf("expected summer table to total 100, got %d", got)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got %v", err)
	}
	if cfg.LocationName != DefaultConfig().LocationName {
		t.Fatalf("expected default location name, got %q", cfg.LocationName)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.yaml")
	data := "hoverDwell: 1500ms\ntown:\n  salt: 99\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HoverDwell != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s dwell, got %s", cfg.HoverDwell)
	}
	if cfg.Town.Salt != 99 {
		t.Fatalf("expected overridden salt, got %d", cfg.Town.Salt)
	}
	if len(cfg.Town.Pool) != 16 {
		t.Fatalf("expected untouched pool to keep defaults, got %d", len(cfg.Town.Pool))
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty count":  "beach:\n  minCount: 5\n  maxCount: 5\n",
		"empty pool":   "town:\n  pool: []\n",
		"bad ring":     "forest:\n  inner: 22\n  outer: 14\n",
		"bad feature":  "features:\n  - {kind: windmill, location: Farm, x: 1, y: 1}\n",
		"tent no dest": "features:\n  - {kind: tent, location: RaccoonIsland, x: 1, y: 1}\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "island.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		_, err := LoadConfig(path)
		if err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		if !strings.Contains(err.Error(), "invalid island config") {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
	}
}

func TestZoneAt(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		x, y int
		want Zone
	}{
		{40, 40, ZoneTown},
		{40, 26, ZoneTown},
		{40, 22, ZoneForest},
		{40, 18, ZoneForest},
		{40, 15, ZoneBeach},
		{40, 13, ZoneBeach},
		{40, 12, ZoneWater},
		{0, 0, ZoneWater},
	}
	for _, tc := range cases {
		if got := cfg.ZoneAt(placementCoord(tc.x, tc.y)); got != tc.want {
			t.Fatalf("(%d,%d): expected %s, got %s", tc.x, tc.y, tc.want, got)
		}
	}
	if !cfg.OnPath(placementCoord(39, 25)) {
		t.Fatalf("expected x=39 inside the forest to be a path")
	}
	if cfg.OnPath(placementCoord(39, 5)) {
		t.Fatalf("expected paths to stop at the shoreline")
	}
	if !cfg.OnDock(placementCoord(40, 68)) || cfg.OnDock(placementCoord(41, 68)) {
		t.Fatalf("unexpected dock bounds")
	}
}
