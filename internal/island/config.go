package island

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

//go:embed island.yaml
var defaultConfigYAML []byte

type GridConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	CenterX float64 `yaml:"centerX"`
	CenterY float64 `yaml:"centerY"`
}

type RectConfig struct {
	MinX int `yaml:"minX"`
	MaxX int `yaml:"maxX"`
	MinY int `yaml:"minY"`
	MaxY int `yaml:"maxY"`
}

func (r RectConfig) Contains(c placement.Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

type ForestConfig struct {
	Inner          float64              `yaml:"inner"`
	Outer          float64              `yaml:"outer"`
	Spacing        int                  `yaml:"spacing"`
	FruitThreshold int                  `yaml:"fruitThreshold"`
	Trees          []placement.Category `yaml:"trees"`
}

type BeachConfig struct {
	Inner    float64        `yaml:"inner"`
	Outer    float64        `yaml:"outer"`
	MinCount int            `yaml:"minCount"`
	MaxCount int            `yaml:"maxCount"`
	Attempts int            `yaml:"attempts"`
	Salt     int64          `yaml:"salt"`
	Tables   SeasonalTables `yaml:"tables"`
}

type TownConfig struct {
	Inner        float64              `yaml:"inner"`
	Outer        float64              `yaml:"outer"`
	MinCount     int                  `yaml:"minCount"`
	MaxCount     int                  `yaml:"maxCount"`
	Attempts     int                  `yaml:"attempts"`
	Salt         int64                `yaml:"salt"`
	ExcludePaths bool                 `yaml:"excludePaths"`
	Pool         []placement.Category `yaml:"pool"`
}

type WarpConfig struct {
	Location string `yaml:"location"`
	Warp     `yaml:",inline"`
}

type TentFurniture struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

type TentConfig struct {
	Name  string `yaml:"name"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	ExitX int    `yaml:"exitX"`
}

type TentsConfig struct {
	InteriorMap string            `yaml:"interiorMap"`
	EntryX      int               `yaml:"entryX"`
	EntryY      int               `yaml:"entryY"`
	Exits       []placement.Coord `yaml:"exits"`
	Furniture   []TentFurniture   `yaml:"furniture"`
	Tents       []TentConfig      `yaml:"tents"`
}

type OverlayConfig struct {
	Location string     `yaml:"location"`
	Sprite   SpriteName `yaml:"sprite"`
	X        int        `yaml:"x"`
	Y        int        `yaml:"y"`
}

type MineConfig struct {
	Name    string `yaml:"name"`
	MapPath string `yaml:"mapPath"`
}

type Config struct {
	LocationName string          `yaml:"locationName"`
	MapPath      string          `yaml:"mapPath"`
	WaterColor   [3]uint8        `yaml:"waterColor"`
	Grid         GridConfig      `yaml:"grid"`
	Paths        placement.Cross `yaml:"paths"`
	SwimStart    float64         `yaml:"swimStart"`
	Dock         RectConfig      `yaml:"dock"`
	HoverDwell   time.Duration   `yaml:"hoverDwell"`

	Forest ForestConfig `yaml:"forest"`
	Beach  BeachConfig  `yaml:"beach"`
	Town   TownConfig   `yaml:"town"`

	Mine     MineConfig      `yaml:"mine"`
	Warps    []WarpConfig    `yaml:"warps"`
	Features []FeatureRecord `yaml:"features"`
	Tents    TentsConfig     `yaml:"tents"`
	Overlays []OverlayConfig `yaml:"overlays"`
}

// DefaultConfig returns the embedded island layout.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded island config: %v", err))
	}
	return cfg
}

// LoadConfig reads an island config from path. A missing file yields the
// embedded defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read island config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse island config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid island config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LocationName == "" {
		return fmt.Errorf("locationName cannot be empty")
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Forest.Inner < 0 || c.Forest.Outer <= c.Forest.Inner {
		return fmt.Errorf("forest ring (%.1f, %.1f] is empty", c.Forest.Inner, c.Forest.Outer)
	}
	if c.Forest.Spacing < 0 {
		return fmt.Errorf("forest spacing must not be negative, got %d", c.Forest.Spacing)
	}
	if len(c.Forest.Trees) == 0 {
		return fmt.Errorf("forest trees cannot be empty")
	}
	if c.Beach.Outer <= c.Beach.Inner {
		return fmt.Errorf("beach ring (%.1f, %.1f] is empty", c.Beach.Inner, c.Beach.Outer)
	}
	if c.Beach.MinCount < 0 || c.Beach.MaxCount <= c.Beach.MinCount {
		return fmt.Errorf("beach count range [%d, %d) is empty", c.Beach.MinCount, c.Beach.MaxCount)
	}
	if len(c.Beach.Tables.Default) == 0 {
		return fmt.Errorf("beach default table cannot be empty")
	}
	if c.Town.Outer <= c.Town.Inner {
		return fmt.Errorf("town ring (%.1f, %.1f] is empty", c.Town.Inner, c.Town.Outer)
	}
	if c.Town.MinCount < 0 || c.Town.MaxCount <= c.Town.MinCount {
		return fmt.Errorf("town count range [%d, %d) is empty", c.Town.MinCount, c.Town.MaxCount)
	}
	if len(c.Town.Pool) == 0 {
		return fmt.Errorf("town pool cannot be empty")
	}
	if c.HoverDwell <= 0 {
		return fmt.Errorf("hoverDwell must be positive")
	}
	for i, rec := range c.Features {
		if _, err := FeatureFromRecord(rec); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return nil
}

// Center returns the fixed center of the island grid.
func (c Config) Center() placement.Ring {
	return placement.Ring{CenterX: c.Grid.CenterX, CenterY: c.Grid.CenterY}
}

func (c Config) ring(inner, outer float64) placement.Ring {
	r := c.Center()
	r.Inner = inner
	r.Outer = outer
	return r
}

// ForestRegion is the forest ring minus the path cross.
func (c Config) ForestRegion() placement.Band {
	return placement.Band{Ring: c.ring(c.Forest.Inner, c.Forest.Outer), Exclude: c.Paths}
}

func (c Config) BeachRegion() placement.Band {
	return placement.Band{Ring: c.ring(c.Beach.Inner, c.Beach.Outer)}
}

func (c Config) TownRegion() placement.Band {
	band := placement.Band{Ring: c.ring(c.Town.Inner, c.Town.Outer)}
	if c.Town.ExcludePaths {
		band.Exclude = c.Paths
	}
	return band
}
