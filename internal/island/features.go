package island

import (
	"fmt"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

// TileSize is the edge of one map tile in world pixels.
const TileSize = 64

// PixelZoom scales sprite source pixels to world pixels.
const PixelZoom = 4

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) ContainsPoint(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type SpriteName string

const (
	SpriteStatue       SpriteName = "statue"
	SpriteRaccoonGod   SpriteName = "raccoon_god"
	SpriteMineEntrance SpriteName = "mine_entrance"
	SpriteTentBack     SpriteName = "tent_back"
	SpriteTentFront    SpriteName = "tent_front"
)

// DrawCall places a sprite source rectangle at a world pixel position.
type DrawCall struct {
	Sprite SpriteName
	Src    Rect
	X, Y   float64
	Scale  float64
	Depth  float64
}

// Canvas receives draw calls in world pixel space.
type Canvas interface {
	Draw(call DrawCall)
}

type FeatureKind string

const (
	FeatureStatue       FeatureKind = "statue"
	FeatureTent         FeatureKind = "tent"
	FeatureMineEntrance FeatureKind = "mine_entrance"
	FeatureRaccoonGod   FeatureKind = "raccoon_god"
)

// Feature is a custom map feature placed on a location.
type Feature interface {
	Kind() FeatureKind
	Tile() placement.Coord
	BoundingBox() Rect
	// Interact returns the warp the player takes when using the feature.
	Interact() (Warp, bool)
	Draw(c Canvas)
}

// FeatureRecord is the serializable form of a feature.
type FeatureRecord struct {
	Kind     FeatureKind `yaml:"kind"`
	Location string      `yaml:"location"`
	X        int         `yaml:"x"`
	Y        int         `yaml:"y"`
	Target   string      `yaml:"target,omitempty"`
	TargetX  int         `yaml:"targetX,omitempty"`
	TargetY  int         `yaml:"targetY,omitempty"`
}

func FeatureFromRecord(rec FeatureRecord) (Feature, error) {
	at := placement.Coord{X: rec.X, Y: rec.Y}
	link := Warp{X: rec.X, Y: rec.Y, Target: rec.Target, TargetX: rec.TargetX, TargetY: rec.TargetY}
	switch rec.Kind {
	case FeatureStatue:
		return &Statue{At: at, Link: link}, nil
	case FeatureTent:
		if rec.Target == "" {
			return nil, fmt.Errorf("tent at %d,%d has no interior", rec.X, rec.Y)
		}
		return &Tent{At: at, Interior: link}, nil
	case FeatureMineEntrance:
		return &MineEntrance{At: at, Link: link}, nil
	case FeatureRaccoonGod:
		return &RaccoonGod{At: at}, nil
	default:
		return nil, fmt.Errorf("unknown feature kind: %q", rec.Kind)
	}
}

// RecordOf converts a feature back to its serializable form.
func RecordOf(location string, f Feature) FeatureRecord {
	at := f.Tile()
	rec := FeatureRecord{Kind: f.Kind(), Location: location, X: at.X, Y: at.Y}
	if w, ok := f.Interact(); ok {
		rec.Target = w.Target
		rec.TargetX = w.TargetX
		rec.TargetY = w.TargetY
	}
	return rec
}

func depthAt(worldY float64) float64 {
	return worldY / 10000
}

// Statue is a raccoon statue acting as a portal.
type Statue struct {
	At   placement.Coord
	Link Warp
}

func (s *Statue) Kind() FeatureKind     { return FeatureStatue }
func (s *Statue) Tile() placement.Coord { return s.At }

func (s *Statue) BoundingBox() Rect {
	return Rect{X: s.At.X * TileSize, Y: s.At.Y * TileSize, W: TileSize, H: TileSize}
}

func (s *Statue) Interact() (Warp, bool) {
	return s.Link, s.Link.Target != ""
}

func (s *Statue) Draw(c Canvas) {
	drawStatue(c, s.At)
}

func drawStatue(c Canvas, at placement.Coord) {
	c.Draw(DrawCall{
		Sprite: SpriteStatue,
		Src:    Rect{W: 16, H: 32},
		X:      float64(at.X * TileSize),
		Y:      float64((at.Y - 1) * TileSize),
		Scale:  PixelZoom,
		Depth:  depthAt(float64(at.Y*TileSize) + 32),
	})
}

// Tent is a permanent tent leading into its own interior.
type Tent struct {
	At       placement.Coord
	Interior Warp
}

func (t *Tent) Kind() FeatureKind     { return FeatureTent }
func (t *Tent) Tile() placement.Coord { return t.At }

func (t *Tent) BoundingBox() Rect {
	return Rect{X: (t.At.X - 1) * TileSize, Y: (t.At.Y - 1) * TileSize, W: 3 * TileSize, H: 2 * TileSize}
}

func (t *Tent) Interact() (Warp, bool) {
	return t.Interior, t.Interior.Target != ""
}

func (t *Tent) Draw(c Canvas) {
	x := float64(t.At.X * TileSize)
	y := float64(t.At.Y * TileSize)
	// Back layer sits under everything; the canvas layer sorts at tile depth.
	c.Draw(DrawCall{
		Sprite: SpriteTentBack,
		Src:    Rect{X: 48, Y: 208, W: 64, H: 48},
		X:      x - 2*TileSize,
		Y:      y - TileSize,
		Scale:  PixelZoom,
		Depth:  0.0001,
	})
	c.Draw(DrawCall{
		Sprite: SpriteTentFront,
		Src:    Rect{X: 0, Y: 192, W: 48, H: 64},
		X:      x - TileSize,
		Y:      y - 3*TileSize,
		Scale:  PixelZoom,
		Depth:  depthAt(y),
	})
}

// MineEntrance is a walk-through hole; it has no collision box.
type MineEntrance struct {
	At   placement.Coord
	Link Warp
}

func (m *MineEntrance) Kind() FeatureKind     { return FeatureMineEntrance }
func (m *MineEntrance) Tile() placement.Coord { return m.At }
func (m *MineEntrance) BoundingBox() Rect     { return Rect{} }

func (m *MineEntrance) Interact() (Warp, bool) {
	return m.Link, m.Link.Target != ""
}

func (m *MineEntrance) Draw(c Canvas) {
	c.Draw(DrawCall{
		Sprite: SpriteMineEntrance,
		Src:    Rect{W: 16, H: 16},
		X:      float64(m.At.X * TileSize),
		Y:      float64(m.At.Y * TileSize),
		Scale:  PixelZoom,
		Depth:  depthAt(float64(m.At.Y * TileSize)),
	})
}

// RaccoonGod blocks a 3x5 tile footprint. Its sprite is drawn as a world
// overlay so it layers above the mine entrance sharing its tile.
type RaccoonGod struct {
	At placement.Coord
}

func (g *RaccoonGod) Kind() FeatureKind     { return FeatureRaccoonGod }
func (g *RaccoonGod) Tile() placement.Coord { return g.At }

func (g *RaccoonGod) BoundingBox() Rect {
	return Rect{X: (g.At.X - 1) * TileSize, Y: (g.At.Y - 4) * TileSize, W: 3 * TileSize, H: 5 * TileSize}
}

func (g *RaccoonGod) Interact() (Warp, bool) { return Warp{}, false }
func (g *RaccoonGod) Draw(Canvas)            {}

func drawRaccoonGod(c Canvas, at placement.Coord) {
	c.Draw(DrawCall{
		Sprite: SpriteRaccoonGod,
		Src:    Rect{W: 48, H: 80},
		X:      float64((at.X - 1) * TileSize),
		Y:      float64((at.Y - 4) * TileSize),
		Scale:  PixelZoom,
		Depth:  depthAt(float64((at.Y + 1) * TileSize)),
	})
}

// drawOverlay paints a decoration sprite configured for a host location.
func drawOverlay(c Canvas, sprite SpriteName, at placement.Coord) {
	switch sprite {
	case SpriteStatue:
		drawStatue(c, at)
	case SpriteRaccoonGod:
		drawRaccoonGod(c, at)
	}
}
