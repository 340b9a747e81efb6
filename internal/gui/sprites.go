package gui

import (
	"os"
	"path/filepath"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/raccoon-island/internal/island"
)

var spriteNames = []island.SpriteName{
	island.SpriteStatue,
	island.SpriteRaccoonGod,
	island.SpriteMineEntrance,
	island.SpriteTentBack,
	island.SpriteTentFront,
}

type spriteSet map[island.SpriteName]rl.Texture2D

// loadSprites loads assets/sprites/<name>.png for every known sprite. A
// missing file leaves the sprite unset and the canvas draws a flat block.
func loadSprites(dir string) spriteSet {
	set := make(spriteSet, len(spriteNames))
	for _, name := range spriteNames {
		path := filepath.Join(dir, string(name)+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterPoint)
		set[name] = tex
	}
	return set
}

func (s spriteSet) unload() {
	for name, tex := range s {
		rl.UnloadTexture(tex)
		delete(s, name)
	}
}

func fallbackSpriteColor(name island.SpriteName) rl.Color {
	switch name {
	case island.SpriteRaccoonGod:
		return rl.NewColor(120, 110, 130, 220)
	case island.SpriteMineEntrance:
		return rl.NewColor(30, 24, 20, 230)
	case island.SpriteTentBack:
		return rl.NewColor(90, 70, 50, 200)
	case island.SpriteTentFront:
		return rl.NewColor(196, 120, 64, 230)
	default:
		return rl.NewColor(170, 170, 180, 230)
	}
}

// spriteCanvas collects draw calls from island features and paints them in
// depth order once the frame's calls are in.
type spriteCanvas struct {
	view    mapView
	sprites spriteSet
	calls   []island.DrawCall
}

func (c *spriteCanvas) Draw(call island.DrawCall) {
	c.calls = append(c.calls, call)
}

func (c *spriteCanvas) flush() {
	sort.SliceStable(c.calls, func(i, j int) bool { return c.calls[i].Depth < c.calls[j].Depth })
	scale := c.view.worldScale()
	for _, call := range c.calls {
		x, y := c.view.worldToScreen(call.X, call.Y)
		w := float32(call.Src.W) * float32(call.Scale) * scale
		h := float32(call.Src.H) * float32(call.Scale) * scale
		dest := rl.NewRectangle(x, y, w, h)
		if !rl.CheckCollisionRecs(dest, c.view.geo.DrawRect) {
			continue
		}
		tex, ok := c.sprites[call.Sprite]
		if !ok {
			rl.DrawRectangleRec(dest, fallbackSpriteColor(call.Sprite))
			continue
		}
		src := rl.NewRectangle(float32(call.Src.X), float32(call.Src.Y), float32(call.Src.W), float32(call.Src.H))
		rl.DrawTexturePro(tex, src, dest, rl.Vector2{}, 0, rl.White)
	}
	c.calls = c.calls[:0]
}
