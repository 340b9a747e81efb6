package gui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const moveRepeatDelay = 0.18

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Island island.Config
	Store  *island.Store
	Slot   string
	Logger *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg     AppConfig
	session *island.Session
	sprites spriteSet
	canvas  spriteCanvas

	width  int32
	height int32

	view      mapView
	cursor    placement.Coord
	hasCursor bool
	frame     island.FrameResult
	moveHeld  float32
}

func (a *App) Run() error {
	ctrl := island.NewController(a.cfg.Island, a.cfg.Logger)
	session, err := island.NewSession(ctrl, a.cfg.Store, a.cfg.Slot)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.Close()

	ui := &gameUI{cfg: a.cfg, session: session, width: 1280, height: 800}
	return ui.run()
}

func (ui *gameUI) run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Raccoon Island")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	initTypography()
	defer shutdownTypography()
	ui.sprites = loadSprites(filepath.Join("assets", "sprites"))
	defer ui.sprites.unload()

	for !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())
		if quit := ui.update(rl.GetFrameTime(), time.Now()); quit {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}
	return nil
}

func (ui *gameUI) update(dt float32, now time.Time) bool {
	s := ui.session
	if rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}

	if anyMovementKeyDown() {
		ui.moveHeld += dt
	} else {
		ui.moveHeld = 0
	}
	if dx, dy, ok := movementInput(ui.moveHeld); ok {
		s.Move(dx, dy)
		if ui.moveHeld >= moveRepeatDelay {
			ui.moveHeld = moveRepeatDelay - 0.06
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyE):
		s.Interact()
	case rl.IsKeyPressed(rl.KeyN):
		s.NextDay()
	case rl.IsKeyPressed(rl.KeyF7):
		s.ReportPosition()
	case ShiftPressedKey(rl.KeyS):
		_ = s.Save()
	}

	ui.layoutView()
	mouse := rl.GetMousePosition()
	ui.cursor, ui.hasCursor = ui.view.cellAt(mouse.X, mouse.Y)
	cursor := ui.cursor
	if !ui.hasCursor {
		// Off-map pointer never resolves a label.
		cursor = placement.Coord{X: -1, Y: -1}
	}
	ui.frame = s.Tick(cursor, now)
	return false
}

func (ui *gameUI) layoutView() {
	s := ui.session
	layout := screenLayout(ui.width, ui.height)
	mapW, mapH := s.Bounds(s.Location)
	area := rl.NewRectangle(layout.MapRect.X+10, layout.MapRect.Y+44, layout.MapRect.Width-20, layout.MapRect.Height-54)
	startX, startY, cols, rows := computeViewWindow(mapW, mapH, s.Player.X, s.Player.Y, viewCells)
	geo, _ := computeSquareGridGeometry(area, cols, rows)
	ui.view = mapView{geo: geo, startX: startX, startY: startY}
	ui.canvas.view = ui.view
	ui.canvas.sprites = ui.sprites
}

func (ui *gameUI) draw() {
	layout := screenLayout(ui.width, ui.height)
	s := ui.session
	DrawPanel(layout.MapRect, s.Location, false)
	ui.drawMap()
	ui.drawStatus(layout.SideRect)
	ui.drawLog(layout.LogRect)
}

func (ui *gameUI) drawMap() {
	s := ui.session
	loc := s.CurrentLocation()
	if loc == nil || ui.view.geo.CellSize <= 0 {
		return
	}
	cfg := s.Controller.Config()
	onIsland := loc.Name == cfg.LocationName
	for y := 0; y < ui.view.geo.Rows; y++ {
		for x := 0; x < ui.view.geo.Cols; x++ {
			at := placement.Coord{X: ui.view.startX + x, Y: ui.view.startY + y}
			rl.DrawRectangleRec(ui.view.cellRect(at), ui.tileColor(loc, at, onIsland))
		}
	}
	inset := ui.view.geo.CellSize * 0.18
	for at, tree := range loc.Terrain {
		if !ui.view.visible(at) {
			continue
		}
		r := ui.view.cellRect(at)
		rl.DrawCircle(int32(r.X+r.Width/2), int32(r.Y+r.Height/2), r.Width/2-inset/2, treeColor(tree))
	}
	for at, obj := range loc.Objects {
		if !ui.view.visible(at) {
			continue
		}
		r := ui.view.cellRect(at)
		rl.DrawRectangleRec(rl.NewRectangle(r.X+inset, r.Y+inset, r.Width-2*inset, r.Height-2*inset), itemColor(obj.ItemID))
	}
	for _, f := range loc.Furniture {
		if ui.view.visible(f.Tile) {
			r := ui.view.cellRect(f.Tile)
			rl.DrawRectangleLinesEx(r, 2, colorAccent)
		}
	}

	s.Controller.DrawWorld(loc, &ui.canvas)
	ui.canvas.flush()

	if ui.view.visible(s.Player) {
		r := ui.view.cellRect(s.Player)
		radius := max(2, r.Width*0.35)
		clr := colorPlayer
		if ui.frame.Swimming {
			clr = rl.NewColor(120, 200, 255, 255)
		}
		rl.DrawCircle(int32(r.X+r.Width/2), int32(r.Y+r.Height/2), radius, clr)
	}
	if ui.hasCursor {
		rl.DrawRectangleLinesEx(ui.view.cellRect(ui.cursor), 1.5, colorCursor)
	}
	rl.DrawRectangleLinesEx(ui.view.geo.DrawRect, 1.0, rl.Fade(colorBorder, 0.8))

	if ui.frame.HasLabel {
		mouse := rl.GetMousePosition()
		ui.drawTooltip(ui.frame.Label, int32(mouse.X)+18, int32(mouse.Y)+18)
	}
}

func (ui *gameUI) tileColor(loc *island.Location, at placement.Coord, onIsland bool) rl.Color {
	if !onIsland {
		return colorFloor
	}
	cfg := ui.session.Controller.Config()
	switch {
	case cfg.OnDock(at):
		return colorDock
	case cfg.OnPath(at):
		return colorPath
	default:
		return zoneColor(cfg.ZoneAt(at), loc.WaterColor)
	}
}

func (ui *gameUI) drawTooltip(text string, x, y int32) {
	w := measureText(text, typeScale.Body) + 20
	h := textLineHeight(typeScale.Body) + 12
	rect := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	DrawPanel(rect, "", true)
	drawText(text, x+10, y+6, typeScale.Body, colorText)
}

func (ui *gameUI) drawStatus(rect rl.Rectangle) {
	s := ui.session
	DrawPanel(rect, "Raccoon Island", false)
	x := int32(rect.X + spaceM)
	y := int32(rect.Y + spaceS + float32(typeScale.Header) + 20)
	line := func(label, value string, clr rl.Color) {
		drawText(label, x, y, typeScale.Small, colorDim)
		drawText(value, x+110, y, typeScale.Small, clr)
		y += textLineHeight(typeScale.Small)
	}
	day := s.World.TotalDays
	line("Day", fmt.Sprintf("%d of %s", island.DayOfSeason(day), island.SeasonForDay(day)), colorText)
	line("Tile", fmt.Sprintf("%d, %d", s.Player.X, s.Player.Y), colorText)
	swim := "no"
	if ui.frame.Swimming {
		swim = "yes"
	}
	line("Swimming", swim, colorText)
	if ui.hasCursor {
		line("Cursor", fmt.Sprintf("%d, %d", ui.cursor.X, ui.cursor.Y), colorText)
	}
	if !s.Store.Persistent() {
		line("Saves", "memory only", colorWarn)
	}
	hints := []string{"Arrows/WASD move   E interact", "N next day   Shift+S save", "F7 log position   Esc quit"}
	hy := int32(rect.Y+rect.Height) - int32(len(hints))*textLineHeight(typeScale.Small) - 10
	for _, h := range hints {
		DrawHintText(h, x, hy)
		hy += textLineHeight(typeScale.Small)
	}
}

func (ui *gameUI) drawLog(rect rl.Rectangle) {
	DrawPanel(rect, "Log", false)
	messages := ui.session.Messages()
	maxWidth := int32(rect.Width - spaceM*2)
	lineHeight := textLineHeight(typeScale.Log)
	maxLines := max(4, int((rect.Height-52)/float32(lineHeight)))
	flattened := make([]string, 0, maxLines)
	for i := len(messages) - 1; i >= 0 && len(flattened) < maxLines; i-- {
		lines := wrapText(messages[i], typeScale.Log, maxWidth)
		for j := len(lines) - 1; j >= 0 && len(flattened) < maxLines; j-- {
			flattened = append(flattened, lines[j])
		}
	}
	y := int32(rect.Y+rect.Height) - 16
	for _, line := range flattened {
		if y-lineHeight < int32(rect.Y)+44 {
			break
		}
		drawText(line, int32(rect.X+spaceM), y-lineHeight, typeScale.Log, colorText)
		y -= lineHeight
	}
}
