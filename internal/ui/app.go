package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const (
	frameInterval = 100 * time.Millisecond
	viewCols      = 61
	viewRows      = 25
	logLines      = 6
)

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

func (a *App) Run() error {
	ctrl := island.NewController(a.cfg.Island, a.cfg.Logger)
	session, err := island.NewSession(ctrl, a.cfg.Store, a.cfg.Slot)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.Close()

	p := tea.NewProgram(newIslandModel(a.cfg, session), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("30"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("58")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	swimStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

	zoneStyles = map[island.Zone]lipgloss.Style{
		island.ZoneTown:   lipgloss.NewStyle().Foreground(lipgloss.Color("107")),
		island.ZoneForest: lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
		island.ZoneBeach:  lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
		island.ZoneWater:  lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	}
)

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type islandModel struct {
	cfg     AppConfig
	session *island.Session

	// The keyboard cursor stands in for the mouse pointer.
	cursor placement.Coord
	frame  island.FrameResult
}

func newIslandModel(cfg AppConfig, session *island.Session) islandModel {
	return islandModel{cfg: cfg, session: session, cursor: session.Player}
}

func (m islandModel) Init() tea.Cmd {
	return frameTick()
}

func (m islandModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case frameMsg:
		m.frame = m.session.Tick(m.cursor, time.Time(msg))
		return m, frameTick()
	}
	return m, nil
}

func (m islandModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	before := s.Location
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "w":
		s.Move(0, -1)
	case "down", "s":
		s.Move(0, 1)
	case "left", "a":
		s.Move(-1, 0)
	case "right", "d":
		s.Move(1, 0)
	case "i":
		m.cursor.Y--
	case "k":
		m.cursor.Y++
	case "j":
		m.cursor.X--
	case "l":
		m.cursor.X++
	case "c":
		m.cursor = s.Player
	case "e":
		s.Interact()
	case "n":
		s.NextDay()
	case "S":
		_ = s.Save()
	case "f7":
		s.ReportPosition()
	}
	if s.Location != before {
		m.cursor = s.Player
	}
	return m, nil
}

func (m islandModel) View() string {
	var b strings.Builder
	s := m.session
	day := s.World.TotalDays
	b.WriteString(titleStyle.Render("RACCOON ISLAND"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  |  day %d of %s  |  tile %d,%d",
		s.Location, island.DayOfSeason(day), island.SeasonForDay(day), s.Player.X, s.Player.Y)))
	if m.frame.Swimming {
		b.WriteString("  " + swimStyle.Render("swimming"))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(strings.Repeat("-", viewCols)) + "\n")
	b.WriteString(m.mapText())
	b.WriteString(borderStyle.Render(strings.Repeat("-", viewCols)) + "\n")
	if m.frame.HasLabel {
		b.WriteString(labelStyle.Render(m.frame.Label) + "\n")
	} else {
		b.WriteString("\n")
	}
	msgs := s.Messages()
	for _, line := range msgs[max(0, len(msgs)-logLines):] {
		b.WriteString(dimStyle.Render(line) + "\n")
	}
	b.WriteString(dimStyle.Render("arrows/wasd move  ijkl cursor  e interact  n next day  S save  f7 position  q quit"))
	return b.String()
}

func (m islandModel) mapText() string {
	s := m.session
	loc := s.CurrentLocation()
	mapW, mapH := s.Bounds(s.Location)
	startX, startY, cols, rows := viewWindow(mapW, mapH, s.Player.X, s.Player.Y, viewCols, viewRows)
	var b strings.Builder
	for y := startY; y < startY+rows; y++ {
		for x := startX; x < startX+cols; x++ {
			at := placement.Coord{X: x, Y: y}
			glyph, style := m.cell(loc, at)
			switch {
			case at == s.Player:
				style = playerStyle
				if m.frame.Swimming {
					style = swimStyle
				}
				glyph = '@'
			case at == m.cursor:
				style = cursorStyle
			}
			b.WriteString(style.Render(string(glyph)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m islandModel) cell(loc *island.Location, at placement.Coord) (rune, lipgloss.Style) {
	cfg := m.session.Controller.Config()
	plain := lipgloss.NewStyle()
	if g, ok := featureGlyph(loc, at); ok {
		return g, titleStyle
	}
	if tree, ok := loc.Terrain[at]; ok {
		if tree.Fruit {
			return 'F', zoneStyles[island.ZoneForest]
		}
		return 'T', zoneStyles[island.ZoneForest]
	}
	if _, ok := loc.Objects[at]; ok {
		return '*', labelStyle.UnsetBackground().UnsetPadding()
	}
	for _, f := range loc.Furniture {
		if f.Tile == at {
			return 'h', plain
		}
	}
	if _, ok := loc.WarpAt(at); ok {
		return '>', titleStyle
	}
	if loc.Name != cfg.LocationName {
		return '.', dimStyle
	}
	switch {
	case cfg.OnDock(at):
		return '#', plain
	case cfg.OnPath(at):
		return '=', plain
	}
	z := cfg.ZoneAt(at)
	return zoneGlyph(z), zoneStyles[z]
}

func zoneGlyph(z island.Zone) rune {
	switch z {
	case island.ZoneTown:
		return '"'
	case island.ZoneForest:
		return ','
	case island.ZoneBeach:
		return '.'
	default:
		return '~'
	}
}

// featureGlyph marks the anchor tile of a map feature.
func featureGlyph(loc *island.Location, at placement.Coord) (rune, bool) {
	for _, f := range loc.Features {
		if f.Tile() != at {
			continue
		}
		switch f.Kind() {
		case island.FeatureStatue:
			return 'S', true
		case island.FeatureTent:
			return 'A', true
		case island.FeatureMineEntrance:
			return 'O', true
		case island.FeatureRaccoonGod:
			return 'G', true
		}
	}
	return 0, false
}

// viewWindow centers a cols x rows window on the player, clamped to the map.
func viewWindow(mapW, mapH, playerX, playerY, wantCols, wantRows int) (startX, startY, cols, rows int) {
	if mapW <= 0 || mapH <= 0 {
		return 0, 0, 0, 0
	}
	cols = min(mapW, wantCols)
	rows = min(mapH, wantRows)
	startX = min(max(playerX-cols/2, 0), mapW-cols)
	startY = min(max(playerY-rows/2, 0), mapH-rows)
	return startX, startY, cols, rows
}
