package ui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func testModel(t *testing.T) islandModel {
	t.Helper()
	ctrl := island.NewController(island.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	session, err := island.NewSessionWithWorld(ctrl, island.NewWorldWithID(77))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return newIslandModel(AppConfig{}, session)
}

func press(m islandModel, key string) islandModel {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(islandModel)
}

func TestViewWindowClamps(t *testing.T) {
	startX, startY, cols, rows := viewWindow(80, 80, 40, 66, 61, 25)
	if cols != 61 || rows != 25 || startX != 10 || startY != 54 {
		t.Fatalf("unexpected window %d,%d %dx%d", startX, startY, cols, rows)
	}
	startX, startY, cols, rows = viewWindow(12, 14, 3, 8, 61, 25)
	if startX != 0 || startY != 0 || cols != 12 || rows != 14 {
		t.Fatalf("expected small map to fit, got %d,%d %dx%d", startX, startY, cols, rows)
	}
}

func TestMovementKeysMovePlayer(t *testing.T) {
	m := testModel(t)
	start := m.session.Player
	m = press(m, "up")
	if m.session.Player != (placement.Coord{X: start.X, Y: start.Y - 1}) {
		t.Fatalf("expected player moved up, got %+v", m.session.Player)
	}
	m = press(m, "s")
	if m.session.Player != start {
		t.Fatalf("expected player back at start, got %+v", m.session.Player)
	}
}

func TestCursorDwellShowsTreeLabel(t *testing.T) {
	m := testModel(t)
	tree := island.PlanForest(m.session.Controller.Config())[0]
	m.cursor = tree.Coord
	t0 := time.Unix(100, 0)

	updated, _ := m.Update(frameMsg(t0))
	m = updated.(islandModel)
	updated, _ = m.Update(frameMsg(t0.Add(3100 * time.Millisecond)))
	m = updated.(islandModel)

	want, _ := island.TreeLabel(tree.Category)
	if !m.frame.HasLabel || m.frame.Label != want {
		t.Fatalf("expected label %q, got %+v", want, m.frame)
	}
	if !strings.Contains(m.View(), want) {
		t.Fatalf("expected label in view")
	}
}

func TestNextDayKeyAdvancesWorld(t *testing.T) {
	m := testModel(t)
	m = press(m, "n")
	if m.session.World.TotalDays != 1 {
		t.Fatalf("expected day advanced, got %d", m.session.World.TotalDays)
	}
	if !strings.Contains(m.View(), "day 2 of spring") {
		t.Fatalf("expected status line to show day 2")
	}
}

func TestViewMarksFeatures(t *testing.T) {
	m := testModel(t)
	loc := m.session.CurrentLocation()
	if g, ok := featureGlyph(loc, placement.Coord{X: 40, Y: 72}); !ok || g != 'S' {
		t.Fatalf("expected statue glyph, got %q", g)
	}
	if g, ok := featureGlyph(loc, placement.Coord{X: 51, Y: 37}); !ok || g != 'A' {
		t.Fatalf("expected tent glyph, got %q", g)
	}
}

func TestShiftSSavesAndLowercaseMoves(t *testing.T) {
	m := testModel(t)
	start := m.session.Player
	m = press(m, "S")
	if m.session.Player != start {
		t.Fatalf("expected save key not to move the player")
	}
	msgs := m.session.Messages()
	if got := msgs[len(msgs)-1]; got != "Saved to slot scratch (memory only)." {
		t.Fatalf("expected save message, got %q", got)
	}
	m = press(m, "s")
	if m.session.Player.Y != start.Y+1 {
		t.Fatalf("expected s to move down, got %+v", m.session.Player)
	}
}
