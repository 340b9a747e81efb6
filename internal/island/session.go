package island

import (
	"errors"
	"fmt"
	"time"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

const maxSessionMessages = 200

// Host map sizes in tiles, keyed by map path. Locations not listed here use
// the island grid.
var hostMapSizes = map[string]placement.Coord{
	"Maps/Farm":      {X: 80, Y: 65},
	"Maps/Beach":     {X: 104, Y: 50},
	"Maps/FarmHouse": {X: 12, Y: 14},
}

// Session drives one play session for a viewer: the world, the player's
// position and a message log. Viewers translate input into Session calls.
type Session struct {
	World      *World
	Controller *Controller
	Store      *Store
	Slot       string

	Location string
	Player   placement.Coord

	messages []string
}

// NewSession loads slot from store, or starts a fresh world when the slot is
// empty, then attaches the island and starts the day.
func NewSession(ctrl *Controller, store *Store, slot string) (*Session, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("new session: nil controller")
	}
	if store == nil {
		store = NewStore(nil)
	}
	s := &Session{Controller: ctrl, Store: store, Slot: slot}

	w, err := store.LoadWorld(slot)
	switch {
	case errors.Is(err, ErrNoWorld):
		w = NewWorld()
		s.addMessage("Started a new world %s.", w.ID)
	case err != nil:
		return nil, err
	default:
		s.addMessage("Loaded world %s, day %d.", w.ID, w.TotalDays+1)
	}
	return s, s.attach(w)
}

// NewSessionWithWorld starts a session on an existing world without a store
// lookup.
func NewSessionWithWorld(ctrl *Controller, w *World) (*Session, error) {
	s := &Session{Controller: ctrl, Store: NewStore(nil), Slot: "scratch"}
	return s, s.attach(w)
}

func (s *Session) attach(w *World) error {
	if err := s.Controller.Load(w); err != nil {
		return err
	}
	s.World = w
	s.Location, s.Player = s.spawnPoint()
	s.reportDay(s.Controller.StartDay(w))
	return nil
}

// spawnPoint is where the farm warp drops the player on the island.
func (s *Session) spawnPoint() (string, placement.Coord) {
	cfg := s.Controller.Config()
	for _, wc := range cfg.Warps {
		if wc.Target == cfg.LocationName {
			return cfg.LocationName, placement.Coord{X: wc.TargetX, Y: wc.TargetY}
		}
	}
	c := cfg.Center()
	return cfg.LocationName, placement.Coord{X: int(c.CenterX), Y: int(c.CenterY)}
}

func (s *Session) CurrentLocation() *Location {
	loc, _ := s.World.Location(s.Location)
	return loc
}

// Bounds returns the size of a location in tiles.
func (s *Session) Bounds(location string) (int, int) {
	cfg := s.Controller.Config()
	if loc, ok := s.World.Location(location); ok {
		if size, ok := hostMapSizes[loc.MapPath]; ok {
			return size.X, size.Y
		}
	}
	return cfg.Grid.Width, cfg.Grid.Height
}

// PlayerPosition returns the player's position in tile units, measured from
// the tile's top-left corner.
func (s *Session) PlayerPosition() (float64, float64) {
	return float64(s.Player.X), float64(s.Player.Y)
}

// Move steps the player by one tile. Stepping onto a map warp follows it.
func (s *Session) Move(dx, dy int) bool {
	next := placement.Coord{X: s.Player.X + dx, Y: s.Player.Y + dy}
	w, h := s.Bounds(s.Location)
	if next.X < 0 || next.Y < 0 || next.X >= w || next.Y >= h {
		return false
	}
	loc := s.CurrentLocation()
	if loc.Blocked(next) {
		return false
	}
	s.Player = next
	if warp, ok := loc.WarpAt(next); ok {
		s.follow(warp)
	}
	return true
}

// Interact uses whatever is on the player's tile or an adjacent one.
func (s *Session) Interact() bool {
	p := s.Player
	for _, at := range []placement.Coord{p, {X: p.X, Y: p.Y - 1}, {X: p.X, Y: p.Y + 1}, {X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y}} {
		if warp, ok := s.Controller.Interact(s.World, s.Location, at); ok {
			s.follow(warp)
			return true
		}
	}
	return false
}

func (s *Session) follow(w Warp) {
	if _, ok := s.World.Location(w.Target); !ok {
		s.addMessage("Nothing leads to %s.", w.Target)
		return
	}
	s.Location = w.Target
	s.Player = placement.Coord{X: w.TargetX, Y: w.TargetY}
	s.addMessage("Entered %s.", w.Target)
}

// Tick advances the per-frame island logic for the cursor cell.
func (s *Session) Tick(cursor placement.Coord, now time.Time) FrameResult {
	px, py := s.PlayerPosition()
	res := s.Controller.Tick(s.World, Frame{
		Location: s.Location,
		PlayerX:  px,
		PlayerY:  py,
		Cursor:   cursor,
		Now:      now,
	})
	switch res.Swim {
	case SwimStart:
		s.addMessage("You start swimming.")
	case SwimStop:
		s.addMessage("You are back on your feet.")
	}
	return res
}

func (s *Session) NextDay() {
	s.reportDay(s.Controller.AdvanceDay(s.World))
}

func (s *Session) reportDay(report DayReport, ok bool) {
	if !ok {
		return
	}
	s.addMessage("Day %d of %s: %d/%d beach and %d/%d town forageables.",
		DayOfSeason(report.Day), SeasonForDay(report.Day),
		len(report.Beach.Placements), report.Beach.Requested,
		len(report.Town.Placements), report.Town.Requested)
}

func (s *Session) Save() error {
	if err := s.Store.SaveWorld(s.Slot, s.World); err != nil {
		s.addMessage("Save failed: %v", err)
		return err
	}
	if s.Store.Persistent() {
		s.addMessage("Saved to slot %s.", s.Slot)
	} else {
		s.addMessage("Saved to slot %s (memory only).", s.Slot)
	}
	return nil
}

func (s *Session) ReportPosition() {
	s.addMessage("%s", s.Controller.ReportPosition(s.Location, s.Player))
}

func (s *Session) Close() {
	s.Controller.Unload()
}

func (s *Session) Messages() []string {
	return s.messages
}

func (s *Session) addMessage(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
	if n := len(s.messages); n > maxSessionMessages {
		s.messages = append(s.messages[:0], s.messages[n-maxSessionMessages:]...)
	}
}
