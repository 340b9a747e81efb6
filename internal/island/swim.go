package island

type SwimEvent uint8

const (
	SwimNone SwimEvent = iota
	SwimStart
	SwimStop
)

func (e SwimEvent) String() string {
	switch e {
	case SwimStart:
		return "start"
	case SwimStop:
		return "stop"
	default:
		return "none"
	}
}

// SwimTracker toggles the player's swimming flag as they cross the shoreline.
type SwimTracker struct {
	cfg      Config
	swimming bool
}

func NewSwimTracker(cfg Config) *SwimTracker {
	return &SwimTracker{cfg: cfg}
}

func (s *SwimTracker) Swimming() bool {
	return s.swimming
}

// ShouldSwim reports whether a player at fractional tile position (px, py)
// is in open water.
func (s *SwimTracker) ShouldSwim(px, py float64) bool {
	if s.cfg.DistanceFromCenter(px, py) <= s.cfg.SwimStart {
		return false
	}
	return !s.cfg.Dock.Contains(tileOf(px, py))
}

// Update returns the transition caused by the player's current position.
// Leaving the island always stops swimming.
func (s *SwimTracker) Update(onIsland bool, px, py float64) SwimEvent {
	want := onIsland && s.ShouldSwim(px, py)
	switch {
	case want && !s.swimming:
		s.swimming = true
		return SwimStart
	case !want && s.swimming:
		s.swimming = false
		return SwimStop
	default:
		return SwimNone
	}
}

func (s *SwimTracker) Reset() {
	s.swimming = false
}
