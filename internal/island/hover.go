package island

import (
	"time"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

type HoverState uint8

const (
	HoverIdle HoverState = iota
	HoverHovering
	HoverResolved
)

// DefaultHoverDwell is how long the pointer must rest on one cell before a
// label is looked up.
const DefaultHoverDwell = 3 * time.Second

// HoverLookup resolves the label of whatever occupies a cell.
type HoverLookup func(cell placement.Coord) (string, bool)

// HoverTimer tracks the cell under the pointer across frames.
type HoverTimer struct {
	Dwell time.Duration

	state HoverState
	cell  placement.Coord
	start time.Time
	label string
}

func NewHoverTimer(dwell time.Duration) *HoverTimer {
	if dwell <= 0 {
		dwell = DefaultHoverDwell
	}
	return &HoverTimer{Dwell: dwell}
}

func (h *HoverTimer) State() HoverState {
	return h.state
}

func (h *HoverTimer) Cell() placement.Coord {
	return h.cell
}

// Label returns the resolved label, if any.
func (h *HoverTimer) Label() (string, bool) {
	if h.state != HoverResolved {
		return "", false
	}
	return h.label, true
}

// Observe feeds the cell under the pointer at time now. A cell change
// restarts the dwell. Once the dwell has elapsed the lookup runs every frame
// until it succeeds; a resolved label sticks until the cell changes.
func (h *HoverTimer) Observe(cell placement.Coord, now time.Time, lookup HoverLookup) (string, bool) {
	if h.state == HoverIdle || cell != h.cell {
		h.state = HoverHovering
		h.cell = cell
		h.start = now
		h.label = ""
		return "", false
	}
	if h.state == HoverResolved {
		return h.label, true
	}
	if now.Sub(h.start) < h.Dwell || lookup == nil {
		return "", false
	}
	label, ok := lookup(cell)
	if !ok {
		return "", false
	}
	h.state = HoverResolved
	h.label = label
	return label, true
}

func (h *HoverTimer) Reset() {
	h.state = HoverIdle
	h.cell = placement.Coord{}
	h.start = time.Time{}
	h.label = ""
}
