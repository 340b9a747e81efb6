package island

import (
	"testing"
	"time"

	"github.com/appengine-ltd/raccoon-island/internal/placement"
)

func oakLookup(placement.Coord) (string, bool) {
	return "Oak Tree", true
}

func TestHoverTimerBelowDwellYieldsNothing(t *testing.T) {
	h := NewHoverTimer(3 * time.Second)
	t0 := time.Unix(1000, 0)
	cell := placement.Coord{X: 30, Y: 20}

	if _, ok := h.Observe(cell, t0, oakLookup); ok {
		t.Fatalf("expected first observation to start hovering")
	}
	if _, ok := h.Observe(cell, t0.Add(2900*time.Millisecond), oakLookup); ok {
		t.Fatalf("expected no label at 2.9s")
	}
	if h.State() != HoverHovering {
		t.Fatalf("expected hovering state, got %d", h.State())
	}
}

func TestHoverTimerResolvesAfterDwell(t *testing.T) {
	h := NewHoverTimer(3 * time.Second)
	t0 := time.Unix(1000, 0)
	cell := placement.Coord{X: 30, Y: 20}

	h.Observe(cell, t0, oakLookup)
	label, ok := h.Observe(cell, t0.Add(3100*time.Millisecond), oakLookup)
	if !ok || label != "Oak Tree" {
		t.Fatalf("expected Oak Tree at 3.1s, got %q ok=%v", label, ok)
	}
	calls := 0
	counting := func(c placement.Coord) (string, bool) {
		calls++
		return oakLookup(c)
	}
	if label, ok := h.Observe(cell, t0.Add(5*time.Second), counting); !ok || label != "Oak Tree" {
		t.Fatalf("expected resolved label to stick, got %q", label)
	}
	if calls != 0 {
		t.Fatalf("expected resolved state to skip lookup, got %d calls", calls)
	}
}

func TestHoverTimerCellChangeResetsDwell(t *testing.T) {
	h := NewHoverTimer(3 * time.Second)
	t0 := time.Unix(1000, 0)
	a := placement.Coord{X: 30, Y: 20}
	b := placement.Coord{X: 31, Y: 20}

	h.Observe(a, t0, oakLookup)
	h.Observe(b, t0.Add(2*time.Second), oakLookup)
	if _, ok := h.Observe(b, t0.Add(4*time.Second), oakLookup); ok {
		t.Fatalf("expected dwell to restart on cell change")
	}
	if _, ok := h.Observe(b, t0.Add(5*time.Second), oakLookup); !ok {
		t.Fatalf("expected label after continuous dwell on new cell")
	}
	if _, ok := h.Observe(a, t0.Add(9*time.Second), oakLookup); ok {
		t.Fatalf("expected label cleared when moving back")
	}
}

func TestHoverTimerFailedLookupKeepsHovering(t *testing.T) {
	h := NewHoverTimer(3 * time.Second)
	t0 := time.Unix(1000, 0)
	cell := placement.Coord{X: 1, Y: 1}
	miss := func(placement.Coord) (string, bool) { return "", false }

	h.Observe(cell, t0, miss)
	for i := 4; i < 10; i++ {
		if _, ok := h.Observe(cell, t0.Add(time.Duration(i)*time.Second), miss); ok {
			t.Fatalf("expected no label from failed lookup")
		}
	}
	if h.State() != HoverHovering {
		t.Fatalf("expected hovering after failed lookups, got %d", h.State())
	}
	if _, ok := h.Observe(cell, t0.Add(11*time.Second), oakLookup); !ok {
		t.Fatalf("expected retry to resolve once lookup succeeds")
	}
}

func TestHoverTimerReset(t *testing.T) {
	h := NewHoverTimer(0)
	if h.Dwell != DefaultHoverDwell {
		t.Fatalf("expected default dwell, got %s", h.Dwell)
	}
	t0 := time.Unix(1000, 0)
	cell := placement.Coord{X: 2, Y: 2}
	h.Observe(cell, t0, oakLookup)
	h.Observe(cell, t0.Add(4*time.Second), oakLookup)
	h.Reset()
	if h.State() != HoverIdle {
		t.Fatalf("expected idle after reset")
	}
	if _, ok := h.Label(); ok {
		t.Fatalf("expected no label after reset")
	}
	if _, ok := h.Observe(cell, t0.Add(5*time.Second), oakLookup); ok {
		t.Fatalf("expected reset to require a fresh dwell")
	}
}
