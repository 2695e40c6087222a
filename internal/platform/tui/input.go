package tui

import (
	"time"

	"github.com/vovakirdan/witherdream/internal/core"
)

// HoldTracker derives held keys from a terminal that only reports presses.
// Auto-repeat keeps an action held while presses arrive within the grace
// window; a press after a quiet gap is a new edge.
type HoldTracker struct {
	grace   time.Duration
	last    map[core.Action]time.Time
	pending map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given grace window.
func NewHoldTracker(grace time.Duration) *HoldTracker {
	return &HoldTracker{
		grace:   grace,
		last:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// SetGrace changes the grace window.
func (h *HoldTracker) SetGrace(grace time.Duration) {
	h.grace = grace
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if prev, ok := h.last[a]; !ok || now.Sub(prev) > h.grace {
		h.pending[a] = true
	}
	h.last[a] = now
}

// Frame returns the input for a simulation frame at now and consumes the
// pending edges.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) <= h.grace {
			in.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
	for a := range h.pending {
		in.Press(a)
	}
	clear(h.pending)
	return in
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.last)
	clear(h.pending)
}
