package interaction

// holdEpsilon absorbs rounding in summed frame deltas, so 120 ticks of 1/60s
// reach a 2s threshold.
const holdEpsilon = 1e-9

// Hold accumulates how long a key has been held and fires once when the
// threshold is reached.
type Hold struct {
	progress  float64
	threshold float64
}

// NewHold creates an accumulator that fires after threshold seconds.
func NewHold(threshold float64) *Hold {
	return &Hold{threshold: threshold}
}

// Update adds dt while held and reports whether the threshold was reached on
// this call. Firing and releasing both reset progress to zero.
func (h *Hold) Update(held bool, dt float64) bool {
	if !held {
		h.progress = 0
		return false
	}
	if dt > 0 {
		h.progress += dt
	}
	if h.progress >= h.threshold-holdEpsilon {
		h.progress = 0
		return true
	}
	return false
}

// Reset clears accumulated time.
func (h *Hold) Reset() {
	h.progress = 0
}

// Progress returns the seconds held so far.
func (h *Hold) Progress() float64 {
	return h.progress
}

// Fraction returns progress toward the threshold in [0, 1].
func (h *Hold) Fraction() float64 {
	if h.threshold <= 0 {
		return 0
	}
	return min(h.progress/h.threshold, 1)
}
