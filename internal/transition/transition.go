// Package transition implements the fixed-duration fade between phases.
package transition

// Kind identifies which way a transition is heading.
type Kind uint8

const (
	None Kind = iota
	ToAwake
	ToDream
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ToAwake:
		return "to_awake"
	case ToDream:
		return "to_dream"
	default:
		return "none"
	}
}

// DefaultDuration is the fade length in seconds.
const DefaultDuration = 1.0

// Timer tracks one transition at a time.
// Alpha is clamp(elapsed/duration, 0, 1) and only grows while a kind is active.
type Timer struct {
	kind     Kind
	elapsed  float64
	alpha    float64
	duration float64
	next     float64
}

// NewTimer creates an idle timer. Non-positive durations use DefaultDuration.
func NewTimer(duration float64) *Timer {
	if !(duration > 0) {
		duration = DefaultDuration
	}
	return &Timer{duration: duration, next: duration}
}

// SetDuration changes the fade length. A transition in flight keeps its
// length; the new one applies from the next Begin.
func (t *Timer) SetDuration(duration float64) {
	if !(duration > 0) {
		duration = DefaultDuration
	}
	t.next = duration
	if t.kind == None {
		t.duration = duration
	}
}

// Begin starts a transition. It returns false, changing nothing, when one is
// already in flight or kind is None.
func (t *Timer) Begin(kind Kind) bool {
	if kind == None || t.kind != None {
		return false
	}
	t.kind = kind
	t.duration = t.next
	t.elapsed = 0
	t.alpha = 0
	return true
}

// Advance integrates dt. When the transition reaches its duration it ends and
// Advance returns the finished kind; otherwise it returns None.
func (t *Timer) Advance(dt float64) Kind {
	if t.kind == None {
		return None
	}
	if dt > 0 {
		t.elapsed += dt
	}
	t.alpha = min(t.elapsed/t.duration, 1)
	if t.elapsed < t.duration {
		return None
	}

	done := t.kind
	t.kind = None
	t.duration = t.next
	t.elapsed = 0
	t.alpha = 0
	return done
}

// Active reports whether a transition is in flight.
func (t *Timer) Active() bool { return t.kind != None }

// Kind returns the transition in flight, or None.
func (t *Timer) Kind() Kind { return t.kind }

// Alpha returns the fade progress in [0, 1].
func (t *Timer) Alpha() float64 { return t.alpha }

// Elapsed returns seconds since Begin.
func (t *Timer) Elapsed() float64 { return t.elapsed }

// Duration returns the fade length in seconds.
func (t *Timer) Duration() float64 { return t.duration }
