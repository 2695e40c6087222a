package interaction

import "testing"

func TestHoldFiresOnThreshold(t *testing.T) {
	h := NewHold(2)
	for i := 1; i <= 4; i++ {
		fired := h.Update(true, 0.5)
		if i < 4 && fired {
			t.Fatalf("fired early on tick %d", i)
		}
		if i == 4 && !fired {
			t.Fatal("did not fire on the 4th tick")
		}
	}
	if h.Progress() != 0 {
		t.Errorf("Progress() after firing = %g, expected 0", h.Progress())
	}
}

func TestHoldReleaseRestarts(t *testing.T) {
	h := NewHold(2)
	for i := 0; i < 19; i++ {
		if h.Update(true, 0.1) {
			t.Fatal("fired before 2s")
		}
	}
	if h.Update(false, 0.1) {
		t.Fatal("release fired")
	}
	if h.Progress() != 0 {
		t.Fatalf("Progress() after release = %g, expected 0", h.Progress())
	}

	// Re-holding needs the full threshold again.
	for i := 1; i <= 4; i++ {
		if fired := h.Update(true, 0.5); fired != (i == 4) {
			t.Fatalf("tick %d after release: fired = %v", i, fired)
		}
	}
}

func TestHoldFiresOnce(t *testing.T) {
	h := NewHold(2)
	fires := 0
	for i := 0; i < 7; i++ {
		if h.Update(true, 0.5) {
			fires++
		}
	}
	// 3.5s of holding: fires at 2.0, then accumulates 1.5 toward the next.
	if fires != 1 {
		t.Errorf("fired %d times, expected 1", fires)
	}
	if got := h.Fraction(); got != 0.75 {
		t.Errorf("Fraction() = %g, expected 0.75", got)
	}
}

func TestHoldFiresOnExactFrameAtSixtyFPS(t *testing.T) {
	h := NewHold(2)
	for i := 1; i <= 120; i++ {
		fired := h.Update(true, 1.0/60)
		if i < 120 && fired {
			t.Fatalf("fired early on tick %d", i)
		}
		if i == 120 && !fired {
			t.Fatal("did not fire on tick 120")
		}
	}
}
