package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionInteract)

	if !f.Pressed(ActionInteract) || !f.Held(ActionInteract) {
		t.Error("pressed action should be both pressed and held")
	}

	f.Hold(ActionUp)
	if f.Pressed(ActionUp) {
		t.Error("held action should not report an edge")
	}
	if !f.Held(ActionUp) {
		t.Error("held action should be held")
	}

	f.Clear()
	if f.Held(ActionInteract) || f.Pressed(ActionInteract) {
		t.Error("Clear should reset all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Held(ActionUp) || f.Pressed(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionUp)
	if !f.Pressed(ActionUp) {
		t.Error("zero frame should accept presses")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("unknown action name should not parse")
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("none is not a bindable action")
	}
}
