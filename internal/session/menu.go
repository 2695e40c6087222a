package session

import "github.com/vovakirdan/witherdream/internal/core"

// MenuOption is an entry of the start menu.
type MenuOption int

const (
	MenuStart MenuOption = iota
	MenuSettings
	MenuCredits
	menuCount
)

var menuLabels = [menuCount]string{"Start", "Settings", "Credits"}

// String returns the menu label.
func (o MenuOption) String() string {
	if o < 0 || o >= menuCount {
		return "?"
	}
	return menuLabels[o]
}

// MenuLabels returns the start menu entries in display order.
func MenuLabels() []string {
	return menuLabels[:]
}

// updateStartMenu moves the wrapping cursor and enters the selected phase.
func (s *Session) updateStartMenu(in core.InputFrame, res *StepResult) {
	if in.Pressed(core.ActionMenuUp) {
		s.menu = (s.menu + menuCount - 1) % menuCount
	}
	if in.Pressed(core.ActionMenuDown) {
		s.menu = (s.menu + 1) % menuCount
	}
	if !in.Pressed(core.ActionConfirm) {
		return
	}

	switch s.menu {
	case MenuStart:
		s.setPhase(PhaseAwake, res)
	case MenuSettings:
		s.setPhase(PhaseSettings, res)
	case MenuCredits:
		s.setPhase(PhaseCredits, res)
	}
}

// updateSubMenu returns to the start menu on cancel.
func (s *Session) updateSubMenu(in core.InputFrame, res *StepResult) {
	if in.Pressed(core.ActionCancel) {
		s.setPhase(PhaseStartMenu, res)
	}
}
