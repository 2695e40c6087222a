package core

// Action represents a semantic input, abstracted from physical key presses.
// Key codes never reach the simulation; the platform resolves them to actions.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W - walk up
	ActionDown             // S - walk down
	ActionLeft             // A - walk left
	ActionRight            // D - walk right
	ActionInteract         // Z - talk, use the bed, hold to wake
	ActionInventory        // I - toggle the inventory
	ActionConfirm          // Enter - confirm menu/dialogue, start dreaming
	ActionMenuUp           // Up arrow - menu and dialogue cursor
	ActionMenuDown         // Down arrow - menu and dialogue cursor
	ActionCancel           // Esc - leave settings/credits
)

// Actions lists every action the simulation understands, in a stable order.
var Actions = []Action{
	ActionUp,
	ActionDown,
	ActionLeft,
	ActionRight,
	ActionInteract,
	ActionInventory,
	ActionConfirm,
	ActionMenuUp,
	ActionMenuDown,
	ActionCancel,
}

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionInteract:  "interact",
	ActionInventory: "inventory",
	ActionConfirm:   "confirm",
	ActionMenuUp:    "menu_up",
	ActionMenuDown:  "menu_down",
	ActionCancel:    "cancel",
}

// String returns the action's configuration name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a configuration name to an action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame represents the input state during one simulation frame.
// Held reports continuous key state; Pressed is the edge, true only on the
// frame the action went from released to pressed.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press marks an action as just pressed. A pressed action is also held.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without an edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Held returns true while the action's key is down.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action was pressed this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.held)
	clear(f.pressed)
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}

// Rand is the random source threaded through maze carving, theme selection
// and particle spawning. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}
