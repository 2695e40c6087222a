package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/witherdream/internal/core"
)

// actionHelp is the help text shown for each action.
var actionHelp = map[core.Action]string{
	core.ActionUp:        "up",
	core.ActionDown:      "down",
	core.ActionLeft:      "left",
	core.ActionRight:     "right",
	core.ActionInteract:  "interact / hold to wake",
	core.ActionInventory: "inventory",
	core.ActionConfirm:   "confirm",
	core.ActionMenuUp:    "menu up",
	core.ActionMenuDown:  "menu down",
	core.ActionCancel:    "back",
}

// KeyMap translates Bubble Tea key messages into actions.
// Bindings come from the configuration; quit is fixed.
type KeyMap struct {
	bindings map[core.Action]key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from an action -> key names table.
func NewKeyMap(table map[core.Action][]string) KeyMap {
	km := KeyMap{
		bindings: make(map[core.Action]key.Binding, len(table)),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	for _, a := range core.Actions {
		keys := table[a]
		if len(keys) == 0 {
			continue
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), actionHelp[a]),
		)
	}
	return km
}

// helpKeys joins key names for display, naming the space bar.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// Lookup returns the action bound to msg. Quit is reported separately so it
// works in every phase.
func (km KeyMap) Lookup(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.Quit) {
		return core.ActionNone, true
	}
	for _, a := range core.Actions {
		if b, ok := km.bindings[a]; ok && key.Matches(msg, b) {
			return a, false
		}
	}
	return core.ActionNone, false
}

// Binding returns the binding for an action.
func (km KeyMap) Binding(a core.Action) (key.Binding, bool) {
	b, ok := km.bindings[a]
	return b, ok
}

// KeyName returns the first key bound to an action, for prompts.
func (km KeyMap) KeyName(a core.Action) string {
	b, ok := km.bindings[a]
	if !ok || len(b.Keys()) == 0 {
		return "?"
	}
	return helpKeys(b.Keys()[:1])
}

func (km KeyMap) pick(actions ...core.Action) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if b, ok := km.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return append(km.pick(core.ActionInteract, core.ActionInventory, core.ActionConfirm), km.Quit)
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.pick(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight),
		km.pick(core.ActionInteract, core.ActionInventory),
		append(km.pick(core.ActionConfirm, core.ActionMenuUp, core.ActionMenuDown, core.ActionCancel), km.Quit),
	}
}
