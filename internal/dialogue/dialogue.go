// Package dialogue runs the single on-screen conversation.
package dialogue

// Action is what confirming a dialogue asks the caller to do.
type Action uint8

const (
	ActionDismiss Action = iota
	ActionCommitSleep
	ActionCancel
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionCommitSleep:
		return "commit_sleep"
	case ActionCancel:
		return "cancel"
	default:
		return "dismiss"
	}
}

// Choice is one selectable answer.
type Choice struct {
	Label  string
	Action Action
}

// View is a read-only copy of the active dialogue.
type View struct {
	Speaker  string
	Text     string
	Choices  []Choice
	Selected int
}

// Dialogue holds at most one active conversation.
// Selected stays in [0, max(1, len(choices))).
type Dialogue struct {
	active   bool
	speaker  string
	text     string
	choices  []Choice
	selected int
}

// New creates an inactive dialogue.
func New() *Dialogue {
	return &Dialogue{}
}

// Open replaces whatever is showing with a new conversation.
func (d *Dialogue) Open(speaker, text string, choices ...Choice) {
	d.active = true
	d.speaker = speaker
	d.text = text
	d.choices = append([]Choice(nil), choices...)
	d.selected = 0
}

// Active reports whether a conversation is showing.
func (d *Dialogue) Active() bool {
	return d.active
}

// Navigate moves the selection by delta, clamped to the choice list.
func (d *Dialogue) Navigate(delta int) {
	if !d.active || len(d.choices) == 0 {
		return
	}
	d.selected = max(0, min(d.selected+delta, len(d.choices)-1))
}

// Confirm closes the conversation and returns the selected choice's action,
// or ActionDismiss when there are no choices. ok is false when nothing was
// showing.
func (d *Dialogue) Confirm() (Action, bool) {
	if !d.active {
		return ActionDismiss, false
	}
	action := ActionDismiss
	if len(d.choices) > 0 {
		action = d.choices[d.selected].Action
	}
	d.Close()
	return action, true
}

// Close hides the conversation without producing an action.
func (d *Dialogue) Close() {
	*d = Dialogue{}
}

// Selected returns the highlighted choice index.
func (d *Dialogue) Selected() int {
	return d.selected
}

// View returns a copy of the active conversation. ok is false when inactive.
func (d *Dialogue) View() (View, bool) {
	if !d.active {
		return View{}, false
	}
	return View{
		Speaker:  d.speaker,
		Text:     d.text,
		Choices:  append([]Choice(nil), d.choices...),
		Selected: d.selected,
	}, true
}
