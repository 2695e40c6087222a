package session

import (
	"github.com/vovakirdan/witherdream/internal/dialogue"
	"github.com/vovakirdan/witherdream/internal/transition"
)

// Event is a side effect reported by Advance.
type Event interface {
	event()
}

// PhaseChanged reports a phase switch.
type PhaseChanged struct {
	From, To Phase
}

// TransitionStarted reports the start of a fade.
type TransitionStarted struct {
	Kind transition.Kind
}

// ItemCollected reports a pickup.
type ItemCollected struct {
	Name string
}

// DialogueOpened reports a new conversation.
type DialogueOpened struct {
	Speaker string
}

// DialogueClosed reports a confirmed conversation and the action it produced.
type DialogueClosed struct {
	Action dialogue.Action
}

// DreamEnded reports a dream that finished fading back to the waking room.
type DreamEnded struct {
	Record DreamRecord
}

// DreamRecord summarizes one dream.
type DreamRecord struct {
	Theme      string
	MazeWidth  int
	MazeHeight int
	Items      []string // Collected during this dream, in order
	Duration   float64  // Seconds spent in the Dreaming phase
}

func (PhaseChanged) event()      {}
func (TransitionStarted) event() {}
func (ItemCollected) event()     {}
func (DialogueOpened) event()    {}
func (DialogueClosed) event()    {}
func (DreamEnded) event()        {}

// StepResult is the outcome of one Advance call.
type StepResult struct {
	Phase  Phase
	Events []Event
}

func (r *StepResult) emit(e Event) {
	r.Events = append(r.Events, e)
}
