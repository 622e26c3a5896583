package quiz

import "fmt"

// StateKind identifies the session state machine state.
type StateKind int

const (
	// AwaitingAnswer waits for a submission on the current question.
	AwaitingAnswer StateKind = iota
	// Completed is terminal; no further submissions are accepted.
	Completed
)

// String returns a label for the state kind.
func (k StateKind) String() string {
	switch k {
	case AwaitingAnswer:
		return "awaiting_answer"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(k))
	}
}

// State is a snapshot of the state machine. Index is meaningful while awaiting.
type State struct {
	Kind  StateKind
	Index int
}

// Mode selects how the session moves between questions.
type Mode int

const (
	// Sequential grades each question once, in order, and completes after the last.
	Sequential Mode = iota
	// Navigable lets the front end move freely and finalize explicitly.
	Navigable
)

// String returns a label for the mode.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Navigable:
		return "navigable"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
