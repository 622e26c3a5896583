package quiz

import (
	"errors"
	"fmt"
)

// ErrNoSelection indicates a submission without any chosen answer.
var ErrNoSelection = errors.New("no answer selected")

// ErrSessionCompleted indicates an operation on a finished session.
var ErrSessionCompleted = errors.New("session is completed")

// InvalidSelectionError reports input that does not map to the question's choices.
type InvalidSelectionError struct {
	Input  string
	Reason string
}

// Error returns a readable message for an invalid selection.
func (err *InvalidSelectionError) Error() string {
	if err.Input == "" {
		return fmt.Sprintf("invalid selection: %s", err.Reason)
	}
	return fmt.Sprintf("invalid selection %q: %s", err.Input, err.Reason)
}

// IndexError reports a question index the session cannot accept.
type IndexError struct {
	Index    int
	Expected int
	Len      int
}

// Error returns a readable message for an index error.
func (err *IndexError) Error() string {
	if err.Index < 0 || err.Index >= err.Len {
		return fmt.Sprintf("question index %d out of range [0, %d)", err.Index, err.Len)
	}
	return fmt.Sprintf("question index %d is not the current question %d", err.Index, err.Expected)
}
