package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the navigable form.
type uiModeDecision struct {
	useForm bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to show the form or the plain prompt loop.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return uiModeDecision{useForm: isTerminal(stdout)}, nil
	case "form":
		if isTerminal(stdout) {
			return uiModeDecision{useForm: true}, nil
		}
		return uiModeDecision{
			useForm: false,
			warning: "Form UI requested but stdout is not a TTY; falling back to plain prompts.",
		}, nil
	case "plain":
		return uiModeDecision{useForm: false}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|form|plain)", mode)
	}
}

// resolveNoColor disables styling for flags, NO_COLOR, and non-TTY output.
func resolveNoColor(flagged bool, stdout io.Writer) bool {
	if flagged {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !isTerminal(stdout)
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
