package cli

import (
	"io"
	"strings"
	"testing"

	"quizzer/internal/testutil"
)

// withStdin replaces interactive input for the duration of a test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	original := stdinInput
	stdinInput = strings.NewReader(input)
	t.Cleanup(func() { stdinInput = original })
}

// withTerminal forces the TTY check result.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// writeConfig writes a .quizzer.yml and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	return testutil.WriteFile(t, ".quizzer.yml", body)
}

const plainConfig = "version: 1\nshuffle: never\nui: plain\nno_color: true\n"
