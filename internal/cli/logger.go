package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds a text logger on w at the named level.
func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	var parsed slog.Level
	if verbose {
		parsed = slog.LevelDebug
	} else if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parsed})), nil
}
