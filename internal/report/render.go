package report

import (
	"fmt"
	"io"
	"strings"
)

// RenderText writes the one-line score summary.
func RenderText(w io.Writer, summary Summary) error {
	_, err := fmt.Fprintf(w, "You answered %d/%d correctly (%s).\n", summary.Score, summary.Total, FormatPercentage(summary.Percentage))
	return err
}

// RenderBreakdown writes one line per question with its result.
func RenderBreakdown(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%3d. %-9s %s\n", entry.Index+1, entryStatus(entry), formatPrompt(entry.Prompt)); err != nil {
			return err
		}
		if entry.Answered && !entry.Correct {
			if _, err := fmt.Fprintf(w, "     chosen: %s | correct: %s\n", strings.Join(entry.Chosen, ", "), strings.Join(entry.CorrectAnswers, ", ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func entryStatus(entry Entry) string {
	switch {
	case !entry.Answered:
		return "skipped"
	case entry.Correct:
		return "correct"
	default:
		return "incorrect"
	}
}

// formatPrompt collapses whitespace and truncates long prompts.
func formatPrompt(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 70
	if len([]rune(normalized)) <= limit {
		return normalized
	}
	return string([]rune(normalized)[:limit-3]) + "..."
}
