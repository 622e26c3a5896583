package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"quizzer/internal/question"
)

// ParseSelection maps 1-based choice numbers, separated by commas, onto the
// question's choice values. Single-answer questions accept exactly one number.
func ParseSelection(input string, q question.Question) ([]question.Choice, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrNoSelection
	}
	parts := strings.Split(trimmed, ",")
	chosen := make([]question.Choice, 0, len(parts))
	seen := map[int]struct{}{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !isDigits(part) {
			return nil, &InvalidSelectionError{Input: part, Reason: "not a number"}
		}
		number, err := strconv.Atoi(part)
		if err != nil {
			return nil, &InvalidSelectionError{Input: part, Reason: "not a number"}
		}
		if number < 1 || number > len(q.Choices) {
			return nil, &InvalidSelectionError{Input: part, Reason: fmt.Sprintf("choose a number from 1 to %d", len(q.Choices))}
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}
		chosen = append(chosen, q.Choices[number-1])
	}
	if len(chosen) == 0 {
		return nil, ErrNoSelection
	}
	if !q.IsMultiAnswer() && len(chosen) > 1 {
		return nil, &InvalidSelectionError{Input: trimmed, Reason: "choose exactly one answer"}
	}
	return chosen, nil
}

// isDigits reports whether value holds only ASCII digits, so signs are refused.
func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}
