package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/question"
	"quizzer/internal/report"
	"quizzer/internal/ui/style"
)

// renderProgress renders the question counter and running score.
func renderProgress(index, total, score int, shuffled, noColor bool) string {
	line := fmt.Sprintf("Question: %d / %d | Score: %d", index+1, total, score)
	if shuffled {
		line += " | Shuffled"
	}
	return style.Stylize(line, noColor, style.Accent)
}

// renderHeading renders the question kind and answer mode.
func renderHeading(q question.Question, answered, noColor bool) string {
	mode := "Choose one"
	if q.IsMultiAnswer() {
		mode = "Choose all that apply"
	}
	parts := make([]string, 0, 3)
	if q.Kind != "" {
		parts = append(parts, q.Kind)
	}
	parts = append(parts, mode)
	if answered {
		parts = append(parts, "answered")
	}
	return style.Stylize(strings.Join(parts, " | "), noColor, style.Muted)
}

// renderChoices renders radio buttons or checkboxes with a cursor.
func renderChoices(q question.Question, cursor int, selected map[int]bool, noColor bool) string {
	lines := make([]string, 0, len(q.Choices))
	for i, choice := range q.Choices {
		pointer := "  "
		if i == cursor {
			pointer = "> "
		}
		mark := " "
		if selected[i] {
			mark = "x"
			if !q.IsMultiAnswer() {
				mark = "•"
			}
		}
		box := "[" + mark + "]"
		if !q.IsMultiAnswer() {
			box = "(" + mark + ")"
		}
		line := pointer + box + " " + string(choice)
		if i == cursor {
			line = style.Stylize(line, noColor, style.Cursor)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderImage renders the attachment line or its warning.
func renderImage(image, imageErr string, noColor bool) string {
	if imageErr != "" {
		return style.Stylize("Image unavailable: "+imageErr, noColor, style.Warning)
	}
	if image != "" {
		return style.Stylize("Image: "+image, noColor, style.Faint)
	}
	return ""
}

// renderFeedback renders the grading or warning message.
func renderFeedback(text string, kind feedbackKind, noColor bool) string {
	color := style.Faint
	switch kind {
	case feedbackCorrect:
		color = style.Success
	case feedbackIncorrect:
		color = style.Failure
	case feedbackWarning:
		color = style.Warning
	case feedbackInfo:
		color = style.Info
	}
	return style.Stylize(text, noColor, color)
}

// renderBanner renders the score shown once the last question is graded.
func renderBanner(summary report.Summary, noColor bool) string {
	text := fmt.Sprintf("Score: %d/%d (%s). Press f to finish.", summary.Score, summary.Total, report.FormatPercentage(summary.Percentage))
	if noColor {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Success).
		Padding(0, 1).
		Render(text)
}
