package testutil

import "quizzer/internal/question"

// Question builds a question from plain strings.
func Question(prompt string, choices []string, correct ...string) question.Question {
	q := question.Question{Prompt: prompt}
	for _, choice := range choices {
		q.Choices = append(q.Choices, question.Choice(choice))
	}
	for _, value := range correct {
		q.CorrectAnswers = append(q.CorrectAnswers, question.Choice(value))
	}
	return q
}

// Choices converts plain strings into choice values.
func Choices(values ...string) []question.Choice {
	out := make([]question.Choice, 0, len(values))
	for _, value := range values {
		out = append(out, question.Choice(value))
	}
	return out
}
