package question

import "strings"

// Choice is a display string offered as a possible answer.
type Choice string

// NormalizeChoice trims surrounding whitespace from a choice value.
func NormalizeChoice(value string) Choice {
	return Choice(strings.TrimSpace(value))
}

// Equal reports whether two choices match after trimming.
func (c Choice) Equal(other Choice) bool {
	return strings.TrimSpace(string(c)) == strings.TrimSpace(string(other))
}

// Question is a single prompt with ordered choices and a set of correct values.
type Question struct {
	Kind           string
	Prompt         string
	Choices        []Choice
	CorrectAnswers []Choice
	ImagePath      string
}

// IsMultiAnswer reports whether more than one choice must be selected.
func (q Question) IsMultiAnswer() bool {
	return len(q.CorrectAnswers) > 1
}

// HasImage reports whether the question carries an image reference.
func (q Question) HasImage() bool {
	return q.ImagePath != ""
}

// HasChoice reports whether value is one of the question's choices.
func (q Question) HasChoice(value Choice) bool {
	for _, choice := range q.Choices {
		if choice.Equal(value) {
			return true
		}
	}
	return false
}

// IsCorrect reports whether value belongs to the correct answer set.
func (q Question) IsCorrect(value Choice) bool {
	for _, correct := range q.CorrectAnswers {
		if correct.Equal(value) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	clone := q
	clone.Choices = append([]Choice(nil), q.Choices...)
	clone.CorrectAnswers = append([]Choice(nil), q.CorrectAnswers...)
	return clone
}

// JoinChoices renders choices as a comma-separated list.
func JoinChoices(values []Choice) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, string(value))
	}
	return strings.Join(parts, ", ")
}

// Set is an ordered collection of questions.
type Set []Question

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	clone := make(Set, len(s))
	for i, q := range s {
		clone[i] = q.Clone()
	}
	return clone
}

// Record is a raw question row handed over by a loader before normalization.
// A nil Prompt, Choices, or CorrectAnswers means the column was absent.
type Record struct {
	Row            int
	Kind           string
	Prompt         *string  `validate:"required"`
	Choices        []string `validate:"required"`
	CorrectAnswers []string `validate:"required"`
	ImagePath      string
}
