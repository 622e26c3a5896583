package question

import (
	"fmt"
	"strings"
)

// SplitList splits a comma-separated field, trimming elements and dropping empty ones.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// NormalizeImagePath maps placeholder values to an absent image.
func NormalizeImagePath(value string) string {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "nan", "none":
		return ""
	}
	return value
}

// Normalize converts a raw record into a validated Question.
func Normalize(record Record) (Question, error) {
	collector := &issueCollector{}
	checkPresence(record, collector)
	if len(collector.issues) > 0 {
		return Question{}, collector.result(record.Row)
	}

	q := Question{
		Kind:      strings.TrimSpace(record.Kind),
		Prompt:    strings.TrimSpace(*record.Prompt),
		ImagePath: NormalizeImagePath(record.ImagePath),
	}
	for _, value := range record.Choices {
		choice := NormalizeChoice(value)
		if choice == "" {
			continue
		}
		q.Choices = append(q.Choices, choice)
	}
	for _, value := range record.CorrectAnswers {
		correct := NormalizeChoice(value)
		if correct == "" || q.IsCorrect(correct) {
			continue
		}
		q.CorrectAnswers = append(q.CorrectAnswers, correct)
	}
	collectQuestionIssues(q, collector)

	if err := collector.result(record.Row); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate reports whether a question can be answered: it needs at least one
// choice, at least one correct answer, every correct answer among the choices,
// and no correct answer listed twice.
func (q Question) Validate() error {
	collector := &issueCollector{}
	collectQuestionIssues(q, collector)
	if len(collector.issues) == 0 {
		return nil
	}
	parts := make([]string, 0, len(collector.issues))
	for _, issue := range collector.issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Errorf("%w: %s", ErrInvalidQuestion, strings.Join(parts, "; "))
}

func collectQuestionIssues(q Question, collector *issueCollector) {
	if len(q.Choices) == 0 {
		collector.add(ColumnChoices, "must include at least one entry")
	}
	if len(q.CorrectAnswers) == 0 {
		collector.add(ColumnCorrect, "must include at least one entry")
	}
	if len(q.Choices) == 0 {
		return
	}
	for i, correct := range q.CorrectAnswers {
		if !q.HasChoice(correct) {
			collector.add(ColumnCorrect, fmt.Sprintf("unknown choice %q", correct))
		}
		for _, earlier := range q.CorrectAnswers[:i] {
			if earlier.Equal(correct) {
				collector.add(ColumnCorrect, fmt.Sprintf("duplicate answer %q", NormalizeChoice(string(correct))))
				break
			}
		}
	}
}

// NormalizeSet normalizes every record; any malformed record fails the whole set.
func NormalizeSet(records []Record) (Set, error) {
	if len(records) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	set := make(Set, 0, len(records))
	var failed []*MalformedRecordError
	for _, record := range records {
		q, err := Normalize(record)
		if err != nil {
			if malformed, ok := err.(*MalformedRecordError); ok {
				failed = append(failed, malformed)
				continue
			}
			return nil, err
		}
		set = append(set, q)
	}
	if len(failed) > 0 {
		return nil, &ValidationError{Records: failed}
	}
	return set, nil
}
