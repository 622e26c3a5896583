package question

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyQuestionSet indicates that a source produced no questions.
var ErrEmptyQuestionSet = errors.New("question set is empty")

// ErrInvalidQuestion indicates a question that cannot be answered as built.
var ErrInvalidQuestion = errors.New("invalid question")

// Issue captures a validation problem in a question record.
type Issue struct {
	Field   string
	Message string
}

// MalformedRecordError reports why a single record failed normalization.
type MalformedRecordError struct {
	Row    int
	Issues []Issue
}

// Error returns a readable message for a malformed record.
func (err *MalformedRecordError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "malformed record"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("row %d: %s", err.Row, strings.Join(parts, "; "))
}

// ValidationError aggregates every malformed record of a load.
type ValidationError struct {
	Records []*MalformedRecordError
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Records) == 0 {
		return "question set validation failed"
	}
	lines := make([]string, 0, len(err.Records)+1)
	lines = append(lines, "question set validation failed:")
	for _, record := range err.Records {
		lines = append(lines, "  "+record.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes each malformed record to errors.As.
func (err *ValidationError) Unwrap() []error {
	if err == nil {
		return nil
	}
	out := make([]error, 0, len(err.Records))
	for _, record := range err.Records {
		out = append(out, record)
	}
	return out
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result(row int) error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &MalformedRecordError{Row: row, Issues: collector.issues}
}

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

// fieldNames maps Record fields to the column names users see.
var fieldNames = map[string]string{
	"Prompt":         ColumnTitle,
	"Choices":        ColumnChoices,
	"CorrectAnswers": ColumnCorrect,
}

// checkPresence reports required columns that are absent from the record.
func checkPresence(record Record, collector *issueCollector) {
	err := recordValidator.Struct(record)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		collector.add("record", err.Error())
		return
	}
	for _, fieldErr := range fieldErrs {
		name := fieldNames[fieldErr.StructField()]
		if name == "" {
			name = fieldErr.StructField()
		}
		collector.add(name, "is missing")
	}
}
