package question

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Column headers recognized in tabular question files.
const (
	ColumnKind    = "Question Type"
	ColumnTitle   = "Question Title"
	ColumnChoices = "Choices"
	ColumnCorrect = "Correct Answer(s)"
	ColumnImage   = "Image Full Path"
)

// ErrMissingHeader indicates that a tabular source had no header row.
var ErrMissingHeader = errors.New("missing header row")

const utf8BOM = "\ufeff"

// ReadCSV reads question records from comma- or tab-separated text.
func ReadCSV(reader io.Reader, delimiter rune) ([]Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = !unicode.IsSpace(delimiter)

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return RecordsFromRows(rows)
}

// RecordsFromRows maps a header row plus data rows onto records.
// Row numbers are 1-based and count the header, so the first data row is 2.
func RecordsFromRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	columns := headerIndex(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, recordFromRow(i+2, row, columns))
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}
	return columns
}

func recordFromRow(rowNumber int, row []string, columns map[string]int) Record {
	record := Record{Row: rowNumber}
	if value, ok := cell(row, columns, ColumnKind); ok {
		record.Kind = value
	}
	if value, ok := cell(row, columns, ColumnTitle); ok {
		prompt := value
		record.Prompt = &prompt
	}
	if value, ok := cell(row, columns, ColumnChoices); ok {
		record.Choices = SplitList(value)
	}
	if value, ok := cell(row, columns, ColumnCorrect); ok {
		record.CorrectAnswers = SplitList(value)
	}
	if value, ok := cell(row, columns, ColumnImage); ok {
		record.ImagePath = value
	}
	return record
}

// cell returns the value for a column; ok is false when the header lacks it.
// Cells past the end of a short row read as empty.
func cell(row []string, columns map[string]int, name string) (string, bool) {
	index, ok := columns[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	if index >= len(row) {
		return "", true
	}
	return row[index], true
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
