package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the YAML/JSON question file schema.
type Document struct {
	Version   int                `json:"version" yaml:"version"`
	Questions []DocumentQuestion `json:"questions" yaml:"questions"`
}

// DocumentQuestion is one entry of a question document.
type DocumentQuestion struct {
	Type           string   `json:"type" yaml:"type"`
	Question       *string  `json:"question" yaml:"question"`
	Choices        []string `json:"choices" yaml:"choices"`
	CorrectAnswers []string `json:"correct_answers" yaml:"correct_answers"`
	Image          string   `json:"image" yaml:"image"`
}

// Load reads a question file and normalizes it into a Set.
func Load(path string) (Set, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	set, err := NormalizeSet(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return set, nil
}

// LoadRecords reads raw records from a question file, chosen by extension.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(reader, ',')
	case ".tsv":
		return ReadCSV(reader, '\t')
	case ".xlsx":
		return ReadXLSX(reader)
	case ".json":
		doc, err := parseJSONDocument(data)
		if err != nil {
			return nil, err
		}
		return doc.Records()
	case ".yml", ".yaml":
		doc, err := parseYAMLDocument(data)
		if err != nil {
			return nil, err
		}
		return doc.Records()
	default:
		return nil, fmt.Errorf("unsupported question file format %q", ext)
	}
}

// Records converts a parsed document into raw records.
func (doc Document) Records() ([]Record, error) {
	switch doc.Version {
	case 0:
		return nil, fmt.Errorf("question document: version is required")
	case 1:
	default:
		return nil, fmt.Errorf("question document: unsupported version %d", doc.Version)
	}
	records := make([]Record, 0, len(doc.Questions))
	for i, entry := range doc.Questions {
		records = append(records, Record{
			Row:            i + 1,
			Kind:           entry.Type,
			Prompt:         entry.Question,
			Choices:        entry.Choices,
			CorrectAnswers: entry.CorrectAnswers,
			ImagePath:      entry.Image,
		})
	}
	return records, nil
}

func parseJSONDocument(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
