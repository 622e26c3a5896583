package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content under a fresh temp dir and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// SampleCSV is a small valid question file with a single- and a multi-answer row.
const SampleCSV = `Question Type,Question Title,Choices,Correct Answer(s),Image Full Path
Geography,Capital of France?,"Paris, Lyon",Paris,
Letters,Pick A and C,"A, B, C","A, C",
`
