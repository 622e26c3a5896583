package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// TestSummarize verifies percentage computation and the empty boundary.
func TestSummarize(t *testing.T) {
	cases := []struct {
		name  string
		score int
		total int
		want  float64
	}{
		{name: "all correct", score: 1, total: 1, want: 100},
		{name: "partial", score: 1, total: 4, want: 25},
		{name: "none", score: 0, total: 3, want: 0},
		{name: "empty", score: 0, total: 0, want: 0},
		{name: "thirds", score: 2, total: 3, want: 200.0 / 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary := Summarize(tc.score, tc.total)
			if summary.Score != tc.score || summary.Total != tc.total {
				t.Fatalf("unexpected counts: %+v", summary)
			}
			if math.Abs(summary.Percentage-tc.want) > 1e-9 {
				t.Fatalf("expected %.4f, got %.4f", tc.want, summary.Percentage)
			}
		})
	}
}

// TestRenderText verifies the summary line format.
func TestRenderText(t *testing.T) {
	var out bytes.Buffer
	if err := RenderText(&out, Summarize(2, 3)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "You answered 2/3 correctly (66.7%).\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

// TestRenderBreakdown verifies per-question statuses and miss details.
func TestRenderBreakdown(t *testing.T) {
	var out bytes.Buffer
	entries := []Entry{
		{Index: 0, Prompt: "Capital of France?", Answered: true, Correct: true},
		{Index: 1, Prompt: "Primes?", Answered: true, Chosen: []string{"2"}, CorrectAnswers: []string{"2", "3"}},
		{Index: 2, Prompt: "Skipped one"},
	}
	if err := RenderBreakdown(&out, entries); err != nil {
		t.Fatalf("render: %v", err)
	}
	output := out.String()
	for _, want := range []string{"correct   Capital of France?", "incorrect Primes?", "chosen: 2 | correct: 2, 3", "skipped   Skipped one"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}
