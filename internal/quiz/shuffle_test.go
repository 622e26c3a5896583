package quiz

import (
	"math/rand"
	"sort"
	"testing"
	"testing/quick"

	"quizzer/internal/question"
	"quizzer/internal/testutil"
)

func sampleSet() question.Set {
	return question.Set{
		testutil.Question("Capital of France?", []string{"Paris", "Lyon", "Nice"}, "Paris"),
		testutil.Question("Pick A and C", []string{"A", "B", "C", "D"}, "A", "C"),
		testutil.Question("2+2?", []string{"3", "4"}, "4"),
		testutil.Question("Blue things", []string{"sky", "grass", "sea"}, "sky", "sea"),
	}
}

// TestShufflePreservesContent verifies shuffles keep every question and choice.
func TestShufflePreservesContent(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200, Rand: rand.New(rand.NewSource(42))}
	property := func(seed int64) bool {
		original := sampleSet()
		shuffled := Shuffle(original, testutil.Rand(seed))
		if len(shuffled) != len(original) {
			return false
		}
		if !equalStrings(prompts(original), prompts(shuffled)) {
			return false
		}
		byPrompt := map[string]question.Question{}
		for _, q := range original {
			byPrompt[q.Prompt] = q
		}
		for _, q := range shuffled {
			source := byPrompt[q.Prompt]
			if !equalStrings(choiceStrings(source.Choices), choiceStrings(q.Choices)) {
				return false
			}
			if !sameSet(source.CorrectAnswers, q.CorrectAnswers) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, cfg); err != nil {
		t.Fatalf("shuffle property failed: %v", err)
	}
}

// TestShuffleIsDeepCopy verifies mutating the shuffled set never alters the input.
func TestShuffleIsDeepCopy(t *testing.T) {
	original := sampleSet()
	snapshot := original.Clone()
	shuffled := Shuffle(original, testutil.Rand(7))
	for i := range shuffled {
		shuffled[i].Prompt = "changed"
		shuffled[i].Choices[0] = "changed"
		shuffled[i].CorrectAnswers[0] = "changed"
	}
	shuffled = append(shuffled, testutil.Question("extra", []string{"x"}, "x"))
	for i := range original {
		if original[i].Prompt != snapshot[i].Prompt {
			t.Fatalf("prompt %d mutated: %q", i, original[i].Prompt)
		}
		if !equalStrings(choiceStrings(original[i].Choices), choiceStrings(snapshot[i].Choices)) {
			t.Fatalf("choices %d mutated: %v", i, original[i].Choices)
		}
		if original[i].Choices[0] != snapshot[i].Choices[0] {
			t.Fatalf("choice order %d mutated: %v", i, original[i].Choices)
		}
		if original[i].CorrectAnswers[0] != snapshot[i].CorrectAnswers[0] {
			t.Fatalf("correct answers %d mutated: %v", i, original[i].CorrectAnswers)
		}
	}
}

// TestShufflePermutesQuestionsAndChoices verifies both levels are shuffled.
func TestShufflePermutesQuestionsAndChoices(t *testing.T) {
	rng := &testutil.Reverser{}
	shuffled := Shuffle(sampleSet(), rng)
	if shuffled[0].Prompt != "Blue things" {
		t.Fatalf("expected reversed question order, got %q first", shuffled[0].Prompt)
	}
	if shuffled[0].Choices[0] != "sea" {
		t.Fatalf("expected reversed choices, got %v", shuffled[0].Choices)
	}
	if rng.Calls != 1+len(shuffled) {
		t.Fatalf("expected one shuffle per question plus one for order, got %d", rng.Calls)
	}
}

// TestShuffleNilRandomizerCopies verifies a nil source returns an ordered copy.
func TestShuffleNilRandomizerCopies(t *testing.T) {
	original := sampleSet()
	copied := Shuffle(original, nil)
	if copied[0].Prompt != original[0].Prompt {
		t.Fatalf("expected original order")
	}
	copied[0].Choices[0] = "changed"
	if original[0].Choices[0] == "changed" {
		t.Fatalf("expected independent copy")
	}
}

func prompts(set question.Set) []string {
	out := make([]string, 0, len(set))
	for _, q := range set {
		out = append(out, q.Prompt)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a = append([]string(nil), a...)
	b = append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
