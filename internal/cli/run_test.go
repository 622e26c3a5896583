package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"quizzer/internal/quiz"
	"quizzer/internal/report"
	"quizzer/internal/testutil"
	"quizzer/internal/ui/form"
)

func runQuiz(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	withStdin(t, input)
	var out, errOut bytes.Buffer
	code := Run(append([]string{"run"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestRunPlainAllCorrect verifies the sequential loop grades and summarizes.
func TestRunPlainAllCorrect(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)

	code, out, errOut := runQuiz(t, "1\n1,3\n", "--config", configPath, questions)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, want := range []string{
		"Question: 1 / 2",
		"Score: 0",
		"Question: 2 / 2",
		"Score: 1",
		"Choose all that apply",
		"  3) C",
		"Correct!",
		"You answered 2/2 correctly (100.0%).",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestRunPlainRepromptsOnInvalidInput verifies invalid answers do not advance.
func TestRunPlainRepromptsOnInvalidInput(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)

	code, out, _ := runQuiz(t, "9\nabc\n1,2\n2\n1,3\n", "--config", configPath, questions)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if got := strings.Count(out, "Invalid answer"); got != 3 {
		t.Fatalf("expected 3 invalid answer messages, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Incorrect. Correct answer(s): Paris") {
		t.Fatalf("expected miss feedback, got:\n%s", out)
	}
	if !strings.Contains(out, "You answered 1/2 correctly (50.0%).") {
		t.Fatalf("expected half score, got:\n%s", out)
	}
	if !strings.Contains(out, "chosen: Lyon | correct: Paris") {
		t.Fatalf("expected breakdown for the miss, got:\n%s", out)
	}
}

// TestRunPlainInputClosed verifies closed input ends the quiz with a partial summary.
func TestRunPlainInputClosed(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)

	code, out, errOut := runQuiz(t, "1\n", "--config", configPath, questions)

	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "input closed") {
		t.Fatalf("expected input closed error, got %q", errOut)
	}
	if !strings.Contains(out, "You answered 1/2 correctly (50.0%).") {
		t.Fatalf("expected partial summary, got:\n%s", out)
	}
	if !strings.Contains(out, "skipped") {
		t.Fatalf("expected skipped question in breakdown, got:\n%s", out)
	}
}

// TestRunAsksAboutShuffle verifies the ask policy prompts before the quiz.
func TestRunAsksAboutShuffle(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, "version: 1\nshuffle: ask\nui: plain\nno_color: true\n")

	code, out, _ := runQuiz(t, "n\n1\n1,3\n", "--config", configPath, questions)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "Shuffle questions and choices? [y/N]") {
		t.Fatalf("expected shuffle prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "2/2 correctly") {
		t.Fatalf("expected full score in source order, got:\n%s", out)
	}
}

// TestRunSeededShuffleIsReproducible verifies --seed fixes the presentation order.
func TestRunSeededShuffleIsReproducible(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)

	_, first, _ := runQuiz(t, "1\n1\n", "--config", configPath, "--shuffle", "always", "--seed", "7", questions)
	_, second, _ := runQuiz(t, "1\n1\n", "--config", configPath, "--shuffle", "always", "--seed", "7", questions)

	if first != second {
		t.Fatalf("expected identical runs for the same seed:\n%s\n---\n%s", first, second)
	}
}

// TestRunRejectsInvalidOptions verifies option validation exit codes.
func TestRunRejectsInvalidOptions(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)
	cases := []struct {
		name string
		args []string
	}{
		{name: "no file", args: []string{"--config", configPath}},
		{name: "two files", args: []string{"--config", configPath, questions, questions}},
		{name: "bad shuffle", args: []string{"--config", configPath, "--shuffle", "maybe", questions}},
		{name: "bad ui", args: []string{"--config", configPath, "--ui", "web", questions}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, _ := runQuiz(t, "", tc.args...)
			if code != ExitUsage {
				t.Fatalf("expected exit %d, got %d", ExitUsage, code)
			}
		})
	}
}

// TestRunReportsLoadErrors verifies malformed files fail before a session starts.
func TestRunReportsLoadErrors(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", "Question Type,Question Title,Choices,Correct Answer(s)\nTrivia,Broken,\"A, B\",C\n")
	configPath := writeConfig(t, plainConfig)

	code, out, errOut := runQuiz(t, "", "--config", configPath, questions)

	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Failed to load questions") || !strings.Contains(errOut, "row 2") {
		t.Fatalf("expected load error with row, got %q", errOut)
	}
	if strings.Contains(out, "Question:") {
		t.Fatalf("expected no quiz output, got %q", out)
	}
}

// TestRunReportsConfigErrors verifies invalid config files fail the run.
func TestRunReportsConfigErrors(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, "version: 1\nshuffle: sometimes\n")

	code, _, errOut := runQuiz(t, "", "--config", configPath, questions)

	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "shuffle") {
		t.Fatalf("expected shuffle config error, got %q", errOut)
	}
}

// TestRunFormOnTerminal verifies the form is launched for a TTY in navigable mode.
func TestRunFormOnTerminal(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, "version: 1\nshuffle: never\nui: auto\n")
	withTerminal(t, true)

	var gotMode quiz.Mode
	var gotOpts form.Options
	original := runForm
	runForm = func(session *quiz.Session, _ io.Reader, _ io.Writer, opts form.Options) (form.Result, error) {
		gotMode = session.Mode()
		gotOpts = opts
		return form.Result{Summary: report.Summarize(1, 2), Finished: true}, nil
	}
	t.Cleanup(func() { runForm = original })

	code, out, _ := runQuiz(t, "", "--config", configPath, questions)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if gotMode != quiz.Navigable {
		t.Fatalf("expected navigable session, got %s", gotMode)
	}
	if gotOpts.Rand == nil || gotOpts.Shuffled {
		t.Fatalf("expected unshuffled form with a randomizer, got %+v", gotOpts)
	}
	if gotOpts.ImageDir == "" {
		t.Fatalf("expected image dir to default to the question file directory")
	}
	if !strings.Contains(out, "You answered 1/2 correctly (50.0%).") {
		t.Fatalf("expected form summary, got:\n%s", out)
	}
}

// TestRunFormFallsBackWithoutTerminal verifies --ui form degrades to plain prompts.
func TestRunFormFallsBackWithoutTerminal(t *testing.T) {
	questions := testutil.WriteFile(t, "questions.csv", testutil.SampleCSV)
	configPath := writeConfig(t, plainConfig)
	withTerminal(t, false)

	code, out, errOut := runQuiz(t, "1\n1,3\n", "--config", configPath, "--ui", "form", questions)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "falling back to plain prompts") {
		t.Fatalf("expected fallback warning, got %q", errOut)
	}
	if !strings.Contains(out, "2/2 correctly") {
		t.Fatalf("expected plain run to complete, got:\n%s", out)
	}
}
