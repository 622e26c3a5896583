package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quizzer/internal/attachment"
	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/report"
	"quizzer/internal/ui/style"
)

var errInputClosed = errors.New("input closed before the quiz finished")

type plainOptions struct {
	noColor  bool
	imageDir string
	logger   *slog.Logger
}

// runPlain asks every question in order, re-prompting on invalid input, and
// returns the final summary. Closed input ends the quiz early with errInputClosed.
func runPlain(session *quiz.Session, reader *bufio.Reader, out io.Writer, opts plainOptions) (report.Summary, error) {
	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for session.State().Kind != quiz.Completed {
		index := session.Position()
		q, _ := session.Current()
		printQuestion(out, index, session.Len(), session.Score(), q, opts)

		for {
			fmt.Fprint(out, answerLabel(q))
			line, err := readLine(reader)
			if err != nil && err != io.EOF {
				return session.Finalize(), fmt.Errorf("read answer: %w", err)
			}
			if err == io.EOF && strings.TrimSpace(line) == "" {
				fmt.Fprintln(out)
				return session.Finalize(), errInputClosed
			}
			chosen, parseErr := quiz.ParseSelection(line, q)
			if parseErr != nil {
				fmt.Fprintln(out, style.Stylize("Invalid answer: "+parseErr.Error(), opts.noColor, style.Warning))
				if err == io.EOF {
					return session.Finalize(), errInputClosed
				}
				continue
			}
			result, submitErr := session.Submit(index, chosen)
			if submitErr != nil {
				return session.Finalize(), submitErr
			}
			if result.Correct {
				fmt.Fprintln(out, style.Stylize("Correct!", opts.noColor, style.Success))
			} else {
				fmt.Fprintln(out, style.Stylize("Incorrect. Correct answer(s): "+question.JoinChoices(result.CorrectAnswers), opts.noColor, style.Failure))
			}
			break
		}
	}
	return session.Finalize(), nil
}

func printQuestion(out io.Writer, index, total, score int, q question.Question, opts plainOptions) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, style.Stylize(fmt.Sprintf("Question: %d / %d", index+1, total), opts.noColor, style.Accent))
	fmt.Fprintf(out, "Score: %d\n", score)
	heading := "Choose one"
	if q.IsMultiAnswer() {
		heading = "Choose all that apply"
	}
	if q.Kind != "" {
		heading = q.Kind + " | " + heading
	}
	fmt.Fprintln(out, style.Stylize(heading, opts.noColor, style.Muted))
	fmt.Fprintln(out, q.Prompt)
	if q.HasImage() {
		loaded, err := attachment.Load(q.ImagePath, opts.imageDir)
		if err != nil {
			opts.logger.Warn("image unavailable", "path", q.ImagePath, "error", err)
			fmt.Fprintln(out, style.Stylize("Image unavailable: "+err.Error(), opts.noColor, style.Warning))
		} else {
			fmt.Fprintln(out, "Image: "+loaded.String())
		}
	}
	for i, choice := range q.Choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, choice)
	}
}

func answerLabel(q question.Question) string {
	if q.IsMultiAnswer() {
		return "Answers (comma-separated numbers): "
	}
	return "Answer (number): "
}
