package quiz

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"quizzer/internal/question"
	"quizzer/internal/report"
)

// GradeResult is the outcome of one submission.
type GradeResult struct {
	Index          int
	Correct        bool
	CorrectAnswers []question.Choice
	Score          int
	Completed      bool
}

// Outcome records the first graded submission of a question.
type Outcome struct {
	Chosen   []question.Choice
	Correct  bool
	Attempts int
}

// Option configures a Session.
type Option func(*Session)

// WithMode selects sequential or navigable movement.
func WithMode(mode Mode) Option {
	return func(s *Session) {
		s.mode = mode
	}
}

// WithShuffle randomizes the working set with rng when the session starts.
func WithShuffle(rng Randomizer) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLogger routes session debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session id.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session owns a private working copy of a question set and grades answers
// against it. It is not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	mode     Mode
	rng      Randomizer
	logger   *slog.Logger
	source   question.Set
	working  question.Set
	position int
	score    int
	answered []bool
	outcomes []Outcome
	done     bool
}

// New validates set and starts a session over a private copy of it.
// An empty set yields a session that is already completed.
func New(set question.Set, opts ...Option) (*Session, error) {
	for i, q := range set {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	s := &Session{
		id:     uuid.New(),
		mode:   Sequential,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		source: set.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id.String())
	s.reset(s.rng)
	s.logger.Debug("session started", "mode", s.mode.String(), "questions", len(s.working), "shuffled", s.rng != nil)
	return s, nil
}

// Restart clears all progress. A non-nil rng re-shuffles the working set from
// the original order; nil restores the original order.
func (s *Session) Restart(rng Randomizer) {
	s.reset(rng)
	s.logger.Debug("session restarted", "shuffled", rng != nil)
}

func (s *Session) reset(rng Randomizer) {
	if rng != nil {
		s.working = Shuffle(s.source, rng)
	} else {
		s.working = s.source.Clone()
	}
	s.position = 0
	s.score = 0
	s.answered = make([]bool, len(s.working))
	s.outcomes = make([]Outcome, len(s.working))
	s.done = len(s.working) == 0
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Mode returns the movement mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Len returns the number of questions in the working set.
func (s *Session) Len() int {
	return len(s.working)
}

// Position returns the current question index.
func (s *Session) Position() int {
	return s.position
}

// Score returns the number of questions answered correctly so far.
func (s *Session) Score() int {
	return s.score
}

// State returns a snapshot of the state machine.
func (s *Session) State() State {
	if s.done {
		return State{Kind: Completed, Index: s.position}
	}
	return State{Kind: AwaitingAnswer, Index: s.position}
}

// Current returns the question at the current position.
func (s *Session) Current() (question.Question, bool) {
	return s.Question(s.position)
}

// Question returns a copy of the question at index i.
func (s *Session) Question(i int) (question.Question, bool) {
	if i < 0 || i >= len(s.working) {
		return question.Question{}, false
	}
	return s.working[i].Clone(), true
}

// Answered reports whether question i has a graded submission in this pass.
func (s *Session) Answered(i int) bool {
	if i < 0 || i >= len(s.answered) {
		return false
	}
	return s.answered[i]
}

// AnsweredCount returns how many questions have been graded in this pass.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, answered := range s.answered {
		if answered {
			count++
		}
	}
	return count
}

// Submit grades chosen against question i. The selection is validated before
// any state changes. A question scores at most once per pass: only a correct
// first submission counts.
func (s *Session) Submit(i int, chosen []question.Choice) (GradeResult, error) {
	if s.done {
		return GradeResult{}, ErrSessionCompleted
	}
	if i < 0 || i >= len(s.working) {
		return GradeResult{}, &IndexError{Index: i, Expected: s.position, Len: len(s.working)}
	}
	if s.mode == Sequential && i != s.position {
		return GradeResult{}, &IndexError{Index: i, Expected: s.position, Len: len(s.working)}
	}
	q := s.working[i]
	selected, err := normalizeSelection(q, chosen)
	if err != nil {
		return GradeResult{}, err
	}

	correct := sameSet(selected, q.CorrectAnswers)
	outcome := s.outcomes[i]
	if !s.answered[i] {
		if correct {
			s.score++
		}
		outcome.Chosen = selected
		outcome.Correct = correct
	}
	outcome.Attempts++
	s.outcomes[i] = outcome
	s.answered[i] = true

	if s.mode == Sequential {
		if s.position == len(s.working)-1 {
			s.done = true
		} else {
			s.position++
		}
	}
	s.logger.Debug("answer graded", "index", i, "correct", correct, "attempt", outcome.Attempts, "score", s.score)

	return GradeResult{
		Index:          i,
		Correct:        correct,
		CorrectAnswers: append([]question.Choice(nil), q.CorrectAnswers...),
		Score:          s.score,
		Completed:      s.done,
	}, nil
}

// Advance moves to the next question in navigable mode. It is a no-op at the
// last question, after completion, and in sequential mode.
func (s *Session) Advance() bool {
	if s.done || s.mode != Navigable || s.position >= len(s.working)-1 {
		return false
	}
	s.position++
	return true
}

// Retreat moves to the previous question in navigable mode. It is a no-op at
// the first question, after completion, and in sequential mode.
func (s *Session) Retreat() bool {
	if s.done || s.mode != Navigable || s.position <= 0 {
		return false
	}
	s.position--
	return true
}

// Summary returns the running score summary without ending the pass.
func (s *Session) Summary() report.Summary {
	return report.Summarize(s.score, len(s.working))
}

// Finalize ends the pass and returns the score summary. Calling it again
// returns the same summary.
func (s *Session) Finalize() report.Summary {
	if !s.done {
		s.done = true
		s.logger.Debug("session finalized", "score", s.score, "total", len(s.working))
	}
	return s.Summary()
}

// Outcomes returns a copy of every question's first graded submission.
func (s *Session) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	for i, outcome := range s.outcomes {
		outcome.Chosen = append([]question.Choice(nil), outcome.Chosen...)
		out[i] = outcome
	}
	return out
}

// Breakdown describes every question's result for the final report.
func (s *Session) Breakdown() []report.Entry {
	entries := make([]report.Entry, 0, len(s.working))
	for i, q := range s.working {
		entries = append(entries, report.Entry{
			Index:          i,
			Prompt:         q.Prompt,
			Answered:       s.answered[i],
			Correct:        s.outcomes[i].Correct,
			Chosen:         choiceStrings(s.outcomes[i].Chosen),
			CorrectAnswers: choiceStrings(q.CorrectAnswers),
		})
	}
	return entries
}

// normalizeSelection trims and deduplicates chosen, rejecting empty input and
// values that are not among the question's choices.
func normalizeSelection(q question.Question, chosen []question.Choice) ([]question.Choice, error) {
	selected := make([]question.Choice, 0, len(chosen))
	for _, value := range chosen {
		value = question.NormalizeChoice(string(value))
		if value == "" || containsChoice(selected, value) {
			continue
		}
		if !q.HasChoice(value) {
			return nil, &InvalidSelectionError{Input: string(value), Reason: "not one of the choices"}
		}
		selected = append(selected, value)
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}

// sameSet reports whether both selections hold exactly the same values.
func sameSet(chosen, correct []question.Choice) bool {
	for _, value := range chosen {
		if !containsChoice(correct, value) {
			return false
		}
	}
	for _, value := range correct {
		if !containsChoice(chosen, value) {
			return false
		}
	}
	return true
}

func containsChoice(values []question.Choice, target question.Choice) bool {
	for _, value := range values {
		if value.Equal(target) {
			return true
		}
	}
	return false
}

func choiceStrings(values []question.Choice) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}
