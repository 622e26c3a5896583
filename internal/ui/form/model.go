package form

import (
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/attachment"
	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/report"
)

// Options configures the form model.
type Options struct {
	NoColor bool
	// Shuffled reports whether the session was started shuffled.
	Shuffled bool
	// Rand reshuffles the session on toggle and restart. Nil disables the
	// shuffle toggle.
	Rand     quiz.Randomizer
	ImageDir string
	Logger   *slog.Logger
}

// Result describes how the form ended.
type Result struct {
	Summary  report.Summary
	Finished bool
}

// feedbackKind classifies the message below the choices.
type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackIncorrect
	feedbackWarning
	feedbackInfo
)

// Model renders one question at a time and drives a quiz session.
type Model struct {
	session  *quiz.Session
	keys     keyMap
	help     help.Model
	rng      quiz.Randomizer
	shuffled bool
	imageDir string
	logger   *slog.Logger
	noColor  bool

	cursor   int
	selected map[int]bool
	locked   bool
	image    string
	imageErr string

	feedback     string
	feedbackKind feedbackKind
	banner       bool

	confirmQuit bool
	finished    bool
	quitting    bool
	summary  report.Summary
	width    int
}

// NewModel constructs a form model for a session.
func NewModel(session *quiz.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		session:  session,
		keys:     defaultKeyMap(),
		help:     help.New(),
		rng:      opts.Rand,
		shuffled: opts.Shuffled && opts.Rand != nil,
		imageDir: opts.ImageDir,
		logger:   logger,
		noColor:  opts.NoColor,
	}
	m = m.enterQuestion()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		m.confirmQuit = false
		if key.Matches(msg, m.keys.Confirm, m.keys.Abort) {
			return m.quit()
		}
		m.feedback, m.feedbackKind = "", feedbackNone
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m.quit()
	case key.Matches(msg, m.keys.Quit):
		m.confirmQuit = true
		m.feedback, m.feedbackKind = "Are you sure you want to quit? (y/n)", feedbackWarning
		return m, nil
	case key.Matches(msg, m.keys.Finish):
		m.finished = true
		m.summary = m.session.Finalize()
		return m, tea.Quit
	}
	if m.session.State().Kind == quiz.Completed {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if q, ok := m.session.Current(); ok && m.cursor < len(q.Choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m = m.toggle()
	case key.Matches(msg, m.keys.Submit):
		m = m.submit()
	case key.Matches(msg, m.keys.Next):
		if m.session.Advance() {
			m = m.enterQuestion()
		}
	case key.Matches(msg, m.keys.Prev):
		if m.session.Retreat() {
			m = m.enterQuestion()
		}
	case key.Matches(msg, m.keys.Shuffle):
		m = m.toggleShuffle()
	case key.Matches(msg, m.keys.Restart):
		m = m.restart("Quiz restarted.")
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.summary = m.session.Finalize()
	return m, tea.Quit
}

// toggle selects the choice under the cursor. Single-answer questions behave
// like radio buttons.
func (m Model) toggle() Model {
	if m.locked {
		return m
	}
	q, ok := m.session.Current()
	if !ok || m.cursor >= len(q.Choices) {
		return m
	}
	if q.IsMultiAnswer() {
		if m.selected[m.cursor] {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = true
		}
		return m
	}
	m.selected = map[int]bool{m.cursor: true}
	return m
}

func (m Model) submit() Model {
	if m.locked {
		m.feedback, m.feedbackKind = "Already graded. Move to another question to answer again.", feedbackWarning
		return m
	}
	q, ok := m.session.Current()
	if !ok {
		return m
	}
	chosen := make([]question.Choice, 0, len(m.selected))
	for i, choice := range q.Choices {
		if m.selected[i] {
			chosen = append(chosen, choice)
		}
	}
	index := m.session.Position()
	result, err := m.session.Submit(index, chosen)
	if err != nil {
		if errors.Is(err, quiz.ErrNoSelection) {
			m.feedback, m.feedbackKind = "Select an answer first.", feedbackWarning
			return m
		}
		m.feedback, m.feedbackKind = err.Error(), feedbackWarning
		return m
	}
	m.locked = true
	if result.Correct {
		m.feedback, m.feedbackKind = "Correct!", feedbackCorrect
	} else {
		m.feedback, m.feedbackKind = "Incorrect. Correct answer(s): "+question.JoinChoices(result.CorrectAnswers), feedbackIncorrect
	}
	if index == m.session.Len()-1 {
		m.banner = true
	}
	return m
}

func (m Model) toggleShuffle() Model {
	if m.rng == nil {
		m.feedback, m.feedbackKind = "Shuffling is unavailable.", feedbackWarning
		return m
	}
	m.shuffled = !m.shuffled
	if m.shuffled {
		return m.restart("Shuffle on. Quiz restarted.")
	}
	return m.restart("Shuffle off. Quiz restarted.")
}

func (m Model) restart(message string) Model {
	if m.shuffled {
		m.session.Restart(m.rng)
	} else {
		m.session.Restart(nil)
	}
	m.banner = false
	m = m.enterQuestion()
	m.feedback, m.feedbackKind = message, feedbackInfo
	return m
}

// enterQuestion resets per-question state and probes the image attachment.
func (m Model) enterQuestion() Model {
	m.cursor = 0
	m.selected = map[int]bool{}
	m.locked = false
	m.feedback, m.feedbackKind = "", feedbackNone
	m.image, m.imageErr = "", ""
	q, ok := m.session.Current()
	if !ok || !q.HasImage() {
		return m
	}
	loaded, err := attachment.Load(q.ImagePath, m.imageDir)
	if err != nil {
		m.logger.Warn("image unavailable", "path", q.ImagePath, "error", err)
		m.imageErr = err.Error()
		return m
	}
	m.image = loaded.String()
	return m
}

// Result reports the final summary and whether the user finished the quiz.
func (m Model) Result() Result {
	return Result{Summary: m.summary, Finished: m.finished}
}

// View renders the current question.
func (m Model) View() string {
	if m.finished || m.quitting {
		return ""
	}
	if m.session.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			"No questions to answer.",
			m.help.View(m.keys),
		)
	}
	q, _ := m.session.Current()
	parts := []string{
		renderProgress(m.session.Position(), m.session.Len(), m.session.Score(), m.shuffled, m.noColor),
		renderHeading(q, m.session.Answered(m.session.Position()), m.noColor),
		q.Prompt,
		"",
		renderChoices(q, m.cursor, m.selected, m.noColor),
	}
	if line := renderImage(m.image, m.imageErr, m.noColor); line != "" {
		parts = append(parts, line)
	}
	if m.feedback != "" {
		parts = append(parts, "", renderFeedback(m.feedback, m.feedbackKind, m.noColor))
	}
	if m.banner {
		parts = append(parts, "", renderBanner(m.session.Summary(), m.noColor))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
