package form

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizzer/internal/quiz"
)

// Run shows the form until the user finishes or quits. Nil input and output
// default to the process stdin and stdout.
func Run(session *quiz.Session, input io.Reader, output io.Writer, opts Options) (Result, error) {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if input != nil {
		programOpts = append(programOpts, tea.WithInput(input))
	}
	if output != nil {
		programOpts = append(programOpts, tea.WithOutput(output))
	}
	program := tea.NewProgram(NewModel(session, opts), programOpts...)
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run form: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("run form: unexpected model %T", final)
	}
	return model.Result(), nil
}
