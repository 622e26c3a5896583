package style

import "github.com/charmbracelet/lipgloss"

// Colors shared by the plain prompts and the form.
var (
	Accent  = lipgloss.Color("33")
	Muted   = lipgloss.Color("242")
	Faint   = lipgloss.Color("244")
	Cursor  = lipgloss.Color("212")
	Success = lipgloss.Color("42")
	Failure = lipgloss.Color("196")
	Warning = lipgloss.Color("220")
	Info    = lipgloss.Color("39")
)

// Stylize applies optional color styling.
func Stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
