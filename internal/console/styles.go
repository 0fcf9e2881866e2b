package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	turn    lipgloss.Style
	prompt  lipgloss.Style
	red     lipgloss.Style
	black   lipgloss.Style
	bust    lipgloss.Style
	winner  lipgloss.Style
	subdued lipgloss.Style
}

// newStyles binds every style to r so colors match what the output supports
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		turn: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		red: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		black: r.NewStyle().
			Bold(true),
		bust: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		winner: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		subdued: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
