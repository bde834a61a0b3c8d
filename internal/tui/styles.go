package tui

import "github.com/charmbracelet/lipgloss"

var (
	Success = lipgloss.Color("#16a34a")
	Failure = lipgloss.Color("#ef4444")
	Accent  = lipgloss.Color("#9333ea")
	Muted   = lipgloss.Color("#9ca3af")
)

type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Link    lipgloss.Style
	Counter lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Failure: lipgloss.NewStyle().
			Foreground(Failure).
			Bold(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2).
			MarginTop(1),

		Name: lipgloss.NewStyle().
			Bold(true),

		Link: lipgloss.NewStyle().
			Underline(true),

		Counter: lipgloss.NewStyle().
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Muted),

		Help: lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1),
	}
}
