package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Primary = lipgloss.Color("#8BC34A")
	Accent  = lipgloss.Color("#2196F3")
	Muted   = lipgloss.Color("#8a94a6")
	Danger  = lipgloss.Color("#e53935")
)

// Styles holds the styled components shared by every page.
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	Name      lipgloss.Style
	Score     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style
	Selected  lipgloss.Style
}

// DefaultStyles returns the runmate look.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2).
			Width(44),
		Name:      lipgloss.NewStyle().Bold(true),
		Score:     lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Error:     lipgloss.NewStyle().Foreground(Danger),
		Help:      lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Dot:       lipgloss.NewStyle().Foreground(Muted),
		DotActive: lipgloss.NewStyle().Foreground(Primary),
		Selected:  lipgloss.NewStyle().Foreground(Accent).Bold(true),
	}
}
