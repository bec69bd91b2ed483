package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Styles holds the lipgloss styles for the TUI chrome, derived from a theme.
type Styles struct {
	TitleStyle  lipgloss.Style
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	return &Styles{
		TitleStyle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Accent)),
		StatsStyle:  lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		StatusStyle: lipgloss.NewStyle().Foreground(theme.Color(t.Fg)),
		ErrorStyle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Conflict)),
		HelpStyle:   lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		Bg:          theme.Color(t.Bg),
	}
}
