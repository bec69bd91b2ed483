package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// SectionListState holds what the section list needs to render.
type SectionListState struct {
	Sections []*schedule.Section
	Colors   map[string]string
	Selected int
	Width    int
	Theme    *theme.Theme
}

// RenderSectionList draws one line per section with its grid color as a swatch.
func RenderSectionList(state SectionListState) string {
	th := state.Theme
	if th == nil {
		th, _ = theme.Load("")
	}
	if len(state.Sections) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Color(th.FgMuted)).
			Render("Sin materias. Usa `horario search` o `horario add`.")
	}

	normal := lipgloss.NewStyle().Foreground(theme.Color(th.Fg))
	selected := lipgloss.NewStyle().
		Foreground(theme.Color(th.Fg)).
		Background(theme.Color(th.Selection)).
		Bold(true)
	muted := lipgloss.NewStyle().Foreground(theme.Color(th.FgMuted))

	lines := make([]string, 0, len(state.Sections))
	for i, s := range state.Sections {
		swatch := lipgloss.NewStyle().Background(theme.Color(state.Colors[s.ID])).Render("  ")

		marker := "  "
		style := normal
		if i == state.Selected {
			marker = "› "
			style = selected
		}

		text := marker + s.Label()
		text = strings.ReplaceAll(text, "\n", " ")
		detail := "  " + s.Horario
		if state.Width > 0 {
			avail := state.Width - 3
			if avail < 0 {
				avail = 0
			}
			text = ansi.Truncate(text, avail, "…")
			rest := avail - ansi.StringWidth(text)
			if rest > 0 {
				detail = ansi.Truncate(detail, rest, "…")
			} else {
				detail = ""
			}
		}
		lines = append(lines, swatch+" "+style.Render(text)+muted.Render(detail))
	}
	return strings.Join(lines, "\n")
}
