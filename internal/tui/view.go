package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/horario/internal/tui/view"
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.styles.TitleStyle.Render("horario · " + m.collectionName()))
	sb.WriteString("\n")

	sb.WriteString(view.RenderGrid(m.result, view.GridOptions{
		Theme:    m.theme,
		MaxWidth: m.width,
		Selected: m.selectedID(),
	}))
	sb.WriteString("\n")

	if conflicts := view.RenderConflicts(m.result, m.theme); conflicts != "" {
		sb.WriteString(conflicts)
		sb.WriteString("\n")
	}

	sb.WriteString(view.RenderSectionList(view.SectionListState{
		Sections: m.sections,
		Colors:   m.result.Colors,
		Selected: m.selected,
		Width:    m.width,
		Theme:    m.theme,
	}))
	sb.WriteString("\n\n")

	statusStyle := m.styles.StatusStyle
	if m.err != nil {
		statusStyle = m.styles.ErrorStyle
	}
	sb.WriteString(view.RenderFooter(view.FooterModel{
		InnerW:      m.width,
		StatsText:   m.statsLine(),
		StatusText:  m.statusMsg,
		HelpText:    m.help.View(m.keys),
		StatsStyle:  m.styles.StatsStyle,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.Bg,
	}))

	return sb.String()
}

func (m Model) selectedID() string {
	if sec := m.selectedSection(); sec != nil {
		return sec.ID
	}
	return ""
}

func (m Model) statsLine() string {
	if m.loading {
		return "Loading..."
	}
	hours := 0
	for _, blocks := range m.result.Blocks {
		for _, b := range blocks {
			hours += b.Hours()
		}
	}
	return fmt.Sprintf("%d materias · %s/semana · %d choques",
		len(m.sections), view.FormatHours(hours), len(m.result.UniqueConflicts()))
}
