package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Column widths of the rendered grid.
const (
	DefaultCellWidth = 16
	MinCellWidth     = 6
	hourColumnWidth  = 5
)

// GridOptions controls how a grid is rendered.
type GridOptions struct {
	Theme     *theme.Theme
	CellWidth int
	// MaxWidth shrinks cells so the table fits; zero means unbounded.
	MaxWidth int
	// Selected highlights the cells owned by one section.
	Selected string
}

func (o GridOptions) cellWidth() int {
	w := o.CellWidth
	if w <= 0 {
		w = DefaultCellWidth
	}
	if o.MaxWidth > 0 {
		// Borders: one per column plus the outer right edge.
		avail := o.MaxWidth - hourColumnWidth - (schedule.NumWeekdays + 2)
		if fit := avail / schedule.NumWeekdays; fit < w {
			w = fit
		}
	}
	if w < MinCellWidth {
		w = MinCellWidth
	}
	return w
}

// RenderGrid draws the weekly grid as a bordered table with colored cells.
func RenderGrid(res *grid.Result, opts GridOptions) string {
	th := opts.Theme
	if th == nil {
		th, _ = theme.Load("")
	}
	width := opts.cellWidth()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Color(th.Accent))
	hourStyle := lipgloss.NewStyle().Foreground(theme.Color(th.FgMuted))
	emptyStyle := lipgloss.NewStyle()

	headers := HeaderLabels()
	headerStyles := make([]lipgloss.Style, len(headers))
	for i := range headers {
		headers[i] = FitCell(headers[i], columnWidth(i, width))
		headerStyles[i] = headerStyle
	}

	hours := res.Grid.Hours()
	content := TableContent{
		Rows:       make([][]string, 0, len(hours)),
		CellStyles: make([][]lipgloss.Style, 0, len(hours)),
	}
	for _, h := range hours {
		row := make([]string, 0, schedule.NumWeekdays+1)
		styles := make([]lipgloss.Style, 0, schedule.NumWeekdays+1)
		row = append(row, FitCell(HourLabel(h), hourColumnWidth))
		styles = append(styles, hourStyle)

		for _, c := range res.Grid.Row(h) {
			row = append(row, FitCell(c.Text, width))
			styles = append(styles, cellStyle(c, th, opts.Selected, emptyStyle))
		}
		content.Rows = append(content.Rows, equalizeLines(row))
		content.CellStyles = append(content.CellStyles, styles)
	}

	return RenderTable(TableViewState{
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      content,
		BorderStyle:  lipgloss.NewStyle().Foreground(theme.Color(th.Border)),
	})
}

func columnWidth(col, cellWidth int) int {
	if col == 0 {
		return hourColumnWidth
	}
	return cellWidth
}

func cellStyle(c grid.Cell, th *theme.Theme, selected string, empty lipgloss.Style) lipgloss.Style {
	switch {
	case c.Conflict:
		return lipgloss.NewStyle().
			Bold(true).
			Background(theme.Color(th.Conflict)).
			Foreground(theme.Color(th.TextOn(th.Conflict)))
	case c.Empty():
		return empty
	}

	bg := c.Color
	if selected != "" && c.SectionID == selected {
		bg = th.Highlight(bg)
	}
	return lipgloss.NewStyle().
		Background(theme.Color(bg)).
		Foreground(theme.Color(th.TextOn(bg)))
}

// equalizeLines pads every cell of a row to the same number of lines so
// multi-line labels keep their background across the full row height.
func equalizeLines(row []string) []string {
	maxLines := 1
	for _, cell := range row {
		if n := strings.Count(cell, "\n") + 1; n > maxLines {
			maxLines = n
		}
	}
	for i, cell := range row {
		lines := strings.Split(cell, "\n")
		width := lipgloss.Width(lines[0])
		for len(lines) < maxLines {
			lines = append(lines, strings.Repeat(" ", width))
		}
		row[i] = strings.Join(lines, "\n")
	}
	return row
}

// RenderConflicts lists each distinct conflict once, in first-seen order.
// An empty string means the schedule has no conflicts.
func RenderConflicts(res *grid.Result, th *theme.Theme) string {
	descs := res.UniqueConflicts()
	if len(descs) == 0 {
		return ""
	}
	if th == nil {
		th, _ = theme.Load("")
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Color(th.Conflict))
	item := lipgloss.NewStyle().Foreground(theme.Color(th.Fg))

	var b strings.Builder
	b.WriteString(title.Render(grid.ConflictText))
	for _, d := range descs {
		b.WriteString("\n")
		b.WriteString(item.Render("  • " + d))
	}
	return b.String()
}

// PlainGrid renders the grid as an uncolored Markdown table.
func PlainGrid(res *grid.Result) string {
	var b strings.Builder

	headers := HeaderLabels()
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")

	for _, h := range res.Grid.Hours() {
		cells := []string{HourLabel(h)}
		for _, c := range res.Grid.Row(h) {
			cells = append(cells, strings.ReplaceAll(c.Text, "\n", " "))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if descs := res.UniqueConflicts(); len(descs) > 0 {
		b.WriteString("\n" + grid.ConflictText + "\n")
		for _, d := range descs {
			b.WriteString("- " + d + "\n")
		}
	}
	return b.String()
}
