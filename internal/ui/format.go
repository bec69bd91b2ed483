package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/horario/internal/schedule"
)

// PrintOpts configures section printing behavior.
type PrintOpts struct {
	Numbered   bool // Prefix rows with their 1-based position
	ShowBlocks bool // Show the interpreted time blocks under each row
	MaxWidth   int  // Maximum course column width (0 = auto)
}

// CalcCourseWidth returns the course column width for a set of sections.
func (o PrintOpts) CalcCourseWidth(sections []*schedule.Section) int {
	if o.MaxWidth > 0 {
		return o.MaxWidth
	}
	w := 0
	for _, s := range sections {
		if n := runewidth.StringWidth(courseLabel(s)); n > w {
			w = n
		}
	}
	if limit := termWidth() / 2; w > limit {
		w = limit
	}
	return w
}

func courseLabel(s *schedule.Section) string {
	return strings.ReplaceAll(s.Label(), "\n", " ")
}

// PrintSections prints one row per section with consistent formatting.
func PrintSections(w io.Writer, sections []*schedule.Section, opts PrintOpts) {
	width := opts.CalcCourseWidth(sections)
	for i, s := range sections {
		prefix := "  "
		if opts.Numbered {
			prefix = fmt.Sprintf("%3d. ", i+1)
		}

		label := runewidth.Truncate(courseLabel(s), width, "…")
		label = runewidth.FillRight(label, width)

		_, _ = fmt.Fprintf(w, "%s%s  %s\n", prefix, formatCourse(label), s.Horario)

		var details []string
		if s.Profesor != "" {
			details = append(details, s.Profesor)
		}
		if s.Agrupacion != "" {
			details = append(details, s.Agrupacion)
		}
		if s.Turno != "" {
			details = append(details, s.Turno)
		}
		indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
		if len(details) > 0 {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatMuted(strings.Join(details, " · ")))
		}
		if opts.ShowBlocks {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatMuted(BlocksSummary(s.Blocks())))
		}
	}
}

// BlocksSummary renders interpreted blocks as "Lunes 10-14, Miércoles 9-12".
func BlocksSummary(blocks []schedule.TimeBlock) string {
	if len(blocks) == 0 {
		return "sin horario reconocido"
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

// WeeklyHours sums the hours of every interpreted block.
func WeeklyHours(sections []*schedule.Section) int {
	total := 0
	for _, s := range sections {
		for _, b := range s.Blocks() {
			total += b.Hours()
		}
	}
	return total
}
