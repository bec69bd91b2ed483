package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/summary"
	"github.com/javiermolinar/horario/internal/tui/view"
)

func (a *App) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the weekly load of the collection",
		Long: `Show class hours, free hours between classes and conflicting hours per day.

Example:
  horario summary
  horario summary --collection plan-b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			sections, err := a.repo.ListSections(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("listing sections: %w", err)
			}

			res := grid.Build(sections, grid.Options{
				FirstHour: a.config.Grid.FirstHour,
				LastHour:  a.config.Grid.LastHour,
			})
			s := summary.Summarize(res, len(sections))

			_, _ = fmt.Fprintf(a.out, "=== %s ===\n", formatHeader(c.Name))
			printSummary(a, s)
			return nil
		},
	}
}

func printSummary(a *App, s *summary.WeekSummary) {
	for _, ds := range s.Days {
		name := fmt.Sprintf("%-10s", ds.Day)
		if ds.Free() {
			_, _ = fmt.Fprintf(a.out, "  %s %s\n", name, formatMuted("libre"))
			continue
		}
		line := fmt.Sprintf("  %s %s-%s  %2dh", name, view.HourLabel(ds.FirstHour), view.HourLabel(ds.LastHour+1), ds.ClassHours)
		if ds.GapHours > 0 {
			line += formatMuted(fmt.Sprintf("  %dh free", ds.GapHours))
		}
		if ds.ConflictHours > 0 {
			line += "  " + formatConflict(fmt.Sprintf("%dh conflict", ds.ConflictHours))
		}
		_, _ = fmt.Fprintln(a.out, line)
	}

	_, _ = fmt.Fprintf(a.out, "\n%d groups · %dh per week · %dh between classes", s.Sections, s.ClassHours, s.GapHours)
	if s.ConflictHours > 0 {
		_, _ = fmt.Fprintf(a.out, " · %s", formatConflict(fmt.Sprintf("%dh in conflict", s.ConflictHours)))
	}
	_, _ = fmt.Fprintln(a.out)

	if best, ok := s.BusiestDay(); ok {
		_, _ = fmt.Fprintf(a.out, "Busiest day: %s (%dh)\n", best.Day, best.ClassHours)
	}
	if free := s.FreeDays(); len(free) > 0 {
		names := make([]string, len(free))
		for i, d := range free {
			names[i] = d.String()
		}
		_, _ = fmt.Fprintf(a.out, "Free days: %s\n", strings.Join(names, ", "))
	}
}
