package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/exporter"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		output string
		weeks  int
		start  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as an iCalendar file",
		Long: `Write every time block as a weekly recurring event, starting the week
that contains --start (default: today).`,
		Example: `  horario export
  horario export --output semestre.ics --start 2026-08-10 --weeks 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate := time.Now()
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid --start %q (want YYYY-MM-DD): %w", start, err)
				}
				startDate = t
			}

			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			sections, err := a.repo.ListSections(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("listing sections: %w", err)
			}
			if len(sections) == 0 {
				_, _ = fmt.Fprintf(a.out, "No groups in %s, nothing to export.\n", c.Name)
				return nil
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := exporter.GenerateICS(sections, startDate, weeks, f); err != nil {
				_ = f.Close()
				return fmt.Errorf("generating calendar: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			_, _ = fmt.Fprintf(a.out, "%s\n", formatSuccess(fmt.Sprintf("Exported %d groups to %s", len(sections), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "horario.ics", "Output file")
	cmd.Flags().IntVar(&weeks, "weeks", exporter.DefaultWeeks, "Number of weeks to repeat each class")
	cmd.Flags().StringVar(&start, "start", "", "First week of classes (YYYY-MM-DD)")

	return cmd
}
