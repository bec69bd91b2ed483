package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/tui/theme"
	"github.com/javiermolinar/horario/internal/tui/view"
)

func (a *App) gridCmd() *cobra.Command {
	var (
		noColor bool
		copyOut bool
		plain   bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the weekly grid",
		Long: `Print the collection as a weekly grid from 7:00 to 21:00.

Cells claimed by two groups are marked as a conflict and listed below the grid.`,
		Example: `  horario grid
  horario grid --no-color
  horario grid --plain --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
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

			th, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return err
			}
			res := grid.Build(sections, grid.Options{
				FirstHour: a.config.Grid.FirstHour,
				LastHour:  a.config.Grid.LastHour,
				Palette:   th.GridPalette(),
			})

			if plain {
				_, _ = fmt.Fprint(a.out, view.PlainGrid(res))
			} else {
				if width <= 0 {
					width = termWidth()
				}
				_, _ = fmt.Fprintf(a.out, "%s\n", formatHeader(c.Name))
				_, _ = fmt.Fprintln(a.out, view.RenderGrid(res, view.GridOptions{Theme: th, MaxWidth: width}))
				if res.HasConflicts() {
					_, _ = fmt.Fprintln(a.out, formatConflict(grid.ConflictText))
					for _, d := range res.UniqueConflicts() {
						_, _ = fmt.Fprintf(a.out, "  • %s\n", d)
					}
				}
			}

			if copyOut {
				if err := clipboard.WriteAll(view.PlainGrid(res)); err != nil {
					return fmt.Errorf("copying grid: %w", err)
				}
				_, _ = fmt.Fprintln(a.out, formatSuccess("Grid copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the plain grid to the clipboard")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the grid as a Markdown table")
	cmd.Flags().IntVar(&width, "width", 0, "Maximum output width (default: terminal width)")

	return cmd
}
