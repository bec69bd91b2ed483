package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var showBlocks bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the groups in the collection",
		Long: `List the collection's groups in the order they were added.

With --blocks, also show how each schedule text was interpreted.`,
		Example: `  horario list
  horario list --blocks
  horario list --collection optativas`,
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

			if len(sections) == 0 {
				_, _ = fmt.Fprintf(a.out, "No groups in %s.\n", c.Name)
				return nil
			}

			_, _ = fmt.Fprintf(a.out, "=== %s ===\n", formatHeader(c.Name))
			PrintSections(a.out, sections, PrintOpts{Numbered: true, ShowBlocks: showBlocks})
			_, _ = fmt.Fprintf(a.out, "\n%d groups · %dh per week\n", len(sections), WeeklyHours(sections))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBlocks, "blocks", false, "Show interpreted time blocks")

	return cmd
}
