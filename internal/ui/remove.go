package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/schedule"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id|number>",
		Short: "Remove a group from the collection",
		Long: `Remove a group by its id, as shown by "horario list", or by its position.

Example:
  horario remove "GEOMETRIA I (1102)"
  horario remove 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}

			id, err := a.resolveSectionID(ctx, c, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.RemoveSection(ctx, c.ID, id); err != nil {
				return fmt.Errorf("removing %s: %w", id, err)
			}

			_, _ = fmt.Fprintf(a.out, "Removed %s from %s\n", formatCourse(id), c.Name)
			return nil
		},
	}
}

// resolveSectionID accepts a section id or a 1-based position in the collection.
func (a *App) resolveSectionID(ctx context.Context, c *schedule.Collection, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	sections, err := a.repo.ListSections(ctx, c.ID)
	if err != nil {
		return "", fmt.Errorf("listing sections: %w", err)
	}
	if n < 1 || n > len(sections) {
		return "", fmt.Errorf("no group at position %d: %w", n, schedule.ErrSectionNotFound)
	}
	return sections[n-1].ID, nil
}
