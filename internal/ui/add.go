package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/schedule"
)

func (a *App) addCmd() *cobra.Command {
	var (
		materia  string
		grupo    string
		horario  string
		profesor string
		clave    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a group to the collection by hand",
		Long: `Add a group that is not in the portal, or type one in directly.

The schedule text uses the portal's format: a day abbreviation (LU MA MI JU VI SA)
followed by an hour range such as 10-14, 10:00-14:00 or 0700-0930. Each day
needs its own range.

Example:
  horario add --materia "TALLER INTEGRAL I" --grupo 1101 --horario "LU 10:00-14:00 MI 10:00-14:00"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schedule.NewSection(materia, grupo, horario)
			if err != nil {
				return err
			}
			s.Profesor = profesor
			s.Clave = clave

			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			if err := a.repo.AddSection(ctx, c.ID, s); err != nil {
				if errors.Is(err, schedule.ErrDuplicateSection) {
					return fmt.Errorf("%s is already in %s: %w", s.ID, c.Name, err)
				}
				return fmt.Errorf("adding section: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Added %s to %s\n", formatCourse(s.ID), c.Name)
			_, _ = fmt.Fprintf(a.out, "  %s\n", formatMuted(BlocksSummary(s.Blocks())))
			return nil
		},
	}

	cmd.Flags().StringVar(&materia, "materia", "", "Course name (required)")
	cmd.Flags().StringVar(&grupo, "grupo", "", "Group number (required)")
	cmd.Flags().StringVar(&horario, "horario", "", "Schedule text, e.g. \"LU 10-14 MI 10-14\"")
	cmd.Flags().StringVar(&profesor, "profesor", "", "Professor name")
	cmd.Flags().StringVar(&clave, "clave", "", "Course key")

	_ = cmd.MarkFlagRequired("materia")
	_ = cmd.MarkFlagRequired("grupo")

	return cmd
}
