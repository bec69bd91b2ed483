package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func (a *App) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every group from the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}

			if !yes {
				if !isTerminal() {
					return fmt.Errorf("refusing to clear %s without --yes", c.Name)
				}
				confirm := false
				err := huh.NewConfirm().
					Title(fmt.Sprintf("Remove every group from %s?", c.Name)).
					Affirmative("Yes").
					Negative("No").
					Value(&confirm).
					Run()
				if err != nil {
					return err
				}
				if !confirm {
					return nil
				}
			}

			n, err := a.repo.ClearSections(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("clearing %s: %w", c.Name, err)
			}
			_, _ = fmt.Fprintf(a.out, "Removed %d groups from %s\n", n, c.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
