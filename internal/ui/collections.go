package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List saved collections",
		Long: `List every collection with its number of groups.
The active one (--collection) is marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			collections, err := a.repo.ListCollections(ctx)
			if err != nil {
				return fmt.Errorf("listing collections: %w", err)
			}
			if len(collections) == 0 {
				_, _ = fmt.Fprintln(a.out, "No collections yet.")
				return nil
			}

			for _, c := range collections {
				sections, err := a.repo.ListSections(ctx, c.ID)
				if err != nil {
					return fmt.Errorf("listing sections of %s: %w", c.Name, err)
				}
				marker := " "
				if c.Name == a.collection {
					marker = "*"
				}
				_, _ = fmt.Fprintf(a.out, "%s %s  %s\n", marker, formatHeader(c.Name),
					formatMuted(fmt.Sprintf("%d groups · created %s", len(sections), c.CreatedAt.Format("2006-01-02"))))
			}
			return nil
		},
	}
}
