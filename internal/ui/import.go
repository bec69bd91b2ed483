package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/db"
	"github.com/javiermolinar/horario/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import groups from another database",
		Long: `Copy the groups of a collection in another horario database into the
active collection. Groups already present are skipped.

Example:
  horario import /path/to/friend.db --from default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			dest, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			if from == "" {
				from = dest.Name
			}

			imported, skipped, err := importSections(ctx, a.repo, dest, sourcePath, from)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.out, "Imported %d groups from %s (%s), skipped %d\n", imported, sourcePath, from, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Collection to read in the source database (default: the active collection's name)")

	return cmd
}

func importSections(ctx context.Context, dest schedule.Repository, destCollection *schedule.Collection, sourcePath, sourceName string) (imported, skipped int, err error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	src, err := findCollection(ctx, sourceRepo, sourceName)
	if err != nil {
		return 0, 0, err
	}

	sections, err := sourceRepo.ListSections(ctx, src.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("listing source sections: %w", err)
	}

	for _, s := range sections {
		err := dest.AddSection(ctx, destCollection.ID, s)
		switch {
		case errors.Is(err, schedule.ErrDuplicateSection):
			skipped++
		case err != nil:
			return imported, skipped, fmt.Errorf("importing %s: %w", s.ID, err)
		default:
			imported++
		}
	}

	return imported, skipped, nil
}

// findCollection looks a collection up without creating it.
func findCollection(ctx context.Context, repo schedule.Repository, name string) (*schedule.Collection, error) {
	collections, err := repo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing source collections: %w", err)
	}
	for _, c := range collections {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("source database has no collection %q", name)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
