// Package ui implements the horario command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/db"
	"github.com/javiermolinar/horario/internal/debuglog"
	"github.com/javiermolinar/horario/internal/portal"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       schedule.Repository
	config     *config.Config
	root       *cobra.Command
	out        io.Writer
	debug      bool   // Enable debug logging
	collection string // Active collection name
	ownsRepo   bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg, out: os.Stdout}

	a.root = &cobra.Command{
		Use:   "horario",
		Short: "Build a weekly class schedule from the Arquitectura portal",
		Long: `Horario searches the faculty's schedule portal, keeps the groups you pick
in a named collection and draws them on a weekly grid, marking any hour
where two groups overlap.

Run without arguments to open the interactive grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return debuglog.Init(a.debug, debuglog.DefaultPath)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			debuglog.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			return tui.Run(a.repo, c, a.config)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+debuglog.DefaultPath+")")
	a.root.PersistentFlags().StringVarP(&a.collection, "collection", "c", cfg.UI.Collection, "Collection to work on")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.searchCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.gridCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.collectionsCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(a.out, "horario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetOutput redirects command output.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs sets the arguments used by Execute instead of os.Args.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.ExecuteContext(context.Background())
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	dbPath := a.config.Storage.DBPath
	if dbPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// activeCollection opens the repository and returns the --collection collection.
func (a *App) activeCollection(ctx context.Context) (*schedule.Collection, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	c, err := a.repo.EnsureCollection(ctx, a.collection)
	if err != nil {
		return nil, fmt.Errorf("opening collection %q: %w", a.collection, err)
	}
	return c, nil
}

// portalClient builds a client from the portal settings, with the disk cache when enabled.
func (a *App) portalClient() *portal.Client {
	p := a.config.Portal
	var opts []portal.Option
	if cache := portal.NewCache(a.config.Storage.CacheDir, a.config.CacheTTL()); cache != nil {
		opts = append(opts, portal.WithCache(cache))
	}
	return portal.NewClient(p.BaseURL, p.Cycle, a.config.Timeout(), opts...)
}

// clearCache drops every stored portal response. A disabled cache is a no-op.
func (a *App) clearCache() error {
	cache := portal.NewCache(a.config.Storage.CacheDir, a.config.CacheTTL())
	if cache == nil {
		return nil
	}
	return cache.Clear()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.repo != nil && a.ownsRepo {
		return a.repo.Close()
	}
	return nil
}
