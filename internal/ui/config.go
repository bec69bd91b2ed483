package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  horario config
  horario config --show`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if show {
				printConfig(a.out, a.config)
				return nil
			}
			return runConfigInteractive(a.out)
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the effective configuration and exit")

	return cmd
}

func runConfigInteractive(out io.Writer) error {
	configPath := config.DefaultConfigPath()
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(os.Stdin)
	if !promptYesNo(out, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	editConfig(out, reader, cfg)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func editConfig(out io.Writer, reader *bufio.Reader, cfg *config.Config) {
	cfg.Portal.BaseURL = promptValue(out, reader, "Portal base URL", cfg.Portal.BaseURL)
	cfg.Portal.Cycle = promptValue(out, reader, "School cycle", cfg.Portal.Cycle)
	cfg.Portal.TimeoutSeconds = promptInt(out, reader, "Request timeout (seconds)", cfg.Portal.TimeoutSeconds)
	cfg.Portal.CacheTTLHours = promptInt(out, reader, "Cache lifetime (hours, 0 disables)", cfg.Portal.CacheTTLHours)
	cfg.Grid.FirstHour = promptInt(out, reader, "First grid hour", cfg.Grid.FirstHour)
	cfg.Grid.LastHour = promptInt(out, reader, "Last grid hour", cfg.Grid.LastHour)
	cfg.Storage.DBPath = promptValue(out, reader, "Database path", cfg.Storage.DBPath)
	cfg.Storage.CacheDir = promptValue(out, reader, "Cache directory", cfg.Storage.CacheDir)
	cfg.UI.Theme = promptTheme(out, reader, cfg.UI.Theme)
	cfg.UI.Collection = promptValue(out, reader, "Default collection", cfg.UI.Collection)
}

func printConfig(out io.Writer, cfg *config.Config) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(out, format, args...) }

	p("Current configuration:\n")
	p("──────────────────────\n")
	p("[portal]\n")
	p("  base_url         = %s\n", cfg.Portal.BaseURL)
	p("  cycle            = %s\n", cfg.Portal.Cycle)
	p("  timeout_seconds  = %d\n", cfg.Portal.TimeoutSeconds)
	p("  cache_ttl_hours  = %d\n", cfg.Portal.CacheTTLHours)
	p("\n[grid]\n")
	p("  first_hour       = %d\n", cfg.Grid.FirstHour)
	p("  last_hour        = %d\n", cfg.Grid.LastHour)
	p("\n[storage]\n")
	p("  db_path          = %s\n", cfg.Storage.DBPath)
	p("  cache_dir        = %s\n", cfg.Storage.CacheDir)
	p("\n[ui]\n")
	p("  theme            = %s\n", cfg.UI.Theme)
	p("  collection       = %s\n", cfg.UI.Collection)
}

func promptYesNo(out io.Writer, reader *bufio.Reader, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(out io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(out io.Writer, reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(out, reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(out io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(out, reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
