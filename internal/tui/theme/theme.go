// Package theme provides color themes for the grid views.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/horario/internal/grid"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "pastel"

// Theme holds all colors for a grid theme.
type Theme struct {
	Name      string   `toml:"name"`
	Bg        string   `toml:"bg"`
	Fg        string   `toml:"fg"`
	FgMuted   string   `toml:"fg_muted"`  // Hour column, empty cells
	Accent    string   `toml:"accent"`    // Titles, headers
	Border    string   `toml:"border"`    // Table borders
	Selection string   `toml:"selection"` // Selected section in the list
	Conflict  string   `toml:"conflict"`  // Overlapping cells
	Cells     []string `toml:"cells"`     // Section colors, assigned in order
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to pastel if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if len(t.Cells) == 0 {
		isLight := isLightTheme(t.Bg)
		t.Cells = make([]string, len(grid.DefaultPalette))
		for i, c := range grid.DefaultPalette {
			if isLight {
				t.Cells[i] = c
			} else {
				t.Cells[i] = darkenColor(c)
			}
		}
	}
	if t.Conflict == "" {
		t.Conflict = grid.ConflictColor
	}
	if t.Selection == "" {
		t.Selection = coalesce(t.Border, t.Bg)
	}
}

// GridPalette returns the section colors for grid.Build.
func (t *Theme) GridPalette() grid.Palette {
	return grid.Palette(t.Cells)
}

// TextOn returns the foreground that reads best on a cell background.
func (t *Theme) TextOn(bg string) string {
	return chooseTextColor(bg, t.Fg, t.Bg)
}

// Highlight tints a cell background toward the accent color.
func (t *Theme) Highlight(bg string) string {
	return blendColors(bg, t.Accent, 0.35)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"pastel", "dark"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
