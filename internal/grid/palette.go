// Package grid lays interpreted section schedules onto a weekly hour grid
// and detects sections that claim the same cell.
package grid

import "github.com/javiermolinar/horario/internal/schedule"

// Palette is an ordered list of section background colors.
type Palette []string

// DefaultPalette holds ten pastel colors used when no theme palette is set.
var DefaultPalette = Palette{
	"#FFB3BA",
	"#FFDFBA",
	"#FFFFBA",
	"#BAFFC9",
	"#BAE1FF",
	"#E0BBE4",
	"#FEC8D8",
	"#D4F0F0",
	"#CCE2CB",
	"#F6EAC2",
}

// At returns the color for the i-th section, cycling through the palette.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return DefaultPalette.At(i)
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// AllocateColors assigns each section a color by its position in the list.
// The same order always yields the same assignment.
func AllocateColors(sections []*schedule.Section, p Palette) map[string]string {
	colors := make(map[string]string, len(sections))
	for i, s := range sections {
		colors[s.ID] = p.At(i)
	}
	return colors
}
