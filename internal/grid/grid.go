package grid

import (
	"fmt"

	"github.com/javiermolinar/horario/internal/schedule"
)

// Conflict sentinels written over any cell claimed by two sections.
const (
	ConflictColor = "#FF4B4B"
	ConflictText  = "⚠ CHOQUE"
)

// Displayable hour range.
const (
	DefaultFirstHour = 7
	DefaultLastHour  = 21
)

// Cell is one (hour, day) position of the grid.
type Cell struct {
	Text      string // label, set only at a block's first hour
	Color     string // empty means uncovered
	SectionID string // last section painted here
	Conflict  bool
}

// Empty reports whether no section covers the cell.
func (c Cell) Empty() bool {
	return c.Color == ""
}

// Grid is a fixed hour × weekday matrix.
type Grid struct {
	FirstHour int
	LastHour  int
	cells     [][schedule.NumWeekdays]Cell
}

// New creates an empty grid covering firstHour through lastHour inclusive.
func New(firstHour, lastHour int) *Grid {
	if lastHour < firstHour {
		lastHour = firstHour
	}
	return &Grid{
		FirstHour: firstHour,
		LastHour:  lastHour,
		cells:     make([][schedule.NumWeekdays]Cell, lastHour-firstHour+1),
	}
}

// Hours returns the displayable hours in order.
func (g *Grid) Hours() []int {
	hours := make([]int, 0, len(g.cells))
	for h := g.FirstHour; h <= g.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Contains reports whether the hour and day are inside the grid.
func (g *Grid) Contains(hour int, day schedule.Weekday) bool {
	return hour >= g.FirstHour && hour <= g.LastHour && day.Valid()
}

// Cell returns the cell at hour and day. Out of range positions return an empty cell.
func (g *Grid) Cell(hour int, day schedule.Weekday) Cell {
	if !g.Contains(hour, day) {
		return Cell{}
	}
	return g.cells[hour-g.FirstHour][day]
}

// Row returns the six cells of an hour.
func (g *Grid) Row(hour int) [schedule.NumWeekdays]Cell {
	if hour < g.FirstHour || hour > g.LastHour {
		return [schedule.NumWeekdays]Cell{}
	}
	return g.cells[hour-g.FirstHour]
}

func (g *Grid) cell(hour int, day schedule.Weekday) *Cell {
	return &g.cells[hour-g.FirstHour][day]
}

// Covered returns the number of cells painted by at least one section.
func (g *Grid) Covered() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Conflict records two sections claiming the same cell.
type Conflict struct {
	Day         schedule.Weekday
	Hour        int
	Description string
}

// Options configures grid construction.
type Options struct {
	FirstHour int
	LastHour  int
	Palette   Palette
}

// DefaultOptions returns the 7 to 21 grid with the default palette.
func DefaultOptions() Options {
	return Options{
		FirstHour: DefaultFirstHour,
		LastHour:  DefaultLastHour,
		Palette:   DefaultPalette,
	}
}

// withDefaults fills an unset hour range and palette from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FirstHour == 0 && o.LastHour == 0 {
		o.FirstHour, o.LastHour = d.FirstHour, d.LastHour
	}
	if len(o.Palette) == 0 {
		o.Palette = d.Palette
	}
	return o
}

// Result is the output of a grid build.
type Result struct {
	Grid      *Grid
	Conflicts []Conflict
	Colors    map[string]string
	Blocks    map[string][]schedule.TimeBlock
}

// UniqueConflicts returns conflict descriptions without duplicates, in first-seen order.
func (r *Result) UniqueConflicts() []string {
	seen := make(map[string]bool, len(r.Conflicts))
	var out []string
	for _, c := range r.Conflicts {
		if seen[c.Description] {
			continue
		}
		seen[c.Description] = true
		out = append(out, c.Description)
	}
	return out
}

// HasConflicts reports whether any cell was claimed twice.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Build interprets every section and paints its blocks onto a fresh grid.
// Sections are processed in order; hours outside the grid are skipped.
// Conflicts are tracked per section, not per color, since the palette repeats.
// Zero Options fields take their DefaultOptions values.
func Build(sections []*schedule.Section, opts Options) *Result {
	opts = opts.withDefaults()

	res := &Result{
		Grid:   New(opts.FirstHour, opts.LastHour),
		Colors: AllocateColors(sections, opts.Palette),
		Blocks: make(map[string][]schedule.TimeBlock, len(sections)),
	}

	for _, s := range sections {
		blocks := s.Blocks()
		res.Blocks[s.ID] = blocks
		color := res.Colors[s.ID]
		for _, b := range blocks {
			for h := b.Start; h < b.End; h++ {
				if !res.Grid.Contains(h, b.Day) {
					continue
				}
				res.paint(s, color, h, b)
			}
		}
	}
	return res
}

func (r *Result) paint(s *schedule.Section, color string, hour int, b schedule.TimeBlock) {
	c := r.Grid.cell(hour, b.Day)

	// A conflicted cell stays conflicted; re-marking it is idempotent.
	// Ownership is compared by section rather than color because the palette
	// cycles and two sections may share a color.
	if c.Conflict || (c.SectionID != "" && c.SectionID != s.ID) {
		r.Conflicts = append(r.Conflicts, Conflict{
			Day:         b.Day,
			Hour:        hour,
			Description: describeConflict(b.Day, hour),
		})
		c.Color = ConflictColor
		c.Text = ConflictText
		c.Conflict = true
		c.SectionID = s.ID
		return
	}

	c.Color = color
	c.SectionID = s.ID
	if hour == b.Start {
		c.Text = s.Label()
	}
}

func describeConflict(day schedule.Weekday, hour int) string {
	return fmt.Sprintf("Conflict on %s at %d:00", day, hour)
}
