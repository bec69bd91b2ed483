package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

func section(t *testing.T, materia, grupo, horario string) *schedule.Section {
	t.Helper()
	s, err := schedule.NewSection(materia, grupo, horario)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	return s
}

func buildResult(t *testing.T) *grid.Result {
	t.Helper()
	sections := []*schedule.Section{
		section(t, "TALLER INTEGRAL I", "1101", "LU 10-12"),
		section(t, "GEOMETRIA I", "1102", "LU 11-13"),
	}
	return grid.Build(sections, grid.DefaultOptions())
}

func TestRenderGrid_ContainsLabelsAndConflict(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	th, _ := theme.Load("pastel")

	out := RenderGrid(buildResult(t), GridOptions{Theme: th, CellWidth: 20})

	for _, want := range []string{"Hora", "Lunes", "Sábado", "07:00", "21:00", "TALLER INTEGRAL I", "(Gr. 1101)", grid.ConflictText} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in grid output:\n%s", want, out)
		}
	}
	// The second section's label is overwritten by the conflict at 11:00.
	if strings.Contains(out, "GEOMETRIA I") {
		t.Errorf("expected conflicting label to be replaced:\n%s", out)
	}
}

func TestRenderGrid_MaxWidthShrinksCells(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderGrid(buildResult(t), GridOptions{CellWidth: 20, MaxWidth: 80})
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 80 {
			t.Fatalf("line width %d exceeds 80: %q", w, line)
		}
	}
}

func TestRenderGrid_ColorsCells(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	th, _ := theme.Load("pastel")
	out := RenderGrid(buildResult(t), GridOptions{Theme: th})
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI color sequences in output")
	}
}

func TestGridOptions_CellWidth(t *testing.T) {
	tests := []struct {
		name string
		opts GridOptions
		want int
	}{
		{"default", GridOptions{}, DefaultCellWidth},
		{"explicit", GridOptions{CellWidth: 10}, 10},
		{"fits max width", GridOptions{CellWidth: 20, MaxWidth: 80}, 11},
		{"never below minimum", GridOptions{MaxWidth: 20}, MinCellWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.cellWidth(); got != tt.want {
				t.Errorf("cellWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderConflicts(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderConflicts(buildResult(t), nil)
	if !strings.Contains(out, "Conflict on Lunes at 11:00") {
		t.Errorf("expected conflict description, got %q", out)
	}
	if strings.Count(out, "•") != 1 {
		t.Errorf("expected one unique conflict, got %q", out)
	}

	empty := grid.Build(nil, grid.DefaultOptions())
	if got := RenderConflicts(empty, nil); got != "" {
		t.Errorf("expected empty output without conflicts, got %q", got)
	}
}

func TestPlainGrid(t *testing.T) {
	out := PlainGrid(buildResult(t))
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if lines[0] != "| Hora | Lunes | Martes | Miércoles | Jueves | Viernes | Sábado |" {
		t.Errorf("unexpected header %q", lines[0])
	}
	// Header, separator, then 07:00 .. 10:00.
	if !strings.HasPrefix(lines[5], "| 10:00 | TALLER INTEGRAL I (Gr. 1101) |") {
		t.Errorf("unexpected 10:00 row %q", lines[5])
	}
	if !strings.HasPrefix(lines[6], "| 11:00 | "+grid.ConflictText+" |") {
		t.Errorf("unexpected 11:00 row %q", lines[6])
	}
	if !strings.Contains(out, "- Conflict on Lunes at 11:00") {
		t.Errorf("expected conflict list, got:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain grid must not contain ANSI sequences")
	}
}

func TestHourLabel(t *testing.T) {
	if got := HourLabel(7); got != "07:00" {
		t.Errorf("HourLabel(7) = %q", got)
	}
	if got := HourLabel(21); got != "21:00" {
		t.Errorf("HourLabel(21) = %q", got)
	}
}

func TestRenderSectionList(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	res := buildResult(t)
	sections := []*schedule.Section{
		section(t, "TALLER INTEGRAL I", "1101", "LU 10-12"),
		section(t, "GEOMETRIA I", "1102", "LU 11-13"),
	}

	out := RenderSectionList(SectionListState{Sections: sections, Colors: res.Colors, Selected: 1})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "› GEOMETRIA I (Gr. 1102)") {
		t.Errorf("expected selected marker on second line, got %q", lines[1])
	}
	if strings.Contains(lines[0], "›") {
		t.Errorf("unexpected marker on first line %q", lines[0])
	}

	if got := RenderSectionList(SectionListState{}); !strings.Contains(got, "Sin materias") {
		t.Errorf("expected empty placeholder, got %q", got)
	}
}
