package summary

import (
	"testing"

	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/schedule"
)

func mustSection(t *testing.T, materia, grupo, horario string) *schedule.Section {
	t.Helper()
	s, err := schedule.NewSection(materia, grupo, horario)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	return s
}

func TestSummarize(t *testing.T) {
	sections := []*schedule.Section{
		mustSection(t, "A", "1", "LU 8-10"),
		mustSection(t, "B", "2", "LU 12-14"),
		mustSection(t, "C", "3", "LU 13-15 MI 9-10"),
	}
	res := grid.Build(sections, grid.DefaultOptions())

	s := Summarize(res, len(sections))

	if s.Sections != 3 {
		t.Errorf("sections = %d, want 3", s.Sections)
	}

	monday := s.Days[schedule.Monday]
	// 8, 9, 12, 13 (conflict), 14
	if monday.ClassHours != 5 {
		t.Errorf("monday class hours = %d, want 5", monday.ClassHours)
	}
	if monday.ConflictHours != 1 {
		t.Errorf("monday conflict hours = %d, want 1", monday.ConflictHours)
	}
	if monday.FirstHour != 8 || monday.LastHour != 14 {
		t.Errorf("monday span = %d-%d, want 8-14", monday.FirstHour, monday.LastHour)
	}
	if monday.GapHours != 2 {
		t.Errorf("monday gap hours = %d, want 2", monday.GapHours)
	}

	if s.ClassHours != 6 || s.ConflictHours != 1 || s.GapHours != 2 {
		t.Errorf("week = %d class, %d conflict, %d gap; want 6, 1, 2", s.ClassHours, s.ConflictHours, s.GapHours)
	}

	best, ok := s.BusiestDay()
	if !ok || best.Day != schedule.Monday {
		t.Errorf("busiest day = %v (%v), want Lunes", best.Day, ok)
	}

	free := s.FreeDays()
	want := []schedule.Weekday{schedule.Tuesday, schedule.Thursday, schedule.Friday, schedule.Saturday}
	if len(free) != len(want) {
		t.Fatalf("free days = %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("free[%d] = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(grid.Build(nil, grid.DefaultOptions()), 0)

	if s.ClassHours != 0 || s.GapHours != 0 {
		t.Errorf("expected empty week, got %+v", s)
	}
	if _, ok := s.BusiestDay(); ok {
		t.Error("expected no busiest day")
	}
	if got := len(s.FreeDays()); got != schedule.NumWeekdays {
		t.Errorf("free days = %d, want %d", got, schedule.NumWeekdays)
	}
	if d := s.Days[schedule.Friday]; d.FirstHour != -1 || d.LastHour != -1 {
		t.Errorf("free day span = %d-%d, want -1", d.FirstHour, d.LastHour)
	}
}
