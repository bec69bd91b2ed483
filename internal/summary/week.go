// Package summary provides weekly load statistics for a built grid.
package summary

import (
	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/schedule"
)

// DayStats holds the load of one weekday.
type DayStats struct {
	Day           schedule.Weekday
	ClassHours    int // covered cells, conflicts included
	ConflictHours int
	FirstHour     int // -1 when the day is free
	LastHour      int // last covered hour, -1 when the day is free
	GapHours      int // uncovered hours between FirstHour and LastHour
}

// Free reports whether no class falls on the day.
func (d DayStats) Free() bool {
	return d.ClassHours == 0
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Sections      int
	ClassHours    int
	ConflictHours int
	GapHours      int
	Days          [schedule.NumWeekdays]DayStats
}

// Summarize computes per-day and weekly statistics from a grid result.
func Summarize(res *grid.Result, sections int) *WeekSummary {
	s := &WeekSummary{Sections: sections}
	for _, day := range schedule.Weekdays() {
		ds := DayStats{Day: day, FirstHour: -1, LastHour: -1}
		for _, h := range res.Grid.Hours() {
			cell := res.Grid.Cell(h, day)
			if cell.Empty() {
				continue
			}
			if ds.FirstHour < 0 {
				ds.FirstHour = h
			}
			ds.LastHour = h
			ds.ClassHours++
			if cell.Conflict {
				ds.ConflictHours++
			}
		}
		if !ds.Free() {
			ds.GapHours = ds.LastHour - ds.FirstHour + 1 - ds.ClassHours
		}

		s.Days[day] = ds
		s.ClassHours += ds.ClassHours
		s.ConflictHours += ds.ConflictHours
		s.GapHours += ds.GapHours
	}
	return s
}

// BusiestDay returns the day with the most class hours and whether any day has classes.
// Ties go to the earlier day.
func (s *WeekSummary) BusiestDay() (DayStats, bool) {
	best := DayStats{FirstHour: -1, LastHour: -1}
	found := false
	for _, ds := range s.Days {
		if ds.ClassHours > best.ClassHours {
			best = ds
			found = true
		}
	}
	return best, found
}

// FreeDays returns the weekdays without classes.
func (s *WeekSummary) FreeDays() []schedule.Weekday {
	var days []schedule.Weekday
	for _, ds := range s.Days {
		if ds.Free() {
			days = append(days, ds.Day)
		}
	}
	return days
}
