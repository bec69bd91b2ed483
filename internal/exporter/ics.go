// Package exporter writes a collection's weekly blocks as an iCalendar file.
package exporter

import (
	"errors"
	"fmt"
	"io"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"

	"github.com/javiermolinar/horario/internal/schedule"
)

// TimeZone is where the faculty's classes take place.
const TimeZone = "America/Mexico_City"

// DefaultWeeks is the length of a semester in weeks.
const DefaultWeeks = 16

var ErrInvalidWeeks = errors.New("weeks must be positive")

// GenerateICS writes one weekly recurring event per time block. The first
// occurrence falls in the week that contains start.
func GenerateICS(sections []*schedule.Section, start time.Time, weeks int, w io.Writer) error {
	if weeks <= 0 {
		return ErrInvalidWeeks
	}

	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	// start is a calendar date; its clock and location are ignored.
	monday := WeekStart(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc))

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//horario//ES")
	cal.SetXWRTimezone(TimeZone)

	now := time.Now()
	for _, s := range sections {
		for _, b := range s.Blocks() {
			day := monday.AddDate(0, 0, int(b.Day))
			startAt := time.Date(day.Year(), day.Month(), day.Day(), b.Start, 0, 0, 0, loc)
			endAt := time.Date(day.Year(), day.Month(), day.Day(), b.End, 0, 0, 0, loc)

			event := cal.AddEvent(eventUID(s, b))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(startAt)
			event.SetEndAt(endAt)
			event.AddProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", weeks))
			event.SetSummary(fmt.Sprintf("%s (Gr. %s)", s.Materia, s.Grupo))
			if s.Agrupacion != "" {
				event.SetLocation(s.Agrupacion)
			}
			event.SetDescription(description(s))
		}
	}

	return cal.SerializeTo(w)
}

// WeekStart returns midnight of the Monday on or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// eventUID is unique per section, day and start hour. The section id is used
// because hand-added sections often have no course key.
func eventUID(s *schedule.Section, b schedule.TimeBlock) string {
	id := s.ID
	if id == "" {
		id = schedule.SectionID(s.Materia, s.Grupo)
	}
	return fmt.Sprintf("%s-%s-%d@horario", id, b.Day, b.Start)
}

func description(s *schedule.Section) string {
	desc := fmt.Sprintf("Clave: %s\nGrupo: %s", s.Clave, s.Grupo)
	if s.Profesor != "" {
		desc += "\nProfesor: " + s.Profesor
	}
	if s.Turno != "" {
		desc += "\nTurno: " + s.Turno
	}
	return desc
}
