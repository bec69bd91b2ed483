package exporter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/horario/internal/schedule"
)

func TestGenerateICS(t *testing.T) {
	sections := []*schedule.Section{
		{
			ID:         schedule.SectionID("TALLER INTEGRAL I", "1101"),
			Clave:      "1140",
			Materia:    "TALLER INTEGRAL I",
			Grupo:      "1101",
			Profesor:   "ABUD RAMIREZ RAMON",
			Horario:    "LU 10:00-14:00 / MI 9-12",
			Agrupacion: "MAX CETTO",
			Turno:      schedule.TurnoMatutino,
		},
	}

	// A Thursday; events anchor to Monday 10 August.
	start := time.Date(2026, 8, 13, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(sections, start, 16, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	if got := strings.Count(output, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
	if !strings.Contains(output, "SUMMARY:TALLER INTEGRAL I (Gr. 1101)") {
		t.Errorf("expected summary, got:\n%s", output)
	}
	if !strings.Contains(output, "LOCATION:MAX CETTO") {
		t.Errorf("expected location, got:\n%s", output)
	}
	if !strings.Contains(output, "RRULE:FREQ=WEEKLY;COUNT=16") {
		t.Errorf("expected weekly recurrence, got:\n%s", output)
	}
	// Monday 10:00 in Mexico City is 16:00 UTC.
	if !strings.Contains(output, "DTSTART:20260810T160000Z") {
		t.Errorf("expected Monday start in UTC, got:\n%s", output)
	}
	if !strings.Contains(output, "DTEND:20260810T200000Z") {
		t.Errorf("expected Monday end in UTC, got:\n%s", output)
	}
	if !strings.Contains(output, "DTSTART:20260812T150000Z") {
		t.Errorf("expected Wednesday start in UTC, got:\n%s", output)
	}
}

func TestGenerateICS_NoBlocks(t *testing.T) {
	sections := []*schedule.Section{{Materia: "SIN HORARIO", Grupo: "1", Horario: "por definir"}}

	var buf bytes.Buffer
	if err := GenerateICS(sections, time.Now(), 4, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("expected no events for a section without blocks")
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") {
		t.Error("expected a calendar wrapper")
	}
}

func TestGenerateICS_UniqueUIDs(t *testing.T) {
	// Same group number, day and start hour, no course key.
	sections := []*schedule.Section{
		{ID: schedule.SectionID("GEOMETRIA I", "1"), Materia: "GEOMETRIA I", Grupo: "1", Horario: "LU 10-12"},
		{ID: schedule.SectionID("DIBUJO", "1"), Materia: "DIBUJO", Grupo: "1", Horario: "LU 10-11"},
		{Materia: "SIN ID", Grupo: "1", Horario: "LU 10-11"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(sections, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 1, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	seen := make(map[string]int)
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "UID:") {
			seen[line]++
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct UIDs, got %v", seen)
	}
	for uid, n := range seen {
		if n > 1 {
			t.Errorf("%s appears %d times", uid, n)
		}
	}
}

func TestGenerateICS_InvalidWeeks(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS(nil, time.Now(), 0, &buf); !errors.Is(err, ErrInvalidWeeks) {
		t.Errorf("expected ErrInvalidWeeks, got %v", err)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday", time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC), time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"saturday", time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC), time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2026, 8, 16, 9, 0, 0, 0, time.UTC), time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
