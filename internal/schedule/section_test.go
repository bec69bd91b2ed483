package schedule

import (
	"errors"
	"testing"
)

func TestNewSection(t *testing.T) {
	s, err := NewSection(" Geometria I ", "1105", "LU 9-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "Geometria I (1105)" {
		t.Errorf("got ID %q, want %q", s.ID, "Geometria I (1105)")
	}
	if s.Label() != "Geometria I\n(Gr. 1105)" {
		t.Errorf("got label %q", s.Label())
	}
	if blocks := s.Blocks(); len(blocks) != 1 || blocks[0] != (TimeBlock{Monday, 9, 11}) {
		t.Errorf("got blocks %v", blocks)
	}
}

func TestNewSection_Errors(t *testing.T) {
	tests := []struct {
		name    string
		materia string
		grupo   string
		wantErr error
	}{
		{"empty course", "", "1105", ErrEmptyCourseName},
		{"blank course", "   ", "1105", ErrEmptyCourseName},
		{"empty group", "Geometria I", "", ErrEmptyGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSection(tt.materia, tt.grupo, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSection_EmptyScheduleHasNoBlocks(t *testing.T) {
	s := &Section{Materia: "Taller", Grupo: "1"}
	if got := s.Blocks(); len(got) != 0 {
		t.Errorf("expected no blocks, got %v", got)
	}
}

func TestDayFromToken(t *testing.T) {
	tests := []struct {
		tok  string
		want Weekday
		ok   bool
	}{
		{"lu", Monday, true},
		{"martes", Tuesday, true},
		{"miércoles", Wednesday, true},
		{"sab", Saturday, true},
		{"do", 0, false},
		{"l", 0, false},
		{"1000-1200", 0, false},
	}
	for _, tt := range tests {
		got, ok := DayFromToken(tt.tok)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DayFromToken(%q) = %v, %v; want %v, %v", tt.tok, got, ok, tt.want, tt.ok)
		}
	}
}
