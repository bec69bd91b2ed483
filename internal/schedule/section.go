// Package schedule defines the course section types and the schedule-text interpreter.
package schedule

import (
	"errors"
	"strings"
)

// Validation errors.
var (
	ErrEmptyCourseName = errors.New("course name cannot be empty")
	ErrEmptyGroup      = errors.New("group cannot be empty")
)

// Domain errors.
var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrDuplicateSection = errors.New("section already in collection")
)

// Shift labels assigned by the portal's colored separator rows.
const (
	TurnoMatutino   = "Matutino"
	TurnoVespertino = "Vespertino"
	TurnoIndistinto = "Indistinto"
	TurnoND         = "ND"
)

// Section is a course offering selected from the portal.
type Section struct {
	ID         string // course name + group, unique within a collection
	Clave      string // course key, e.g. "1140"
	Materia    string // course name
	Grupo      string // group code
	Profesor   string // optional
	Horario    string // raw schedule text, e.g. "LU 10:00-14:00, MI 9-12"
	Agrupacion string // workshop / area the row was listed under
	Turno      string
}

// NewSection creates a Section with its ID derived from course name and group.
func NewSection(materia, grupo, horario string) (*Section, error) {
	materia = strings.TrimSpace(materia)
	grupo = strings.TrimSpace(grupo)
	if materia == "" {
		return nil, ErrEmptyCourseName
	}
	if grupo == "" {
		return nil, ErrEmptyGroup
	}
	return &Section{
		ID:      SectionID(materia, grupo),
		Materia: materia,
		Grupo:   grupo,
		Horario: horario,
	}, nil
}

// SectionID returns the identifier used for a course name and group.
func SectionID(materia, grupo string) string {
	return strings.TrimSpace(materia) + " (" + strings.TrimSpace(grupo) + ")"
}

// Label returns the two-line grid label for the section.
func (s *Section) Label() string {
	return s.Materia + "\n(Gr. " + s.Grupo + ")"
}

// Blocks interprets the section's schedule text.
func (s *Section) Blocks() []TimeBlock {
	return ParseBlocks(s.Horario)
}
