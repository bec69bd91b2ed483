package portal

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/javiermolinar/horario/internal/schedule"
)

// ParseMode selects which column layout a result table uses.
type ParseMode int

const (
	ModeEstandar ParseMode = iota
	ModeAsignaturaContexto
	ModeProfesor
	ModeGenero
)

// ProfesorPlaceholder fills the instructor column of professor searches,
// whose tables do not list the instructor.
const ProfesorPlaceholder = "BUSQUEDA PROFESOR"

// Separator cell colors that mark a shift.
var turnoColors = []struct {
	hex   string
	turno string
}{
	{"64C2FD", schedule.TurnoMatutino},
	{"FFA97C", schedule.TurnoVespertino},
}

// scanState is the context carried from separator rows to the data rows below them.
type scanState struct {
	Context string
	Turno   string
}

func initialState() scanState {
	return scanState{Context: "General", Turno: schedule.TurnoIndistinto}
}

// Parse reads the largest table in an HTML document and returns its data rows as sections.
func Parse(r io.Reader, mode ParseMode) ([]*schedule.Section, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := largestTable(doc)
	if table == nil {
		return nil, nil
	}

	var sections []*schedule.Section
	state := initialState()
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var sec *schedule.Section
		state, sec = scanRow(row, state, mode)
		if sec != nil {
			sections = append(sections, sec)
		}
	})
	return sections, nil
}

func largestTable(doc *goquery.Document) *goquery.Selection {
	var (
		best     *goquery.Selection
		bestRows = -1
	)
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		if n := t.Find("tr").Length(); n > bestRows {
			best, bestRows = t, n
		}
	})
	return best
}

// scanRow consumes one table row. Separator rows update and return the state;
// data rows return a section and leave the state untouched.
func scanRow(row *goquery.Selection, state scanState, mode ParseMode) (scanState, *schedule.Section) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return state, nil
	}

	if !row.HasClass("sombreado") {
		return scanSeparator(cells.First(), state), nil
	}

	if cells.Length() < 5 {
		return state, nil
	}
	return state, parseDataRow(cells, state, mode)
}

// scanSeparator reads a header cell spanning several columns.
//
// The shift only changes when the cell carries one of the shift colors; an
// uncolored header keeps the previous shift, even across workshops.
func scanSeparator(cell *goquery.Selection, state scanState) scanState {
	if _, ok := cell.Attr("colspan"); !ok {
		return state
	}

	style, _ := cell.Attr("style")
	style = strings.ToUpper(style)
	text := strings.TrimSpace(cell.Text())

	for _, tc := range turnoColors {
		if strings.Contains(style, tc.hex) {
			state.Turno = tc.turno
			break
		}
	}

	switch {
	case text == "":
	case strings.Contains(text, "Taller:"):
		state.Context = strings.TrimSpace(strings.ReplaceAll(text, "Taller:", ""))
	case strings.Contains(text, "Cursos Optativos"):
		state.Context = strings.TrimSpace(strings.ReplaceAll(text, "Cursos Optativos Área", ""))
		state.Turno = schedule.TurnoIndistinto
	case strings.Contains(text, "LIP:"):
		state.Context = strings.TrimSpace(strings.SplitN(text, "LIP:", 2)[1])
	}
	return state
}

func parseDataRow(cells *goquery.Selection, state scanState, mode ParseMode) *schedule.Section {
	cell := func(i int) *goquery.Selection { return cells.Eq(i) }
	text := func(i int) string { return cleanText(cell(i).Text()) }

	sec := &schedule.Section{
		Clave: text(0),
		Grupo: text(2),
	}

	switch mode {
	case ModeProfesor:
		sec.Materia = text(1)
		sec.Agrupacion = text(4)
		sec.Profesor = ProfesorPlaceholder
		sec.Turno = schedule.TurnoND
		if cells.Length() > 5 {
			sec.Horario = scheduleText(cell(5))
		}
	case ModeGenero:
		sec.Materia = text(1)
		sec.Profesor = text(4)
		if cells.Length() > 5 {
			sec.Horario = text(5)
		}
		sec.Agrupacion = "Requisito Género"
		sec.Turno = schedule.TurnoIndistinto
	default:
		materia := cell(1).Text()
		if i := strings.Index(materia, "LIP:"); i >= 0 {
			materia = materia[:i]
		}
		sec.Materia = cleanText(materia)
		sec.Profesor = text(4)
		if cells.Length() > 5 {
			sec.Horario = scheduleText(cell(5))
		}
		sec.Agrupacion = state.Context
		sec.Turno = state.Turno
	}

	sec.ID = schedule.SectionID(sec.Materia, sec.Grupo)
	return sec
}

// scheduleText prefers the bold fragments of a cell, where the portal puts day and time.
func scheduleText(cell *goquery.Selection) string {
	bold := cell.Find("b")
	if bold.Length() == 0 {
		return strings.TrimSpace(cell.Text())
	}
	parts := make([]string, 0, bold.Length())
	bold.Each(func(_ int, b *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(b.Text()))
	})
	return strings.Join(parts, " / ")
}

// cleanText drops the "+ " instructor markers and line breaks.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "+ ", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
