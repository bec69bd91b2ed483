package portal

import (
	"net/url"
	"strconv"
)

// Fixed taller values the portal uses for non-workshop listings.
const (
	tallerComplementarios = 18
	tallerOptativas       = 19
	semestreGenero        = 20
)

// Search describes one portal query: endpoint, form fields and how to read the result.
type Search struct {
	Name     string
	Endpoint string
	Form     url.Values
	Mode     ParseMode
}

func tallerForm(tal, talsem int) url.Values {
	return url.Values{
		"tal":    {strconv.Itoa(tal)},
		"talsem": {strconv.Itoa(talsem)},
	}
}

// TallerSearch lists a workshop's offerings for one semester. Semester 0 lists all.
func TallerSearch(taller, semestre int) Search {
	return Search{
		Name:     "taller",
		Endpoint: "taller.php",
		Form:     tallerForm(taller, semestre),
		Mode:     ModeEstandar,
	}
}

// OptativasSearch lists electives of a knowledge area. Area 0 lists all.
func OptativasSearch(area int) Search {
	return Search{
		Name:     "optativas",
		Endpoint: "taller.php",
		Form:     tallerForm(tallerOptativas, area),
		Mode:     ModeEstandar,
	}
}

// LIPSearch lists electives of a line of professional interest.
func LIPSearch(lip int) Search {
	return Search{
		Name:     "lip",
		Endpoint: "LipHorarios.php",
		Form:     tallerForm(tallerOptativas, lip),
		Mode:     ModeEstandar,
	}
}

// ComplementariosSearch lists complementary courses for a semester.
func ComplementariosSearch(semestre int) Search {
	return Search{
		Name:     "complementarios",
		Endpoint: "taller.php",
		Form:     tallerForm(tallerComplementarios, semestre),
		Mode:     ModeEstandar,
	}
}

// AsignaturaSearch lists every group of one course.
func AsignaturaSearch(asignatura int) Search {
	return Search{
		Name:     "asignatura",
		Endpoint: "asignatura.php",
		Form:     url.Values{"asig": {strconv.Itoa(asignatura)}},
		Mode:     ModeAsignaturaContexto,
	}
}

// GeneroSearch lists groups that satisfy the gender-studies requirement.
func GeneroSearch() Search {
	return Search{
		Name:     "genero",
		Endpoint: "genero.php",
		Form:     tallerForm(tallerComplementarios, semestreGenero),
		Mode:     ModeGenero,
	}
}

// ProfesorSearch lists a professor's groups. id is the portal's "RFC|NAME" value.
func ProfesorSearch(id string) Search {
	return Search{
		Name:     "profesor",
		Endpoint: "profe.php",
		Form:     url.Values{"idprof": {id}},
		Mode:     ModeProfesor,
	}
}
