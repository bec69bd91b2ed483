// Package catalog holds the portal's search dictionaries: workshops, elective
// areas, lines of professional interest, common courses and sample professors.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknownKind = errors.New("unknown catalog")
	ErrNotFound    = errors.New("no catalog entry matches")
	ErrAmbiguous   = errors.New("several catalog entries match")
)

// Kind names one dictionary.
type Kind string

const (
	Talleres    Kind = "taller"
	Areas       Kind = "area"
	LIPs        Kind = "lip"
	Asignaturas Kind = "asignatura"
	Profesores  Kind = "profesor"
)

// AllValue is the value of the entries that select every option.
const AllValue = "0"

// Entry is a display name and the value the portal expects for it.
type Entry struct {
	Name  string
	Value string
}

// Int returns the value as a number.
func (e Entry) Int() (int, error) {
	return strconv.Atoi(e.Value)
}

// All reports whether the entry selects every option.
func (e Entry) All() bool {
	return e.Value == AllValue
}

var dictionaries = map[Kind]map[string]string{
	Talleres: numbered{
		"- TODOS -":                0,
		"ANTONIO GARCÍA GAYOU":     3,
		"CARLOS LAZO BARREIRO":     8,
		"CARLOS LEDUC MONTAÑO":     11,
		"HANNES MEYER":             13,
		"JORGE GONZÁLEZ REYNA":     5,
		"JOSÉ VILLAGRÁN GARCÍA":    4,
		"JUAN O GORMAN":            16,
		"LUIS BARRAGÁN":            7,
		"MAX CETTO":                15,
		"TALLER UNO":               10,
		"DOMINGO GARCÍA RAMOS":     2,
		"EHECATL 21":               14,
		"FEDERICO MARISCAL Y PIÑA": 6,
		"JOSÉ REVUELTAS":           17,
		"RAMÓN MARCOS NORIEGA":     9,
		"TALLER TRES":              12,
	}.strings(),
	Areas: numbered{
		"- TODAS LAS ÁREAS -":     0,
		"Extensión Universitaria": 40,
		"Proyecto":                41,
		"Tecnología":              42,
		"Teoría Historia":         43,
		"Urbano Ambiental":        44,
	}.strings(),
	LIPs: numbered{
		"- TODAS LAS LÍNEAS -":      0,
		"CRITICA Y REFLEXION":       4110,
		"CULTURA Y CONSER.DEL PAT":  4111,
		"DISEÑO DEL HABIT.Y MED.AM": 4112,
		"ESTRUCT.Y TECNOL.CONSTRU":  4113,
		"EXPRESIVIDAD ARQUITECTONI": 4114,
		"GERENCIA DE PROYECTOS":     4115,
		"GEST.EN LA PROD.DEL HABIT": 4116,
		"PROCESO PROYECTUAL":        4117,
	}.strings(),
	Asignaturas: numbered{
		"1135 - ARQUEOLOGIA DEL HABITAT I": 1135,
		"1137 - GEOMETRIA I":               1137,
		"1140 - TALLER INTEGRAL I":         1140,
		"1555 - TALLER INTEGRAL III":       1555,
		"1238 - SISTEMAS AMBIENTALES II":   1238,
	}.strings(),
	// Professor values are the portal's "RFC|NAME" identifiers.
	Profesores: {
		"ABUD RAMIREZ RAMON":       "AURR6106285A0|ABUD RAMIREZ RAMON, MTRO.",
		"AGUADO VILLARCE ARTURO":   "AUVA530411PQ0|AGUADO VILLARCE ARTURO, ARQ.",
		"CALDERON KLUCZYNSKI JOSE": "CAKJ6204196I5|CALDERON KLUCZYNSKI JOSE, MTRO.",
		"MIRANDA CRUZ JOSE":        "MICJ510803UV6|MIRANDA CRUZ JOSE, ARQ.",
	},
}

type numbered map[string]int

func (n numbered) strings() map[string]string {
	out := make(map[string]string, len(n))
	for name, v := range n {
		out[name] = strconv.Itoa(v)
	}
	return out
}

// Kinds lists the dictionaries in display order.
func Kinds() []Kind {
	return []Kind{Talleres, Areas, LIPs, Asignaturas, Profesores}
}

// ParseKind validates a dictionary name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dictionaries[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Entries returns the entries of a dictionary in Spanish collation order,
// with the select-all entry first.
func Entries(kind Kind) ([]Entry, error) {
	dict, ok := dictionaries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	entries := make([]Entry, 0, len(dict))
	for name, value := range dict {
		entries = append(entries, Entry{Name: name, Value: value})
	}
	col := collate.New(language.Spanish, collate.Loose)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].All() != entries[j].All() {
			return entries[i].All()
		}
		return col.CompareString(entries[i].Name, entries[j].Name) < 0
	})
	return entries, nil
}

// Names returns the display names of a dictionary in the order of Entries.
func Names(kind Kind) ([]string, error) {
	entries, err := Entries(kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Lookup finds an entry ignoring case and accents. An exact name or value wins;
// otherwise the query must be contained in exactly one name.
func Lookup(kind Kind, query string) (Entry, error) {
	entries, err := Entries(kind)
	if err != nil {
		return Entry{}, err
	}

	q := Fold(query)
	if q == "" {
		return Entry{}, fmt.Errorf("%w: empty query", ErrNotFound)
	}

	var partial []Entry
	for _, e := range entries {
		name := Fold(e.Name)
		if name == q || e.Value == strings.TrimSpace(query) {
			return e, nil
		}
		if strings.Contains(name, q) {
			partial = append(partial, e)
		}
	}

	switch len(partial) {
	case 0:
		return Entry{}, fmt.Errorf("%w %q in %s", ErrNotFound, query, kind)
	case 1:
		return partial[0], nil
	default:
		names := make([]string, len(partial))
		for i, e := range partial {
			names[i] = e.Name
		}
		return Entry{}, fmt.Errorf("%w %q: %s", ErrAmbiguous, query, strings.Join(names, ", "))
	}
}

// Fold lowercases s, removes diacritics and collapses inner whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(out)), " ")
}
