package schedule

// Weekday is a teaching day. Sunday is never scheduled by the portal.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// NumWeekdays is the number of columns in a weekly grid.
const NumWeekdays = 6

var weekdayNames = [NumWeekdays]string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// dayAbbreviations maps the two-letter tokens used in schedule text to days.
var dayAbbreviations = map[string]Weekday{
	"lu": Monday,
	"ma": Tuesday,
	"mi": Wednesday,
	"ju": Thursday,
	"vi": Friday,
	"sa": Saturday,
}

// String returns the full Spanish day name.
func (d Weekday) String() string {
	if !d.Valid() {
		return "?"
	}
	return weekdayNames[d]
}

// Valid reports whether d is one of the six teaching days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Saturday
}

// Weekdays returns Monday through Saturday in order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// DayFromToken returns the day a token names by its first two characters.
func DayFromToken(tok string) (Weekday, bool) {
	if len(tok) < 2 {
		return 0, false
	}
	d, ok := dayAbbreviations[tok[:2]]
	return d, ok
}
