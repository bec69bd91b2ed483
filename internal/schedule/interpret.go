package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// TimeBlock is one resolved interval of a section on a given day.
// Start and End are whole hours with Start < End.
type TimeBlock struct {
	Day   Weekday
	Start int
	End   int
}

// String formats the block as "Lunes 10-14".
func (b TimeBlock) String() string {
	return fmt.Sprintf("%s %d-%d", b.Day, b.Start, b.End)
}

// Hours returns the number of whole hours the block covers.
func (b TimeBlock) Hours() int {
	return b.End - b.Start
}

var rangePattern = regexp.MustCompile(`^(\d{1,4})-(\d{1,4})$`)

// ParseBlocks normalizes and interprets a raw schedule string.
func ParseBlocks(text string) []TimeBlock {
	return Interpret(Normalize(text))
}

// Interpret turns normalized tokens into time blocks.
//
// A day token replaces the active day; a range token emits one block per
// active day. Ranges seen before any day and unrecognized tokens are skipped.
func Interpret(tokens []string) []TimeBlock {
	var (
		blocks []TimeBlock
		active []Weekday
	)
	for _, tok := range tokens {
		if day, ok := DayFromToken(tok); ok {
			active = []Weekday{day}
			continue
		}
		if len(active) == 0 {
			continue
		}
		start, end, ok := parseRange(tok)
		if !ok {
			continue
		}
		for _, day := range active {
			blocks = append(blocks, TimeBlock{Day: day, Start: start, End: end})
		}
	}
	return blocks
}

// parseRange parses "1330-1500" into whole-hour bounds. A fractional end is
// rounded up so the last half hour is still covered.
func parseRange(tok string) (start, end int, ok bool) {
	m := rangePattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, 0, false
	}
	ini, err := NormalizeHour(m[1])
	if err != nil {
		return 0, 0, false
	}
	fin, err := NormalizeHour(m[2])
	if err != nil {
		return 0, 0, false
	}
	start = int(ini)
	end = int(fin)
	if fin-math.Trunc(fin) > 0 {
		end++
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// NormalizeHour converts 1 to 4 digits into hours.
//
// Values above 24 are compact clock notation: 1330 is 13.5 and 1329 is 13.
// Minutes collapse to the half hour: anything from :30 up adds 0.5, anything
// below is dropped. Values up to 24 are whole hours.
func NormalizeHour(digits string) (float64, error) {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("parsing hour %q: %w", digits, err)
	}
	if v <= 24 {
		return float64(v), nil
	}
	hours := float64(v / 100)
	if v%100 >= 30 {
		hours += 0.5
	}
	return hours, nil
}
