package schedule

import "strings"

// separators are replaced with a space, never removed, so that a time range
// followed directly by a day token ("1000-1200,mi") stays two tokens.
var separators = []string{",", ";", ".", " y ", " e ", " - "}

// Normalize lowercases and tokenizes a raw schedule string.
// Clock notation loses its colon ("10:00" becomes "1000").
// Returns nil for empty input.
func Normalize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	s := strings.ToLower(text)
	for _, sep := range separators {
		s = strings.ReplaceAll(s, sep, " ")
	}
	s = strings.ReplaceAll(s, ":", "")
	return strings.Fields(s)
}
