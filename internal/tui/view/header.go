package view

import (
	"strconv"

	"github.com/javiermolinar/horario/internal/schedule"
)

// HourLabel formats an hour as "07:00".
func HourLabel(hour int) string {
	if hour < 10 {
		return "0" + strconv.Itoa(hour) + ":00"
	}
	return strconv.Itoa(hour) + ":00"
}

// HeaderLabels builds the hour column label followed by the six day names.
func HeaderLabels() []string {
	labels := make([]string, 0, schedule.NumWeekdays+1)
	labels = append(labels, "Hora")
	for _, d := range schedule.Weekdays() {
		labels = append(labels, d.String())
	}
	return labels
}
