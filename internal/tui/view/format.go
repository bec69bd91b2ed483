// Package view renders schedule grids, section lists and footers.
package view

import "fmt"

// FormatHours formats a weekly hour count as "Xh".
func FormatHours(hours int) string {
	return fmt.Sprintf("%dh", hours)
}
