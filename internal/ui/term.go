package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Course names: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Conflicts: bold red so they are hard to miss
	colorConflict = color.New(color.FgRed, color.Bold)

	// Warnings: yellow
	colorWarning = color.New(color.FgYellow)

	// Success: green for completed actions
	colorSuccess = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120 // sensible default
	}
	return width
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColor disables all color output, including lipgloss rendering.
func DisableColor() {
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatCourse formats a course label.
func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

// formatConflict formats conflict output.
func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

// formatWarning formats a warning.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatSuccess formats a completed action.
func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
