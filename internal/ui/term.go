package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Plain weekdays
	colorDay = color.New(color.Reset)

	// Weekend days outside a range: yellow, as in the picker
	colorWeekend = color.New(color.FgYellow)

	// Weekdays inside the range: bold cyan
	colorSelected = color.New(color.FgCyan, color.Bold)

	// Weekend days inside the range: quieter than weekdays
	colorSelectedWeekend = color.New(color.FgYellow, color.Faint, color.Underline)

	// Today
	colorToday = color.New(color.FgGreen, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
