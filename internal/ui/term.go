package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Selected date: reverse video so it stands out in any palette
	colorSelected = color.New(color.FgCyan, color.Bold, color.ReverseVideo)

	// Today: bold yellow
	colorToday = color.New(color.FgYellow, color.Bold)

	// Disabled or out of range: dim red
	colorDisabled = color.New(color.FgRed, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Positive results
	colorOK = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatSelected(s string) string {
	return colorSelected.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatDisabled(s string) string {
	return colorDisabled.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatOK(s string) string {
	return colorOK.Sprint(s)
}
