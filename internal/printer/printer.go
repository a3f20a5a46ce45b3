package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables (or re-enables) ANSI styling for every render function.
func SetNoColor(disable bool) {
	if disable {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Print functions output styled text with a newline. Results go to stdout,
// diagnostics (errors and warnings) go to stderr so piped output stays clean.

// PrintFaint prints text with faint styling to stdout.
func PrintFaint(text string) {
	writeLine(os.Stdout, Faint(text))
}

// PrintBold prints text with bold styling to stdout.
func PrintBold(text string) {
	writeLine(os.Stdout, Bold(text))
}

// PrintSuccess prints text with success (green) styling to stdout.
func PrintSuccess(text string) {
	writeLine(os.Stdout, Success(text))
}

// PrintInfo prints text with info (cyan) styling to stdout.
func PrintInfo(text string) {
	writeLine(os.Stdout, Info(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	writeLine(os.Stderr, Error(text))
}

// PrintWarning prints text with warning (yellow) styling to stderr.
func PrintWarning(text string) {
	writeLine(os.Stderr, Warning(text))
}

// PrintNotice prints unstyled informational text to stderr.
func PrintNotice(text string) {
	writeLine(os.Stderr, text)
}

func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
