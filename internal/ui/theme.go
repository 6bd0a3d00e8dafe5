package ui

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"colorsync/internal/convert"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	// Check color support
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

// Out is where every ui function writes. It defaults to the colorable
// stdout of fatih/color and is swapped in tests.
var Out io.Writer = color.Output

func init() {
	if forceColor && !noColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// IsInteractive reports whether stdin is a terminal a user can type into.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// paletteColor builds a 24-bit foreground from a palette entry.
func paletteColor(c convert.RGB, attrs ...color.Attribute) *color.Color {
	return color.RGB(c.R, c.G, c.B).Add(attrs...)
}

// Theme color functions - wrapping fatih/color for consistency

// Accent returns primary brand-colored text
func Accent(format string, a ...interface{}) string {
	return paletteColor(Palette.Accent).Sprintf(format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return paletteColor(Palette.AccentDim).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return paletteColor(Palette.Success).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return paletteColor(Palette.Warn).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return paletteColor(Palette.Error).Sprintf(format, a...)
}

// Info returns informational styled text
func Info(format string, a ...interface{}) string {
	return paletteColor(Palette.Info).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return paletteColor(Palette.Muted).Sprintf(format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return paletteColor(Palette.AccentBright, color.Bold).Sprintf(format, a...)
}

// Command returns command/code styled text
func Command(format string, a ...interface{}) string {
	return color.New(color.FgCyan, color.Bold).Sprintf(format, a...)
}

// Subtle returns subtle white text
func Subtle(format string, a ...interface{}) string {
	return color.New(color.FgWhite).Sprintf(format, a...)
}
