package ui

import "colorsync/internal/convert"

// Palette is the set of theme colors, declared as hex so they read the same
// as the values the picker shows.
var Palette = struct {
	Accent       convert.RGB // Primary brand color
	AccentBright convert.RGB // Highlighted/active state
	AccentDim    convert.RGB // Muted accent

	Info    convert.RGB // Informational messages
	Success convert.RGB // Success/completion
	Warn    convert.RGB // Warnings
	Error   convert.RGB // Errors

	Muted convert.RGB // Secondary text, hints, metadata
}{
	Accent:       convert.MustParseHex("#FF5A2D"),
	AccentBright: convert.MustParseHex("#FF7A3D"),
	AccentDim:    convert.MustParseHex("#D14A22"),
	Info:         convert.MustParseHex("#FF8A5B"),
	Success:      convert.MustParseHex("#2FBF71"),
	Warn:         convert.MustParseHex("#FFB020"),
	Error:        convert.MustParseHex("#E23D2D"),
	Muted:        convert.MustParseHex("#8B7F77"),
}
