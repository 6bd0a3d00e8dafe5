package ui

import (
	"github.com/fatih/color"

	"colorsync/internal/convert"
)

// Swatch renders c as a solid 24-bit block of the given width labelled
// with its hex value. Without color support it falls back to the CSS form
// so the preview still carries the value.
func Swatch(c convert.RGB, width int) string {
	label := c.Hex()
	if !IsRich() {
		return "[" + c.CSS() + "]"
	}

	text := PadRight(" "+label, width)
	bg := color.BgRGB(c.R, c.G, c.B)
	if c.HSL().L >= 50 {
		return bg.AddRGB(0, 0, 0).Sprint(text) + " " + Muted("%s", c.CSS())
	}
	return bg.AddRGB(255, 255, 255).Sprint(text) + " " + Muted("%s", c.CSS())
}
