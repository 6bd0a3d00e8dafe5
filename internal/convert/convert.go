// Package convert maps colors between RGB, hex, HSL, HSV and CMYK.
//
// RGB is the canonical representation: every conversion routes through it.
// All functions are pure and round to integers (degrees, percent, 0-255
// channels) independently per component, so round trips through HSL, HSV
// and CMYK may drift by a few units.
package convert

import "math"

// Representation ranges.
const (
	MaxChannel = 255
	MaxHue     = 360
	MaxPercent = 100
)

// RGB is a color with 8-bit red, green and blue channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is hue in degrees, saturation and lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// HSV is hue in degrees, saturation and value in percent.
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// CMYK is cyan, magenta, yellow and key (black) in percent.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Clamp returns c with every channel restricted to [0, 255].
func (c RGB) Clamp() RGB {
	return RGB{
		R: Clamp(c.R, 0, MaxChannel),
		G: Clamp(c.G, 0, MaxChannel),
		B: Clamp(c.B, 0, MaxChannel),
	}
}

// Clamp returns c with hue in [0, 360] and percentages in [0, 100].
func (c HSL) Clamp() HSL {
	return HSL{
		H: Clamp(c.H, 0, MaxHue),
		S: Clamp(c.S, 0, MaxPercent),
		L: Clamp(c.L, 0, MaxPercent),
	}
}

// Clamp returns c with hue in [0, 360] and percentages in [0, 100].
func (c HSV) Clamp() HSV {
	return HSV{
		H: Clamp(c.H, 0, MaxHue),
		S: Clamp(c.S, 0, MaxPercent),
		V: Clamp(c.V, 0, MaxPercent),
	}
}

// Clamp returns c with every component in [0, 100].
func (c CMYK) Clamp() CMYK {
	return CMYK{
		C: Clamp(c.C, 0, MaxPercent),
		M: Clamp(c.M, 0, MaxPercent),
		Y: Clamp(c.Y, 0, MaxPercent),
		K: Clamp(c.K, 0, MaxPercent),
	}
}

// round converts to the nearest integer, halves away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

// unit normalizes c to [0, 1] channels.
func (c RGB) unit() (r, g, b float64) {
	return float64(c.R) / MaxChannel, float64(c.G) / MaxChannel, float64(c.B) / MaxChannel
}

// hue returns the hue of a normalized, chromatic color as a fraction of a
// full turn in [0, 1). d is max-min and must be non-zero.
func hue(r, g, b, maxC, d float64) float64 {
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}
