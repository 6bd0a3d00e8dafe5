package convert

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// Hex formats c as #rrggbb in lowercase. Channels are not clamped; callers
// pass values already in [0, 255].
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a six digit hex color with an optional leading '#'.
// Shorthand, alpha and surrounding whitespace are rejected; ok is false for
// anything that is not exactly that shape.
func ParseHex(s string) (c RGB, ok bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	var ch [3]int
	for i, group := range m[1:] {
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// MustParseHex is like ParseHex but panics on malformed input. It is meant
// for package-level color constants.
func MustParseHex(s string) RGB {
	c, ok := ParseHex(s)
	if !ok {
		panic("convert: malformed hex color " + strconv.Quote(s))
	}
	return c
}
