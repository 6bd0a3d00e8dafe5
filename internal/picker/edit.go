package picker

import (
	"errors"
	"fmt"
	"strings"

	"colorsync/internal/convert"
)

// Group identifies one set of related fields.
type Group int

const (
	// GroupNone is the source of an update that excludes nothing.
	GroupNone Group = iota
	GroupRGB
	GroupHex
	GroupHSL
	GroupHSV
	GroupCMYK
)

// Groups lists every editable group in display order.
var Groups = []Group{GroupRGB, GroupHex, GroupHSL, GroupHSV, GroupCMYK}

var groupNames = map[Group]string{
	GroupNone: "none",
	GroupRGB:  "rgb",
	GroupHex:  "hex",
	GroupHSL:  "hsl",
	GroupHSV:  "hsv",
	GroupCMYK: "cmyk",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// ParseGroup resolves a wire identifier such as "hsl" or "hsl-section".
func ParseGroup(s string) (Group, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-section")
	for _, g := range Groups {
		if groupNames[g] == s {
			return g, nil
		}
	}
	return GroupNone, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

// Field names as used by the input forms.
const (
	FieldRed           = "red"
	FieldGreen         = "green"
	FieldBlue          = "blue"
	FieldHex           = "hex"
	FieldHue           = "hue"
	FieldHSLSaturation = "hsl-saturation"
	FieldLightness     = "lightness"
	FieldHSVHue        = "hsv-hue"
	FieldHSVSaturation = "hsv-saturation"
	FieldValue         = "value"
	FieldCyan          = "cyan"
	FieldMagenta       = "magenta"
	FieldYellow        = "yellow"
	FieldKey           = "key"
)

// FieldNames returns the field names of g in form order.
func FieldNames(g Group) []string {
	switch g {
	case GroupRGB:
		return []string{FieldRed, FieldGreen, FieldBlue}
	case GroupHex:
		return []string{FieldHex}
	case GroupHSL:
		return []string{FieldHue, FieldHSLSaturation, FieldLightness}
	case GroupHSV:
		return []string{FieldHSVHue, FieldHSVSaturation, FieldValue}
	case GroupCMYK:
		return []string{FieldCyan, FieldMagenta, FieldYellow, FieldKey}
	}
	return nil
}

var (
	// ErrUnknownGroup is returned for a group identifier outside Groups.
	ErrUnknownGroup = errors.New("unknown color group")
	// ErrInvalidHex is returned when a hex edit is not a six digit color.
	// The edit is skipped and the previous state is kept.
	ErrInvalidHex = errors.New("invalid hex color")
)

// Edit carries the raw contents of every field of one group after the
// user changed any of them. Values are kept as typed.
type Edit interface {
	Group() Group
	isEdit()
}

// RGBEdit holds raw red, green and blue fields.
type RGBEdit struct{ R, G, B string }

// HexEdit holds the raw hex field.
type HexEdit struct{ Hex string }

// HSLEdit holds raw hue, saturation and lightness fields.
type HSLEdit struct{ H, S, L string }

// HSVEdit holds raw hue, saturation and value fields.
type HSVEdit struct{ H, S, V string }

// CMYKEdit holds raw cyan, magenta, yellow and key fields.
type CMYKEdit struct{ C, M, Y, K string }

func (RGBEdit) Group() Group  { return GroupRGB }
func (HexEdit) Group() Group  { return GroupHex }
func (HSLEdit) Group() Group  { return GroupHSL }
func (HSVEdit) Group() Group  { return GroupHSV }
func (CMYKEdit) Group() Group { return GroupCMYK }

func (RGBEdit) isEdit()  {}
func (HexEdit) isEdit()  {}
func (HSLEdit) isEdit()  {}
func (HSVEdit) isEdit()  {}
func (CMYKEdit) isEdit() {}

// ParseEdit builds an Edit from a group identifier and its field values
// keyed by field name. Missing fields read as empty and end up as 0.
func ParseEdit(group string, fields map[string]string) (Edit, error) {
	g, err := ParseGroup(group)
	if err != nil {
		return nil, err
	}
	return NewEdit(g, fields)
}

// NewEdit is ParseEdit for an already resolved group.
func NewEdit(g Group, fields map[string]string) (Edit, error) {
	f := func(name string) string { return fields[name] }
	switch g {
	case GroupRGB:
		return RGBEdit{R: f(FieldRed), G: f(FieldGreen), B: f(FieldBlue)}, nil
	case GroupHex:
		return HexEdit{Hex: f(FieldHex)}, nil
	case GroupHSL:
		return HSLEdit{H: f(FieldHue), S: f(FieldHSLSaturation), L: f(FieldLightness)}, nil
	case GroupHSV:
		return HSVEdit{H: f(FieldHSVHue), S: f(FieldHSVSaturation), V: f(FieldValue)}, nil
	case GroupCMYK:
		return CMYKEdit{C: f(FieldCyan), M: f(FieldMagenta), Y: f(FieldYellow), K: f(FieldKey)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, g)
}

// maxParsed caps ParseInt; it is far above every field range.
const maxParsed = 100_000_000

// ParseInt reads an integer the way a lenient form field does: leading
// whitespace, an optional sign and the leading run of digits. Anything
// after the digits is ignored. Input without digits reads as 0. Values too
// large saturate at maxParsed.
func ParseInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = min(n*10+int(s[i]-'0'), maxParsed)
	}
	if neg {
		return -n
	}
	return n
}

// clamped parses raw and clamps it to [lo, hi]. changed reports whether the
// stored value differs from what was typed.
func clamped(raw string, lo, hi int) (v int, changed bool) {
	n := ParseInt(raw)
	v = convert.Clamp(n, lo, hi)
	return v, v != n || strings.TrimSpace(raw) != fmt.Sprint(n)
}
