// Package picker keeps the field groups of a color picker consistent.
//
// RGB is the single canonical value. When one group is edited, its fields
// are clamped, converted to RGB, and every other group is derived from that
// RGB. The edited group keeps its clamped values verbatim so a value being
// typed is never replaced by its rounded round trip (typing 50 into
// lightness must not bounce to 49).
//
// Nothing is retained between calls: Apply is a function of the previous
// State and the Edit.
package picker

import "colorsync/internal/convert"

// State is the value of every field group at one instant.
type State struct {
	RGB  convert.RGB  `json:"rgb"`
	Hex  string       `json:"hex"`
	HSL  convert.HSL  `json:"hsl"`
	HSV  convert.HSV  `json:"hsv"`
	CMYK convert.CMYK `json:"cmyk"`
}

// Update is the outcome of applying an edit.
type Update struct {
	// Source is the edited group, GroupNone for a full derivation.
	Source Group
	State  State
	// Adjusted counts source fields whose stored value differs from the
	// raw text, because it was unparseable, padded or out of range.
	Adjusted int
}

// Derive computes every group from c with no group excluded.
func Derive(c convert.RGB) State {
	return derive(c, GroupNone, State{})
}

// Initial is the state shown before any input: black in every group.
func Initial() Update {
	return Update{Source: GroupNone, State: Derive(convert.RGB{})}
}

// Apply clamps the edited group, recomputes canonical RGB and derives the
// remaining groups from it. A HexEdit that does not parse leaves prev
// untouched and returns ErrInvalidHex.
func Apply(prev State, e Edit) (Update, error) {
	var (
		src      State
		rgb      convert.RGB
		adjusted int
	)

	field := func(raw string, hi int) int {
		v, changed := clamped(raw, 0, hi)
		if changed {
			adjusted++
		}
		return v
	}

	switch e := e.(type) {
	case RGBEdit:
		rgb = convert.RGB{
			R: field(e.R, convert.MaxChannel),
			G: field(e.G, convert.MaxChannel),
			B: field(e.B, convert.MaxChannel),
		}
	case HexEdit:
		c, ok := convert.ParseHex(e.Hex)
		if !ok {
			return Update{Source: GroupHex, State: prev}, ErrInvalidHex
		}
		rgb = c
		src.Hex = e.Hex
	case HSLEdit:
		src.HSL = convert.HSL{
			H: field(e.H, convert.MaxHue),
			S: field(e.S, convert.MaxPercent),
			L: field(e.L, convert.MaxPercent),
		}
		rgb = src.HSL.RGB()
	case HSVEdit:
		src.HSV = convert.HSV{
			H: field(e.H, convert.MaxHue),
			S: field(e.S, convert.MaxPercent),
			V: field(e.V, convert.MaxPercent),
		}
		rgb = src.HSV.RGB()
	case CMYKEdit:
		src.CMYK = convert.CMYK{
			C: field(e.C, convert.MaxPercent),
			M: field(e.M, convert.MaxPercent),
			Y: field(e.Y, convert.MaxPercent),
			K: field(e.K, convert.MaxPercent),
		}
		rgb = src.CMYK.RGB()
	default:
		return Update{Source: GroupNone, State: prev}, ErrUnknownGroup
	}

	return Update{
		Source:   e.Group(),
		State:    derive(rgb, e.Group(), src),
		Adjusted: adjusted,
	}, nil
}

// derive fills every group from c except skip, which is copied from src.
func derive(c convert.RGB, skip Group, src State) State {
	s := src
	s.RGB = c
	if skip != GroupHex {
		s.Hex = c.Hex()
	}
	if skip != GroupHSL {
		s.HSL = c.HSL()
	}
	if skip != GroupHSV {
		s.HSV = c.HSV()
	}
	if skip != GroupCMYK {
		s.CMYK = c.CMYK()
	}
	return s
}

// Preview is the color to render as the preview background.
func (u Update) Preview() convert.RGB {
	return u.State.RGB
}

// Views returns field values for every numeric group other than the
// source, which the caller must leave as the user typed it. Hex is a text
// group and is not included; read it from State.Hex.
func (u Update) Views() map[Group]map[string]int {
	views := make(map[Group]map[string]int)
	for _, g := range Groups {
		if g == u.Source || g == GroupHex {
			continue
		}
		views[g] = u.State.Fields(g)
	}
	return views
}

// Fields returns the integer field values of a numeric group keyed by
// field name, or nil for GroupHex and GroupNone.
func (s State) Fields(g Group) map[string]int {
	switch g {
	case GroupRGB:
		return map[string]int{FieldRed: s.RGB.R, FieldGreen: s.RGB.G, FieldBlue: s.RGB.B}
	case GroupHSL:
		return map[string]int{FieldHue: s.HSL.H, FieldHSLSaturation: s.HSL.S, FieldLightness: s.HSL.L}
	case GroupHSV:
		return map[string]int{FieldHSVHue: s.HSV.H, FieldHSVSaturation: s.HSV.S, FieldValue: s.HSV.V}
	case GroupCMYK:
		return map[string]int{FieldCyan: s.CMYK.C, FieldMagenta: s.CMYK.M, FieldYellow: s.CMYK.Y, FieldKey: s.CMYK.K}
	}
	return nil
}
