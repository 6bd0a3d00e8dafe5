package picker

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"colorsync/internal/convert"
)

func TestInitialIsBlack(t *testing.T) {
	u := Initial()
	want := State{
		RGB:  convert.RGB{R: 0, G: 0, B: 0},
		Hex:  "#000000",
		HSL:  convert.HSL{H: 0, S: 0, L: 0},
		HSV:  convert.HSV{H: 0, S: 0, V: 0},
		CMYK: convert.CMYK{C: 0, M: 0, Y: 0, K: 100},
	}
	if diff := cmp.Diff(want, u.State); diff != "" {
		t.Errorf("Initial() mismatch (-want +got):\n%s", diff)
	}
	if u.Source != GroupNone {
		t.Errorf("Initial().Source = %v, want none", u.Source)
	}
	if got := len(u.Views()); got != 4 {
		t.Errorf("Initial() has %d views, want all 4 numeric groups", got)
	}
}

func TestApplyRGBClamps(t *testing.T) {
	tests := []struct {
		name     string
		edit     RGBEdit
		want     convert.RGB
		adjusted int
	}{
		{"in range", RGBEdit{"10", "20", "30"}, convert.RGB{R: 10, G: 20, B: 30}, 0},
		{"too large", RGBEdit{"999", "255", "0"}, convert.RGB{R: 255, G: 255, B: 0}, 1},
		{"negative", RGBEdit{"-5", "1", "2"}, convert.RGB{R: 0, G: 1, B: 2}, 1},
		{"empty", RGBEdit{"", "", ""}, convert.RGB{}, 3},
		{"garbage", RGBEdit{"abc", "12px", " 7"}, convert.RGB{R: 0, G: 12, B: 7}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Apply(State{}, tt.edit)
			if err != nil {
				t.Fatal(err)
			}
			if u.State.RGB != tt.want {
				t.Errorf("RGB = %+v, want %+v", u.State.RGB, tt.want)
			}
			if u.Adjusted != tt.adjusted {
				t.Errorf("Adjusted = %d, want %d", u.Adjusted, tt.adjusted)
			}
			if diff := cmp.Diff(Derive(tt.want), u.State); diff != "" {
				t.Errorf("derived views mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyKeepsSourceVerbatim(t *testing.T) {
	u, err := Apply(Initial().State, HSLEdit{H: "120", S: "50", L: "50"})
	if err != nil {
		t.Fatal(err)
	}
	want := State{
		RGB:  convert.RGB{R: 64, G: 191, B: 64},
		Hex:  "#40bf40",
		HSL:  convert.HSL{H: 120, S: 50, L: 50},
		HSV:  convert.HSV{H: 120, S: 66, V: 75},
		CMYK: convert.CMYK{C: 66, M: 0, Y: 66, K: 25},
	}
	if diff := cmp.Diff(want, u.State); diff != "" {
		t.Errorf("Apply(hsl) mismatch (-want +got):\n%s", diff)
	}
	if u.Preview() != want.RGB {
		t.Errorf("Preview() = %+v, want %+v", u.Preview(), want.RGB)
	}

	views := u.Views()
	if _, ok := views[GroupHSL]; ok {
		t.Error("Views() includes the edited HSL group")
	}
	wantViews := map[Group]map[string]int{
		GroupRGB:  {FieldRed: 64, FieldGreen: 191, FieldBlue: 64},
		GroupHSV:  {FieldHSVHue: 120, FieldHSVSaturation: 66, FieldValue: 75},
		GroupCMYK: {FieldCyan: 66, FieldMagenta: 0, FieldYellow: 66, FieldKey: 25},
	}
	if diff := cmp.Diff(wantViews, views); diff != "" {
		t.Errorf("Views() mismatch (-want +got):\n%s", diff)
	}
}

// A source value must survive even when its round trip would round it
// elsewhere.
func TestApplyDoesNotRoundTripSource(t *testing.T) {
	tests := []struct {
		edit  Edit
		check func(State) bool
	}{
		{HSLEdit{"181", "98", "45"}, func(s State) bool { return s.HSL == convert.HSL{H: 181, S: 98, L: 45} }},
		{HSVEdit{"214", "100", "100"}, func(s State) bool { return s.HSV == convert.HSV{H: 214, S: 100, V: 100} }},
		{CMYKEdit{"100", "2", "0", "75"}, func(s State) bool { return s.CMYK == convert.CMYK{C: 100, M: 2, Y: 0, K: 75} }},
	}
	for _, tt := range tests {
		u, err := Apply(State{}, tt.edit)
		if err != nil {
			t.Fatal(err)
		}
		if !tt.check(u.State) {
			t.Errorf("%T: source group overwritten: %+v", tt.edit, u.State)
		}
	}
}

func TestApplyHSV(t *testing.T) {
	u, err := Apply(State{}, HSVEdit{"200", "80", "90"})
	if err != nil {
		t.Fatal(err)
	}
	want := State{
		RGB:  convert.RGB{R: 46, G: 168, B: 230},
		Hex:  "#2ea8e6",
		HSL:  convert.HSL{H: 200, S: 79, L: 54},
		HSV:  convert.HSV{H: 200, S: 80, V: 90},
		CMYK: convert.CMYK{C: 80, M: 27, Y: 0, K: 10},
	}
	if diff := cmp.Diff(want, u.State); diff != "" {
		t.Errorf("Apply(hsv) mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyCMYK(t *testing.T) {
	u, err := Apply(State{}, CMYKEdit{"10", "20", "30", "40"})
	if err != nil {
		t.Fatal(err)
	}
	want := State{
		RGB:  convert.RGB{R: 138, G: 122, B: 107},
		Hex:  "#8a7a6b",
		HSL:  convert.HSL{H: 29, S: 13, L: 48},
		HSV:  convert.HSV{H: 29, S: 22, V: 54},
		CMYK: convert.CMYK{C: 10, M: 20, Y: 30, K: 40},
	}
	if diff := cmp.Diff(want, u.State); diff != "" {
		t.Errorf("Apply(cmyk) mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyClampsNonRGBSources(t *testing.T) {
	u, err := Apply(State{}, HSLEdit{"400", "-3", "150"})
	if err != nil {
		t.Fatal(err)
	}
	if want := (convert.HSL{H: 360, S: 0, L: 100}); u.State.HSL != want {
		t.Errorf("HSL = %+v, want %+v", u.State.HSL, want)
	}
	if want := (convert.RGB{R: 255, G: 255, B: 255}); u.State.RGB != want {
		t.Errorf("RGB = %+v, want %+v", u.State.RGB, want)
	}
	if u.Adjusted != 3 {
		t.Errorf("Adjusted = %d, want 3", u.Adjusted)
	}

	u, err = Apply(State{}, CMYKEdit{"", "", "", "200"})
	if err != nil {
		t.Fatal(err)
	}
	if want := (convert.CMYK{K: 100}); u.State.CMYK != want {
		t.Errorf("CMYK = %+v, want %+v", u.State.CMYK, want)
	}
	if u.State.RGB != (convert.RGB{}) {
		t.Errorf("RGB = %+v, want black", u.State.RGB)
	}
}

func TestApplyHex(t *testing.T) {
	u, err := Apply(State{}, HexEdit{"FF8A00"})
	if err != nil {
		t.Fatal(err)
	}
	if u.State.Hex != "FF8A00" {
		t.Errorf("Hex = %q, want the typed text", u.State.Hex)
	}
	if want := (convert.RGB{R: 255, G: 138, B: 0}); u.State.RGB != want {
		t.Errorf("RGB = %+v, want %+v", u.State.RGB, want)
	}
	if want := (convert.HSL{H: 32, S: 100, L: 50}); u.State.HSL != want {
		t.Errorf("HSL = %+v, want %+v", u.State.HSL, want)
	}
	if got := len(u.Views()); got != 4 {
		t.Errorf("Views() after hex edit has %d groups, want 4", got)
	}
}

func TestApplyInvalidHexSkipsUpdate(t *testing.T) {
	prev := Derive(convert.RGB{R: 1, G: 2, B: 3})
	for _, in := range []string{"", "#fff", "#12345g", "#1234567"} {
		u, err := Apply(prev, HexEdit{in})
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("Apply(hex %q) error = %v, want ErrInvalidHex", in, err)
		}
		if diff := cmp.Diff(prev, u.State); diff != "" {
			t.Errorf("Apply(hex %q) changed state (-want +got):\n%s", in, diff)
		}
	}
}

func TestApplyNilEdit(t *testing.T) {
	prev := Derive(convert.RGB{R: 9, G: 9, B: 9})
	u, err := Apply(prev, nil)
	if !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("Apply(nil) error = %v, want ErrUnknownGroup", err)
	}
	if u.State != prev {
		t.Errorf("Apply(nil) changed state")
	}
}

func TestApplyIgnoresPreviousState(t *testing.T) {
	e := HSVEdit{"10", "20", "30"}
	a, _ := Apply(State{}, e)
	b, _ := Apply(Derive(convert.RGB{R: 200, G: 100, B: 50}), e)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Apply depends on previous state (-a +b):\n%s", diff)
	}
}

func TestParseEdit(t *testing.T) {
	tests := []struct {
		group  string
		fields map[string]string
		want   Edit
	}{
		{"rgb", map[string]string{"red": "1", "green": "2", "blue": "3"}, RGBEdit{"1", "2", "3"}},
		{"rgb-section", map[string]string{"red": "1"}, RGBEdit{"1", "", ""}},
		{"HEX", map[string]string{"hex": "#abcdef"}, HexEdit{"#abcdef"}},
		{"hsl", map[string]string{"hue": "1", "hsl-saturation": "2", "lightness": "3"}, HSLEdit{"1", "2", "3"}},
		{"hsv", map[string]string{"hsv-hue": "1", "hsv-saturation": "2", "value": "3"}, HSVEdit{"1", "2", "3"}},
		{"cmyk", map[string]string{"cyan": "1", "magenta": "2", "yellow": "3", "key": "4"}, CMYKEdit{"1", "2", "3", "4"}},
		{"cmyk", nil, CMYKEdit{}},
	}
	for _, tt := range tests {
		got, err := ParseEdit(tt.group, tt.fields)
		if err != nil {
			t.Errorf("ParseEdit(%q): %v", tt.group, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseEdit(%q) mismatch (-want +got):\n%s", tt.group, diff)
		}
	}

	if _, err := ParseEdit("lab", nil); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("ParseEdit(lab) error = %v, want ErrUnknownGroup", err)
	}
	if _, err := NewEdit(GroupNone, nil); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("NewEdit(none) error = %v, want ErrUnknownGroup", err)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"  42", 42},
		{"+7", 7},
		{"-5", -5},
		{"12.9", 12},
		{"50abc", 50},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{"99999999999999999999999", maxParsed},
		{"-99999999999999999999999", -maxParsed},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGroupNames(t *testing.T) {
	for _, g := range Groups {
		back, err := ParseGroup(g.String())
		if err != nil || back != g {
			t.Errorf("ParseGroup(%q) = %v, %v", g.String(), back, err)
		}
		if g != GroupHex && len(State{}.Fields(g)) != len(FieldNames(g)) {
			t.Errorf("%v: Fields and FieldNames disagree", g)
		}
	}
	if got := Group(42).String(); got != "group(42)" {
		t.Errorf("Group(42).String() = %q", got)
	}
}
