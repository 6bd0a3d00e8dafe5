// Package console is a line-oriented front end for a picker session: each
// command edits one field group and the whole picker is redrawn.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"colorsync/internal/picker"
	"colorsync/internal/session"
	"colorsync/internal/ui"
)

var helpCommands = [][2]string{
	{"rgb R G B", "set red, green, blue (0-255)"},
	{"hex #RRGGBB", "set the hex color"},
	{"hsl H S L", "set hue (0-360), saturation and lightness (0-100)"},
	{"hsv H S V", "set hue (0-360), saturation and value (0-100)"},
	{"cmyk C M Y K", "set cyan, magenta, yellow, key (0-100)"},
	{"show", "redraw the picker"},
	{"reset", "back to black"},
	{"help", "this text"},
	{"quit", "leave"},
}

func helpText() string {
	var b strings.Builder
	for _, c := range helpCommands {
		fmt.Fprintf(&b, "%s %s\n", ui.PadRight(ui.Command("%s", c[0]), 18), ui.Subtle("%s", c[1]))
	}
	b.WriteString("Missing or unreadable values count as 0; out of range values are clamped.")
	return b.String()
}

// Options tune the rendering.
type Options struct {
	SwatchWidth int
	Border      ui.TableBorder
}

// Console reads commands from in and draws the picker to out.
type Console struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	opts    Options
}

// New creates a console over s.
func New(s *session.Session, in io.Reader, out io.Writer, opts Options) *Console {
	if opts.SwatchWidth <= 0 {
		opts.SwatchWidth = 24
	}
	return &Console{session: s, in: in, out: out, opts: opts}
}

// errQuit ends Run without error.
var errQuit = errors.New("quit")

// Run draws the current state, then executes one command per line until
// quit, end of input or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	c.draw(c.session.Last())
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := c.Exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
			c.prompt()
		}
	}
}

func (c *Console) prompt() {
	fmt.Fprint(c.out, ui.Accent("› "))
}

// Exec runs one command line. Only quit is reported as an error; bad
// input is explained on out and otherwise ignored.
func (c *Console) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprint(c.out, ui.FormatNote(helpText(), "Commands"))
		return nil
	case "show":
		c.draw(c.session.Last())
		return nil
	case "reset":
		c.draw(c.session.Reset())
		return nil
	}

	g, err := picker.ParseGroup(cmd)
	if err != nil {
		c.warn(fmt.Sprintf("unknown command %q, try help", args[0]))
		return nil
	}

	fields := make(map[string]string)
	for i, name := range picker.FieldNames(g) {
		if i+1 < len(args) {
			fields[name] = args[i+1]
		}
	}

	e, err := picker.NewEdit(g, fields)
	if err != nil {
		c.warn(err.Error())
		return nil
	}
	u, err := c.session.Apply(e)
	if err != nil {
		c.warn(fmt.Sprintf("%v: %q ignored, expected #RRGGBB", err, fields[picker.FieldHex]))
		return nil
	}
	c.draw(u)
	return nil
}

func (c *Console) warn(msg string) {
	fmt.Fprintf(c.out, "  %s %s\n", ui.Warn("⚠"), ui.Warn("%s", msg))
}

// draw prints the preview swatch and a row per group. The edited group is
// marked; its values are shown exactly as stored from the input.
func (c *Console) draw(u picker.Update) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "  %s\n\n", ui.Swatch(u.Preview(), c.opts.SwatchWidth))

	rows := make([]map[string]string, 0, len(picker.Groups))
	for _, g := range picker.Groups {
		mark := ""
		if g == u.Source {
			mark = "✎"
		}
		rows = append(rows, map[string]string{
			"mark":   mark,
			"group":  strings.ToUpper(g.String()),
			"value":  formatGroup(u.State, g),
			"fields": ui.AccentDim("%s", strings.Join(picker.FieldNames(g), " ")),
		})
	}

	table := ui.RenderTable(ui.RenderTableOptions{
		Columns: []ui.TableColumn{
			{Key: "mark", Header: "", MinWidth: 1},
			{Key: "group", Header: "Group"},
			{Key: "value", Header: "Value"},
			{Key: "fields", Header: "Fields"},
		},
		Rows:   rows,
		Border: c.opts.Border,
	})
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		fmt.Fprintf(c.out, "  %s\n", line)
	}
	fmt.Fprintln(c.out)
}

func formatGroup(s picker.State, g picker.Group) string {
	switch g {
	case picker.GroupRGB:
		return fmt.Sprintf("%d, %d, %d", s.RGB.R, s.RGB.G, s.RGB.B)
	case picker.GroupHex:
		return s.Hex
	case picker.GroupHSL:
		return fmt.Sprintf("%d°, %d%%, %d%%", s.HSL.H, s.HSL.S, s.HSL.L)
	case picker.GroupHSV:
		return fmt.Sprintf("%d°, %d%%, %d%%", s.HSV.H, s.HSV.S, s.HSV.V)
	case picker.GroupCMYK:
		return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", s.CMYK.C, s.CMYK.M, s.CMYK.Y, s.CMYK.K)
	}
	return ""
}
