package ui

import (
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key      string
	Header   string
	Align    Align
	MinWidth int
}

// TableBorder style for tables
type TableBorder int

const (
	BorderUnicode TableBorder = iota
	BorderASCII
	BorderNone
)

// ParseBorder maps a config value to a border style, unicode by default.
func ParseBorder(s string) TableBorder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return BorderASCII
	case "none":
		return BorderNone
	}
	return BorderUnicode
}

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	Border  TableBorder
	Padding int
}

// Box drawing characters
type boxChars struct {
	tl, tr, bl, br  string // corners
	h, v            string // horizontal, vertical
	t, ml, m, mr, b string // tees and crosses
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
	noBox = boxChars{v: " "}
)

// RenderTable renders a formatted table. Cell widths ignore ANSI codes so
// colored cells line up.
func RenderTable(opts RenderTableOptions) string {
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	box := unicodeBox
	switch opts.Border {
	case BorderASCII:
		box = asciiBox
	case BorderNone:
		box = noBox
	}

	// Content width per column: widest of header and cells
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		w := max(VisibleWidth(col.Header), col.MinWidth)
		for _, row := range opts.Rows {
			w = max(w, VisibleWidth(row[col.Key]))
		}
		widths[i] = w
	}

	hLine := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+opts.Padding*2)
		}
		return left + strings.Join(parts, mid) + right
	}

	padStr := spaces(opts.Padding)
	renderRow := func(values []string) string {
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			cell := PadRight(values[i], widths[i])
			if col.Align == AlignRight {
				cell = PadLeft(values[i], widths[i])
			}
			parts[i] = padStr + cell + padStr
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	var lines []string
	if opts.Border != BorderNone {
		lines = append(lines, hLine(box.tl, box.t, box.tr))
	}

	headers := make([]string, len(opts.Columns))
	for i, col := range opts.Columns {
		headers[i] = col.Header
	}
	lines = append(lines, renderRow(headers))

	if opts.Border != BorderNone {
		lines = append(lines, hLine(box.ml, box.m, box.mr))
	}

	for _, row := range opts.Rows {
		values := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			values[i] = row[col.Key]
		}
		lines = append(lines, renderRow(values))
	}

	if opts.Border != BorderNone {
		lines = append(lines, hLine(box.bl, box.b, box.br))
	}

	return strings.Join(lines, "\n") + "\n"
}
