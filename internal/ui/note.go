package ui

import (
	"fmt"
	"os"
	"strings"
)

// Note displays a boxed message with optional title
func Note(message string, title string) {
	fmt.Fprintln(Out)
	fmt.Fprint(Out, FormatNote(message, title))
	fmt.Fprintln(Out)
}

// FormatNote renders a boxed message with optional title
func FormatNote(message string, title string) string {
	lines := strings.Split(WrapNoteMessage(message, 80), "\n")

	maxWidth := VisibleWidth(title) + 2
	for _, line := range lines {
		maxWidth = max(maxWidth, VisibleWidth(line))
	}
	boxWidth := maxWidth + 2

	var b strings.Builder
	if title != "" {
		styledTitle := title
		if IsRich() {
			styledTitle = Heading("%s", title)
		}
		fmt.Fprintf(&b, "%s%s %s %s%s\n",
			Muted(boxTopLeft),
			Muted(boxHorizontal),
			styledTitle,
			Muted("%s", strings.Repeat(boxHorizontal, max(boxWidth-3-VisibleWidth(title), 0))),
			Muted(boxTopRight))
	} else {
		fmt.Fprintln(&b, Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight))
	}

	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s %s\n",
			Muted(boxVertical),
			PadRight(line, maxWidth),
			Muted(boxVertical))
	}

	fmt.Fprintln(&b, Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight))
	return b.String()
}

// WrapNoteMessage wraps text to fit within terminal width
func WrapNoteMessage(message string, maxWidth int) string {
	columns := 80
	if cols, ok := os.LookupEnv("COLUMNS"); ok {
		if n := parseIntOr(cols, 80); n > 0 {
			columns = n
		}
	}

	width := min(columns-10, maxWidth)
	if width < 40 {
		width = 40
	}

	var out []string
	for _, line := range strings.Split(message, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line to width, keeping its leading indent
func wrapLine(line string, maxWidth int) []string {
	if strings.TrimSpace(line) == "" {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	var lines []string
	current := ""

	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if VisibleWidth(indent+candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, indent+current)
		current = word
	}

	return append(lines, indent+current)
}

// parseIntOr parses an int or returns default
func parseIntOr(s string, def int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return def
	}
	return n
}

// InfoNote displays an info-styled note
func InfoNote(message string) {
	Note(message, "ℹ Info")
}

// WarningNote displays a warning-styled note
func WarningNote(message string) {
	Note(message, "⚠ Warning")
}
