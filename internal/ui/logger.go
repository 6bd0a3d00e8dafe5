package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Console palette for log lines
var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrAccent = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)

	badgePrimary = color.New(color.BgMagenta, color.FgWhite, color.Bold)
)

// Box-drawing characters for banners and notes
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Version is printed in the banner.
const Version = "v1.0.0"

// DebugOut receives debug lines, kept off Out where the picker is drawn.
var DebugOut io.Writer = color.Error

// debugEnabled gates LogStatus("debug", ...).
var debugEnabled = false

// SetLevel configures the minimum level from a LOG_LEVEL style string.
func SetLevel(level string) {
	debugEnabled = strings.EqualFold(strings.TrimSpace(level), "debug")
}

// now is swapped in tests for stable timestamps.
var now = time.Now

func timestamp() string {
	return clrDim.Sprint(now().Format("15:04:05"))
}

// PrintBanner displays the boxed product header
func PrintBanner() {
	fmt.Fprintln(Out)

	badge := badgePrimary.Sprint(" ◆ COLORSYNC ")
	version := clrDim.Sprint(Version)
	inner := 60

	fmt.Fprintln(Out, clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, inner)+boxTopRight))

	title := "  " + badge + " " + version
	fmt.Fprintln(Out, clrDim.Sprint(boxVertical)+PadRight(title, inner)+clrDim.Sprint(boxVertical))

	subtitle := "  " + clrSubtle.Sprint("RGB · HEX · HSL · HSV · CMYK")
	fmt.Fprintln(Out, clrDim.Sprint(boxVertical)+PadRight(subtitle, inner)+clrDim.Sprint(boxVertical))

	fmt.Fprintln(Out, clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, inner)+boxBottomRight))
	fmt.Fprintln(Out)
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon string
	var styledMsg string
	w := Out

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		if !debugEnabled {
			return
		}
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
		w = DebugOut
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(w, "%s  %s  %s\n", timestamp(), icon, styledMsg)
}

// LogSection creates a section header
func LogSection(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", max(50-VisibleWidth(title), 0))))
}

// LogGracefulShutdown reports a clean exit
func LogGracefulShutdown() {
	LogStatus("info", "Shutting down gracefully...")
}

// PrintFooter displays a dim closing hint
func PrintFooter(message string) {
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "  %s %s\n", clrDim.Sprint("▸"), clrDim.Sprint(message))
}
