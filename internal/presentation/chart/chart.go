// Package chart renders the daily-stats line view and the totals view as
// terminal output.
package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	defaultPlotHeight   = 12
	minPlotWidth        = 10
	terminalWidthBackup = 80
	colorReset          = "\x1b[0m"
)

// Options controls chart sizing and color output. Zero values pick
// terminal-derived defaults.
type Options struct {
	Width      int
	Height     int
	ForceColor bool
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// colorCode converts a #RRGGBB hex color into a 24-bit ANSI foreground
// escape. Unparseable colors yield the empty string (no coloring).
func colorCode(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func colorize(s, code string, useColor bool) string {
	if !useColor || code == "" {
		return s
	}
	return code + s + colorReset
}
