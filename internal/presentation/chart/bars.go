package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wakatools/wakaview/internal/presentation/colors"
	"github.com/wakatools/wakaview/internal/stats"
	"github.com/wakatools/wakaview/internal/util"
)

const (
	barRune      = '█'
	minBarWidth  = 10
	barGutterLen = 2
)

// RenderTotals draws one category's totals as a proportional horizontal bar
// list, largest share first. Nothing is drawn for an empty result.
func RenderTotals(w io.Writer, st *stats.CategoryStats, palette *colors.Palette, opts Options) error {
	if st.Empty() {
		return nil
	}

	var grand float64
	for _, name := range st.Labels {
		grand += st.Totals[name]
	}

	labelWidth := 0
	for _, name := range st.Labels {
		if lw := runewidth.StringWidth(name); lw > labelWidth {
			labelWidth = lw
		}
	}

	// Rows look like: "Python  ████████  75.0%  92.6 h".
	shareWidth := runewidth.StringWidth("100.0%")
	hoursWidth := 0
	for _, name := range st.Labels {
		if hw := runewidth.StringWidth(util.FormatHours(st.Totals[name])); hw > hoursWidth {
			hoursWidth = hw
		}
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}
	barWidth := width - labelWidth - shareWidth - hoursWidth - 3*barGutterLen
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	useColor := shouldUseColor(w, opts.ForceColor)

	if _, err := fmt.Fprintf(w, "%s — total %s\n", st.Category.Title(), util.FormatHours(grand)); err != nil {
		return err
	}
	gutter := strings.Repeat(" ", barGutterLen)
	for _, name := range st.Labels {
		share := 0.0
		if grand > 0 {
			share = st.Totals[name] / grand * 100.0
		}
		fill := barLength(share, barWidth)
		bar := colorize(strings.Repeat(string(barRune), fill), colorCode(palette.Color(name)), useColor)
		bar += strings.Repeat(" ", barWidth-fill)

		line := runewidth.FillRight(name, labelWidth) + gutter + bar +
			gutter + runewidth.FillLeft(util.FormatShare(share), shareWidth) +
			gutter + runewidth.FillLeft(util.FormatHours(st.Totals[name]), hoursWidth)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// barLength scales a percentage share onto the bar column, always giving a
// non-zero share at least one cell.
func barLength(share float64, barWidth int) int {
	if share <= 0 {
		return 0
	}
	n := int(math.Round(share / 100.0 * float64(barWidth)))
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}
