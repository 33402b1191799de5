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

const axisSeparator = " │ "

// RenderDaily draws one category's per-label hour series as a braille line
// chart over the retained dates. All series share one scale from zero to the
// largest sample, so line heights are directly comparable. Nothing is drawn
// for an empty result.
func RenderDaily(w io.Writer, st *stats.CategoryStats, palette *colors.Palette, opts Options) error {
	if st.Empty() {
		return nil
	}

	height := opts.Height
	if height <= 0 {
		height = defaultPlotHeight
	}

	maxVal := 0.0
	for _, name := range st.Labels {
		for _, v := range st.Series[name] {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	axisLabels := makeAxisLabels(height, maxVal)
	axisWidth := 0
	for _, l := range axisLabels {
		if lw := runewidth.StringWidth(l); lw > axisWidth {
			axisWidth = lw
		}
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth() - axisWidth - runewidth.StringWidth(axisSeparator)
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	// Draw in rank order: when series overlap in a cell, the label with the
	// larger total keeps the color.
	grid := newBrailleGrid(height, width)
	for idx, name := range st.Labels {
		plotLine(grid, idx, resample(st.Series[name], width), maxVal)
	}

	useColor := shouldUseColor(w, opts.ForceColor)
	codes := make([]string, len(st.Labels))
	for i, name := range st.Labels {
		codes[i] = colorCode(palette.Color(name))
	}

	if _, err := fmt.Fprintf(w, "%s — daily stats, t (h)\n", st.Category.Title()); err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", axisWidth, axisLabels[y], axisSeparator))
		for x := 0; x < width; x++ {
			mask, owner := grid.cell(x, y)
			ch := string(brailleFromMask(mask))
			if owner >= 0 {
				ch = colorize(ch, codes[owner], useColor)
			}
			row.WriteString(ch)
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	if err := renderDateAxis(w, st.Dates, axisWidth, width); err != nil {
		return err
	}
	return renderLegend(w, st, codes, useColor)
}

// renderDateAxis prints the window endpoints under the plot area.
func renderDateAxis(w io.Writer, dates []string, axisWidth, width int) error {
	first, last := dates[0], dates[len(dates)-1]
	pad := width - runewidth.StringWidth(first)
	line := first
	if last != first && pad > runewidth.StringWidth(last) {
		line = first + strings.Repeat(" ", pad-runewidth.StringWidth(last)) + last
	}
	_, err := fmt.Fprintf(w, "%*s%s%s\n", axisWidth, "", axisSeparator, line)
	return err
}

func renderLegend(w io.Writer, st *stats.CategoryStats, codes []string, useColor bool) error {
	marker := string(brailleFromMask(0x3F))
	parts := make([]string, 0, len(st.Labels))
	for i, name := range st.Labels {
		label := fmt.Sprintf("%s %s (%s)", marker, name, util.FormatHours(st.Totals[name]))
		parts = append(parts, colorize(label, codes[i], useColor))
	}
	if _, err := fmt.Fprintln(w, strings.Join(parts, "  ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func makeAxisLabels(height int, maxVal float64) []string {
	labels := make([]string, height)
	if height == 0 {
		return labels
	}
	labels[0] = util.FormatHours(maxVal)
	if height > 2 {
		labels[height/2] = util.FormatHours(maxVal / 2)
	}
	if height > 1 {
		labels[height-1] = "0"
	}
	return labels
}

// brailleGrid holds one braille dot mask per cell plus the index of the
// series that first touched the cell.
type brailleGrid struct {
	height int
	width  int
	masks  [][]uint8
	owners [][]int
}

func newBrailleGrid(height, width int) *brailleGrid {
	g := &brailleGrid{
		height: height,
		width:  width,
		masks:  make([][]uint8, height),
		owners: make([][]int, height),
	}
	for y := 0; y < height; y++ {
		g.masks[y] = make([]uint8, width)
		g.owners[y] = make([]int, width)
		for x := range g.owners[y] {
			g.owners[y][x] = -1
		}
	}
	return g
}

func (g *brailleGrid) cell(x, y int) (uint8, int) {
	return g.masks[y][x], g.owners[y][x]
}

// setDot marks one braille dot; dot coordinates are twice the cell width
// and four times the cell height.
func (g *brailleGrid) setDot(series, x, y int) {
	cellY, cellX := y/4, x/2
	if cellY < 0 || cellY >= g.height || cellX < 0 || cellX >= g.width {
		return
	}
	g.masks[cellY][cellX] |= brailleDotMask(x%2, y%4)
	if g.owners[cellY][cellX] < 0 {
		g.owners[cellY][cellX] = series
	}
}

// plotLine draws one series into the grid, connecting consecutive samples
// with line segments.
func plotLine(g *brailleGrid, series int, values []float64, maxVal float64) {
	dotHeight := g.height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		row := valueToRow(v, maxVal, dotHeight)
		px, py := x*2, row
		if prevX >= 0 {
			drawLine(prevX, prevY, px, py, func(dx, dy int) {
				g.setDot(series, dx, dy)
			})
		} else {
			g.setDot(series, px, py)
		}
		prevX, prevY = px, py
	}
}

// valueToRow maps a sample onto a dot row, zero at the bottom.
func valueToRow(v, maxVal float64, dotHeight int) int {
	if dotHeight <= 1 || maxVal <= 0 {
		return dotHeight - 1
	}
	pos := v / maxVal
	row := int(math.Round((1 - pos) * float64(dotHeight-1)))
	if row < 0 {
		row = 0
	}
	if row >= dotHeight {
		row = dotHeight - 1
	}
	return row
}

// resample stretches or shrinks a series to the plot width. Shrinking
// averages buckets; stretching interpolates linearly.
func resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func brailleDotMask(x, y int) uint8 {
	masks := [4][2]uint8{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	if x < 0 || x > 1 || y < 0 || y > 3 {
		return 0
	}
	return masks[y][x]
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
