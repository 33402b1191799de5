package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/presentation/colors"
	"github.com/wakatools/wakaview/internal/stats"
)

func sampleStats() *stats.CategoryStats {
	return &stats.CategoryStats{
		Category: model.CategoryLanguages,
		Dates:    []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		Labels:   []string{"Python", "Other"},
		Series: map[string][]float64{
			"Python": {1.0, 2.0, 1.5},
			"Other":  {0.5, 0.0, 0.25},
		},
		Totals: map[string]float64{
			"Python": 4.5,
			"Other":  0.75,
		},
	}
}

func TestRenderDaily(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDaily(&buf, sampleStats(), colors.NewPalette(nil), Options{Width: 40, Height: 8})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Languages — daily stats")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-03")
	assert.Contains(t, out, "Python (4.5 h)")
	assert.Contains(t, out, "Other (45 min)")

	// Title + plot rows + date axis + legend + trailing blank line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 8+3)
}

func TestRenderDailyEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := &stats.CategoryStats{Category: model.CategoryEditors}
	require.NoError(t, RenderDaily(&buf, empty, colors.NewPalette(nil), Options{}))
	assert.Empty(t, buf.String())
}

func TestRenderDailyColorEscapes(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var plain, colored bytes.Buffer
	st := sampleStats()
	palette := colors.NewPalette(map[string]string{"Python": "#3572A5"})

	require.NoError(t, RenderDaily(&plain, st, palette, Options{Width: 30, Height: 6}))
	require.NoError(t, RenderDaily(&colored, st, palette, Options{Width: 30, Height: 6, ForceColor: true}))

	assert.NotContains(t, plain.String(), "\x1b[38;2;")
	assert.Contains(t, colored.String(), "\x1b[38;2;53;114;165m")
}

func TestResample(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   []float64
	}{
		{name: "same width copies", values: []float64{1, 2, 3}, width: 3, want: []float64{1, 2, 3}},
		{name: "shrink averages buckets", values: []float64{1, 3, 5, 7}, width: 2, want: []float64{2, 6}},
		{name: "stretch interpolates", values: []float64{0, 2}, width: 3, want: []float64{0, 1, 2}},
		{name: "single value repeats", values: []float64{4}, width: 3, want: []float64{4, 4, 4}},
		{name: "empty input", values: nil, width: 5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resample(tt.values, tt.width))
		})
	}
}

func TestValueToRow(t *testing.T) {
	// 8 dot rows: the maximum lands on top, zero on the bottom.
	assert.Equal(t, 0, valueToRow(10, 10, 8))
	assert.Equal(t, 7, valueToRow(0, 10, 8))
	assert.Equal(t, 4, valueToRow(5, 10, 8))
}

func TestColorCode(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;53;114;165m", colorCode("#3572A5"))
	assert.Equal(t, "", colorCode("3572A5"))
	assert.Equal(t, "", colorCode("#35"))
	assert.Equal(t, "", colorCode("#GGGGGG"))
}
