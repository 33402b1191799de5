// Package reporter wires the pipeline together: load the export, run the
// aggregation engine per requested category, and render the charts.
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/data/parser"
	"github.com/wakatools/wakaview/internal/presentation/chart"
	"github.com/wakatools/wakaview/internal/presentation/colors"
	"github.com/wakatools/wakaview/internal/stats"
	"github.com/wakatools/wakaview/internal/util"
)

// Config selects what one invocation reports on.
type Config struct {
	FilePath string

	// Graphs and Totals list the categories for the daily-stats view and
	// the totals view. A category may appear in both.
	Graphs []model.Category
	Totals []model.Category

	// Options is handed to the aggregation engine unchanged.
	Options stats.Options

	// ColorsDir overrides the built-in label palettes.
	ColorsDir string

	ChartWidth  int
	ChartHeight int
	ForceColor  bool
}

// Reporter runs one report.
type Reporter struct {
	config *Config
	out    io.Writer
}

// New creates a Reporter writing to stdout.
func New(config *Config) *Reporter {
	return NewWithWriter(config, os.Stdout)
}

// NewWithWriter creates a Reporter writing to the given writer.
func NewWithWriter(config *Config, w io.Writer) *Reporter {
	return &Reporter{config: config, out: w}
}

// Run executes the full pipeline. Each category is aggregated once even
// when it appears in both views; the daily-stats charts are drawn first,
// then the totals, both in canonical category order.
func (r *Reporter) Run() error {
	summary, err := parser.LoadSummary(r.config.FilePath)
	if err != nil {
		return err
	}

	results := make(map[model.Category]*stats.CategoryStats)
	palettes := make(map[model.Category]*colors.Palette)
	for _, category := range union(r.config.Graphs, r.config.Totals) {
		results[category] = stats.Aggregate(summary.Days, category, r.config.Options)

		palette, err := colors.Load(r.config.ColorsDir, category)
		if err != nil {
			return err
		}
		palettes[category] = palette

		if results[category].Empty() {
			util.LogInfo(fmt.Sprintf("No %s data in the selected date range", category))
		}
	}

	opts := chart.Options{
		Width:      r.config.ChartWidth,
		Height:     r.config.ChartHeight,
		ForceColor: r.config.ForceColor,
	}
	for _, category := range r.config.Graphs {
		if err := chart.RenderDaily(r.out, results[category], palettes[category], opts); err != nil {
			return fmt.Errorf("render %s graphs: %w", category, err)
		}
	}
	for _, category := range r.config.Totals {
		if err := chart.RenderTotals(r.out, results[category], palettes[category], opts); err != nil {
			return fmt.Errorf("render %s totals: %w", category, err)
		}
	}
	return nil
}

// union merges two category lists into canonical order without duplicates.
func union(a, b []model.Category) []model.Category {
	requested := make(map[model.Category]bool, len(a)+len(b))
	for _, c := range a {
		requested[c] = true
	}
	for _, c := range b {
		requested[c] = true
	}
	var out []model.Category
	for _, c := range model.AllCategories {
		if requested[c] {
			out = append(out, c)
		}
	}
	return out
}
