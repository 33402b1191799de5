package stats

import (
	"sort"

	"github.com/wakatools/wakaview/internal/core/model"
)

// Rank returns the tracked labels ordered by descending total hours. The
// sort is stable: labels with equal totals keep their discovery order.
func (a *Aggregation) Rank() []string {
	ranked := make([]string, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.totals[ranked[i]] > a.totals[ranked[j]]
	})
	return ranked
}

// CategoryStats is the finished output of one aggregation pass, ready for
// presentation.
type CategoryStats struct {
	Category model.Category
	// Dates is the shared x-axis: every series has exactly one sample per
	// date, in this order.
	Dates []string
	// Labels is the presentation order: descending by total.
	Labels []string
	Series map[string][]float64
	Totals map[string]float64
}

// Empty reports whether the pass retained no data at all.
func (s *CategoryStats) Empty() bool {
	return len(s.Dates) == 0 || len(s.Labels) == 0
}

// Result finishes the aggregation and returns its output. The aggregation
// retains ownership of the underlying slices and maps; callers must not keep
// using the Aggregation afterwards.
func (a *Aggregation) Result() *CategoryStats {
	return &CategoryStats{
		Category: a.category,
		Dates:    a.dates,
		Labels:   a.Rank(),
		Series:   a.series,
		Totals:   a.totals,
	}
}

// Aggregate runs the whole pipeline for one category: window filter, label
// discovery, series building, totals, unification, and ranking.
func Aggregate(days []model.Day, category model.Category, opts Options) *CategoryStats {
	a := NewAggregation(category, opts)
	a.AddDays(days)
	a.ComputeTotals()
	a.Unify(opts.MinLabelingPercentage)
	return a.Result()
}
