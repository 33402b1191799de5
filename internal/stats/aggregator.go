// Package stats implements the aggregation engine: it filters day records by
// date window, discovers labels, builds per-label hour series aligned to the
// retained dates, folds low-share labels into the synthetic "Other" bucket,
// and ranks labels by total time.
package stats

import (
	"fmt"

	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/util"
)

const (
	// OtherLabel is the synthetic bucket low-share labels are folded into.
	OtherLabel = "Other"

	// MinDate and MaxDate bound the date window when no explicit range is
	// configured. Dates compare lexicographically in YYYY-MM-DD form.
	MinDate = "0001-01-01"
	MaxDate = "9999-12-31"

	secondsPerHour = 3600.0
)

// Options configures one aggregation pass.
type Options struct {
	// StartDate and EndDate bound the window, inclusive on both ends.
	// Empty means unbounded.
	StartDate string
	EndDate   string

	// SearchedLabels, when non-empty, is an allow-list: only these labels
	// are tracked and IgnoredLabels is not consulted. Otherwise every label
	// not in IgnoredLabels is tracked.
	SearchedLabels []string
	IgnoredLabels  []string

	// MinLabelingPercentage folds labels whose share of the grand total is
	// strictly below this percentage into the "Other" bucket. Zero or
	// negative disables unification.
	MinLabelingPercentage float64
}

// Aggregation accumulates one category's statistics for a single run. All
// state is owned by the instance; nothing is shared across categories or
// across runs.
type Aggregation struct {
	category model.Category

	startDate string
	endDate   string
	searched  map[string]struct{}
	ignored   map[string]struct{}

	// dates holds the retained dates in source order. Every series in the
	// series map has exactly len(dates) samples at all times.
	dates  []string
	order  []string // labels in first-seen order
	series map[string][]float64
	totals map[string]float64
}

// NewAggregation creates an empty aggregation context for one category.
func NewAggregation(category model.Category, opts Options) *Aggregation {
	start := opts.StartDate
	if start == "" {
		start = MinDate
	}
	end := opts.EndDate
	if end == "" {
		end = MaxDate
	}
	return &Aggregation{
		category:  category,
		startDate: start,
		endDate:   end,
		searched:  toSet(opts.SearchedLabels),
		ignored:   toSet(opts.IgnoredLabels),
		series:    make(map[string][]float64),
		totals:    make(map[string]float64),
	}
}

func toSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// tracks reports whether a label participates in this aggregation. A
// non-empty search list acts as an allow-list and shadows the ignore list.
func (a *Aggregation) tracks(name string) bool {
	if len(a.searched) > 0 {
		_, ok := a.searched[name]
		return ok
	}
	_, ignored := a.ignored[name]
	return !ignored
}

// inWindow reports whether a date falls inside the configured range.
func (a *Aggregation) inWindow(date string) bool {
	return date >= a.startDate && date <= a.endDate
}

// AddDays folds day records into the aggregation in source order. Days
// outside the date window are skipped entirely; their labels are neither
// discovered nor zero-filled.
func (a *Aggregation) AddDays(days []model.Day) {
	for i := range days {
		if !a.inWindow(days[i].Date) {
			continue
		}
		a.addDay(&days[i])
	}
	util.LogDebug(fmt.Sprintf("Aggregated %s: %d retained dates, %d labels",
		a.category, len(a.dates), len(a.order)))
}

// addDay appends one retained date and one sample per tracked label.
// Labels are unique per day per category upstream; the engine does not
// re-check that precondition.
func (a *Aggregation) addDay(day *model.Day) {
	a.dates = append(a.dates, day.Date)

	for _, entry := range day.Entries(a.category) {
		if !a.tracks(entry.Name) {
			continue
		}
		if _, known := a.series[entry.Name]; !known {
			// Backfill zeros for the dates this label missed.
			a.order = append(a.order, entry.Name)
			a.series[entry.Name] = make([]float64, len(a.dates)-1)
		}
		a.series[entry.Name] = append(a.series[entry.Name], entry.TotalSeconds/secondsPerHour)
	}

	// Every label absent from this day still gets a zero sample so all
	// series stay aligned with the retained-date axis.
	for _, name := range a.order {
		if len(a.series[name]) < len(a.dates) {
			a.series[name] = append(a.series[name], 0.0)
		}
	}
}

// Dates returns the retained dates in source order.
func (a *Aggregation) Dates() []string {
	return a.dates
}

// Labels returns the tracked labels in discovery order.
func (a *Aggregation) Labels() []string {
	return a.order
}

// Series returns the hour series for a label, or nil if the label is not
// tracked.
func (a *Aggregation) Series(name string) []float64 {
	return a.series[name]
}
