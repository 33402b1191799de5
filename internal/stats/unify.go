package stats

import (
	"fmt"

	"github.com/wakatools/wakaview/internal/util"
)

// ComputeTotals derives each tracked label's total hours from its series.
// Totals are recomputed from scratch, so calling it again after further
// mutations always reflects the current series.
func (a *Aggregation) ComputeTotals() {
	for _, name := range a.order {
		var sum float64
		for _, v := range a.series[name] {
			sum += v
		}
		a.totals[name] = sum
	}
}

// Total returns the total hours for a label.
func (a *Aggregation) Total(name string) float64 {
	return a.totals[name]
}

// GrandTotal returns the sum of all tracked labels' totals.
func (a *Aggregation) GrandTotal() float64 {
	var grand float64
	for _, name := range a.order {
		grand += a.totals[name]
	}
	return grand
}

// Unify folds every label whose share of the grand total is strictly below
// minPct into the "Other" bucket. The bucket's series is the element-wise sum
// of the folded series, so the grand total is preserved. With no tracked
// labels, an all-zero grand total, or a non-positive threshold, Unify is a
// no-op.
//
// A genuine upstream label named "Other" collides with the synthetic bucket;
// folded time is then merged into the real label's series. Known limitation
// inherited from the data format.
func (a *Aggregation) Unify(minPct float64) {
	if minPct <= 0 || len(a.order) == 0 {
		return
	}

	grand := a.GrandTotal()
	if grand == 0.0 {
		// Every share would be 0/0; skip rather than propagate NaN.
		return
	}

	bucket, created := a.series[OtherLabel]
	if !created {
		bucket = make([]float64, len(a.dates))
	}

	var folded []string
	for _, name := range a.order {
		if name == OtherLabel {
			continue
		}
		if a.totals[name]/grand*100.0 < minPct {
			for i, v := range a.series[name] {
				bucket[i] += v
			}
			folded = append(folded, name)
		}
	}

	if len(folded) == 0 {
		return
	}

	if _, exists := a.series[OtherLabel]; !exists {
		a.order = append(a.order, OtherLabel)
	}
	a.series[OtherLabel] = bucket

	for _, name := range folded {
		a.totals[OtherLabel] += a.totals[name]
		delete(a.series, name)
		delete(a.totals, name)
	}
	a.order = without(a.order, folded)

	util.LogDebug(fmt.Sprintf("Unified %s: folded %d labels under %q (threshold %.1f%%)",
		a.category, len(folded), OtherLabel, minPct))
}

func without(order []string, removed []string) []string {
	drop := toSet(removed)
	kept := order[:0]
	for _, name := range order {
		if _, ok := drop[name]; !ok {
			kept = append(kept, name)
		}
	}
	return kept
}
