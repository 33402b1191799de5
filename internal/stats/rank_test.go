package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakatools/wakaview/internal/core/model"
)

func TestRankDescendingByTotal(t *testing.T) {
	days := []model.Day{
		day("2024-01-01", entry("HTML", 1800), entry("Python", 7200), entry("Go", 3600)),
	}

	a := NewAggregation(model.CategoryLanguages, Options{})
	a.AddDays(days)
	a.ComputeTotals()

	ranked := a.Rank()
	assert.Equal(t, []string{"Python", "Go", "HTML"}, ranked)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, a.Total(ranked[i-1]), a.Total(ranked[i]))
	}
}

func TestRankTiesPreserveDiscoveryOrder(t *testing.T) {
	days := []model.Day{
		day("2024-01-01", entry("HTML", 3600), entry("Go", 3600), entry("Python", 7200)),
	}

	a := NewAggregation(model.CategoryLanguages, Options{})
	a.AddDays(days)
	a.ComputeTotals()

	// HTML and Go are tied; HTML was discovered first and must stay ahead.
	assert.Equal(t, []string{"Python", "HTML", "Go"}, a.Rank())
}

func TestAggregateSingleLabel(t *testing.T) {
	days := []model.Day{
		day("2024-01-01", entry("Python", 3600)),
		day("2024-01-02", entry("Python", 3600)),
		day("2024-01-03", entry("Python", 3600)),
	}

	result := Aggregate(days, model.CategoryLanguages, Options{})

	require.Equal(t, []string{"Python"}, result.Labels)
	assert.Equal(t, []float64{1.0, 1.0, 1.0}, result.Series["Python"])
	assert.InDelta(t, 3.0, result.Totals["Python"], 1e-9)
}

func TestAggregateWithUnification(t *testing.T) {
	days := []model.Day{
		day("2024-01-01", entry("Python", 3600), entry("HTML", 1200)),
		day("2024-01-02", entry("Python", 3600), entry("HTML", 1200)),
		day("2024-01-03", entry("Python", 3600), entry("HTML", 1200)),
	}

	result := Aggregate(days, model.CategoryLanguages, Options{
		MinLabelingPercentage: 50.0,
	})

	require.Equal(t, []string{"Python", OtherLabel}, result.Labels)
	assert.InDelta(t, 3.0, result.Totals["Python"], 1e-9)
	assert.InDelta(t, 1.0, result.Totals[OtherLabel], 1e-9)
}

func TestAggregateIsDeterministic(t *testing.T) {
	days := []model.Day{
		day("2024-01-01", entry("Python", 3600), entry("HTML", 1234), entry("Go", 555)),
		day("2024-01-02", entry("Go", 7200), entry("Python", 100)),
		day("2024-01-03"),
	}
	opts := Options{MinLabelingPercentage: 10.0}

	first := Aggregate(days, model.CategoryLanguages, opts)
	second := Aggregate(days, model.CategoryLanguages, opts)

	assert.Equal(t, first.Dates, second.Dates)
	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Series, second.Series)
	assert.Equal(t, first.Totals, second.Totals)
}

func TestResultEmpty(t *testing.T) {
	result := Aggregate(nil, model.CategoryEditors, Options{})
	assert.True(t, result.Empty())
	assert.Empty(t, result.Dates)
	assert.Empty(t, result.Labels)
}
