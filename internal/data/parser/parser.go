// Package parser loads WakaTime daily-activity exports from disk.
package parser

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/util"
)

// LoadSummary reads and decodes the export at the given path. Any read or
// decode failure is fatal for the run; the engine never aggregates a
// partially loaded document.
func LoadSummary(path string) (*model.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stats file: %w", err)
	}

	var summary model.Summary
	if err := sonic.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse stats file %s: %w", path, err)
	}

	if err := validate(&summary); err != nil {
		return nil, fmt.Errorf("invalid stats file %s: %w", path, err)
	}

	util.LogDebug(fmt.Sprintf("Loaded %s: %d days", path, len(summary.Days)))
	return &summary, nil
}

// validate checks the fields the aggregation relies on. Date strings must be
// calendar dates in YYYY-MM-DD form so that lexicographic window comparison
// is sound; entry times must be non-negative.
func validate(summary *model.Summary) error {
	for i := range summary.Days {
		d := &summary.Days[i]
		if _, err := time.Parse("2006-01-02", d.Date); err != nil {
			return fmt.Errorf("day %d: bad date %q: %w", i, d.Date, err)
		}
		for _, c := range model.AllCategories {
			for _, e := range d.Entries(c) {
				if e.Name == "" {
					return fmt.Errorf("day %s: %s entry with empty name", d.Date, c)
				}
				if e.TotalSeconds < 0 {
					return fmt.Errorf("day %s: %s %q has negative total_seconds", d.Date, c, e.Name)
				}
			}
		}
	}
	return nil
}
