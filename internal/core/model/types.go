package model

import (
	"fmt"
	"strings"
)

// Category identifies one of the three statistic domains in a WakaTime export.
type Category int

const (
	CategoryLanguages Category = iota
	CategoryEditors
	CategoryOperatingSystems
)

// AllCategories lists the categories in their canonical presentation order.
var AllCategories = []Category{CategoryLanguages, CategoryEditors, CategoryOperatingSystems}

// String returns the export field name for the category.
func (c Category) String() string {
	switch c {
	case CategoryLanguages:
		return "languages"
	case CategoryEditors:
		return "editors"
	case CategoryOperatingSystems:
		return "operating_systems"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name for chart headings.
func (c Category) Title() string {
	switch c {
	case CategoryLanguages:
		return "Languages"
	case CategoryEditors:
		return "Editors"
	case CategoryOperatingSystems:
		return "Operating systems"
	default:
		return "Unknown"
	}
}

// Flag returns the single-letter selector used in -g/-t flag strings.
func (c Category) Flag() byte {
	switch c {
	case CategoryLanguages:
		return 'l'
	case CategoryEditors:
		return 'e'
	case CategoryOperatingSystems:
		return 'o'
	default:
		return '?'
	}
}

// ParseCategories converts a selector string ("l", "e", "o" in any order and
// case, duplicates allowed) into the matching categories in canonical order.
// Unknown letters are rejected.
func ParseCategories(flags string) ([]Category, error) {
	lower := strings.ToLower(flags)
	for _, r := range lower {
		if r != 'l' && r != 'e' && r != 'o' {
			return nil, fmt.Errorf("unknown category selector %q (expected letters from \"leo\")", string(r))
		}
	}
	var out []Category
	for _, c := range AllCategories {
		if strings.IndexByte(lower, c.Flag()) >= 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

// Entry is one (label, time) pair within a day's category breakdown.
type Entry struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

// Day is a single day record from the export. A category absent from the
// document decodes as an empty list, which aggregation treats as a day with
// zero activity for that category.
type Day struct {
	Date             string  `json:"date"`
	Languages        []Entry `json:"languages"`
	Editors          []Entry `json:"editors"`
	OperatingSystems []Entry `json:"operating_systems"`
}

// Entries returns the day's breakdown for the given category.
func (d *Day) Entries(c Category) []Entry {
	switch c {
	case CategoryLanguages:
		return d.Languages
	case CategoryEditors:
		return d.Editors
	case CategoryOperatingSystems:
		return d.OperatingSystems
	default:
		return nil
	}
}

// Summary is the root of a WakaTime daily-activity export.
type Summary struct {
	Days []Day `json:"days"`
}
