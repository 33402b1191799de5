package util

import (
	"fmt"
	"time"
)

// FormatHours renders an hour count the way chart legends expect it:
// "37 min" under one hour, "2.5 h" otherwise.
func FormatHours(hours float64) string {
	if hours < 1.0 {
		return fmt.Sprintf("%.0f min", hours*60)
	}
	return fmt.Sprintf("%.1f h", hours)
}

// FormatShare renders a percentage share for the totals view.
func FormatShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share)
}

// ValidDate reports whether a string is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
