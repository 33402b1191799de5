package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{name: "zero", hours: 0, want: "0 min"},
		{name: "under an hour", hours: 0.5, want: "30 min"},
		{name: "exactly one hour", hours: 1.0, want: "1.0 h"},
		{name: "fractional hours", hours: 2.55, want: "2.5 h"},
		{name: "large value", hours: 123.4, want: "123.4 h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHours(tt.hours))
		})
	}
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "25.0%", FormatShare(25.0))
	assert.Equal(t, "0.1%", FormatShare(0.1))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-02"))
	assert.False(t, ValidDate("2024-1-2"))
	assert.False(t, ValidDate("02.01.2024"))
	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("2024-13-01"))
}
