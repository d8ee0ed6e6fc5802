package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleTime(t *testing.T) {
	want := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2024-03-09T14:30:00Z", want},
		{"rfc3339 with offset", "2024-03-09T16:30:00+02:00", want},
		{"sqlite timestamp", "2024-03-09 14:30:00", want},
		{"padded", "  2024-03-09T14:30:00Z  ", want},
		{"date only", "2024-03-09", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "yesterday-ish", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleTime(tt.input)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseWithDefault(t *testing.T) {
	fallback := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, fallback, ParseWithDefault("nope", fallback))
	assert.Equal(t, 2024, ParseWithDefault("2024-01-01", fallback).Year())
}

func TestFormatStorage_RoundTrips(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 30, 0, 123456789, time.FixedZone("X", 3600))

	assert.True(t, ts.Equal(ParseFlexibleTime(FormatStorage(ts))))
	assert.Equal(t, "", FormatStorage(time.Time{}))
}

func TestFormatStorage_SortsChronologically(t *testing.T) {
	earlier := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
	later := earlier.Add(500 * time.Millisecond)

	assert.Less(t, FormatStorage(earlier), FormatStorage(later))
}
