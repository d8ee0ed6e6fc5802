// ABOUTME: Time parsing utilities for timestamps read back from storage
// ABOUTME: Unparseable values yield the zero time, which the pipeline treats as unknown

package time

import (
	"strings"
	"time"
)

// Layouts accepted for stored timestamps, most specific first. SQLite's
// CURRENT_TIMESTAMP writes the space separated form.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Values without an offset are read as UTC.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// StorageLayout is a fixed-width UTC layout, so stored values sort lexically
// in chronological order.
const StorageLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatStorage renders t in the layout the storage layer writes
func FormatStorage(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(StorageLayout)
}
