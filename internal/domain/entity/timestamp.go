package entity

import (
	"errors"
	"strings"
	"time"
)

// TimestampLayout renders UTC instants with an explicit +00:00 offset
const TimestampLayout = "2006-01-02T15:04:05.999999-07:00"

// ErrTimestampFormat is returned when a value is not an ISO 8601 timestamp
var ErrTimestampFormat = errors.New("timestamp must be ISO 8601")

// Accepted layouts, tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 date or date-time and converts it to UTC
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, ErrTimestampFormat
}

// FormatTimestamp is the inverse of ParseTimestamp for stored timestamps
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}
