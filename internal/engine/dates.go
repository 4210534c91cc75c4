package engine

import (
	"fmt"
	"time"
)

// Date keys are calendar-local YYYY-MM-DD strings. Day granularity is the
// finest the engine cares about; the string form sorts chronologically,
// which the scheduler relies on.
const dateKeyLayout = "2006-01-02"

// DateKey formats t as a calendar-local date key.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key in the local calendar.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// AddDays shifts a date key by n calendar days. An unparseable key is
// returned unchanged; callers only ever pass keys the engine produced.
func AddDays(key string, n int) string {
	t, err := ParseDateKey(key)
	if err != nil {
		return key
	}
	return DateKey(t.AddDate(0, 0, n))
}
