package helpers

import "time"

// DayWindow returns the [start, next) bounds of the calendar day containing
// t, in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// ParseTimestamp parses an RFC3339 timestamp from a query or body value.
// An empty string yields the zero time with no error, so absent optional
// bounds stay open-ended.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
