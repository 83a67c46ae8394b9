// Package dateutil does integral calendar-day arithmetic over YYYY-MM-DD
// strings. All parsing pins dates to UTC midnight so day differences never
// pick up DST or timezone drift.
package dateutil

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string to UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

// FormatDay renders t's calendar date in UTC.
func FormatDay(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Today returns the current calendar date in UTC.
func Today() string {
	return FormatDay(time.Now())
}

// AddDays shifts a YYYY-MM-DD string by n whole days. Invalid input is
// returned unchanged.
func AddDays(s string, n int) string {
	t, err := ParseDay(s)
	if err != nil {
		return s
	}
	return FormatDay(t.AddDate(0, 0, n))
}

// DaysBetween returns the whole-day difference to - from. The second return
// is false when either date fails to parse.
func DaysBetween(from, to string) (int, bool) {
	f, err := ParseDay(from)
	if err != nil {
		return 0, false
	}
	t, err := ParseDay(to)
	if err != nil {
		return 0, false
	}
	return int(t.Sub(f) / (24 * time.Hour)), true
}
