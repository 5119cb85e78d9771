package domain

import "time"

// DateOnly drops the clock part and location, keeping the civil date.
// All dates inside the core are normalized this way.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a normalized date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// IsSameDay reports whether both times fall on the same civil date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
