package repository

import "time"

const timeLayout = time.RFC3339Nano

// nowUTC returns the current UTC time in the storage layout.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// formatTime renders t for storage; the zero time is replaced by now.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return nowUTC()
	}
	return t.UTC().Format(timeLayout)
}

// parseTime accepts both the nano and plain RFC3339 layouts. Unparseable
// values become the zero time rather than failing the whole read.
func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
