// Package view shapes a loaded aggregate for read-mode rendering: formatted
// date ranges, empty-state detection, and sparse-field filtering. It holds no
// network or edit state.
package view

import "time"

// FormatMonth renders a "YYYY-MM-DD" date as "Jan 2006". Unparseable or
// empty values come back unchanged so bad data is visible rather than
// hidden.
func FormatMonth(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2006")
}

// DateRange renders a start and end date as one span, with "Present"
// standing in for an open end.
func DateRange(start, end string) string {
	from := FormatMonth(start)
	to := FormatMonth(end)
	if to == "" {
		to = "Present"
	}
	if from == "" {
		return to
	}
	return from + " - " + to
}
