package utils

import "time"

// MonthWindow returns the inclusive bounds of the UTC calendar month that
// contains t: the first instant of day 1 and the last millisecond of the
// last day. Readings are deduplicated per customer/type inside this window.
func MonthWindow(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
