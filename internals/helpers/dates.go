package helper

import "time"

// YearRange returns [from, to) bounds covering a calendar year, for range
// scans on date columns.
func YearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// MonthRange returns [from, to) bounds for a zero-indexed month of a year.
func MonthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
