package dateutil

import (
	"time"
)

// AddMonths returns the date n months after base, clamping to the last day
// of the target month when base falls on a day the target month does not
// have (e.g. Jan 31 + 1 month = Feb 28/29).
func AddMonths(base time.Time, n int) time.Time {
	target := time.Date(base.Year(), base.Month()+time.Month(n), 1,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
	day := base.Day()
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// YearsBetween calculates the elapsed years between two dates
func YearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / 365.25
}

// MonthsToYears converts a month count to fractional years
func MonthsToYears(months int) float64 {
	return float64(months) / 12.0
}
