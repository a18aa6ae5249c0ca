package dateutil

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		months   int
		expected string
	}{
		{"simple month", "2026-01-01", 1, "2026-02-01"},
		{"year rollover", "2026-11-15", 3, "2027-02-15"},
		{"clamp to short month", "2026-01-31", 1, "2026-02-28"},
		{"clamp leap February", "2028-01-31", 1, "2028-02-29"},
		{"full tenure", "2026-01-01", 240, "2046-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, _ := time.Parse("2006-01-02", tt.base)
			got := AddMonths(base, tt.months)
			if got.Format("2006-01-02") != tt.expected {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.base, tt.months, got.Format("2006-01-02"), tt.expected)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2026, time.February); got != 28 {
		t.Errorf("DaysInMonth(2026, Feb) = %d, want 28", got)
	}
	if got := DaysInMonth(2028, time.February); got != 29 {
		t.Errorf("DaysInMonth(2028, Feb) = %d, want 29", got)
	}
	if got := DaysInMonth(2026, time.December); got != 31 {
		t.Errorf("DaysInMonth(2026, Dec) = %d, want 31", got)
	}
}

func TestYearsBetween(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2046, 1, 1, 0, 0, 0, 0, time.UTC)
	years := YearsBetween(from, to)
	if years < 19.9 || years > 20.1 {
		t.Errorf("YearsBetween over 20 calendar years = %f, want ~20", years)
	}
}

func TestMonthsToYears(t *testing.T) {
	if got := MonthsToYears(240); got != 20.0 {
		t.Errorf("MonthsToYears(240) = %f, want 20", got)
	}
	if got := MonthsToYears(222); got != 18.5 {
		t.Errorf("MonthsToYears(222) = %f, want 18.5", got)
	}
}
