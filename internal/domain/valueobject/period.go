// Package valueobject contains immutable domain values shared across use cases.
package valueobject

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const periodKeyLayout = "2006-01-02"

// PeriodKeyFor returns the canonical period key (first day of the month, UTC) for t.
func PeriodKeyFor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParsePeriodKey accepts "YYYY-MM" or "YYYY-MM-DD" and returns the month's period key.
func ParsePeriodKey(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01", periodKeyLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return PeriodKeyFor(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid period key %q", value)
}

// FormatPeriodKey renders a period key as YYYY-MM-DD.
func FormatPeriodKey(key time.Time) string {
	return PeriodKeyFor(key).Format(periodKeyLayout)
}

// MonthLabel returns a human label such as "October 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// MonthBounds returns the first instant of t's month and the first instant of the next month.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// CalendarMonthsBetween counts month boundaries between from and to, ignoring days.
func CalendarMonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// MonthsBetween returns the fractional number of months between from and to.
func MonthsBetween(from, to time.Time) float64 {
	months := float64(CalendarMonthsBetween(from, to))
	return months + float64(to.Day()-from.Day())/30.0
}

// DaysBetween returns the number of whole calendar days from from to to.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}
