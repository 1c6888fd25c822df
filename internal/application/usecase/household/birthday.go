package household

import (
	"fmt"
	"math"
	"time"

	"github.com/homeledger/backend/internal/domain/valueobject"
)

// FlaggedBirthdayDays is the horizon within which a birthday counts as upcoming.
const FlaggedBirthdayDays = 31

// DaysToNextBirthday returns the days from now until the next anniversary of birthday.
// A birthday that already passed this year wraps to next year; Feb 29 falls on Mar 1 in common years.
func DaysToNextBirthday(birthday, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := anniversary(birthday, today.Year())
	if next.Before(today) {
		next = anniversary(birthday, today.Year()+1)
	}
	return valueobject.DaysBetween(today, next)
}

func anniversary(birthday time.Time, year int) time.Time {
	if birthday.Month() == time.February && birthday.Day() == 29 && !isLeapYear(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// BirthdayLabel buckets a day count into a human label.
func BirthdayLabel(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days <= 7:
		return "this week"
	case days <= 14:
		return "in 2 weeks"
	case days <= 21:
		return "in 3 weeks"
	case days <= FlaggedBirthdayDays:
		return "next month"
	default:
		months := max(2, int(math.Round(float64(days)/30)))
		return fmt.Sprintf("in %d months", months)
	}
}
