package household

import (
	"regexp"
	"strings"
	"time"

	"github.com/homeledger/backend/internal/domain/valueobject"
)

// dateToken extracts one date format from free text.
type dateToken struct {
	pattern *regexp.Regexp
	layout  string
}

// Patterns are tried in order; full dates before month-only forms.
var vaccinationDateTokens = []dateToken{
	{pattern: regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`), layout: "2006-1-2"},
	{pattern: regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`), layout: "1/2/2006"},
	{pattern: regexp.MustCompile(`\b(\d{4}-\d{1,2})\b`), layout: "2006-1"},
	{pattern: regexp.MustCompile(`\b(\d{1,2}/\d{4})\b`), layout: "1/2006"},
	{pattern: regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})\b`), layout: "Jan 2006"},
}

var monthWord = regexp.MustCompile(`(?i)^([a-z]{3})[a-z]*\.?`)

// vaccinationRule maps a months-since range to a label. The first match wins.
type vaccinationRule struct {
	matches func(months int) bool
	label   string
}

var vaccinationRules = []vaccinationRule{
	{matches: func(m int) bool { return m >= 10 && m <= 14 }, label: "due next month"},
	{matches: func(m int) bool { return m >= 11 }, label: "due soon"},
}

// ParseVaccinationDate extracts a date from one free-text token such as "Rabies 2025-03-14".
func ParseVaccinationDate(token string) (time.Time, bool) {
	for _, dt := range vaccinationDateTokens {
		m := dt.pattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		raw := m[1]
		if dt.layout == "Jan 2006" {
			raw = monthWord.ReplaceAllStringFunc(raw, func(w string) string {
				w = strings.ToLower(w[:3])
				return strings.ToUpper(w[:1]) + w[1:]
			})
			raw = strings.Join(strings.Fields(raw), " ")
		}
		if t, err := time.Parse(dt.layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LatestVaccination returns the most recent parseable date in a semicolon separated field.
func LatestVaccination(field string) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, token := range strings.Split(field, ";") {
		t, ok := ParseVaccinationDate(strings.TrimSpace(token))
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest, found = t, true
		}
	}
	return latest, found
}

// VaccinationDueLabel returns a best-effort due label, or nil when nothing is due.
func VaccinationDueLabel(field string, now time.Time) *string {
	latest, ok := LatestVaccination(field)
	if !ok {
		return nil
	}
	months := valueobject.CalendarMonthsBetween(latest, now)
	for _, rule := range vaccinationRules {
		if rule.matches(months) {
			return stringPtr(rule.label)
		}
	}
	return nil
}
