package extrapolation

import (
	"math"
	"strings"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

type checkupMatcher struct {
	rule    valueobject.CheckupRule
	matches func(string) bool
}

func compileCheckups(rules []valueobject.CheckupRule) []checkupMatcher {
	matchers := make([]checkupMatcher, 0, len(rules))
	for _, rule := range rules {
		matchers = append(matchers, checkupMatcher{rule: rule, matches: valueobject.KeywordMatcher(rule.Keywords)})
	}
	return matchers
}

// classifyTitle returns the index of the first checkup rule matching title, or -1.
func classifyTitle(matchers []checkupMatcher, title string) int {
	for i, m := range matchers {
		if m.matches(title) {
			return i
		}
	}
	return -1
}

// PredictHealth flags checkup types whose most recent visit is older than the rule's threshold.
// A matching appointment later than today suppresses the flag for that type.
func PredictHealth(
	appointments []*entity.Appointment,
	medicalRecords []*entity.MedicalRecord,
	rules []valueobject.CheckupRule,
	now time.Time,
) []HealthPrediction {
	matchers := compileCheckups(rules)
	today := entity.StartOfDay(now)

	lastVisit := make([]*time.Time, len(matchers))
	scheduled := make([]bool, len(matchers))
	for _, a := range appointments {
		if a == nil || a.Date.IsZero() {
			continue
		}
		i := classifyTitle(matchers, a.Title)
		if i < 0 {
			continue
		}
		date := a.Date
		if entity.StartOfDay(date).After(today) {
			scheduled[i] = true
			continue
		}
		if lastVisit[i] == nil || date.After(*lastVisit[i]) {
			lastVisit[i] = &date
		}
	}

	predictions := []HealthPrediction{}
	for i, m := range matchers {
		if scheduled[i] {
			continue
		}

		source := HealthSourceAppointment
		person := ""
		last := lastVisit[i]
		if last == nil && m.rule.UseMedicalRecords {
			if record := latestMatchingRecord(medicalRecords, m, now); record != nil {
				date := record.RecordDate
				last = &date
				person = strings.TrimSpace(record.MemberName)
				source = HealthSourceMedicalRecord
			}
		}
		if last == nil {
			continue
		}

		months := int(math.Floor(valueobject.MonthsBetween(*last, now)))
		if months < m.rule.StaleAfterMonths {
			continue
		}
		predictions = append(predictions, HealthPrediction{
			CheckupType:     m.rule.Type,
			Person:          person,
			Source:          source,
			LastVisit:       *last,
			MonthsSince:     months,
			ThresholdMonths: m.rule.StaleAfterMonths,
		})
	}
	return predictions
}

func latestMatchingRecord(records []*entity.MedicalRecord, m checkupMatcher, now time.Time) *entity.MedicalRecord {
	var latest *entity.MedicalRecord
	for _, r := range records {
		if r == nil || r.RecordDate.IsZero() || r.RecordDate.After(now) {
			continue
		}
		if !m.matches(r.RecordType) {
			continue
		}
		if latest == nil || r.RecordDate.After(latest.RecordDate) {
			latest = r
		}
	}
	return latest
}
