package report

import (
	"sort"
	"strings"
	"time"

	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/domain/entity"
)

// Highlight limits and horizons.
const (
	HighlightWindowDays      = 30
	maxBillHighlights        = 5
	maxAppointmentHighlights = 3
)

// BuildHighlights merges upcoming items in a fixed order:
// bills, appointments, birthdays, vehicle registrations, pet vaccinations.
func BuildHighlights(snapshot *household.Snapshot, now time.Time) []Highlight {
	highlights := []Highlight{}
	highlights = append(highlights, billHighlights(snapshot.Records.Obligations, now)...)
	highlights = append(highlights, appointmentHighlights(snapshot.Records.Appointments, now)...)

	today := entity.StartOfDay(now)
	for _, m := range snapshot.Family {
		if m.DaysToNextBirthday == nil || *m.DaysToNextBirthday > household.FlaggedBirthdayDays {
			continue
		}
		date := today.AddDate(0, 0, *m.DaysToNextBirthday)
		highlights = append(highlights, Highlight{
			Type:   HighlightBirthday,
			Label:  m.Name + "'s birthday",
			Date:   &date,
			Detail: m.BirthdayLabel,
		})
	}
	for _, v := range snapshot.Vehicles {
		if v.RegistrationLabel == nil {
			continue
		}
		highlights = append(highlights, Highlight{
			Type:   HighlightVehicle,
			Label:  v.Label,
			Date:   v.RegistrationExpiry,
			Detail: v.RegistrationLabel,
		})
	}
	for _, p := range snapshot.Pets {
		if p.VaccinationDueLabel == nil {
			continue
		}
		highlights = append(highlights, Highlight{
			Type:   HighlightPet,
			Label:  p.Name + " vaccination",
			Detail: p.VaccinationDueLabel,
		})
	}
	return highlights
}

func billHighlights(obligations []*entity.Obligation, now time.Time) []Highlight {
	due := make([]*entity.Obligation, 0)
	for _, o := range obligations {
		if o != nil && o.IsDueWithin(now, HighlightWindowDays) {
			due = append(due, o)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].DueDate.Before(*due[j].DueDate) })
	if len(due) > maxBillHighlights {
		due = due[:maxBillHighlights]
	}

	out := make([]Highlight, 0, len(due))
	for _, o := range due {
		date := *o.DueDate
		detail := formatMoney(o.Amount) + " due"
		out = append(out, Highlight{Type: HighlightBill, Label: o.Name, Date: &date, Detail: &detail})
	}
	return out
}

func appointmentHighlights(appointments []*entity.Appointment, now time.Time) []Highlight {
	today := entity.StartOfDay(now)
	horizon := today.AddDate(0, 0, HighlightWindowDays)
	upcoming := make([]*entity.Appointment, 0)
	for _, a := range appointments {
		if a == nil || a.Date.IsZero() {
			continue
		}
		day := entity.StartOfDay(a.Date)
		if !day.Before(today) && !day.After(horizon) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })
	if len(upcoming) > maxAppointmentHighlights {
		upcoming = upcoming[:maxAppointmentHighlights]
	}

	out := make([]Highlight, 0, len(upcoming))
	for _, a := range upcoming {
		date := a.Date
		h := Highlight{Type: HighlightAppointment, Label: a.Title, Date: &date}
		if t := strings.TrimSpace(a.Time); t != "" {
			h.Detail = &t
		}
		out = append(out, h)
	}
	return out
}
