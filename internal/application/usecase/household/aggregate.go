package household

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
)

// UpcomingWindowDays is the horizon of the upcoming counts.
const UpcomingWindowDays = 30

// Options tunes the aggregation.
type Options struct {
	// QueryTimeout bounds each domain query.
	QueryTimeout time.Duration
	// Concurrency caps the number of domain queries in flight.
	Concurrency int
	// TransactionHistoryMonths is how many months of transactions are read before the current one.
	TransactionHistoryMonths int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// AggregateUseCase builds a household snapshot from every domain.
type AggregateUseCase struct {
	repos         Repositories
	engine        *extrapolation.Engine
	timeout       time.Duration
	concurrency   int
	historyMonths int
	now           func() time.Time
}

// NewAggregateUseCase creates a new AggregateUseCase instance.
func NewAggregateUseCase(repos Repositories, engine *extrapolation.Engine, opts Options) *AggregateUseCase {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.TransactionHistoryMonths <= 0 {
		opts.TransactionHistoryMonths = 24
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AggregateUseCase{
		repos:         repos,
		engine:        engine,
		timeout:       opts.QueryTimeout,
		concurrency:   opts.Concurrency,
		historyMonths: opts.TransactionHistoryMonths,
		now:           opts.Now,
	}
}

// Now returns the use case's notion of the current time.
func (uc *AggregateUseCase) Now() time.Time {
	return uc.now()
}

// Execute aggregates the user's household. It never fails: an unreachable domain is left empty.
func (uc *AggregateUseCase) Execute(ctx context.Context, userID uuid.UUID) *Snapshot {
	now := uc.now()
	snapshot := newSnapshot(userID, now)
	snapshot.Records = uc.fetchRecords(ctx, userID, now)
	snapshot.Predictions = uc.engine.Predict(snapshot.Records, now)

	records := snapshot.Records
	snapshot.Spending = buildSpending(extrapolation.SummarizeSpending(records.Transactions, now))
	snapshot.Family = buildFamily(records.Members, now)
	snapshot.Growth = buildGrowth(records.GrowthRecords)
	snapshot.Vehicles = buildVehicles(records.Vehicles, now, uc.engine.OilChangeInterval())
	snapshot.Pets = buildPets(records.Pets, now)
	snapshot.Upcoming = buildUpcoming(records, now)
	return snapshot
}

func buildSpending(s extrapolation.SpendingSummary) SpendingSnapshot {
	return SpendingSnapshot{
		ThisPeriodTotal: s.ThisPeriodTotal,
		ThisPeriodCount: s.ThisPeriodCount,
		LastPeriodTotal: s.LastPeriodTotal,
		LastPeriodLabel: s.LastPeriodLabel,
		PercentChange:   s.PercentChange,
	}
}

func buildFamily(members []*entity.HouseholdMember, now time.Time) []FamilyMember {
	family := make([]FamilyMember, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		entry := FamilyMember{
			Name:         m.Name,
			Relationship: optionalString(strings.TrimSpace(m.Relationship)),
		}
		if m.Birthday != nil && !m.Birthday.IsZero() {
			days := DaysToNextBirthday(*m.Birthday, now)
			entry.DaysToNextBirthday = &days
			entry.BirthdayLabel = stringPtr(BirthdayLabel(days))
		}
		family = append(family, entry)
	}
	return family
}

func buildGrowth(records []*entity.GrowthRecord) []GrowthEntry {
	series := extrapolation.SeriesByPerson(records)
	growth := make([]GrowthEntry, 0, len(series))
	for _, s := range series {
		entry := GrowthEntry{Name: s.Name}
		if p, ok := extrapolation.PredictSeries(s); ok {
			months := p.MonthsUntilNextSize
			entry.NextSizeLabel = stringPtr(p.NextSizeLabel)
			entry.MonthsUntilNextSize = &months
		} else if len(s.Points) < 2 {
			entry.Note = stringPtr("Add another size record to project the next size")
		} else {
			entry.Note = stringPtr("No size increase recorded yet")
		}
		growth = append(growth, entry)
	}
	return growth
}

func buildVehicles(vehicles []*entity.Vehicle, now time.Time, interval int) []VehicleEntry {
	entries := make([]VehicleEntry, 0, len(vehicles))
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		entry := VehicleEntry{
			ID:                 v.ID,
			Label:              v.Label(),
			RegistrationExpiry: v.RegistrationExpiry,
			RegistrationLabel:  RegistrationLabel(v.RegistrationExpiry, now),
		}
		if p, ok := extrapolation.PredictVehicle(v, now, interval); ok {
			entry.MaintenanceMessage = stringPtr(p.Message)
		}
		entries = append(entries, entry)
	}
	return entries
}

func buildPets(pets []*entity.Pet, now time.Time) []PetEntry {
	entries := make([]PetEntry, 0, len(pets))
	for _, p := range pets {
		if p == nil {
			continue
		}
		entries = append(entries, PetEntry{
			Name:                p.Name,
			Type:                optionalString(strings.TrimSpace(p.Type)),
			VaccinationDueLabel: VaccinationDueLabel(p.VaccinationDates, now),
		})
	}
	return entries
}

func buildUpcoming(records entity.HouseholdRecords, now time.Time) UpcomingCounts {
	var counts UpcomingCounts
	today := entity.StartOfDay(now)
	horizon := today.AddDate(0, 0, UpcomingWindowDays)
	for _, a := range records.Appointments {
		if a == nil || a.Date.IsZero() {
			continue
		}
		day := entity.StartOfDay(a.Date)
		if !day.Before(today) && !day.After(horizon) {
			counts.AppointmentCount++
		}
	}
	for _, o := range records.Obligations {
		if o != nil && o.IsDueWithin(now, UpcomingWindowDays) {
			counts.ObligationsDueCount++
		}
	}
	return counts
}
