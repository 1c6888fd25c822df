// Package household contains the household aggregation use case.
package household

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
)

// Snapshot is the aggregated, point-in-time household state of one user.
// Every list defaults to empty and every optional scalar is nil when unknown.
type Snapshot struct {
	UserID      uuid.UUID        `json:"user_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Spending    SpendingSnapshot `json:"spending"`
	Family      []FamilyMember   `json:"family"`
	Growth      []GrowthEntry    `json:"growth"`
	Vehicles    []VehicleEntry   `json:"vehicles"`
	Pets        []PetEntry       `json:"pets"`
	Upcoming    UpcomingCounts   `json:"upcoming"`

	// Records are the normalized rows the snapshot was derived from.
	Records entity.HouseholdRecords `json:"-"`
	// Predictions are the engine output computed while building the snapshot.
	Predictions extrapolation.RawPredictions `json:"-"`
}

// SpendingSnapshot is the month-over-month expense summary.
type SpendingSnapshot struct {
	ThisPeriodTotal decimal.Decimal `json:"this_period_total"`
	ThisPeriodCount int             `json:"this_period_count"`
	LastPeriodTotal decimal.Decimal `json:"last_period_total"`
	LastPeriodLabel string          `json:"last_period_label"`
	PercentChange   *float64        `json:"percent_change"`
}

// FamilyMember is one household member with birthday details.
type FamilyMember struct {
	Name               string  `json:"name"`
	Relationship       *string `json:"relationship,omitempty"`
	DaysToNextBirthday *int    `json:"days_to_next_birthday,omitempty"`
	BirthdayLabel      *string `json:"birthday_label,omitempty"`
}

// GrowthEntry is the size outlook for one person.
type GrowthEntry struct {
	Name                string  `json:"name"`
	NextSizeLabel       *string `json:"next_size_label,omitempty"`
	MonthsUntilNextSize *int    `json:"months_until_next_size,omitempty"`
	Note                *string `json:"note,omitempty"`
}

// VehicleEntry is one vehicle with registration and maintenance status.
type VehicleEntry struct {
	ID                 uuid.UUID  `json:"id"`
	Label              string     `json:"label"`
	RegistrationExpiry *time.Time `json:"registration_expiry,omitempty"`
	RegistrationLabel  *string    `json:"registration_label,omitempty"`
	MaintenanceMessage *string    `json:"maintenance_message,omitempty"`
}

// PetEntry is one pet with its vaccination outlook.
type PetEntry struct {
	Name                string  `json:"name"`
	Type                *string `json:"type,omitempty"`
	VaccinationDueLabel *string `json:"vaccination_due_label,omitempty"`
}

// UpcomingCounts counts what is coming up in the next UpcomingWindowDays days.
type UpcomingCounts struct {
	AppointmentCount    int `json:"appointment_count"`
	ObligationsDueCount int `json:"obligations_due_count"`
}

func newSnapshot(userID uuid.UUID, now time.Time) *Snapshot {
	return &Snapshot{
		UserID:      userID,
		GeneratedAt: now,
		Spending: SpendingSnapshot{
			ThisPeriodTotal: decimal.Zero,
			LastPeriodTotal: decimal.Zero,
		},
		Family:   []FamilyMember{},
		Growth:   []GrowthEntry{},
		Vehicles: []VehicleEntry{},
		Pets:     []PetEntry{},
		Records:  entity.HouseholdRecords{UserID: userID},
	}
}

func stringPtr(s string) *string {
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
