// Package extrapolation contains the deterministic per-domain prediction algorithms.
// Every function here is pure: the current time is passed in and no I/O happens.
package extrapolation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingPrediction summarizes the current month's spending and where it is heading.
type SpendingPrediction struct {
	ThisPeriodTotal      decimal.Decimal `json:"this_period_total"`
	ThisPeriodCount      int             `json:"this_period_count"`
	LastPeriodTotal      decimal.Decimal `json:"last_period_total"`
	LastPeriodLabel      string          `json:"last_period_label"`
	PercentChange        *float64        `json:"percent_change"`
	ProjectedPeriodTotal decimal.Decimal `json:"projected_period_total"`
	DayOfMonth           int             `json:"day_of_month"`
	DaysInMonth          int             `json:"days_in_month"`
	SeasonalRatio        *float64        `json:"seasonal_ratio"`
	ExpenseRecordCount   int             `json:"expense_record_count"`
}

// GrowthPrediction projects when a person reaches the next half size.
type GrowthPrediction struct {
	Name                 string    `json:"name"`
	RecordCount          int       `json:"record_count"`
	FirstRecordDate      time.Time `json:"first_record_date"`
	LastRecordDate       time.Time `json:"last_record_date"`
	FirstSize            float64   `json:"first_size"`
	LastSize             float64   `json:"last_size"`
	MonthsBetweenRecords float64   `json:"months_between_records"`
	SizeDelta            float64   `json:"size_delta"`
	MonthsPerSizeStep    float64   `json:"months_per_size_step"`
	NextSize             float64   `json:"next_size"`
	NextSizeLabel        string    `json:"next_size_label"`
	MonthsUntilNextSize  int       `json:"months_until_next_size"`
}

// MaintenanceBasis tells which vehicle fields produced a maintenance prediction.
type MaintenanceBasis string

const (
	MaintenanceBasisMileage MaintenanceBasis = "mileage"
	MaintenanceBasisDate    MaintenanceBasis = "date"
)

// MaintenancePrediction projects the next oil change or service for one vehicle.
type MaintenancePrediction struct {
	VehicleID    uuid.UUID        `json:"vehicle_id"`
	VehicleLabel string           `json:"vehicle_label"`
	Basis        MaintenanceBasis `json:"basis"`

	// Mileage basis
	CurrentMileage      int  `json:"current_mileage,omitempty"`
	LastServiceMileage  int  `json:"last_service_mileage,omitempty"`
	Interval            int  `json:"interval,omitempty"`
	NextServiceMileage  int  `json:"next_service_mileage,omitempty"`
	MilesSinceService   int  `json:"miles_since_service,omitempty"`
	MilesUntilOilChange *int `json:"miles_until_oil_change,omitempty"`

	// Date basis
	LastServiceDate  *time.Time `json:"last_service_date,omitempty"`
	NextServiceDate  *time.Time `json:"next_service_date,omitempty"`
	DaysUntilService *int       `json:"days_until_service,omitempty"`

	Urgent  bool   `json:"urgent"`
	Message string `json:"message"`
}

// HealthSource tells where the last checkup date came from.
type HealthSource string

const (
	HealthSourceAppointment   HealthSource = "appointment"
	HealthSourceMedicalRecord HealthSource = "medical_record"
)

// HealthPrediction flags a checkup type that has gone stale.
type HealthPrediction struct {
	CheckupType     string       `json:"checkup_type"`
	Person          string       `json:"person,omitempty"`
	Source          HealthSource `json:"source"`
	LastVisit       time.Time    `json:"last_visit"`
	MonthsSince     int          `json:"months_since"`
	ThresholdMonths int          `json:"threshold_months"`
}

// RawPredictions is the engine output across every domain.
type RawPredictions struct {
	Spending    *SpendingPrediction     `json:"spending,omitempty"`
	Growth      []GrowthPrediction      `json:"growth"`
	Maintenance []MaintenancePrediction `json:"maintenance"`
	Health      []HealthPrediction      `json:"health"`
}

// IsEmpty returns true when no domain produced a prediction.
func (p RawPredictions) IsEmpty() bool {
	return p.Spending == nil && len(p.Growth) == 0 && len(p.Maintenance) == 0 && len(p.Health) == 0
}
