package extrapolation

import (
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// Engine runs every domain algorithm over one user's household records.
type Engine struct {
	rules           valueobject.ClassificationRules
	defaultInterval int
}

// NewEngine creates a new Engine instance.
func NewEngine(rules valueobject.ClassificationRules, defaultOilChangeInterval int) *Engine {
	if defaultOilChangeInterval <= 0 {
		defaultOilChangeInterval = DefaultOilChangeInterval
	}
	return &Engine{
		rules:           rules,
		defaultInterval: defaultOilChangeInterval,
	}
}

// OilChangeInterval returns the mileage interval used for vehicles without their own.
func (e *Engine) OilChangeInterval() int {
	return e.defaultInterval
}

// Predict computes RawPredictions for the records as of now.
func (e *Engine) Predict(records entity.HouseholdRecords, now time.Time) RawPredictions {
	return RawPredictions{
		Spending:    PredictSpending(records.Transactions, now),
		Growth:      PredictGrowth(records.GrowthRecords),
		Maintenance: PredictMaintenance(records.Vehicles, now, e.defaultInterval),
		Health:      PredictHealth(records.Appointments, records.MedicalRecords, e.rules.Checkups, now),
	}
}
