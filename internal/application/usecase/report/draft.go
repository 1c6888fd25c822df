// Package report contains the monthly report use cases.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/usecase/household"
)

// CostItem is one obligation inside a cost group.
type CostItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CostGroup totals the active obligations sharing a label.
type CostGroup struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
	Items []CostItem      `json:"items"`
}

// TrendPoint is one month of paid obligations.
type TrendPoint struct {
	Month time.Time       `json:"month"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CostAnalysis is the structured document persisted with each report.
type CostAnalysis struct {
	Groups []CostGroup     `json:"groups"`
	Trend  []TrendPoint    `json:"trend"`
	Total  decimal.Decimal `json:"total"`
}

// Highlight types.
const (
	HighlightBill        = "bill"
	HighlightAppointment = "appointment"
	HighlightBirthday    = "birthday"
	HighlightVehicle     = "vehicle"
	HighlightPet         = "pet"
)

// Highlight is one upcoming item merged from any domain.
type Highlight struct {
	Type   string     `json:"type"`
	Label  string     `json:"label"`
	Date   *time.Time `json:"date,omitempty"`
	Detail *string    `json:"detail,omitempty"`
}

// Draft is everything a report is written from.
type Draft struct {
	UserID       uuid.UUID
	PeriodKey    time.Time
	Snapshot     *household.Snapshot
	CostAnalysis CostAnalysis
	Highlights   []Highlight
}

// Group returns the cost group with the given label, if present.
func (c CostAnalysis) Group(label string) (CostGroup, bool) {
	for _, g := range c.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return CostGroup{}, false
}
