// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyReport is the persisted monthly household report for one user and period.
type MonthlyReport struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	PeriodKey    time.Time // First day of the month, UTC
	SummaryText  string
	Highlights   []string
	Suggestions  []string
	CostAnalysis []byte // JSON document: cost groups and trend points
	ShareToken   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewMonthlyReport creates a new MonthlyReport with a fresh id and share token.
func NewMonthlyReport(userID uuid.UUID, periodKey time.Time, shareToken string) *MonthlyReport {
	now := time.Now().UTC()
	return &MonthlyReport{
		ID:          uuid.New(),
		UserID:      userID,
		PeriodKey:   periodKey,
		Highlights:  []string{},
		Suggestions: []string{},
		ShareToken:  shareToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SharedReport is the read-only, text-only view of a report exposed through its share token.
type SharedReport struct {
	PeriodKey   time.Time
	SummaryText string
	Highlights  []string
	Suggestions []string
}

// Shared returns the text-only projection of the report.
func (r *MonthlyReport) Shared() *SharedReport {
	return &SharedReport{
		PeriodKey:   r.PeriodKey,
		SummaryText: r.SummaryText,
		Highlights:  r.Highlights,
		Suggestions: r.Suggestions,
	}
}
