package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/homeledger/backend/internal/domain/entity"
)

// MonthlyReportModel represents the monthly_reports table in the database.
// (user_id, period_key) is unique so a period has at most one report.
type MonthlyReportModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_reports_user_period,priority:1"`
	PeriodKey    time.Time      `gorm:"type:date;not null;uniqueIndex:idx_monthly_reports_user_period,priority:2"`
	SummaryText  string         `gorm:"type:text;not null;default:''"`
	Highlights   pq.StringArray `gorm:"type:text[]"`
	Suggestions  pq.StringArray `gorm:"type:text[]"`
	CostAnalysis string         `gorm:"type:jsonb;not null;default:'{}'"`
	ShareToken   string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// TableName returns the table name for the MonthlyReportModel.
func (MonthlyReportModel) TableName() string {
	return "monthly_reports"
}

// ToEntity converts a MonthlyReportModel to a domain MonthlyReport entity.
func (m *MonthlyReportModel) ToEntity() *entity.MonthlyReport {
	report := &entity.MonthlyReport{
		ID:          m.ID,
		UserID:      m.UserID,
		PeriodKey:   m.PeriodKey.UTC(),
		SummaryText: m.SummaryText,
		Highlights:  append([]string{}, m.Highlights...),
		Suggestions: append([]string{}, m.Suggestions...),
		ShareToken:  m.ShareToken,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.CostAnalysis != "" {
		report.CostAnalysis = []byte(m.CostAnalysis)
	}
	return report
}

// MonthlyReportFromEntity creates a MonthlyReportModel from a domain MonthlyReport entity.
func MonthlyReportFromEntity(report *entity.MonthlyReport) *MonthlyReportModel {
	costAnalysis := string(report.CostAnalysis)
	if costAnalysis == "" {
		costAnalysis = "{}"
	}
	return &MonthlyReportModel{
		ID:           report.ID,
		UserID:       report.UserID,
		PeriodKey:    report.PeriodKey.UTC(),
		SummaryText:  report.SummaryText,
		Highlights:   pq.StringArray(report.Highlights),
		Suggestions:  pq.StringArray(report.Suggestions),
		CostAnalysis: costAnalysis,
		ShareToken:   report.ShareToken,
		CreatedAt:    report.CreatedAt,
		UpdatedAt:    report.UpdatedAt,
	}
}
