package dto

import (
	"encoding/json"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// ReportResponse represents a monthly report.
type ReportResponse struct {
	ID           string          `json:"id"`
	PeriodKey    string          `json:"period_key"`
	MonthLabel   string          `json:"month_label"`
	SummaryText  string          `json:"summary_text"`
	Highlights   []string        `json:"highlights"`
	Suggestions  []string        `json:"suggestions"`
	CostAnalysis json.RawMessage `json:"cost_analysis"`
	ShareToken   string          `json:"share_token"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ReportListResponse represents the response of GET /reports.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// SharedReportResponse is the public, text-only view of a report.
type SharedReportResponse struct {
	PeriodKey   string   `json:"period_key"`
	MonthLabel  string   `json:"month_label"`
	SummaryText string   `json:"summary_text"`
	Highlights  []string `json:"highlights"`
	Suggestions []string `json:"suggestions"`
}

// EnsureReportResponse represents the response of POST /reports/ensure.
type EnsureReportResponse struct {
	Status    string          `json:"status"`
	PeriodKey string          `json:"period_key"`
	Report    *ReportResponse `json:"report,omitempty"`
}

// RegenerateReportResponse represents the response of POST /reports/:period/regenerate.
type RegenerateReportResponse struct {
	Created   bool           `json:"created"`
	Generated bool           `json:"generated"`
	Notified  bool           `json:"notified"`
	Report    ReportResponse `json:"report"`
}

// ToReportResponse converts a domain MonthlyReport entity to a ReportResponse DTO.
func ToReportResponse(report *entity.MonthlyReport) ReportResponse {
	costAnalysis := json.RawMessage(report.CostAnalysis)
	if len(costAnalysis) == 0 || !json.Valid(costAnalysis) {
		costAnalysis = json.RawMessage("{}")
	}
	return ReportResponse{
		ID:           report.ID.String(),
		PeriodKey:    report.PeriodKey.Format("2006-01"),
		MonthLabel:   valueobject.MonthLabel(report.PeriodKey),
		SummaryText:  report.SummaryText,
		Highlights:   nonNil(report.Highlights),
		Suggestions:  nonNil(report.Suggestions),
		CostAnalysis: costAnalysis,
		ShareToken:   report.ShareToken,
		CreatedAt:    report.CreatedAt,
		UpdatedAt:    report.UpdatedAt,
	}
}

// ToReportListResponse converts a list of reports to the response DTO.
func ToReportListResponse(reports []*entity.MonthlyReport) ReportListResponse {
	items := make([]ReportResponse, len(reports))
	for i, report := range reports {
		items[i] = ToReportResponse(report)
	}
	return ReportListResponse{Reports: items}
}

// ToSharedReportResponse converts a shared report to the public response DTO.
func ToSharedReportResponse(report *entity.SharedReport) SharedReportResponse {
	return SharedReportResponse{
		PeriodKey:   report.PeriodKey.Format("2006-01"),
		MonthLabel:  valueobject.MonthLabel(report.PeriodKey),
		SummaryText: report.SummaryText,
		Highlights:  nonNil(report.Highlights),
		Suggestions: nonNil(report.Suggestions),
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
