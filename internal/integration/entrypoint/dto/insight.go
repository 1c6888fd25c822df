package dto

import (
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
)

// InsightResponse represents a single prediction insight.
type InsightResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Priority    int     `json:"priority"`
	ActionRoute *string `json:"action_route,omitempty"`
}

// InsightsResponse represents the response of GET /insights.
type InsightsResponse struct {
	Insights    []InsightResponse `json:"insights"`
	Generated   bool              `json:"generated"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// ToInsightResponse converts a domain PredictionInsight to an InsightResponse DTO.
func ToInsightResponse(insight entity.PredictionInsight) InsightResponse {
	return InsightResponse{
		ID:          insight.ID,
		Category:    string(insight.Category),
		Title:       insight.Title,
		Body:        insight.Body,
		Priority:    insight.Priority,
		ActionRoute: insight.ActionRoute,
	}
}

// ToInsightsResponse converts rendered insights to the response DTO.
func ToInsightsResponse(insights []entity.PredictionInsight, generated bool, generatedAt time.Time) InsightsResponse {
	items := make([]InsightResponse, len(insights))
	for i, insight := range insights {
		items[i] = ToInsightResponse(insight)
	}
	return InsightsResponse{
		Insights:    items,
		Generated:   generated,
		GeneratedAt: generatedAt,
	}
}
