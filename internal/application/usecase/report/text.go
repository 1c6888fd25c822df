package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/application/usecase/generation"
	"github.com/homeledger/backend/internal/application/usecase/household"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

const (
	maxGeneratedHighlights  = 8
	maxGeneratedSuggestions = 6
)

// Text is the rendered narrative of a report.
type Text struct {
	Summary     string
	Highlights  []string
	Suggestions []string
	Generated   bool
}

const reportInstructions = `You write a friendly monthly household report for %s.

You will receive JSON describing spending, recurring bills grouped by cost category, a three-month trend of paid bills, upcoming highlights and maintenance or health predictions.
Use only facts present in the data. Do not invent numbers.

Respond with a single JSON object and nothing else, in exactly this shape:
{"summary":"<2 to 4 sentences>","highlights":["<short bullet>"],"suggestions":["<short actionable suggestion>"]}

Return at most %d highlights and %d suggestions.`

type reportSummary struct {
	Period      string                                `json:"period"`
	Spending    household.SpendingSnapshot            `json:"spending"`
	CostGroups  []CostGroup                           `json:"cost_groups"`
	Trend       []TrendPoint                          `json:"trend"`
	Highlights  []Highlight                           `json:"highlights"`
	Maintenance []extrapolation.MaintenancePrediction `json:"maintenance,omitempty"`
	Health      []extrapolation.HealthPrediction      `json:"health,omitempty"`
}

// WriteTextUseCase renders a draft through the backend, falling back to templates.
type WriteTextUseCase struct {
	generator adapter.TextGenerator
	timeout   time.Duration
}

// NewWriteTextUseCase creates a new WriteTextUseCase instance. generator may be nil.
func NewWriteTextUseCase(generator adapter.TextGenerator, timeout time.Duration) *WriteTextUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WriteTextUseCase{
		generator: generator,
		timeout:   timeout,
	}
}

// Execute always returns text. Backend errors and invalid responses use the fallback.
func (uc *WriteTextUseCase) Execute(ctx context.Context, draft *Draft) Text {
	request, err := BuildRequest(draft)
	if err != nil {
		slog.Error("Failed to build report request", "user_id", draft.UserID, "error", err)
		return FallbackText(draft)
	}

	raw, ok := generation.Call(ctx, uc.generator, uc.timeout, request, "monthly_report")
	if !ok {
		return FallbackText(draft)
	}

	text, err := ParseResponse(raw)
	if err != nil {
		slog.Warn("Generated report rejected, using fallback",
			"user_id", draft.UserID,
			"period_key", valueobject.FormatPeriodKey(draft.PeriodKey),
			"error", err,
		)
		return FallbackText(draft)
	}
	return text
}

// BuildRequest creates the generation request for a draft.
func BuildRequest(draft *Draft) (adapter.GenerationRequest, error) {
	summary := reportSummary{
		Period:      valueobject.MonthLabel(draft.PeriodKey),
		Spending:    draft.Snapshot.Spending,
		CostGroups:  draft.CostAnalysis.Groups,
		Trend:       draft.CostAnalysis.Trend,
		Highlights:  draft.Highlights,
		Maintenance: draft.Snapshot.Predictions.Maintenance,
		Health:      draft.Snapshot.Predictions.Health,
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return adapter.GenerationRequest{}, fmt.Errorf("failed to marshal report draft: %w", err)
	}
	return adapter.GenerationRequest{
		SystemInstructions: fmt.Sprintf(reportInstructions,
			valueobject.MonthLabel(draft.PeriodKey), maxGeneratedHighlights, maxGeneratedSuggestions),
		DataSummary: string(data),
	}, nil
}

type generatedReport struct {
	Summary     string `json:"summary"`
	Highlights  []any  `json:"highlights"`
	Suggestions []any  `json:"suggestions"`
}

// ParseResponse validates a generated {summary, highlights, suggestions} response.
func ParseResponse(raw string) (Text, error) {
	obj, err := generation.DecodeObject(raw)
	if err != nil {
		return Text{}, err
	}

	var gr generatedReport
	if err := generation.DecodeStrict(obj, &gr); err != nil {
		return Text{}, err
	}
	summary := strings.TrimSpace(gr.Summary)
	if summary == "" {
		return Text{}, domainerror.NewInvalidResponseError("summary is blank")
	}
	highlights, err := generation.StringList(obj["highlights"], "highlights")
	if err != nil {
		return Text{}, err
	}
	suggestions, err := generation.StringList(obj["suggestions"], "suggestions")
	if err != nil {
		return Text{}, err
	}

	return Text{
		Summary:     summary,
		Highlights:  capList(highlights, maxGeneratedHighlights),
		Suggestions: capList(suggestions, maxGeneratedSuggestions),
		Generated:   true,
	}, nil
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
