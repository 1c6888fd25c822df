package insight

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
)

const systemInstructionsTemplate = `You write short, practical household insights for a family dashboard.

You will receive JSON with predictions for these domains only: %s.
Write at most %d insights. Use only facts present in the data. Do not invent numbers.

Respond with a single JSON object and nothing else, in exactly this shape:
{"items":[{"category":"<one of: %s>","title":"<max 60 characters>","body":"<one or two sentences>","priority":<1, 2 or 3>}]}

priority: 1 = urgent or overdue, 2 = worth acting on soon, 3 = informational.`

// predictionSummary is the data block sent to the backend. Empty domains are omitted.
type predictionSummary struct {
	Spending    *extrapolation.SpendingPrediction     `json:"spending,omitempty"`
	Maintenance []extrapolation.MaintenancePrediction `json:"maintenance,omitempty"`
	Health      []extrapolation.HealthPrediction      `json:"health,omitempty"`
	Growth      []extrapolation.GrowthPrediction      `json:"growth,omitempty"`
}

// BuildRequest creates the generation request enumerating only domains with data.
func BuildRequest(predictions extrapolation.RawPredictions) (adapter.GenerationRequest, error) {
	summary := predictionSummary{
		Spending:    predictions.Spending,
		Maintenance: predictions.Maintenance,
		Health:      predictions.Health,
		Growth:      predictions.Growth,
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return adapter.GenerationRequest{}, fmt.Errorf("failed to marshal predictions: %w", err)
	}

	domains := presentDomains(predictions)
	list := strings.Join(domains, ", ")
	return adapter.GenerationRequest{
		SystemInstructions: fmt.Sprintf(systemInstructionsTemplate, list, MaxInsights, strings.Join(domains, " | ")),
		DataSummary:        string(data),
	}, nil
}

func presentDomains(predictions extrapolation.RawPredictions) []string {
	priorities := CategoryPriorities(predictions)
	domains := make([]string, 0, len(priorities))
	for category := range priorities {
		domains = append(domains, string(category))
	}
	sort.Slice(domains, func(i, j int) bool {
		return entity.InsightCategory(domains[i]).Order() < entity.InsightCategory(domains[j]).Order()
	})
	return domains
}
