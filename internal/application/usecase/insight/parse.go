package insight

import (
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/usecase/generation"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

type generatedItem struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Priority float64 `json:"priority"`
}

// ParseResponse validates a generated {items:[...]} response.
// Invalid items are dropped one by one; an invalid envelope returns an error.
// priorities holds the rule priority of each category present in the request; other categories are dropped.
func ParseResponse(raw string, priorities map[entity.InsightCategory]int) ([]entity.PredictionInsight, error) {
	obj, err := generation.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	value, ok := obj["items"]
	if !ok {
		return nil, domainerror.NewInvalidResponseError("missing items")
	}
	items, ok := value.([]any)
	if !ok {
		return nil, domainerror.NewInvalidResponseError("items must be an array")
	}

	insights := make([]entity.PredictionInsight, 0, len(items))
	for i, item := range items {
		insight, err := validateItem(item, priorities)
		if err != nil {
			slog.Warn("Dropping generated insight", "index", i, "error", err)
			continue
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

func validateItem(item any, priorities map[entity.InsightCategory]int) (entity.PredictionInsight, error) {
	fields, ok := item.(map[string]any)
	if !ok {
		return entity.PredictionInsight{}, domainerror.NewInvalidResponseError("item is not an object")
	}

	var gi generatedItem
	if err := generation.DecodeStrict(fields, &gi); err != nil {
		return entity.PredictionInsight{}, err
	}

	category := entity.InsightCategory(strings.ToLower(strings.TrimSpace(gi.Category)))
	if !category.IsValid() {
		return entity.PredictionInsight{}, domainerror.NewInvalidResponseError("unknown category %q", gi.Category)
	}
	priority, ok := priorities[category]
	if !ok {
		return entity.PredictionInsight{}, domainerror.NewInvalidResponseError("category %q has no data", category)
	}
	if gi.Priority != math.Trunc(gi.Priority) || !entity.IsValidPriority(int(gi.Priority)) {
		return entity.PredictionInsight{}, domainerror.NewInvalidResponseError("priority %v out of range", gi.Priority)
	}

	title := strings.TrimSpace(gi.Title)
	body := strings.TrimSpace(gi.Body)
	if title == "" || body == "" {
		return entity.PredictionInsight{}, domainerror.NewInvalidResponseError("blank title or body")
	}

	return entity.PredictionInsight{
		ID:          uuid.NewString(),
		Category:    category,
		Title:       title,
		Body:        body,
		Priority:    priority,
		ActionRoute: actionRoute(category),
	}, nil
}
