// Package insight contains the prediction insight use cases.
package insight

import (
	"sort"

	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
)

// MaxInsights caps every rendered list.
const MaxInsights = 6

// Per-domain limits on fallback insights.
const (
	maxSpendingInsights    = 2
	maxMaintenanceInsights = 2
	maxHealthInsights      = 2
	maxGrowthInsights      = 2
)

// UrgentHealthMonths escalates a stale checkup to urgent.
const UrgentHealthMonths = 12

var actionRoutes = map[entity.InsightCategory]string{
	entity.InsightCategorySpending:    "/budget",
	entity.InsightCategoryMaintenance: "/vehicles",
	entity.InsightCategoryHealth:      "/appointments",
	entity.InsightCategoryGrowth:      "/family",
}

func actionRoute(category entity.InsightCategory) *string {
	route, ok := actionRoutes[category]
	if !ok {
		return nil
	}
	return &route
}

// maintenancePriority is 1 for a vehicle at or inside the urgency threshold.
func maintenancePriority(p extrapolation.MaintenancePrediction) int {
	if p.MilesUntilOilChange != nil {
		if *p.MilesUntilOilChange <= extrapolation.SoonMilesThreshold {
			return entity.PriorityUrgent
		}
		return entity.PriorityNormal
	}
	if p.Urgent {
		return entity.PriorityUrgent
	}
	return entity.PriorityNormal
}

func healthPriority(p extrapolation.HealthPrediction) int {
	if p.MonthsSince >= UrgentHealthMonths {
		return entity.PriorityUrgent
	}
	return entity.PriorityNormal
}

// CategoryPriorities returns the rule priority of every category that has predictions.
// The most urgent prediction of a category sets its priority.
func CategoryPriorities(predictions extrapolation.RawPredictions) map[entity.InsightCategory]int {
	priorities := make(map[entity.InsightCategory]int)
	if predictions.Spending != nil {
		priorities[entity.InsightCategorySpending] = entity.PriorityNormal
	}
	for _, p := range predictions.Maintenance {
		setMin(priorities, entity.InsightCategoryMaintenance, maintenancePriority(p))
	}
	for _, p := range predictions.Health {
		setMin(priorities, entity.InsightCategoryHealth, healthPriority(p))
	}
	if len(predictions.Growth) > 0 {
		priorities[entity.InsightCategoryGrowth] = entity.PriorityInformational
	}
	return priorities
}

func setMin(m map[entity.InsightCategory]int, category entity.InsightCategory, priority int) {
	if current, ok := m[category]; !ok || priority < current {
		m[category] = priority
	}
}

// SortAndCap orders insights by priority then category and keeps at most MaxInsights.
func SortAndCap(insights []entity.PredictionInsight) []entity.PredictionInsight {
	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Priority != insights[j].Priority {
			return insights[i].Priority < insights[j].Priority
		}
		return insights[i].Category.Order() < insights[j].Category.Order()
	})
	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}
