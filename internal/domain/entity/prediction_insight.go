// Package entity defines the core business entities for the domain layer.
package entity

// InsightCategory represents the domain an insight was derived from.
type InsightCategory string

const (
	InsightCategorySpending    InsightCategory = "spending"
	InsightCategoryGrowth      InsightCategory = "growth"
	InsightCategoryMaintenance InsightCategory = "maintenance"
	InsightCategoryHealth      InsightCategory = "health"
)

// Insight priorities. Lower is more urgent.
const (
	PriorityUrgent        = 1
	PriorityNormal        = 2
	PriorityInformational = 3
)

// insightCategoryOrder is the display order used to break priority ties.
var insightCategoryOrder = map[InsightCategory]int{
	InsightCategorySpending:    0,
	InsightCategoryMaintenance: 1,
	InsightCategoryHealth:      2,
	InsightCategoryGrowth:      3,
}

// IsValid returns true if the category is one of the known insight categories.
func (c InsightCategory) IsValid() bool {
	_, ok := insightCategoryOrder[c]
	return ok
}

// Order returns the tie-break position of the category.
func (c InsightCategory) Order() int {
	if order, ok := insightCategoryOrder[c]; ok {
		return order
	}
	return len(insightCategoryOrder)
}

// IsValidPriority returns true if p is 1, 2 or 3.
func IsValidPriority(p int) bool {
	return p >= PriorityUrgent && p <= PriorityInformational
}

// PredictionInsight is a prioritized, human-readable prediction shown to the user.
type PredictionInsight struct {
	ID          string
	Category    InsightCategory
	Title       string
	Body        string
	Priority    int
	ActionRoute *string
}
