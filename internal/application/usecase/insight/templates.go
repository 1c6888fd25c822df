package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/domain/entity"
)

// Fallback renders predictions with deterministic templates.
func Fallback(predictions extrapolation.RawPredictions) []entity.PredictionInsight {
	insights := make([]entity.PredictionInsight, 0, MaxInsights)
	insights = append(insights, spendingInsights(predictions.Spending)...)
	insights = append(insights, maintenanceInsights(predictions.Maintenance)...)
	insights = append(insights, healthInsights(predictions.Health)...)
	insights = append(insights, growthInsights(predictions.Growth)...)
	return SortAndCap(insights)
}

func newInsight(category entity.InsightCategory, n int, title, body string, priority int) entity.PredictionInsight {
	return entity.PredictionInsight{
		ID:          fmt.Sprintf("%s-%d", category, n),
		Category:    category,
		Title:       title,
		Body:        body,
		Priority:    priority,
		ActionRoute: actionRoute(category),
	}
}

func spendingInsights(p *extrapolation.SpendingPrediction) []entity.PredictionInsight {
	if p == nil {
		return nil
	}
	var out []entity.PredictionInsight

	switch {
	case p.PercentChange != nil && math.Abs(*p.PercentChange) >= 1:
		direction := "up"
		if *p.PercentChange < 0 {
			direction = "down"
		}
		out = append(out, newInsight(entity.InsightCategorySpending, len(out)+1,
			fmt.Sprintf("Spending is %s %.0f%% vs %s", direction, math.Abs(*p.PercentChange), p.LastPeriodLabel),
			fmt.Sprintf("You have spent %s across %d expenses so far this month and are on pace for about %s by month end.",
				money(p.ThisPeriodTotal.StringFixed(2)), p.ThisPeriodCount, money(p.ProjectedPeriodTotal.StringFixed(2))),
			entity.PriorityNormal))
	case p.ThisPeriodCount > 0:
		out = append(out, newInsight(entity.InsightCategorySpending, len(out)+1,
			fmt.Sprintf("On pace for %s this month", money(p.ProjectedPeriodTotal.StringFixed(0))),
			fmt.Sprintf("%s spent over %d days. At this rate the month closes near %s.",
				money(p.ThisPeriodTotal.StringFixed(2)), p.DayOfMonth, money(p.ProjectedPeriodTotal.StringFixed(2))),
			entity.PriorityNormal))
	}

	if p.SeasonalRatio != nil && len(out) < maxSpendingInsights {
		ratio := *p.SeasonalRatio
		var title string
		switch {
		case ratio >= 1.1:
			title = fmt.Sprintf("Summer spending runs %.1fx winter", ratio)
		case ratio <= 0.9:
			title = fmt.Sprintf("Winter spending runs %.1fx summer", 1/ratio)
		}
		if title != "" {
			out = append(out, newInsight(entity.InsightCategorySpending, len(out)+1,
				title,
				"Based on your expense history. Plan ahead for the heavier season.",
				entity.PriorityNormal))
		}
	}
	return out
}

func maintenanceInsights(predictions []extrapolation.MaintenancePrediction) []entity.PredictionInsight {
	sorted := append([]extrapolation.MaintenancePrediction(nil), predictions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return maintenancePriority(sorted[i]) < maintenancePriority(sorted[j])
	})

	var out []entity.PredictionInsight
	for _, p := range sorted {
		if len(out) == maxMaintenanceInsights {
			break
		}
		priority := maintenancePriority(p)
		title := fmt.Sprintf("%s service coming up", p.VehicleLabel)
		if priority == entity.PriorityUrgent {
			title = fmt.Sprintf("%s needs service", p.VehicleLabel)
		}
		out = append(out, newInsight(entity.InsightCategoryMaintenance, len(out)+1, title, p.Message, priority))
	}
	return out
}

func healthInsights(predictions []extrapolation.HealthPrediction) []entity.PredictionInsight {
	sorted := append([]extrapolation.HealthPrediction(nil), predictions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MonthsSince > sorted[j].MonthsSince
	})

	var out []entity.PredictionInsight
	for _, p := range sorted {
		if len(out) == maxHealthInsights {
			break
		}
		title := fmt.Sprintf("Time to book a %s checkup", p.CheckupType)
		body := fmt.Sprintf("The last %s visit on your calendar was %d months ago (%s). Most people go every %d months.",
			p.CheckupType, p.MonthsSince, p.LastVisit.Format("Jan 2006"), p.ThresholdMonths)
		if p.Person != "" {
			body = fmt.Sprintf("%s's last %s visit was %d months ago (%s). Most people go every %d months.",
				p.Person, p.CheckupType, p.MonthsSince, p.LastVisit.Format("Jan 2006"), p.ThresholdMonths)
		}
		out = append(out, newInsight(entity.InsightCategoryHealth, len(out)+1, title, body, healthPriority(p)))
	}
	return out
}

func growthInsights(predictions []extrapolation.GrowthPrediction) []entity.PredictionInsight {
	sorted := append([]extrapolation.GrowthPrediction(nil), predictions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MonthsUntilNextSize < sorted[j].MonthsUntilNextSize
	})

	var out []entity.PredictionInsight
	for _, p := range sorted {
		if len(out) == maxGrowthInsights {
			break
		}
		out = append(out, newInsight(entity.InsightCategoryGrowth, len(out)+1,
			fmt.Sprintf("%s may need size %s %s", p.Name, p.NextSizeLabel, monthsPhrase(p.MonthsUntilNextSize)),
			fmt.Sprintf("%s went from size %s to %s in %.0f months.",
				p.Name, extrapolation.FormatSize(p.FirstSize), extrapolation.FormatSize(p.LastSize), p.MonthsBetweenRecords),
			entity.PriorityInformational))
	}
	return out
}

func monthsPhrase(months int) string {
	switch {
	case months <= 0:
		return "soon"
	case months == 1:
		return "in about a month"
	default:
		return fmt.Sprintf("in about %d months", months)
	}
}

func money(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return "-$" + strings.TrimPrefix(amount, "-")
	}
	return "$" + amount
}
