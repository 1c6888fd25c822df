package extrapolation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// SpendingSummary is the month-over-month view of expense transactions.
type SpendingSummary struct {
	ThisPeriodTotal decimal.Decimal
	ThisPeriodCount int
	LastPeriodTotal decimal.Decimal
	LastPeriodLabel string
	PercentChange   *float64
}

// SummarizeSpending totals expenses for now's month and the month before.
// PercentChange is nil when the prior month has no spending to compare against.
func SummarizeSpending(transactions []*entity.Transaction, now time.Time) SpendingSummary {
	thisStart, thisEnd := valueobject.MonthBounds(now)
	lastStart := thisStart.AddDate(0, -1, 0)

	summary := SpendingSummary{
		ThisPeriodTotal: decimal.Zero,
		LastPeriodTotal: decimal.Zero,
		LastPeriodLabel: lastStart.Month().String(),
	}
	for _, t := range transactions {
		if t == nil || !t.IsExpense() {
			continue
		}
		date := t.Date.In(now.Location())
		switch {
		case !date.Before(thisStart) && date.Before(thisEnd):
			summary.ThisPeriodTotal = summary.ThisPeriodTotal.Add(t.Amount.Abs())
			summary.ThisPeriodCount++
		case !date.Before(lastStart) && date.Before(thisStart):
			summary.LastPeriodTotal = summary.LastPeriodTotal.Add(t.Amount.Abs())
		}
	}

	if summary.LastPeriodTotal.IsPositive() {
		change, _ := summary.ThisPeriodTotal.Sub(summary.LastPeriodTotal).
			Div(summary.LastPeriodTotal).
			Mul(decimal.NewFromInt(100)).
			Round(1).
			Float64()
		summary.PercentChange = &change
	}
	return summary
}

// PredictSpending builds the spending prediction, or nil when there are no expenses at all.
func PredictSpending(transactions []*entity.Transaction, now time.Time) *SpendingPrediction {
	expenses := 0
	for _, t := range transactions {
		if t != nil && t.IsExpense() {
			expenses++
		}
	}
	if expenses == 0 {
		return nil
	}

	summary := SummarizeSpending(transactions, now)
	start, end := valueobject.MonthBounds(now)
	daysInMonth := valueobject.DaysBetween(start, end)
	day := now.Day()

	projected := summary.ThisPeriodTotal.
		Div(decimal.NewFromInt(int64(day))).
		Mul(decimal.NewFromInt(int64(daysInMonth))).
		Round(2)

	return &SpendingPrediction{
		ThisPeriodTotal:      summary.ThisPeriodTotal,
		ThisPeriodCount:      summary.ThisPeriodCount,
		LastPeriodTotal:      summary.LastPeriodTotal,
		LastPeriodLabel:      summary.LastPeriodLabel,
		PercentChange:        summary.PercentChange,
		ProjectedPeriodTotal: projected,
		DayOfMonth:           day,
		DaysInMonth:          daysInMonth,
		SeasonalRatio:        SeasonalRatio(transactions),
		ExpenseRecordCount:   expenses,
	}
}
