package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// TrendMonths is the number of trailing months in a report, current month included.
const TrendMonths = 3

// BuildTrend totals paid obligations by paid date for the TrendMonths months ending at periodKey.
// Points are ordered oldest first.
func BuildTrend(obligations []*entity.Obligation, periodKey time.Time) []TrendPoint {
	first := valueobject.PeriodKeyFor(periodKey).AddDate(0, -(TrendMonths - 1), 0)
	points := make([]TrendPoint, TrendMonths)
	for i := range points {
		month := first.AddDate(0, i, 0)
		points[i] = TrendPoint{
			Month: month,
			Label: valueobject.MonthLabel(month),
			Total: decimal.Zero,
		}
	}

	for _, o := range obligations {
		if o == nil || o.PaidDate == nil {
			continue
		}
		i := valueobject.CalendarMonthsBetween(first, *o.PaidDate)
		if i < 0 || i >= TrendMonths {
			continue
		}
		points[i].Total = points[i].Total.Add(o.SettledAmount())
		points[i].Count++
	}
	return points
}
