package extrapolation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

// MinSeasonalRecords is the number of expense records required before a ratio is reported.
const MinSeasonalRecords = 4

func isSummer(m time.Month) bool {
	return m == time.June || m == time.July || m == time.August
}

func isWinter(m time.Month) bool {
	return m == time.December || m == time.January || m == time.February
}

// SeasonalRatio returns the average summer expense divided by the average winter expense.
// It returns nil with fewer than MinSeasonalRecords expenses or when either bucket is empty.
func SeasonalRatio(transactions []*entity.Transaction) *float64 {
	var (
		count                    int
		summerSum, winterSum     decimal.Decimal
		summerCount, winterCount int64
	)
	for _, t := range transactions {
		if t == nil || !t.IsExpense() {
			continue
		}
		count++
		amount := t.Amount.Abs()
		switch month := t.Date.Month(); {
		case isSummer(month):
			summerSum = summerSum.Add(amount)
			summerCount++
		case isWinter(month):
			winterSum = winterSum.Add(amount)
			winterCount++
		}
	}

	if count < MinSeasonalRecords || summerCount == 0 || winterCount == 0 {
		return nil
	}
	winterAvg := winterSum.Div(decimal.NewFromInt(winterCount))
	if winterAvg.IsZero() {
		return nil
	}
	summerAvg := summerSum.Div(decimal.NewFromInt(summerCount))
	ratio, _ := summerAvg.Div(winterAvg).Round(2).Float64()
	return &ratio
}
