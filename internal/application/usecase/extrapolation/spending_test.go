package extrapolation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/internal/domain/entity"
)

func TestSummarizeSpending(t *testing.T) {
	now := date(2026, 10, 14)

	t.Run("month over month change", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense("100", date(2026, 10, 2)),
			expense("50", date(2026, 10, 13)),
			expense("120", date(2026, 9, 20)),
			income("1000", date(2026, 10, 1)),
			expense("80", date(2026, 8, 31)),
		}

		s := SummarizeSpending(transactions, now)

		assert.True(t, decimal.RequireFromString("150").Equal(s.ThisPeriodTotal))
		assert.Equal(t, 2, s.ThisPeriodCount)
		assert.True(t, decimal.RequireFromString("120").Equal(s.LastPeriodTotal))
		assert.Equal(t, "September", s.LastPeriodLabel)
		require.NotNil(t, s.PercentChange)
		assert.InDelta(t, 25.0, *s.PercentChange, 0.001)
	})

	t.Run("no prior baseline", func(t *testing.T) {
		s := SummarizeSpending([]*entity.Transaction{expense("40", date(2026, 10, 1))}, now)

		assert.Nil(t, s.PercentChange)
		assert.True(t, s.LastPeriodTotal.IsZero())
	})
}

func TestPredictSpending(t *testing.T) {
	now := date(2026, 10, 14)

	t.Run("projects month end", func(t *testing.T) {
		p := PredictSpending([]*entity.Transaction{
			expense("100", date(2026, 10, 2)),
			expense("50", date(2026, 10, 13)),
		}, now)

		require.NotNil(t, p)
		assert.Equal(t, 14, p.DayOfMonth)
		assert.Equal(t, 31, p.DaysInMonth)
		assert.True(t, decimal.RequireFromString("332.14").Equal(p.ProjectedPeriodTotal), p.ProjectedPeriodTotal.String())
		assert.Nil(t, p.SeasonalRatio)
		assert.Equal(t, 2, p.ExpenseRecordCount)
	})

	t.Run("no expenses", func(t *testing.T) {
		assert.Nil(t, PredictSpending([]*entity.Transaction{income("10", now)}, now))
		assert.Nil(t, PredictSpending(nil, now))
	})
}
