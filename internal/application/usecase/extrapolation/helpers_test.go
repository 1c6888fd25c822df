package extrapolation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func expense(amount string, on time.Time) *entity.Transaction {
	return &entity.Transaction{
		Amount: decimal.RequireFromString(amount),
		Type:   entity.TransactionTypeExpense,
		Date:   on,
	}
}

func income(amount string, on time.Time) *entity.Transaction {
	return &entity.Transaction{
		Amount: decimal.RequireFromString(amount),
		Type:   entity.TransactionTypeIncome,
		Date:   on,
	}
}
