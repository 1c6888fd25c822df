// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a recorded household money movement.
type Transaction struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Amount   decimal.Decimal // Always positive; direction is given by Type
	Type     TransactionType
	Date     time.Time
	Category string
}

// IsExpense returns true for outgoing transactions.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
