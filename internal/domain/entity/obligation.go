// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ObligationStatus represents the lifecycle state of a bill or recurring obligation.
type ObligationStatus string

const (
	ObligationStatusPending   ObligationStatus = "pending"
	ObligationStatusPaid      ObligationStatus = "paid"
	ObligationStatusOverdue   ObligationStatus = "overdue"
	ObligationStatusCancelled ObligationStatus = "cancelled"
)

// Obligation represents a bill the household owes (subscription, utility, loan, etc.).
type Obligation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Provider   string
	Category   string
	Amount     decimal.Decimal
	PaidAmount *decimal.Decimal
	PaidDate   *time.Time
	Status     ObligationStatus
	DueDate    *time.Time
}

// IsActive returns true unless the obligation was cancelled.
func (o *Obligation) IsActive() bool {
	return o.Status != ObligationStatusCancelled
}

// IsPaid returns true if the obligation has been settled.
func (o *Obligation) IsPaid() bool {
	return o.Status == ObligationStatusPaid || o.PaidDate != nil
}

// IsOverdue returns true if the obligation is unpaid past its due date.
func (o *Obligation) IsOverdue(now time.Time) bool {
	if o.IsPaid() || !o.IsActive() {
		return false
	}
	if o.Status == ObligationStatusOverdue {
		return true
	}
	return o.DueDate != nil && o.DueDate.Before(StartOfDay(now))
}

// IsDueWithin returns true if the obligation is unpaid and due between today and today+days.
func (o *Obligation) IsDueWithin(now time.Time, days int) bool {
	if o.DueDate == nil || o.IsPaid() || !o.IsActive() {
		return false
	}
	today := StartOfDay(now)
	due := StartOfDay(*o.DueDate)
	return !due.Before(today) && !due.After(today.AddDate(0, 0, days))
}

// SettledAmount returns the paid amount when recorded, otherwise the billed amount.
func (o *Obligation) SettledAmount() decimal.Decimal {
	if o.PaidAmount != nil {
		return *o.PaidAmount
	}
	return o.Amount
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
