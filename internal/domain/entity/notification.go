// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a user-facing message handed to the notification scheduler.
type Notification struct {
	UserID    uuid.UUID
	Title     string
	Body      string
	Kind      string
	CreatedAt time.Time
}

// NotificationKindMonthlyReport marks notifications announcing a new monthly report.
const NotificationKindMonthlyReport = "monthly_report"
