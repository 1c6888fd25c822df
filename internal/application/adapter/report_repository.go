// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/domain/entity"
)

// MonthlyReportRepository persists monthly reports keyed by (user, period).
type MonthlyReportRepository interface {
	// FindByPeriod returns the report for the period, or nil when none exists.
	FindByPeriod(ctx context.Context, userID uuid.UUID, periodKey time.Time) (*entity.MonthlyReport, error)

	// Save updates the existing report for (user, period) in place or inserts a new one.
	// The returned report carries the persisted id and share token.
	Save(ctx context.Context, report *entity.MonthlyReport) (*entity.MonthlyReport, error)

	// ListByUser returns the user's reports, newest period first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlyReport, error)

	// FindByShareToken returns the report behind a share token.
	FindByShareToken(ctx context.Context, token string) (*entity.MonthlyReport, error)
}
