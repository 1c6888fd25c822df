package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// EnsureStatus describes what EnsureCurrentPeriod did.
type EnsureStatus string

const (
	EnsureStatusSkipped EnsureStatus = "skipped" // Not the first day of the month
	EnsureStatusExists  EnsureStatus = "exists"
	EnsureStatusCreated EnsureStatus = "created"
	EnsureStatusFailed  EnsureStatus = "failed"
)

// EnsureOutput represents the output of ensuring the current period's report.
type EnsureOutput struct {
	Status    EnsureStatus
	PeriodKey time.Time
	Report    *entity.MonthlyReport
}

// EnsureCurrentPeriodUseCase creates the current month's report once, on the first day of the month.
type EnsureCurrentPeriodUseCase struct {
	repo      adapter.MonthlyReportRepository
	generator *GenerateAndSaveUseCase
	now       func() time.Time
}

// NewEnsureCurrentPeriodUseCase creates a new EnsureCurrentPeriodUseCase instance.
func NewEnsureCurrentPeriodUseCase(
	repo adapter.MonthlyReportRepository,
	generator *GenerateAndSaveUseCase,
	now func() time.Time,
) *EnsureCurrentPeriodUseCase {
	if now == nil {
		now = time.Now
	}
	return &EnsureCurrentPeriodUseCase{
		repo:      repo,
		generator: generator,
		now:       now,
	}
}

// Execute is a no-op unless today is the first of the month. A report that already exists is left alone.
// The returned error is a *domainerror.ReportError when the store fails.
func (uc *EnsureCurrentPeriodUseCase) Execute(ctx context.Context, userID uuid.UUID) (*EnsureOutput, error) {
	now := uc.now()
	period := valueobject.PeriodKeyFor(now)
	out := &EnsureOutput{PeriodKey: period}

	if now.Day() != 1 {
		out.Status = EnsureStatusSkipped
		return out, nil
	}

	existing, err := uc.repo.FindByPeriod(ctx, userID, period)
	if err != nil {
		slog.Error("Failed to look up monthly report",
			"user_id", userID,
			"period_key", valueobject.FormatPeriodKey(period),
			"error", err,
		)
		out.Status = EnsureStatusFailed
		return out, domainerror.NewReportError(
			domainerror.ErrCodeReportStoreUnavailable,
			domainerror.ErrReportStoreUnavailable.Error(),
			err,
		)
	}
	if existing != nil {
		out.Status = EnsureStatusExists
		out.Report = existing
		return out, nil
	}

	result := uc.generator.Execute(ctx, GenerateAndSaveInput{
		UserID:           userID,
		PeriodKey:        period,
		SendNotification: true,
	})
	if !result.Saved {
		out.Status = EnsureStatusFailed
		return out, result.Err
	}
	out.Status = EnsureStatusCreated
	out.Report = result.Report
	return out, nil
}
