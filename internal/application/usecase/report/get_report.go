package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

const (
	defaultListLimit = 12
	maxListLimit     = 60
)

// GetReportUseCase reads persisted reports of the authenticated user.
type GetReportUseCase struct {
	repo adapter.MonthlyReportRepository
	now  func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(repo adapter.MonthlyReportRepository, now func() time.Time) *GetReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetReportUseCase{repo: repo, now: now}
}

// ByPeriod returns the report for periodKey.
func (uc *GetReportUseCase) ByPeriod(ctx context.Context, userID uuid.UUID, periodKey time.Time) (*entity.MonthlyReport, error) {
	report, err := uc.repo.FindByPeriod(ctx, userID, valueobject.PeriodKeyFor(periodKey))
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportStoreUnavailable,
			domainerror.ErrReportStoreUnavailable.Error(),
			err,
		)
	}
	if report == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNotFound,
			domainerror.ErrReportNotFound.Error(),
			domainerror.ErrReportNotFound,
		)
	}
	return report, nil
}

// Current returns the report for the current month.
func (uc *GetReportUseCase) Current(ctx context.Context, userID uuid.UUID) (*entity.MonthlyReport, error) {
	return uc.ByPeriod(ctx, userID, uc.now())
}

// List returns the user's reports, newest first. limit is clamped to a sane range.
func (uc *GetReportUseCase) List(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlyReport, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	reports, err := uc.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportStoreUnavailable,
			domainerror.ErrReportStoreUnavailable.Error(),
			err,
		)
	}
	if reports == nil {
		reports = []*entity.MonthlyReport{}
	}
	return reports, nil
}

// Shared returns the text-only view behind a share token.
func (uc *GetReportUseCase) Shared(ctx context.Context, token string) (*entity.SharedReport, error) {
	if token == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeShareTokenNotFound,
			domainerror.ErrShareTokenNotFound.Error(),
			domainerror.ErrShareTokenNotFound,
		)
	}
	report, err := uc.repo.FindByShareToken(ctx, token)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportStoreUnavailable,
			domainerror.ErrReportStoreUnavailable.Error(),
			err,
		)
	}
	if report == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeShareTokenNotFound,
			domainerror.ErrShareTokenNotFound.Error(),
			domainerror.ErrShareTokenNotFound,
		)
	}
	return report.Shared(), nil
}
