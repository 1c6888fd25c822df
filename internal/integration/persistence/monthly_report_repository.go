package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
	"github.com/homeledger/backend/internal/integration/persistence/model"
)

// monthlyReportRepository implements the adapter.MonthlyReportRepository interface.
type monthlyReportRepository struct {
	db *gorm.DB
}

// NewMonthlyReportRepository creates a new monthly report repository instance.
func NewMonthlyReportRepository(db *gorm.DB) adapter.MonthlyReportRepository {
	return &monthlyReportRepository{
		db: db,
	}
}

// FindByPeriod returns the report for the period, or nil when none exists.
func (r *monthlyReportRepository) FindByPeriod(ctx context.Context, userID uuid.UUID, periodKey time.Time) (*entity.MonthlyReport, error) {
	var reportModel model.MonthlyReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND period_key = ?", userID, valueobject.PeriodKeyFor(periodKey)).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find monthly report: %w", result.Error)
	}
	return reportModel.ToEntity(), nil
}

// Save upserts on (user_id, period_key). A concurrent insert for the same period
// turns into an update of the content columns, keeping the first id and share token.
func (r *monthlyReportRepository) Save(ctx context.Context, report *entity.MonthlyReport) (*entity.MonthlyReport, error) {
	reportModel := model.MonthlyReportFromEntity(report)
	reportModel.PeriodKey = valueobject.PeriodKeyFor(report.PeriodKey)
	if reportModel.CreatedAt.IsZero() {
		reportModel.CreatedAt = time.Now().UTC()
	}
	if reportModel.UpdatedAt.IsZero() {
		reportModel.UpdatedAt = reportModel.CreatedAt
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "period_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"summary_text", "highlights", "suggestions", "cost_analysis", "updated_at",
			}),
		}).
		Create(reportModel)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save monthly report: %w", result.Error)
	}

	saved, err := r.FindByPeriod(ctx, report.UserID, report.PeriodKey)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("monthly report missing after save")
	}
	return saved, nil
}

// ListByUser returns the user's reports, newest period first.
func (r *monthlyReportRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlyReport, error) {
	var models []model.MonthlyReportModel
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period_key DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}

	reports := make([]*entity.MonthlyReport, len(models))
	for i := range models {
		reports[i] = models[i].ToEntity()
	}
	return reports, nil
}

// FindByShareToken returns the report behind a share token, or nil when none exists.
func (r *monthlyReportRepository) FindByShareToken(ctx context.Context, token string) (*entity.MonthlyReport, error) {
	var reportModel model.MonthlyReportModel
	result := r.db.WithContext(ctx).Where("share_token = ?", token).First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shared report: %w", result.Error)
	}
	return reportModel.ToEntity(), nil
}
