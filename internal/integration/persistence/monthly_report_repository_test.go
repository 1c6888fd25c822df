package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/internal/domain/entity"
)

func TestMonthlyReportRepository_SaveAndFind(t *testing.T) {
	repo := NewMonthlyReportRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	period := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	missing, err := repo.FindByPeriod(ctx, userID, period)
	require.NoError(t, err)
	assert.Nil(t, missing)

	report := entity.NewMonthlyReport(userID, period, "share-token-1")
	report.SummaryText = "You spent $600.00 in October."
	report.Highlights = []string{"City Water on Oct 20 ($40.00)", "Dentist on Oct 22"}
	report.Suggestions = []string{"Review your subscriptions."}
	report.CostAnalysis = []byte(`{"groups":[],"trend":[],"total":"0"}`)

	saved, err := repo.Save(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, report.ID, saved.ID)
	assert.Equal(t, "share-token-1", saved.ShareToken)
	assert.Equal(t, report.Highlights, saved.Highlights)
	assert.JSONEq(t, string(report.CostAnalysis), string(saved.CostAnalysis))

	found, err := repo.FindByPeriod(ctx, userID, period.AddDate(0, 0, 14))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "You spent $600.00 in October.", found.SummaryText)
	assert.True(t, found.PeriodKey.Equal(period))
}

func TestMonthlyReportRepository_UpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewMonthlyReportRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	period := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	first := entity.NewMonthlyReport(userID, period, "token-a")
	first.SummaryText = "first"
	_, err := repo.Save(ctx, first)
	require.NoError(t, err)

	// A racing writer that never saw the first row.
	second := entity.NewMonthlyReport(userID, period, "token-b")
	second.SummaryText = "second"
	second.Suggestions = []string{"Bundle your streaming bills."}
	saved, err := repo.Save(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first.ID, saved.ID)
	assert.Equal(t, "token-a", saved.ShareToken)
	assert.Equal(t, "second", saved.SummaryText)
	assert.Equal(t, []string{"Bundle your streaming bills."}, saved.Suggestions)

	var count int64
	require.NoError(t, db.Table("monthly_reports").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMonthlyReportRepository_ListAndShare(t *testing.T) {
	repo := NewMonthlyReportRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	for _, month := range []time.Month{time.August, time.October, time.September} {
		report := entity.NewMonthlyReport(userID, time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC), "token-"+month.String())
		_, err := repo.Save(ctx, report)
		require.NoError(t, err)
	}
	other := entity.NewMonthlyReport(uuid.New(), time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), "other-user")
	_, err := repo.Save(ctx, other)
	require.NoError(t, err)

	reports, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, time.October, reports[0].PeriodKey.Month())
	assert.Equal(t, time.September, reports[1].PeriodKey.Month())

	shared, err := repo.FindByShareToken(ctx, "other-user")
	require.NoError(t, err)
	require.NotNil(t, shared)
	assert.Equal(t, other.UserID, shared.UserID)

	none, err := repo.FindByShareToken(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, none)
}
