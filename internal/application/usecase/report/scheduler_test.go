package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

type schedulerFixture struct {
	snapshots *fakeSnapshots
	repo      *memoryReports
	notifier  *fakeNotifier
	lock      *fakeLock
	generate  *GenerateAndSaveUseCase
	ensure    *EnsureCurrentPeriodUseCase
}

func newSchedulerFixture(now time.Time, withLock bool) *schedulerFixture {
	f := &schedulerFixture{
		snapshots: &fakeSnapshots{snapshot: sampleSnapshot(now)},
		repo:      newMemoryReports(),
		notifier:  &fakeNotifier{},
	}
	deps := GenerateAndSaveDeps{
		Drafts:   NewBuildDraftUseCase(f.snapshots, valueobject.DefaultClassificationRules()),
		Writer:   NewWriteTextUseCase(nil, 0),
		Repo:     f.repo,
		Notifier: f.notifier,
		Now:      func() time.Time { return now },
	}
	if withLock {
		f.lock = &fakeLock{acquired: true}
		deps.Lock = f.lock
	}
	f.generate = NewGenerateAndSaveUseCase(deps)
	f.ensure = NewEnsureCurrentPeriodUseCase(f.repo, f.generate, func() time.Time { return now })
	return f
}

func TestEnsureCurrentPeriod_IdempotentOnFirstOfMonth(t *testing.T) {
	f := newSchedulerFixture(time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), false)
	userID := uuid.New()

	first, err := f.ensure.Execute(context.Background(), userID)
	require.NoError(t, err)
	second, err := f.ensure.Execute(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, EnsureStatusCreated, first.Status)
	assert.Equal(t, EnsureStatusExists, second.Status)
	assert.Equal(t, first.Report.ID, second.Report.ID)
	assert.Equal(t, day(2026, 11, 1), first.PeriodKey)
	assert.Equal(t, 1, f.repo.count())
	assert.Equal(t, 1, f.repo.saves)
	require.Len(t, f.notifier.notifications, 1)
	assert.Equal(t, "Your November 2026 report is ready", f.notifier.notifications[0].Title)
	assert.Equal(t, userID, f.notifier.notifications[0].UserID)
}

func TestEnsureCurrentPeriod_SkipsOtherDays(t *testing.T) {
	f := newSchedulerFixture(day(2026, 10, 14), false)

	out, err := f.ensure.Execute(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, EnsureStatusSkipped, out.Status)
	assert.Nil(t, out.Report)
	assert.Zero(t, f.repo.count())
	assert.Zero(t, f.snapshots.calls)
	assert.Empty(t, f.notifier.notifications)
}

func TestEnsureCurrentPeriod_StoreUnavailable(t *testing.T) {
	f := newSchedulerFixture(day(2026, 11, 1), false)
	f.repo.findErr = errStoreDown

	out, err := f.ensure.Execute(context.Background(), uuid.New())

	require.Error(t, err)
	var reportErr *domainerror.ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, domainerror.ErrCodeReportStoreUnavailable, reportErr.Code)
	assert.Equal(t, EnsureStatusFailed, out.Status)
}

func TestGenerateAndSave_UpdatesInPlace(t *testing.T) {
	now := day(2026, 10, 14)
	f := newSchedulerFixture(now, true)
	userID := uuid.New()
	input := GenerateAndSaveInput{UserID: userID, PeriodKey: now}

	first := f.generate.Execute(context.Background(), input)
	require.True(t, first.Saved)
	assert.True(t, first.Created)
	firstSummary := first.Report.SummaryText

	f.snapshots.snapshot.Spending.ThisPeriodTotal = money("900")
	second := f.generate.Execute(context.Background(), input)

	require.True(t, second.Saved)
	assert.False(t, second.Created)
	assert.Equal(t, first.Report.ID, second.Report.ID)
	assert.Equal(t, first.Report.ShareToken, second.Report.ShareToken)
	assert.NotEqual(t, firstSummary, second.Report.SummaryText)
	assert.Contains(t, second.Report.SummaryText, "$900.00")
	assert.Equal(t, 1, f.repo.count())
	assert.Equal(t, 2, f.repo.saves)
	assert.NotEmpty(t, second.Report.CostAnalysis)
	assert.Len(t, f.notifier.notifications, 0)
	assert.Equal(t, 2, f.lock.released)
	assert.Equal(t, LockKey(userID, day(2026, 10, 1)), f.lock.keys[0])
	assert.Equal(t, "monthly-report:"+userID.String()+":2026-10-01", f.lock.keys[0])
}

func TestGenerateAndSave_Failures(t *testing.T) {
	now := day(2026, 10, 14)

	t.Run("save rejected", func(t *testing.T) {
		f := newSchedulerFixture(now, false)
		f.repo.saveErr = errStoreDown

		out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now, SendNotification: true})

		assert.False(t, out.Saved)
		assert.Nil(t, out.Report)
		var reportErr *domainerror.ReportError
		require.True(t, errors.As(out.Err, &reportErr))
		assert.Equal(t, domainerror.ErrCodeReportSaveFailed, reportErr.Code)
		assert.Empty(t, f.notifier.notifications)
	})

	t.Run("lookup fails", func(t *testing.T) {
		f := newSchedulerFixture(now, false)
		f.repo.findErr = errStoreDown

		out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now})

		assert.False(t, out.Saved)
		assert.Zero(t, f.repo.saves)
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		f := newSchedulerFixture(now, true)
		f.lock.acquired = false

		out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now})

		assert.False(t, out.Saved)
		assert.True(t, errors.Is(out.Err, domainerror.ErrReportGenerationInProgress))
		assert.Zero(t, f.snapshots.calls)
	})

	t.Run("lock backend down still saves", func(t *testing.T) {
		f := newSchedulerFixture(now, true)
		f.lock.err = errors.New("redis: connection refused")

		out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now})

		assert.True(t, out.Saved)
	})

	t.Run("cancelled before save writes nothing", func(t *testing.T) {
		f := newSchedulerFixture(now, false)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := f.generate.Execute(ctx, GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now})

		assert.False(t, out.Saved)
		assert.Zero(t, f.repo.saves)
	})

	t.Run("notification failure keeps the save", func(t *testing.T) {
		f := newSchedulerFixture(now, false)
		f.notifier.err = errors.New("push queue closed")

		out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: now, SendNotification: true})

		assert.True(t, out.Saved)
		assert.False(t, out.Notified)
		assert.Len(t, f.notifier.notifications, 1)
	})
}

func TestGenerateAndSave_PeriodBounds(t *testing.T) {
	now := time.Date(2026, 10, 31, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period time.Time
		saved  bool
	}{
		{name: "past month", period: day(2026, 9, 1), saved: true},
		{name: "current month", period: day(2026, 10, 1), saved: true},
		{name: "next month", period: day(2026, 11, 1), saved: false},
		{name: "far future", period: day(2099, 1, 1), saved: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSchedulerFixture(now, true)

			out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: uuid.New(), PeriodKey: tt.period})

			assert.Equal(t, tt.saved, out.Saved)
			if tt.saved {
				return
			}
			var reportErr *domainerror.ReportError
			require.True(t, errors.As(out.Err, &reportErr))
			assert.Equal(t, domainerror.ErrCodeInvalidPeriodKey, reportErr.Code)
			assert.Zero(t, f.repo.saves)
			assert.Zero(t, f.snapshots.calls)
			assert.Empty(t, f.lock.keys)
		})
	}
}

func TestGetReportUseCase(t *testing.T) {
	now := day(2026, 10, 14)
	f := newSchedulerFixture(now, false)
	userID := uuid.New()
	out := f.generate.Execute(context.Background(), GenerateAndSaveInput{UserID: userID, PeriodKey: now})
	require.True(t, out.Saved)
	uc := NewGetReportUseCase(f.repo, func() time.Time { return now })

	current, err := uc.Current(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, out.Report.ID, current.ID)

	_, err = uc.ByPeriod(context.Background(), userID, day(2026, 9, 1))
	assert.True(t, errors.Is(err, domainerror.ErrReportNotFound))

	list, err := uc.List(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	shared, err := uc.Shared(context.Background(), out.Report.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, out.Report.SummaryText, shared.SummaryText)

	_, err = uc.Shared(context.Background(), "unknown")
	assert.True(t, errors.Is(err, domainerror.ErrShareTokenNotFound))
	_, err = uc.Shared(context.Background(), "")
	assert.True(t, errors.Is(err, domainerror.ErrShareTokenNotFound))
}
