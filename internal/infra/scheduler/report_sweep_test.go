package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/application/usecase/report"
)

type fakeUsers struct {
	ids []uuid.UUID
	err error
}

func (f *fakeUsers) ListActiveUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, f.err
}

type fakeEnsurer struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]report.EnsureStatus
	errs     map[uuid.UUID]error
	calls    int
	block    chan struct{}
}

func (f *fakeEnsurer) Execute(ctx context.Context, userID uuid.UUID) (*report.EnsureOutput, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.errs[userID]; err != nil {
		return nil, err
	}
	return &report.EnsureOutput{Status: f.statuses[userID]}, nil
}

func TestRunSweep_CountsOutcomes(t *testing.T) {
	created, exists, skipped, failing := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	ensurer := &fakeEnsurer{
		statuses: map[uuid.UUID]report.EnsureStatus{
			created: report.EnsureStatusCreated,
			exists:  report.EnsureStatusExists,
			skipped: report.EnsureStatusSkipped,
		},
		errs: map[uuid.UUID]error{failing: errors.New("store down")},
	}
	svc := NewReportSweepService(
		config.SchedulerConfig{Enabled: true, Cron: "0 6 * * *", Workers: 2},
		&fakeUsers{ids: []uuid.UUID{created, exists, skipped, failing}},
		ensurer,
	)

	result := svc.RunSweep(context.Background())

	assert.Equal(t, SweepResult{Users: 4, Created: 1, Exists: 1, Skipped: 1, Failed: 1}, result)
	assert.Equal(t, 4, ensurer.calls)
}

func TestRunSweep_ListFailure(t *testing.T) {
	ensurer := &fakeEnsurer{}
	svc := NewReportSweepService(config.SchedulerConfig{Workers: 1}, &fakeUsers{err: errors.New("db down")}, ensurer)

	result := svc.RunSweep(context.Background())

	assert.Equal(t, SweepResult{}, result)
	assert.Zero(t, ensurer.calls)
}

func TestRunSweep_SkipsWhileRunning(t *testing.T) {
	ensurer := &fakeEnsurer{block: make(chan struct{})}
	svc := NewReportSweepService(config.SchedulerConfig{Workers: 1}, &fakeUsers{ids: []uuid.UUID{uuid.New()}}, ensurer)

	done := make(chan SweepResult)
	go func() { done <- svc.RunSweep(context.Background()) }()

	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return svc.running
	}, time.Second, time.Millisecond)

	assert.Equal(t, SweepResult{}, svc.RunSweep(context.Background()))

	close(ensurer.block)
	assert.Equal(t, 1, (<-done).Users)
}

func TestStart(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := NewReportSweepService(config.SchedulerConfig{Enabled: false, Cron: "bad"}, &fakeUsers{}, &fakeEnsurer{})
		assert.NoError(t, svc.Start(context.Background()))
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		svc := NewReportSweepService(config.SchedulerConfig{Enabled: true, Cron: "not a cron"}, &fakeUsers{}, &fakeEnsurer{})
		assert.Error(t, svc.Start(context.Background()))
	})

	t.Run("stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		svc := NewReportSweepService(config.SchedulerConfig{Enabled: true, Cron: "15 6 * * *"}, &fakeUsers{}, &fakeEnsurer{})
		require.NoError(t, svc.Start(ctx))
		assert.True(t, svc.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !svc.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
