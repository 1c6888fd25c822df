// Package scheduler runs the recurring background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/application/usecase/report"
)

// ActiveUserLister lists the users the sweep visits.
type ActiveUserLister interface {
	ListActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PeriodEnsurer creates the current period's report when it is due.
type PeriodEnsurer interface {
	Execute(ctx context.Context, userID uuid.UUID) (*report.EnsureOutput, error)
}

// SweepResult counts the outcomes of one sweep.
type SweepResult struct {
	Users   int
	Created int
	Exists  int
	Skipped int
	Failed  int
}

// ReportSweepService runs EnsureCurrentPeriod for every active user on a cron schedule.
type ReportSweepService struct {
	scheduler *gocron.Scheduler
	config    config.SchedulerConfig
	users     ActiveUserLister
	ensurer   PeriodEnsurer

	mu      sync.Mutex
	running bool
}

// NewReportSweepService creates a new ReportSweepService. The schedule is evaluated in UTC.
func NewReportSweepService(cfg config.SchedulerConfig, users ActiveUserLister, ensurer PeriodEnsurer) *ReportSweepService {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &ReportSweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		users:     users,
		ensurer:   ensurer,
	}
}

// Start registers the sweep and runs the scheduler until ctx is cancelled.
func (s *ReportSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		slog.Info("Report sweep disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.Cron).Do(func() {
		s.RunSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule report sweep: %w", err)
	}

	s.scheduler.StartAsync()
	slog.Info("Report sweep scheduled", "cron", s.config.Cron, "workers", s.config.Workers)

	go func() {
		<-ctx.Done()
		slog.Info("Stopping report sweep scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep ensures the current report for every active user. A sweep already in
// progress makes the call return immediately with a zero result.
func (s *ReportSweepService) RunSweep(ctx context.Context) SweepResult {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		slog.Info("Report sweep already running, skipping")
		return SweepResult{}
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	started := time.Now()

	userIDs, err := s.users.ListActiveUserIDs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list users for report sweep", "error", err)
		return SweepResult{}
	}

	var (
		mu     sync.Mutex
		result = SweepResult{Users: len(userIDs)}
	)

	var g errgroup.Group
	g.SetLimit(s.config.Workers)

	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			output, err := s.ensurer.Execute(ctx, userID)

			mu.Lock()
			defer mu.Unlock()

			if err != nil || output == nil {
				result.Failed++
				slog.ErrorContext(ctx, "Report sweep failed for user", "user_id", userID, "error", err)
				return nil
			}
			switch output.Status {
			case report.EnsureStatusCreated:
				result.Created++
			case report.EnsureStatusExists:
				result.Exists++
			case report.EnsureStatusSkipped:
				result.Skipped++
			default:
				result.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	slog.InfoContext(ctx, "Report sweep completed",
		"users", result.Users,
		"created", result.Created,
		"exists", result.Exists,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", time.Since(started).String(),
	)

	return result
}
