// Package dependency provides dependency injection for the application.
package dependency

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/application/usecase/insight"
	"github.com/homeledger/backend/internal/application/usecase/onboarding"
	"github.com/homeledger/backend/internal/application/usecase/report"
	infracache "github.com/homeledger/backend/internal/infra/cache"
	"github.com/homeledger/backend/internal/infra/scheduler"
	"github.com/homeledger/backend/internal/infra/server/router"
	"github.com/homeledger/backend/internal/integration/adapters"
	"github.com/homeledger/backend/internal/integration/cache"
	"github.com/homeledger/backend/internal/integration/email"
	"github.com/homeledger/backend/internal/integration/email/templates"
	"github.com/homeledger/backend/internal/integration/entrypoint/controller"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
	"github.com/homeledger/backend/internal/integration/notification"
	"github.com/homeledger/backend/internal/integration/persistence"
	"github.com/homeledger/backend/internal/integration/rules"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	Snapshots       *household.AggregateUseCase
	Insights        *insight.GetInsightsUseCase
	GenerateAndSave *report.GenerateAndSaveUseCase
	EnsureReport    *report.EnsureCurrentPeriodUseCase
	ReportSweep     *scheduler.ReportSweepService

	closers []func() error
}

// Option customizes NewInjector.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now in every time-dependent use case.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector wires every component. db may be nil, in which case only the health
// endpoint is served. redisClient may be nil, which disables the period lock and
// the onboarding routes.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	inj := &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	}

	gemini := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	healthController := controller.NewHealthController(
		databaseHealthChecker(db),
		infracache.HealthChecker(redisClient),
		gemini.IsAvailable(),
	)

	if db == nil {
		slog.Warn("Household insights not initialized due to missing database connection")
		inj.Router = router.NewRouter(healthController, nil, nil, nil, nil, nil, nil)
		return inj, nil
	}

	classificationRules, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load classification rules: %w", err)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	reportRepo := persistence.NewMonthlyReportRepository(db)
	repos := household.Repositories{
		Obligations:    persistence.NewObligationRepository(db),
		Transactions:   persistence.NewTransactionRepository(db),
		Members:        persistence.NewHouseholdMemberRepository(db),
		Vehicles:       persistence.NewVehicleRepository(db),
		Pets:           persistence.NewPetRepository(db),
		Appointments:   persistence.NewAppointmentRepository(db),
		MedicalRecords: persistence.NewMedicalRecordRepository(db),
		GrowthRecords:  persistence.NewGrowthRecordRepository(db),
	}

	// Create household and insight use cases
	engine := extrapolation.NewEngine(classificationRules, cfg.Insights.OilChangeInterval)
	inj.Snapshots = household.NewAggregateUseCase(repos, engine, household.Options{
		QueryTimeout:             cfg.Insights.DomainQueryTimeout,
		Concurrency:              cfg.Insights.Concurrency,
		TransactionHistoryMonths: cfg.Insights.TransactionHistoryMonths,
		Now:                      o.now,
	})
	inj.Insights = insight.NewGetInsightsUseCase(
		inj.Snapshots,
		insight.NewRenderUseCase(gemini, cfg.Gemini.InsightTimeout),
	)

	// Create report use cases
	notifier, err := inj.newNotifier(userRepo, reportRepo)
	if err != nil {
		return nil, err
	}

	var lock adapter.PeriodLock
	if redisClient != nil {
		lock = cache.NewPeriodLock(redisClient)
	}

	inj.GenerateAndSave = report.NewGenerateAndSaveUseCase(report.GenerateAndSaveDeps{
		Drafts:   report.NewBuildDraftUseCase(inj.Snapshots, classificationRules),
		Writer:   report.NewWriteTextUseCase(gemini, cfg.Gemini.ReportTimeout),
		Repo:     reportRepo,
		Notifier: notifier,
		Lock:     lock,
		Now:      o.now,
	})
	inj.EnsureReport = report.NewEnsureCurrentPeriodUseCase(reportRepo, inj.GenerateAndSave, o.now)
	inj.ReportSweep = scheduler.NewReportSweepService(cfg.Scheduler, userRepo, inj.EnsureReport)

	// Create controllers
	householdController := controller.NewHouseholdController(inj.Snapshots)
	insightController := controller.NewInsightController(inj.Insights)
	reportController := controller.NewReportController(
		report.NewGetReportUseCase(reportRepo, o.now),
		inj.EnsureReport,
		inj.GenerateAndSave,
	)

	var onboardingController *controller.OnboardingController
	if redisClient != nil {
		store := cache.NewOnboardingStore(redisClient, cfg.Redis.OnboardingTTL)
		onboardingController = controller.NewOnboardingController(onboarding.NewStateUseCase(store, o.now))
	} else {
		slog.Warn("Onboarding state routes disabled due to missing redis connection")
	}

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	limit, window := cfg.Insights.RegenerateRateLimit, cfg.Insights.RegenerateRateWindow
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		limit, window = 1000, time.Minute
	}
	regenerateRateLimiter := middleware.NewRateLimiter(limit, window)
	if redisClient != nil {
		regenerateRateLimiter = middleware.NewRedisRateLimiter(redisClient, limit, window)
	}
	authMiddleware := middleware.NewAuthMiddleware(adapters.NewTokenService(cfg.JWT.Secret))

	inj.Router = router.NewRouter(
		healthController,
		householdController,
		insightController,
		reportController,
		onboardingController,
		regenerateRateLimiter,
		authMiddleware,
	)

	return inj, nil
}

// Close releases connections opened by the injector.
func (inj *Injector) Close() error {
	var errs []error
	for _, closeFn := range inj.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newNotifier selects the delivery channel. A channel that cannot be set up falls
// back to logging so report generation keeps working.
func (inj *Injector) newNotifier(users adapter.UserRepository, reports adapter.MonthlyReportRepository) (adapter.Notifier, error) {
	cfg := inj.Config

	switch cfg.Notification.Channel {
	case config.NotificationChannelLog, "":
		return notification.NewLogNotifier(), nil

	case config.NotificationChannelEmail:
		if cfg.Email.ResendAPIKey == "" {
			slog.Warn("Email notifications requested without RESEND_API_KEY, logging instead")
			return notification.NewLogNotifier(), nil
		}
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sender, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ResendBaseURL)
		if err != nil {
			return nil, err
		}
		return notification.NewEmailNotifier(users, reports, sender, renderer, cfg.Email.AppBaseURL), nil

	case config.NotificationChannelAMQP:
		notifier, err := notification.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			slog.Warn("AMQP notifier unavailable, logging instead", "error", err)
			return notification.NewLogNotifier(), nil
		}
		inj.closers = append(inj.closers, notifier.Close)
		return notifier, nil

	default:
		return nil, fmt.Errorf("unknown notification channel %q", cfg.Notification.Channel)
	}
}

func databaseHealthChecker(db *gorm.DB) func() bool {
	return func() bool {
		if db == nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
}
