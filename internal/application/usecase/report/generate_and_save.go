package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

const (
	defaultLockTTL      = 2 * time.Minute
	notificationBodyMax = 160
)

// LockKey returns the period lock key for a (user, period) pair.
func LockKey(userID uuid.UUID, periodKey time.Time) string {
	return fmt.Sprintf("monthly-report:%s:%s", userID, valueobject.FormatPeriodKey(periodKey))
}

// GenerateAndSaveInput represents the input for generating and saving a report.
type GenerateAndSaveInput struct {
	UserID           uuid.UUID
	PeriodKey        time.Time
	SendNotification bool
}

// GenerateAndSaveOutput reports whether the report was persisted.
// Err carries the typed reason when Saved is false.
type GenerateAndSaveOutput struct {
	Saved     bool
	Created   bool
	Generated bool
	Notified  bool
	Report    *entity.MonthlyReport
	Err       error
}

// GenerateAndSaveDeps holds the collaborators of GenerateAndSaveUseCase.
// Notifier and Lock are optional.
type GenerateAndSaveDeps struct {
	Drafts   *BuildDraftUseCase
	Writer   *WriteTextUseCase
	Repo     adapter.MonthlyReportRepository
	Notifier adapter.Notifier
	Lock     adapter.PeriodLock
	LockTTL  time.Duration
	Now      func() time.Time
	// NewShareToken overrides share token creation.
	NewShareToken func() (string, error)
}

// GenerateAndSaveUseCase regenerates a report and upserts it on (user, period).
type GenerateAndSaveUseCase struct {
	drafts        *BuildDraftUseCase
	writer        *WriteTextUseCase
	repo          adapter.MonthlyReportRepository
	notifier      adapter.Notifier
	lock          adapter.PeriodLock
	lockTTL       time.Duration
	now           func() time.Time
	newShareToken func() (string, error)
}

// NewGenerateAndSaveUseCase creates a new GenerateAndSaveUseCase instance.
func NewGenerateAndSaveUseCase(deps GenerateAndSaveDeps) *GenerateAndSaveUseCase {
	uc := &GenerateAndSaveUseCase{
		drafts:        deps.Drafts,
		writer:        deps.Writer,
		repo:          deps.Repo,
		notifier:      deps.Notifier,
		lock:          deps.Lock,
		lockTTL:       deps.LockTTL,
		now:           deps.Now,
		newShareToken: deps.NewShareToken,
	}
	if uc.lockTTL <= 0 {
		uc.lockTTL = defaultLockTTL
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.newShareToken == nil {
		uc.newShareToken = func() (string, error) { return gonanoid.New() }
	}
	return uc
}

// Execute always regenerates the report. Periods after the current month and persistence
// problems return Saved=false, never a panic.
// Nothing is written until the whole draft and its text are ready.
func (uc *GenerateAndSaveUseCase) Execute(ctx context.Context, input GenerateAndSaveInput) *GenerateAndSaveOutput {
	period := valueobject.PeriodKeyFor(input.PeriodKey)
	logger := slog.With("user_id", input.UserID, "period_key", valueobject.FormatPeriodKey(period))

	if period.After(valueobject.PeriodKeyFor(uc.now().UTC())) {
		logger.Info("Rejecting report for a future period")
		return notSaved(domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKey,
			"period is after the current month",
			domainerror.ErrInvalidPeriodKey,
		))
	}

	if uc.lock != nil {
		release, acquired, err := uc.lock.Acquire(ctx, LockKey(input.UserID, period), uc.lockTTL)
		switch {
		case err != nil:
			logger.Warn("Period lock unavailable, generating without it", "error", err)
		case !acquired:
			logger.Info("Report generation already in progress")
			return notSaved(domainerror.NewReportError(
				domainerror.ErrCodeGenerationInProgress,
				"report generation already in progress",
				domainerror.ErrReportGenerationInProgress,
			))
		default:
			defer release()
		}
	}

	draft := uc.drafts.Execute(ctx, input.UserID, period)
	text := uc.writer.Execute(ctx, draft)

	costAnalysis, err := json.Marshal(draft.CostAnalysis)
	if err != nil {
		logger.Error("Failed to encode cost analysis", "error", err)
		return notSaved(domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "failed to encode cost analysis", err))
	}

	if err := ctx.Err(); err != nil {
		logger.Warn("Report generation cancelled before save", "error", err)
		return notSaved(domainerror.NewReportError(domainerror.ErrCodeReportSaveFailed, "report generation cancelled", err))
	}

	existing, err := uc.repo.FindByPeriod(ctx, input.UserID, period)
	if err != nil {
		logger.Error("Failed to look up monthly report", "error", err)
		return notSaved(domainerror.NewReportError(
			domainerror.ErrCodeReportStoreUnavailable,
			domainerror.ErrReportStoreUnavailable.Error(),
			err,
		))
	}

	created := existing == nil
	report := existing
	if created {
		token, err := uc.newShareToken()
		if err != nil {
			logger.Error("Failed to create share token", "error", err)
			return notSaved(domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "failed to create share token", err))
		}
		report = entity.NewMonthlyReport(input.UserID, period, token)
	}
	report.SummaryText = text.Summary
	report.Highlights = text.Highlights
	report.Suggestions = text.Suggestions
	report.CostAnalysis = costAnalysis
	report.UpdatedAt = uc.now().UTC()

	saved, err := uc.repo.Save(ctx, report)
	if err != nil {
		logger.Error("Failed to save monthly report", "error", err)
		return notSaved(domainerror.NewReportError(
			domainerror.ErrCodeReportSaveFailed,
			domainerror.ErrReportSaveFailed.Error(),
			err,
		))
	}

	logger.Info("Monthly report saved",
		"report_id", saved.ID,
		"created", created,
		"generated", text.Generated,
	)

	out := &GenerateAndSaveOutput{
		Saved:     true,
		Created:   created,
		Generated: text.Generated,
		Report:    saved,
	}
	if input.SendNotification {
		out.Notified = uc.notify(ctx, saved)
	}
	return out
}

// notify schedules the "report ready" notification once. Failures are logged and not retried.
func (uc *GenerateAndSaveUseCase) notify(ctx context.Context, report *entity.MonthlyReport) bool {
	if uc.notifier == nil {
		return false
	}
	notification := entity.Notification{
		UserID:    report.UserID,
		Title:     fmt.Sprintf("Your %s report is ready", valueobject.MonthLabel(report.PeriodKey)),
		Body:      notificationBody(report.SummaryText),
		Kind:      entity.NotificationKindMonthlyReport,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.notifier.Schedule(ctx, notification); err != nil {
		slog.Warn("Failed to schedule report notification",
			"user_id", report.UserID,
			"report_id", report.ID,
			"error", err,
		)
		return false
	}
	return true
}

// notificationBody returns the first sentence of the summary, shortened to fit a push message.
func notificationBody(summary string) string {
	body := strings.TrimSpace(summary)
	if i := strings.Index(body, ". "); i >= 0 {
		body = body[:i+1]
	}
	if runes := []rune(body); len(runes) > notificationBodyMax {
		body = string(runes[:notificationBodyMax-3]) + "..."
	}
	return body
}

func notSaved(err error) *GenerateAndSaveOutput {
	return &GenerateAndSaveOutput{Saved: false, Err: err}
}
