package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/email/templates"
)

// EmailNotifier delivers monthly report notifications by email.
type EmailNotifier struct {
	users      adapter.UserRepository
	reports    adapter.MonthlyReportRepository
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	appBaseURL string
}

// NewEmailNotifier creates a new EmailNotifier.
func NewEmailNotifier(
	users adapter.UserRepository,
	reports adapter.MonthlyReportRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	appBaseURL string,
) *EmailNotifier {
	return &EmailNotifier{
		users:      users,
		reports:    reports,
		sender:     sender,
		renderer:   renderer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// Schedule resolves the recipient, renders the report email and sends it.
func (n *EmailNotifier) Schedule(ctx context.Context, notification entity.Notification) error {
	user, err := n.users.FindByID(ctx, notification.UserID)
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}
	if user == nil || user.Email == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeRecipientNotFound,
			"no email address for user",
			domainerror.ErrRecipientNotFound,
		)
	}

	data := templates.MonthlyReportData{
		UserName: user.Name,
		Summary:  notification.Body,
	}
	tags := map[string]string{}
	if notification.Kind != "" {
		tags["kind"] = notification.Kind
	}
	if report := n.latestReport(ctx, notification); report != nil {
		tags["period"] = report.PeriodKey.Format("2006-01")
		data.MonthLabel = report.PeriodKey.Format("January 2006")
		data.Summary = report.SummaryText
		data.Highlights = report.Highlights
		data.Suggestions = report.Suggestions
		if n.appBaseURL != "" {
			data.ReportURL = fmt.Sprintf("%s/reports/%s", n.appBaseURL, report.PeriodKey.Format("2006-01"))
		}
	}

	email, err := n.renderer.RenderMonthlyReport(data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render monthly report email",
			err,
		)
	}

	_, err = n.sender.Send(ctx, adapter.EmailMessage{
		To:      user.Email,
		Subject: notification.Title,
		HTML:    email.HTML,
		Text:    email.Text,
		Tags:    tags,
	})
	return err
}

// latestReport returns the newest report for monthly report notifications.
// Lookup failures degrade to a plain email with the notification body.
func (n *EmailNotifier) latestReport(ctx context.Context, notification entity.Notification) *entity.MonthlyReport {
	if n.reports == nil || notification.Kind != entity.NotificationKindMonthlyReport {
		return nil
	}
	reports, err := n.reports.ListByUser(ctx, notification.UserID, 1)
	if err != nil || len(reports) == 0 {
		return nil
	}
	return reports[0]
}

var _ adapter.Notifier = (*EmailNotifier)(nil)
