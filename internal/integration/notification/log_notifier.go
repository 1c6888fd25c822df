// Package notification implements adapter.Notifier delivery channels.
package notification

import (
	"context"
	"log/slog"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// LogNotifier writes notifications to the structured log. It is the default channel.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Schedule logs the notification.
func (n *LogNotifier) Schedule(ctx context.Context, notification entity.Notification) error {
	slog.InfoContext(ctx, "Notification scheduled",
		"user_id", notification.UserID,
		"kind", notification.Kind,
		"title", notification.Title,
	)
	return nil
}

var _ adapter.Notifier = (*LogNotifier)(nil)
