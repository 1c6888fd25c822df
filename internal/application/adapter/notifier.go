// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/homeledger/backend/internal/domain/entity"
)

// Notifier hands a notification to the delivery system. Delivery is best effort.
type Notifier interface {
	Schedule(ctx context.Context, notification entity.Notification) error
}
