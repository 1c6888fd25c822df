// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// PeriodLock serializes report generation for a single (user, period) key.
type PeriodLock interface {
	// Acquire tries to take the lock. When acquired is false another holder owns it.
	// release must be called once the critical section ends.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}
