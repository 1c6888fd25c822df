// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/domain/entity"
)

// OnboardingStateStore keeps the single pause/resume record of a user's onboarding.
type OnboardingStateStore interface {
	// Get returns ErrOnboardingStateNotFound when no state is stored.
	Get(ctx context.Context, userID uuid.UUID) (*entity.OnboardingState, error)
	Save(ctx context.Context, userID uuid.UUID, state *entity.OnboardingState) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
