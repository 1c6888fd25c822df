// Package onboarding contains the onboarding pause/resume use cases.
package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// MaxCollectedEntities bounds the entities kept in a paused onboarding.
const MaxCollectedEntities = 200

// StateUseCase reads, writes and clears the paused onboarding of a user.
type StateUseCase struct {
	store adapter.OnboardingStateStore
	now   func() time.Time
}

// NewStateUseCase creates a new StateUseCase instance.
func NewStateUseCase(store adapter.OnboardingStateStore, now func() time.Time) *StateUseCase {
	if now == nil {
		now = time.Now
	}
	return &StateUseCase{store: store, now: now}
}

// Get returns the paused state, read when the onboarding screen mounts.
func (uc *StateUseCase) Get(ctx context.Context, userID uuid.UUID) (*entity.OnboardingState, error) {
	state, err := uc.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOnboardingStateNotFound) {
			return nil, domainerror.NewOnboardingError(
				domainerror.ErrCodeOnboardingNotFound,
				domainerror.ErrOnboardingStateNotFound.Error(),
				domainerror.ErrOnboardingStateNotFound,
			)
		}
		return nil, unavailable(err)
	}
	return state, nil
}

// Save stores the state after a turn. It replaces any previous state.
func (uc *StateUseCase) Save(ctx context.Context, userID uuid.UUID, state *entity.OnboardingState) (*entity.OnboardingState, error) {
	if state == nil || strings.TrimSpace(state.Step) == "" {
		return nil, domainerror.NewOnboardingError(
			domainerror.ErrCodeOnboardingInvalid,
			"step is required",
			domainerror.ErrInvalidOnboardingState,
		)
	}
	if len(state.CollectedEntities) > MaxCollectedEntities {
		return nil, domainerror.NewOnboardingError(
			domainerror.ErrCodeOnboardingInvalid,
			"too many collected entities",
			domainerror.ErrInvalidOnboardingState,
		)
	}

	saved := *state
	saved.Step = strings.TrimSpace(state.Step)
	if saved.CollectedEntities == nil {
		saved.CollectedEntities = []map[string]any{}
	}
	saved.UpdatedAt = uc.now().UTC()

	if err := uc.store.Save(ctx, userID, &saved); err != nil {
		return nil, unavailable(err)
	}
	return &saved, nil
}

// Clear removes the state once onboarding completes. Clearing a missing state succeeds.
func (uc *StateUseCase) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := uc.store.Clear(ctx, userID); err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return domainerror.NewOnboardingError(
		domainerror.ErrCodeOnboardingUnavailable,
		domainerror.ErrOnboardingStoreUnavailable.Error(),
		err,
	)
}
