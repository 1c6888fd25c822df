package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// onboardingStore implements adapter.OnboardingStateStore with one JSON value per user.
type onboardingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOnboardingStore creates a Redis-backed onboarding state store.
// A zero ttl keeps paused onboarding until it is cleared.
func NewOnboardingStore(client *redis.Client, ttl time.Duration) adapter.OnboardingStateStore {
	return &onboardingStore{client: client, ttl: ttl}
}

func onboardingKey(userID uuid.UUID) string {
	return "onboarding:" + userID.String()
}

// Get returns the stored state or ErrOnboardingStateNotFound.
func (s *onboardingStore) Get(ctx context.Context, userID uuid.UUID) (*entity.OnboardingState, error) {
	raw, err := s.client.Get(ctx, onboardingKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrOnboardingStateNotFound
		}
		return nil, fmt.Errorf("failed to read onboarding state: %w", err)
	}

	var state entity.OnboardingState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode onboarding state: %w", err)
	}
	return &state, nil
}

// Save replaces the stored state.
func (s *onboardingStore) Save(ctx context.Context, userID uuid.UUID, state *entity.OnboardingState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode onboarding state: %w", err)
	}
	if err := s.client.Set(ctx, onboardingKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write onboarding state: %w", err)
	}
	return nil
}

// Clear removes the stored state.
func (s *onboardingStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, onboardingKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear onboarding state: %w", err)
	}
	return nil
}
