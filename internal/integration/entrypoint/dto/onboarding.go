package dto

import (
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
)

// OnboardingStateRequest represents the body of PUT /onboarding/state.
type OnboardingStateRequest struct {
	Step              string           `json:"step" binding:"required"`
	CollectedEntities []map[string]any `json:"collected_entities"`
	LastReply         string           `json:"last_reply"`
	Initialized       bool             `json:"initialized"`
}

// OnboardingStateResponse represents a paused onboarding.
type OnboardingStateResponse struct {
	Step              string           `json:"step"`
	CollectedEntities []map[string]any `json:"collected_entities"`
	LastReply         string           `json:"last_reply"`
	Initialized       bool             `json:"initialized"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ToEntity converts the request to a domain OnboardingState.
func (r OnboardingStateRequest) ToEntity() *entity.OnboardingState {
	return &entity.OnboardingState{
		Step:              r.Step,
		CollectedEntities: r.CollectedEntities,
		LastReply:         r.LastReply,
		Initialized:       r.Initialized,
	}
}

// ToOnboardingStateResponse converts a domain OnboardingState to the response DTO.
func ToOnboardingStateResponse(state *entity.OnboardingState) OnboardingStateResponse {
	entities := state.CollectedEntities
	if entities == nil {
		entities = []map[string]any{}
	}
	return OnboardingStateResponse{
		Step:              state.Step,
		CollectedEntities: entities,
		LastReply:         state.LastReply,
		Initialized:       state.Initialized,
		UpdatedAt:         state.UpdatedAt,
	}
}
