// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// OnboardingState is the pause/resume state of the conversational onboarding flow.
type OnboardingState struct {
	Step              string           `json:"step"`
	CollectedEntities []map[string]any `json:"collected_entities"`
	LastReply         string           `json:"last_reply"`
	Initialized       bool             `json:"initialized"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
