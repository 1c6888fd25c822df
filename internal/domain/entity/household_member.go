// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdMember represents a person living in or belonging to the household.
type HouseholdMember struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Relationship string
	Birthday     *time.Time
}
