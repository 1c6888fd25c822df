// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GrowthRecord represents a dated clothing/shoe size measurement for a person.
type GrowthRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	RecordDate time.Time
	Size       string // Free text, usually numeric ("7", "7.5", "8T")
	Height     *float64
}
