// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a scheduled or past appointment.
type Appointment struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Title  string
	Date   time.Time
	Time   string // Free-form time of day, e.g. "14:30"
}

// MedicalRecord represents an entry in the household medical history.
type MedicalRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	MemberName string
	RecordType string
	RecordDate time.Time
}
