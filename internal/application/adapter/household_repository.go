// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/domain/entity"
)

// ObligationRepository reads a user's bills and recurring obligations.
type ObligationRepository interface {
	// FindByUser returns every obligation owned by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error)
}

// TransactionRepository reads a user's recorded transactions.
type TransactionRepository interface {
	// FindByUserSince returns the user's transactions dated on or after since.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.Transaction, error)
}

// HouseholdMemberRepository reads the people in a user's household.
type HouseholdMemberRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.HouseholdMember, error)
}

// VehicleRepository reads a user's vehicles.
type VehicleRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error)
}

// PetRepository reads a user's pets.
type PetRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error)
}

// AppointmentRepository reads a user's appointments, past and upcoming.
type AppointmentRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error)
}

// MedicalRecordRepository reads a user's medical history entries.
type MedicalRecordRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MedicalRecord, error)
}

// GrowthRecordRepository reads a user's growth (size) history.
type GrowthRecordRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GrowthRecord, error)
}
