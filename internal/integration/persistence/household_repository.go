// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/integration/persistence/model"
)

// findByUser loads every row of M owned by userID in the given order and converts it.
func findByUser[M any, E any](
	ctx context.Context,
	db *gorm.DB,
	userID uuid.UUID,
	order string,
	toEntity func(*M) *E,
) ([]*E, error) {
	var models []M
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*E, len(models))
	for i := range models {
		entities[i] = toEntity(&models[i])
	}
	return entities, nil
}

// obligationRepository implements the adapter.ObligationRepository interface.
type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository creates a new obligation repository instance.
func NewObligationRepository(db *gorm.DB) adapter.ObligationRepository {
	return &obligationRepository{db: db}
}

// FindByUser returns every obligation owned by the user, earliest due first.
func (r *obligationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error) {
	obligations, err := findByUser(ctx, r.db, userID, "due_date ASC, name ASC", (*model.ObligationModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find obligations: %w", err)
	}
	return obligations, nil
}

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

// FindByUserSince returns the user's transactions dated on or after since.
func (r *transactionRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ?", since).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// householdMemberRepository implements the adapter.HouseholdMemberRepository interface.
type householdMemberRepository struct {
	db *gorm.DB
}

// NewHouseholdMemberRepository creates a new household member repository instance.
func NewHouseholdMemberRepository(db *gorm.DB) adapter.HouseholdMemberRepository {
	return &householdMemberRepository{db: db}
}

func (r *householdMemberRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.HouseholdMember, error) {
	members, err := findByUser(ctx, r.db, userID, "name ASC", (*model.HouseholdMemberModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find household members: %w", err)
	}
	return members, nil
}

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	vehicles, err := findByUser(ctx, r.db, userID, "created_at ASC", (*model.VehicleModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	return vehicles, nil
}

// petRepository implements the adapter.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository instance.
func NewPetRepository(db *gorm.DB) adapter.PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error) {
	pets, err := findByUser(ctx, r.db, userID, "name ASC", (*model.PetModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find pets: %w", err)
	}
	return pets, nil
}

// appointmentRepository implements the adapter.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance.
func NewAppointmentRepository(db *gorm.DB) adapter.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	appointments, err := findByUser(ctx, r.db, userID, "date ASC", (*model.AppointmentModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	return appointments, nil
}

// medicalRecordRepository implements the adapter.MedicalRecordRepository interface.
type medicalRecordRepository struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new medical record repository instance.
func NewMedicalRecordRepository(db *gorm.DB) adapter.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MedicalRecord, error) {
	records, err := findByUser(ctx, r.db, userID, "record_date ASC", (*model.MedicalRecordModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find medical records: %w", err)
	}
	return records, nil
}

// growthRecordRepository implements the adapter.GrowthRecordRepository interface.
type growthRecordRepository struct {
	db *gorm.DB
}

// NewGrowthRecordRepository creates a new growth record repository instance.
func NewGrowthRecordRepository(db *gorm.DB) adapter.GrowthRecordRepository {
	return &growthRecordRepository{db: db}
}

func (r *growthRecordRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GrowthRecord, error) {
	records, err := findByUser(ctx, r.db, userID, "record_date ASC", (*model.GrowthRecordModel).ToEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to find growth records: %w", err)
	}
	return records, nil
}
