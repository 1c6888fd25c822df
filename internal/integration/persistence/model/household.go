package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

// ObligationModel represents the obligations (bills) table in the database.
type ObligationModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name       string           `gorm:"type:varchar(255);not null"`
	Provider   string           `gorm:"type:varchar(255)"`
	Category   string           `gorm:"type:varchar(100)"`
	Amount     decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	PaidAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PaidDate   *time.Time       `gorm:"type:date"`
	Status     string           `gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate    *time.Time       `gorm:"type:date"`
	CreatedAt  time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ObligationModel.
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToEntity converts an ObligationModel to a domain Obligation entity.
func (m *ObligationModel) ToEntity() *entity.Obligation {
	return &entity.Obligation{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Provider:   m.Provider,
		Category:   m.Category,
		Amount:     m.Amount,
		PaidAmount: m.PaidAmount,
		PaidDate:   m.PaidDate,
		Status:     entity.ObligationStatus(m.Status),
		DueDate:    m.DueDate,
	}
}

// HouseholdMemberModel represents the household_members table in the database.
type HouseholdMemberModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Relationship string     `gorm:"type:varchar(50)"`
	Birthday     *time.Time `gorm:"type:date"`
	CreatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the HouseholdMemberModel.
func (HouseholdMemberModel) TableName() string {
	return "household_members"
}

// ToEntity converts a HouseholdMemberModel to a domain HouseholdMember entity.
func (m *HouseholdMemberModel) ToEntity() *entity.HouseholdMember {
	return &entity.HouseholdMember{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Birthday:     m.Birthday,
	}
}

// VehicleModel represents the vehicles table in the database.
type VehicleModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Year                 *int       `gorm:"type:integer"`
	Make                 string     `gorm:"type:varchar(100)"`
	Model                string     `gorm:"type:varchar(100)"`
	CurrentMileage       *int       `gorm:"type:integer"`
	LastOilChangeMileage *int       `gorm:"type:integer"`
	OilChangeInterval    *int       `gorm:"type:integer"`
	LastServiceDate      *time.Time `gorm:"type:date"`
	RegistrationExpiry   *time.Time `gorm:"type:date"`
	CreatedAt            time.Time  `gorm:"not null"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:                   m.ID,
		UserID:               m.UserID,
		Year:                 m.Year,
		Make:                 m.Make,
		Model:                m.Model,
		CurrentMileage:       m.CurrentMileage,
		LastOilChangeMileage: m.LastOilChangeMileage,
		OilChangeInterval:    m.OilChangeInterval,
		LastServiceDate:      m.LastServiceDate,
		RegistrationExpiry:   m.RegistrationExpiry,
	}
}

// PetModel represents the pets table in the database.
type PetModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Type             string    `gorm:"type:varchar(50)"`
	VaccinationDates string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the PetModel.
func (PetModel) TableName() string {
	return "pets"
}

// ToEntity converts a PetModel to a domain Pet entity.
func (m *PetModel) ToEntity() *entity.Pet {
	return &entity.Pet{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Type:             m.Type,
		VaccinationDates: m.VaccinationDates,
	}
}

// AppointmentModel represents the appointments table in the database.
type AppointmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Time      string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppointmentModel.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToEntity converts an AppointmentModel to a domain Appointment entity.
func (m *AppointmentModel) ToEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:     m.ID,
		UserID: m.UserID,
		Title:  m.Title,
		Date:   m.Date,
		Time:   m.Time,
	}
}

// MedicalRecordModel represents the medical_records table in the database.
type MedicalRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberName string    `gorm:"type:varchar(100)"`
	RecordType string    `gorm:"type:varchar(100);not null"`
	RecordDate time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the MedicalRecordModel.
func (MedicalRecordModel) TableName() string {
	return "medical_records"
}

// ToEntity converts a MedicalRecordModel to a domain MedicalRecord entity.
func (m *MedicalRecordModel) ToEntity() *entity.MedicalRecord {
	return &entity.MedicalRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		MemberName: m.MemberName,
		RecordType: m.RecordType,
		RecordDate: m.RecordDate,
	}
}

// GrowthRecordModel represents the growth_records table in the database.
type GrowthRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	RecordDate time.Time `gorm:"type:date;not null"`
	Size       string    `gorm:"type:varchar(20)"`
	Height     *float64  `gorm:"type:decimal(6,2)"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GrowthRecordModel.
func (GrowthRecordModel) TableName() string {
	return "growth_records"
}

// ToEntity converts a GrowthRecordModel to a domain GrowthRecord entity.
func (m *GrowthRecordModel) ToEntity() *entity.GrowthRecord {
	return &entity.GrowthRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		RecordDate: m.RecordDate,
		Size:       m.Size,
		Height:     m.Height,
	}
}
