// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// HouseholdRecords groups the normalized rows of every household domain for one user.
// A domain that could not be read is left empty.
type HouseholdRecords struct {
	UserID         uuid.UUID
	Obligations    []*Obligation
	Transactions   []*Transaction
	Members        []*HouseholdMember
	Vehicles       []*Vehicle
	Pets           []*Pet
	Appointments   []*Appointment
	MedicalRecords []*MedicalRecord
	GrowthRecords  []*GrowthRecord
}
