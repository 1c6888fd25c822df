// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Pet represents a household pet.
type Pet struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   string
	// VaccinationDates is free text, semicolon separated (e.g. "Rabies 2025-03-14; DHPP 04/2025").
	VaccinationDates string
}
