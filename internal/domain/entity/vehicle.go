// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a household vehicle with its service history markers.
type Vehicle struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Year                 *int
	Make                 string
	Model                string
	CurrentMileage       *int
	LastOilChangeMileage *int
	OilChangeInterval    *int
	LastServiceDate      *time.Time
	RegistrationExpiry   *time.Time
}

// Label returns a display label such as "2019 Honda Civic".
func (v *Vehicle) Label() string {
	parts := make([]string, 0, 3)
	if v.Year != nil && *v.Year > 0 {
		parts = append(parts, strconv.Itoa(*v.Year))
	}
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if len(parts) == 0 {
		return "Vehicle"
	}
	return strings.Join(parts, " ")
}
