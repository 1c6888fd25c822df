// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// User is the account owner as seen by this service. Accounts are managed elsewhere.
type User struct {
	ID    uuid.UUID
	Email string
	Name  string
}
