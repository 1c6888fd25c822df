// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/domain/entity"
)

// UserRepository defines read access to accounts owned by the authentication system.
type UserRepository interface {
	// FindByID retrieves a user by their ID. Returns nil when the user does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListActiveUserIDs returns ids of users owning at least one obligation or transaction.
	ListActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)
}
