package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessClaims identify the caller of an authenticated request.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenValidator validates access tokens issued by the authentication service.
type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (*AccessClaims, error)
}
