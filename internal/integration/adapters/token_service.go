// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
)

// tokenTypeAccess is the token_type claim carried by access tokens.
const tokenTypeAccess = "access"

var errNotAccessToken = errors.New("invalid token type: expected access token")

// CustomClaims are the claims written by the authentication service.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService validates HS256 access tokens. It never issues tokens.
type tokenService struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenService creates a token validator for tokens signed with secret.
func NewTokenService(secret string) adapter.TokenValidator {
	return &tokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// ValidateAccessToken checks signature, expiry and token type. The user id is
// read from user_id, falling back to the subject claim.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.AccessClaims, error) {
	claims := &CustomClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, errNotAccessToken
	}

	rawID := claims.UserID
	if rawID == "" {
		rawID = claims.Subject
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.AccessClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
