// Package error defines domain-specific errors for the household insights application.
package error

// AuthErrorCode defines error codes for request authentication.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020001"
)
