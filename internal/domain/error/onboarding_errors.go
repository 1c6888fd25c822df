// Package error defines domain-specific errors for the household insights application.
package error

import "errors"

// Onboarding state errors.
var (
	// ErrOnboardingStateNotFound is returned when no paused onboarding exists for the user.
	ErrOnboardingStateNotFound = errors.New("onboarding state not found")

	// ErrInvalidOnboardingState is returned when a state to save is malformed.
	ErrInvalidOnboardingState = errors.New("invalid onboarding state")

	// ErrOnboardingStoreUnavailable is returned when the state store cannot be reached.
	ErrOnboardingStoreUnavailable = errors.New("onboarding state store unavailable")
)

// OnboardingErrorCode defines error codes for onboarding state errors.
type OnboardingErrorCode string

const (
	ErrCodeOnboardingInvalid     OnboardingErrorCode = "ONB-010001"
	ErrCodeOnboardingNotFound    OnboardingErrorCode = "ONB-020001"
	ErrCodeOnboardingUnavailable OnboardingErrorCode = "ONB-990001"
)

// OnboardingError represents an onboarding state error with code and message.
type OnboardingError struct {
	Code    OnboardingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OnboardingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OnboardingError) Unwrap() error {
	return e.Err
}

// NewOnboardingError creates a new OnboardingError with the given code and message.
func NewOnboardingError(code OnboardingErrorCode, message string, err error) *OnboardingError {
	return &OnboardingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
