// Package error defines domain-specific errors for the household insights application.
package error

import (
	"errors"
	"fmt"
)

// Text generation errors.
var (
	// ErrGenerationUnavailable is returned when no text-generation backend is configured.
	ErrGenerationUnavailable = errors.New("text generation backend is not configured")

	// ErrGenerationFailed is returned on transport failures, timeouts and non-2xx responses.
	ErrGenerationFailed = errors.New("text generation request failed")

	// ErrInvalidGeneratedResponse is returned when a response does not match the expected shape.
	ErrInvalidGeneratedResponse = errors.New("generated response failed validation")
)

// GenerationErrorCode defines error codes for text generation failures.
// Format: GEN-XXYYYY where XX is category and YYYY is specific error.
type GenerationErrorCode string

const (
	ErrCodeGenerationUnavailable GenerationErrorCode = "GEN-010001"
	ErrCodeGenerationTimeout     GenerationErrorCode = "GEN-020001"
	ErrCodeGenerationRateLimited GenerationErrorCode = "GEN-020002"
	ErrCodeGenerationAuth        GenerationErrorCode = "GEN-020003"
	ErrCodeGenerationTransport   GenerationErrorCode = "GEN-020004"
	ErrCodeGenerationInvalid     GenerationErrorCode = "GEN-030001"
	ErrCodeGenerationUnknown     GenerationErrorCode = "GEN-990001"
)

// InvalidResponseError is the "Invalid" side of a parsed generation response.
// Reason describes the first shape violation found.
type InvalidResponseError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidGeneratedResponse.Error(), e.Reason)
}

// Unwrap returns ErrInvalidGeneratedResponse so callers can use errors.Is.
func (e *InvalidResponseError) Unwrap() error {
	return ErrInvalidGeneratedResponse
}

// NewInvalidResponseError creates an InvalidResponseError with a formatted reason.
func NewInvalidResponseError(format string, args ...any) *InvalidResponseError {
	return &InvalidResponseError{Reason: fmt.Sprintf(format, args...)}
}

// GenerationError is a classified text-generation backend failure.
type GenerationError struct {
	Code      GenerationErrorCode
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports ErrGenerationFailed for every classified failure.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(code GenerationErrorCode, message string, retryable bool, err error) *GenerationError {
	return &GenerationError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}
