package error

import "errors"

// Email delivery errors.
var (
	// ErrRecipientNotFound is returned when the notified user has no email address.
	ErrRecipientNotFound = errors.New("email recipient not found")

	// ErrEmailDeliveryFailed matches every provider side failure.
	ErrEmailDeliveryFailed = errors.New("email delivery failed")
)

// EmailErrorCode defines error codes for report email delivery.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeRecipientNotFound EmailErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030001"
)

// EmailError is a classified delivery failure.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// Is reports ErrEmailDeliveryFailed for provider failures.
func (e *EmailError) Is(target error) bool {
	if target != ErrEmailDeliveryFailed {
		return false
	}
	return e.Code == ErrCodePermanentEmailFailure || e.Code == ErrCodeTemporaryEmailFailure
}

// Temporary reports whether a later attempt could succeed.
func (e *EmailError) Temporary() bool {
	return e.Code == ErrCodeTemporaryEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
