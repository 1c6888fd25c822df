// Package error defines domain-specific errors for the household insights application.
package error

import "errors"

// Monthly report domain errors.
var (
	// ErrReportNotFound is returned when no report exists for the requested period.
	ErrReportNotFound = errors.New("monthly report not found")

	// ErrReportSaveFailed is returned when the report store rejects or cannot receive a write.
	ErrReportSaveFailed = errors.New("failed to save monthly report")

	// ErrReportStoreUnavailable is returned when the report store cannot be read.
	ErrReportStoreUnavailable = errors.New("monthly report store unavailable")

	// ErrInvalidPeriodKey is returned when a period key is not a valid YYYY-MM or YYYY-MM-DD value.
	ErrInvalidPeriodKey = errors.New("invalid period key, expected YYYY-MM")

	// ErrShareTokenNotFound is returned when a share token does not match any report.
	ErrShareTokenNotFound = errors.New("shared report not found")

	// ErrReportGenerationInProgress is returned when another caller holds the period lock.
	ErrReportGenerationInProgress = errors.New("report generation already in progress")
)

// ReportErrorCode defines error codes for monthly report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodKey ReportErrorCode = "RPT-010001"

	// Lookup errors (02XXXX)
	ErrCodeReportNotFound       ReportErrorCode = "RPT-020001"
	ErrCodeShareTokenNotFound   ReportErrorCode = "RPT-020002"
	ErrCodeGenerationInProgress ReportErrorCode = "RPT-020003"

	// Persistence errors (03XXXX)
	ErrCodeReportSaveFailed       ReportErrorCode = "RPT-030001"
	ErrCodeReportStoreUnavailable ReportErrorCode = "RPT-030002"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a monthly report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
