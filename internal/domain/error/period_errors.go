// Package error defines domain-specific errors for the Financy application.
package error

import "errors"

// Period domain errors.
var (
	// ErrInvalidPeriod is returned when a period token is not a valid
	// YYYY-MM calendar month.
	ErrInvalidPeriod = errors.New("invalid period")
)

// PeriodErrorCode defines error codes for period errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod PeriodErrorCode = "PER-010001"
)

// PeriodError represents a period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
