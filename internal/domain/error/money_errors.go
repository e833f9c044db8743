// Package error defines domain-specific errors for the Financy application.
package error

import "errors"

// Money domain errors.
var (
	// ErrInvalidAmount is returned when a caller-supplied amount is not a
	// finite non-negative number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountTooLarge is returned when an amount exceeds the safe integer
	// cents range.
	ErrAmountTooLarge = errors.New("amount is too large")

	// ErrInternalInconsistency is returned when a stored amount is outside
	// the representable range. This indicates upstream corruption, not user
	// error; it is logged internally and masked at the API boundary.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// MoneyErrorCode defines error codes for money errors.
// Format: MON-XXYYYY where XX is category and YYYY is specific error.
type MoneyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount  MoneyErrorCode = "MON-010001"
	ErrCodeAmountTooLarge MoneyErrorCode = "MON-010002"

	// Consistency errors (02XXXX)
	ErrCodeInternalInconsistency MoneyErrorCode = "MON-020001"
)

// MoneyError represents a money error with code and message.
type MoneyError struct {
	Code    MoneyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MoneyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MoneyError) Unwrap() error {
	return e.Err
}

// NewMoneyError creates a new MoneyError with the given code and message.
func NewMoneyError(code MoneyErrorCode, message string, err error) *MoneyError {
	return &MoneyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
