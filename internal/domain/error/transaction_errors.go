// Package error defines domain-specific errors for the Financy application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist
	// or does not belong to the requesting user. The two cases are
	// indistinguishable on purpose: existence is never revealed across
	// ownership boundaries.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrTransactionTitleRequired is returned when the transaction title is empty.
	ErrTransactionTitleRequired = errors.New("title is required")

	// ErrTransactionTitleTooLong is returned when the transaction title exceeds the maximum length.
	ErrTransactionTitleTooLong = errors.New("title is too long")

	// ErrTxnCategoryInvalid is returned when the referenced category does not
	// exist for the requesting user.
	ErrTxnCategoryInvalid = errors.New("invalid categoryId")

	// ErrInvalidPagination is returned when page or perPage is below 1.
	ErrInvalidPagination = errors.New("page and perPage must be at least 1")

	// ErrInvalidCategoryFilter is returned when a category filter value is
	// neither the "all" sentinel nor a well-formed id.
	ErrInvalidCategoryFilter = errors.New("invalid category filter")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType  TransactionErrorCode = "TXN-010001"
	ErrCodeTransactionTitle        TransactionErrorCode = "TXN-010002"
	ErrCodeTxnCategoryInvalid      TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidPagination       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidCategoryFilter   TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidTransactionInput TransactionErrorCode = "TXN-010006"

	// Not-found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
