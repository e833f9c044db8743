// Package error defines domain-specific errors for the Financy application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or does
	// not belong to the requesting user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("name is too long")

	// ErrCategoryDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrCategoryDescriptionTooLong = errors.New("description is too long")

	// ErrCategoryNameExists is returned when another category of the same
	// user has the same normalized title.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrInvalidIconKey is returned when the icon key is not renderable.
	ErrInvalidIconKey = errors.New("invalid icon key")

	// ErrInvalidColorKey is returned when the color key is not renderable.
	ErrInvalidColorKey = errors.New("invalid color key")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryName        CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryDescription CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidIconKey      CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidColorKey     CategoryErrorCode = "CAT-010004"

	// Conflict errors (02XXXX)
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-020001"

	// Not-found errors (03XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
