// Package error defines domain-specific errors for the Financy application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is malformed, expired, or revoked.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword AuthErrorCode = "AUTH-010002"
	ErrCodeNameRequired AuthErrorCode = "AUTH-010003"

	// Conflict errors (02XXXX)
	ErrCodeEmailExists AuthErrorCode = "AUTH-020001"

	// Credential errors (03XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-030002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-030003"

	// Throttling errors (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
