package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUserNotFound       = errors.New("user not found")
	ErrSigning            = errors.New("failed to sign token")
)

// ValidationError reports malformed user input. Message is safe to show to
// the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation on Field.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Is matches any ConflictError on the same field.
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	return ok && t.Field == e.Field
}

var (
	ErrEmailTaken    = &ConflictError{Field: "email", Message: "User already exists with this email address"}
	ErrUsernameTaken = &ConflictError{Field: "username", Message: "Username is already taken"}
)
