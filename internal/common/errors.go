// Package common defines the sentinel error taxonomy and small helpers shared
// by the store, the services and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

// Error categories. Every concrete error below wraps exactly one of them, so
// errors.Is(ErrTaskNotFound, ErrNotFound) holds.
var (
	ErrValidation   = errors.New("validation error")
	ErrAuth         = errors.New("auth error")
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("corrupt state")
)

var (
	// Validation errors are recovered by re-prompting the user.
	ErrInvalidName     = kindOf(ErrValidation, "list name must not be empty")
	ErrInvalidText     = kindOf(ErrValidation, "task text must not be empty")
	ErrInvalidPriority = kindOf(ErrValidation, "priority must be one of High, Medium, Low")
	ErrInvalidUsername = kindOf(ErrValidation, "username must be at least 3 characters")
	ErrInvalidPassword = kindOf(ErrValidation, "password must be at least 4 characters")

	// Auth errors.
	ErrUsernameTaken      = kindOf(ErrAuth, "username already exists")
	ErrUserNotFound       = kindOf(ErrAuth, "user not found")
	ErrInvalidCredentials = kindOf(ErrAuth, "invalid credentials")
	ErrForbidden          = kindOf(ErrAuth, "forbidden")

	// Not-found errors are benign: the entity may already be gone.
	ErrListNotFound = kindOf(ErrNotFound, "list not found")
	ErrTaskNotFound = kindOf(ErrNotFound, "task not found")
)

type kindError struct {
	kind error
	msg  string
}

func kindOf(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
