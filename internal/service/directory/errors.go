package directory

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRoleNotFound is returned when the role does not exist.
	ErrRoleNotFound = errors.New("role not found")

	// ErrUnauthenticated is returned when no acting user is supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAccessDenied is returned when the actor lacks the manage-settings permission.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
