package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrUnauthenticated is returned when no acting user is supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAccessDenied is returned when the actor lacks the manage-rooms permission.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed room fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
