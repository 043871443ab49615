package create_booking

import "errors"

var (
	// ErrUnauthenticated is returned when no acting user is supplied.
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrRoomNotFound is returned when the requested room does not exist.
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrSchedulingConflict is returned when the requested interval overlaps
	// an existing booking in the same room.
	ErrSchedulingConflict = errors.New("create_booking: scheduling conflict")

	// ErrInvalidDuration is returned when the interval is empty, inverted, or
	// longer than the configured maximum.
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("create_booking: internal error")
)
