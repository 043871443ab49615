package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUnauthenticated is returned when no acting user is supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAccessDenied is returned when the actor lacks the required access.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
