package update_booking

import "errors"

var (
	// ErrUnauthenticated is returned when no acting user is supplied.
	ErrUnauthenticated = errors.New("update_booking: unauthenticated")

	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrRoomNotFound is returned when the target room does not exist.
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrAccessDenied is returned when the actor neither owns the booking nor
	// holds the view-all-bookings permission.
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrSchedulingConflict is returned when the new interval overlaps another
	// booking in the same room.
	ErrSchedulingConflict = errors.New("update_booking: scheduling conflict")

	// ErrInvalidDuration is returned when the interval is empty, inverted, or
	// longer than the configured maximum.
	ErrInvalidDuration = errors.New("update_booking: invalid booking duration")

	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("update_booking: internal error")
)
