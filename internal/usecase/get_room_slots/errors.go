package get_room_slots

import "errors"

var (
	// ErrRoomNotFound is returned when the requested room does not exist.
	ErrRoomNotFound = errors.New("get_room_slots: room not found")

	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("get_room_slots: invalid input data")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("get_room_slots: internal error")
)
