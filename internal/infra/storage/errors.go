// Package storage declares the not-found sentinels shared by every
// persistence driver, so services and use cases can errors.Is against
// one error regardless of which driver is wired in.
package storage

import "errors"

var (
	// ErrBookingNotFound is returned when a booking id is absent.
	ErrBookingNotFound = errors.New("storage: booking not found")

	// ErrRoomNotFound is returned when a room id is absent.
	ErrRoomNotFound = errors.New("storage: room not found")

	// ErrUserNotFound is returned when a user id is absent.
	ErrUserNotFound = errors.New("storage: user not found")

	// ErrRoleNotFound is returned when a role id is absent.
	ErrRoleNotFound = errors.New("storage: role not found")
)
