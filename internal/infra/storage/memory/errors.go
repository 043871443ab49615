package memory

import (
	"fmt"

	"github.com/roombooker/booking-service/internal/infra/storage"
)

var (
	// ErrBookingNotFound is returned when a booking id is absent.
	ErrBookingNotFound = fmt.Errorf("memory.store: %w", storage.ErrBookingNotFound)

	// ErrRoomNotFound is returned when a room id is absent.
	ErrRoomNotFound = fmt.Errorf("memory.store: %w", storage.ErrRoomNotFound)

	// ErrUserNotFound is returned when a user id is absent.
	ErrUserNotFound = fmt.Errorf("memory.store: %w", storage.ErrUserNotFound)

	// ErrRoleNotFound is returned when a role id is absent.
	ErrRoleNotFound = fmt.Errorf("memory.store: %w", storage.ErrRoleNotFound)
)
