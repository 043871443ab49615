package get_room_slots

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
)

// Request carries the input for building a room's slot grid.
type Request struct {
	RoomID string    // id of the room
	Date   time.Time // calendar day to build the grid for (time part ignored)
}

// Response carries the slot grid for the requested day.
type Response struct {
	RoomID string
	Date   time.Time
	Slots  []domain.Slot
}
