package create_booking

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
)

// Request carries the input for creating a booking.
type Request struct {
	ActorID   string    // id of the authenticated user creating the booking
	RoomID    string    // id of the room to book
	Title     string    // human-readable booking title
	StartTime time.Time // inclusive start of the interval
	EndTime   time.Time // exclusive end of the interval
}

// Response carries the created booking.
type Response struct {
	Booking *domain.Booking
}
