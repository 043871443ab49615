package update_booking

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
)

// Request carries the input for rescheduling or retitling a booking. The
// booking's owner is never changed by an update.
type Request struct {
	ActorID   string    // id of the authenticated user performing the update
	BookingID string    // id of the booking to update
	RoomID    string    // id of the (possibly new) room
	Title     string    // new booking title
	StartTime time.Time // new inclusive start
	EndTime   time.Time // new exclusive end
}

// Response carries the updated booking.
type Response struct {
	Booking *domain.Booking
}
