package get_room_slots

import (
	"context"

	"github.com/roombooker/booking-service/internal/domain"
)

// BookingRepository lists the bookings of a room.
type BookingRepository interface {
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
}

// RoomRepository resolves rooms by id.
type RoomRepository interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
}

// Logger is the logging surface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
