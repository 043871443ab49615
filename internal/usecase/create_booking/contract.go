package create_booking

import (
	"context"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/notify"
)

// BookingRepository is the booking persistence surface this use case needs.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
}

// RoomRepository resolves rooms by id.
type RoomRepository interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
}

// TransactionManager runs the check-then-insert under a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publishes in-app notifications.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// ConfirmationDispatcher sends the booking confirmation email.
type ConfirmationDispatcher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
}

// Logger is the logging surface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
