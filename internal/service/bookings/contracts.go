package bookings

import (
	"context"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/notify"
)

// BookingRepository is the booking persistence surface the service needs.
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

// PermissionChecker decides whether a user holds a permission through its role.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID string, perm domain.Permission) (bool, error)
}

// TransactionManager runs multi-step mutations atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publishes in-app notifications.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// ConfirmationDispatcher sends the booking cancellation email.
type ConfirmationDispatcher interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking)
}

// Logger is the logging surface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
