package rooms

import (
	"context"
	"time"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/notify"
)

// RoomRepository is the room persistence surface the service needs.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// BookingRepository covers the booking reads and the cascade delete.
type BookingRepository interface {
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
	DeleteBookingsByRoom(ctx context.Context, roomID string) (int, error)
}

// PermissionChecker decides whether a user holds a permission through its role.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID string, perm domain.Permission) (bool, error)
}

// TransactionManager runs the cascade delete atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publishes in-app notifications.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// TimeProvider returns the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
