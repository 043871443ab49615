package directory

import (
	"context"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/notify"
)

// UserRepository is the user persistence surface the service needs.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, userID, roleID string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// RoleRepository is the role persistence surface the service needs.
type RoleRepository interface {
	GetRole(ctx context.Context, id string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissions []domain.Permission) error
}

// BookingRepository covers the cascade delete of a user's bookings.
type BookingRepository interface {
	DeleteBookingsByUser(ctx context.Context, userID string) (int, error)
}

// TransactionManager runs the cascade delete atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publishes in-app notifications.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// Logger is the logging surface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
