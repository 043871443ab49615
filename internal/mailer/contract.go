package mailer

import (
	"context"

	"github.com/roombooker/booking-service/internal/domain"
)

// UserReader resolves the booking owner for message composition.
type UserReader interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// RoomReader resolves the booked room for message composition.
type RoomReader interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
}

// Sender delivers a composed message to the outside world.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Logger is the leveled logger the dispatcher reports through.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
