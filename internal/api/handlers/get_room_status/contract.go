package get_room_status

import (
	"context"

	"github.com/roombooker/booking-service/internal/service/rooms/models"
)

type RoomService interface {
	Status(ctx context.Context, roomID string) (*models.RoomStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
