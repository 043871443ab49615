package manage_rooms

import (
	"context"

	"github.com/roombooker/booking-service/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, actorID string, req *models.SaveRoomRequest) (*models.RoomResponse, error)
	Update(ctx context.Context, actorID string, id string, req *models.SaveRoomRequest) (*models.RoomResponse, error)
	Delete(ctx context.Context, actorID string, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
