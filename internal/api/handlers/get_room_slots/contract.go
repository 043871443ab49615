package get_room_slots

import (
	"context"

	getRoomSlots "github.com/roombooker/booking-service/internal/usecase/get_room_slots"
)

type GetRoomSlotsUseCase interface {
	Execute(ctx context.Context, req *getRoomSlots.Request) (*getRoomSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
