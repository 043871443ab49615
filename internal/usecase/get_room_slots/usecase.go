package get_room_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
)

// UseCase builds the slot grid of a room for one calendar day.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	window      domain.SlotWindow
	logger      Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	window domain.SlotWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		window:      window,
		logger:      logger,
	}
}

// Execute returns the room's slot grid for the requested day. Every slot in
// the working window is present; occupied slots carry the booking that covers
// them.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSlots: room=%s, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomSlots: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.roomRepo.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomSlots: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomSlots: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListBookingsByRoom(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("GetRoomSlots: failed to list bookings for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots := domain.GenerateSlots(req.RoomID, req.Date, bookings, uc.window)

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}
