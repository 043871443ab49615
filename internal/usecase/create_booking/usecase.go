package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
)

const (
	msgBookingCreated     = "Booking created"
	msgSchedulingConflict = "This time slot conflicts with an existing booking"
)

// UseCase creates a booking after checking the room's schedule for overlaps.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	notifier    Notifier
	dispatcher  ConfirmationDispatcher
	maxDuration time.Duration
	logger      Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	notifier Notifier,
	dispatcher ConfirmationDispatcher,
	maxDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		notifier:    notifier,
		dispatcher:  dispatcher,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Execute validates the request, checks for overlapping bookings in the same
// room under a serializable transaction, and persists the new booking. The
// conflict check treats intervals as half-open, so a booking that starts
// exactly when another ends is allowed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, start=%s, end=%s",
		req.ActorID, req.RoomID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if err := validateRequest(req, uc.maxDuration); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.roomRepo.GetRoom(txCtx, req.RoomID); err != nil {
			if errors.Is(err, storage.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		existing, err := uc.bookingRepo.ListBookingsByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		candidate := domain.BookingCandidate{
			RoomID:    req.RoomID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}

		if conflict := domain.FindConflict(candidate, existing, ""); conflict != nil {
			uc.logger.Warn("CreateBooking: room id=%s conflicts with booking id=%s", req.RoomID, conflict.ID)
			return ErrSchedulingConflict
		}

		created, err := uc.bookingRepo.CreateBooking(txCtx, &domain.Booking{
			UserID:    req.ActorID,
			RoomID:    req.RoomID,
			Title:     req.Title,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSchedulingConflict) {
			uc.notifier.Notify(msgSchedulingConflict, notify.SeverityError)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	uc.notifier.Notify(msgBookingCreated, notify.SeveritySuccess)
	uc.dispatcher.BookingCreated(ctx, result)

	return &Response{Booking: result}, nil
}
