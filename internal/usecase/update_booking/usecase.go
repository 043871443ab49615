package update_booking

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
	msgBookingUpdated     = "Booking updated"
	msgSchedulingConflict = "This time slot conflicts with an existing booking"
)

// UseCase reschedules or retitles an existing booking. Only the booking's
// owner or a user with the view-all-bookings permission may update it.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	permissions PermissionChecker
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
	permissions PermissionChecker,
	txManager TransactionManager,
	notifier Notifier,
	dispatcher ConfirmationDispatcher,
	maxDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		permissions: permissions,
		txManager:   txManager,
		notifier:    notifier,
		dispatcher:  dispatcher,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Execute validates the request and applies the update under a serializable
// transaction. The conflict check excludes the booking being updated, so a
// booking never conflicts with itself.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%s, booking=%s, room=%s, start=%s, end=%s",
		req.ActorID, req.BookingID, req.RoomID,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if err := validateRequest(req, uc.maxDuration); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetBooking(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if existing.UserID != req.ActorID {
			allowed, err := uc.permissions.HasPermission(txCtx, req.ActorID, domain.PermViewAllBookings)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to check permissions for user=%s: %v", req.ActorID, err)
				return fmt.Errorf("%w: failed to check permissions: %v", ErrInternal, err)
			}
			if !allowed {
				uc.logger.Warn("UpdateBooking: user=%s may not update booking id=%s owned by user=%s",
					req.ActorID, req.BookingID, existing.UserID)
				return ErrAccessDenied
			}
		}

		if _, err := uc.roomRepo.GetRoom(txCtx, req.RoomID); err != nil {
			if errors.Is(err, storage.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		others, err := uc.bookingRepo.ListBookingsByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list bookings for room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		candidate := domain.BookingCandidate{
			RoomID:    req.RoomID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}

		if conflict := domain.FindConflict(candidate, others, req.BookingID); conflict != nil {
			uc.logger.Warn("UpdateBooking: booking id=%s conflicts with booking id=%s", req.BookingID, conflict.ID)
			return ErrSchedulingConflict
		}

		updated, err := uc.bookingRepo.UpdateBooking(txCtx, &domain.Booking{
			ID:        req.BookingID,
			UserID:    existing.UserID,
			RoomID:    req.RoomID,
			Title:     req.Title,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			CreatedAt: existing.CreatedAt,
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSchedulingConflict) {
			uc.notifier.Notify(msgSchedulingConflict, notify.SeverityError)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	uc.notifier.Notify(msgBookingUpdated, notify.SeveritySuccess)
	uc.dispatcher.BookingUpdated(ctx, result)

	return &Response{Booking: result}, nil
}
