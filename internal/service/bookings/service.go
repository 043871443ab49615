package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
	"github.com/roombooker/booking-service/internal/service/bookings/models"
)

const msgBookingDeleted = "Booking deleted"

// Service exposes read and delete operations over bookings. Creation and
// update live in their own use cases because they need conflict checking.
type Service struct {
	bookingRepo BookingRepository
	permissions PermissionChecker
	txManager   TransactionManager
	notifier    Notifier
	dispatcher  ConfirmationDispatcher
	logger      Logger
}

// NewService creates a new bookings service.
func NewService(
	bookingRepo BookingRepository,
	permissions PermissionChecker,
	txManager TransactionManager,
	notifier Notifier,
	dispatcher ConfirmationDispatcher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		permissions: permissions,
		txManager:   txManager,
		notifier:    notifier,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// GetByID fetches one booking. The owner may always see it; anyone else needs
// the view-all-bookings permission.
func (s *Service) GetByID(ctx context.Context, id string, actorID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actorID)

	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	booking, err := s.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkActorAccess(ctx, booking, actorID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actorID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List returns the actor's own bookings, or every booking if the actor holds
// the view-all-bookings permission. Results are ordered by start time.
func (s *Service) List(ctx context.Context, actorID string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%s", actorID)

	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	viewAll, err := s.permissions.HasPermission(ctx, actorID, domain.PermViewAllBookings)
	if err != nil {
		s.logger.Error("List: failed to check permissions for user=%s: %v", actorID, err)
		return nil, fmt.Errorf("%w: List - permission check: %v", ErrInternal, err)
	}

	var bookings []*domain.Booking
	if viewAll {
		bookings, err = s.bookingRepo.ListBookings(ctx)
	} else {
		bookings, err = s.bookingRepo.ListBookingsByUser(ctx, actorID)
	}
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", actorID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%s", len(bookings), actorID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete removes a booking and emails its owner a cancellation notice built
// from a snapshot taken before the delete. Deleting a booking that no longer
// exists succeeds quietly, so retries are safe.
func (s *Service) Delete(ctx context.Context, id string, actorID string) error {
	s.logger.Info("Delete: deleting booking id=%s for user=%s", id, actorID)

	if actorID == "" {
		return ErrUnauthenticated
	}

	var snapshot *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetBooking(txCtx, id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				// Already gone, nothing to do.
				return nil
			}
			s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.checkActorAccess(txCtx, booking, actorID); err != nil {
			s.logger.Warn("Delete: access denied for user=%s to booking id=%s", actorID, id)
			return err
		}

		if err := s.bookingRepo.DeleteBooking(txCtx, id); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return nil
			}
			s.logger.Error("Delete: failed to delete booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		snapshot = booking
		return nil
	})
	if err != nil {
		return err
	}

	if snapshot == nil {
		s.logger.Info("Delete: booking id=%s was already absent", id)
		return nil
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)

	s.notifier.Notify(msgBookingDeleted, notify.SeveritySuccess)
	s.dispatcher.BookingCancelled(ctx, snapshot)

	return nil
}

// checkActorAccess allows the booking's owner and holders of the
// view-all-bookings permission.
func (s *Service) checkActorAccess(ctx context.Context, booking *domain.Booking, actorID string) error {
	if booking.UserID == actorID {
		return nil
	}

	allowed, err := s.permissions.HasPermission(ctx, actorID, domain.PermViewAllBookings)
	if err != nil {
		return fmt.Errorf("%w: permission check: %v", ErrInternal, err)
	}
	if !allowed {
		return ErrAccessDenied
	}
	return nil
}
