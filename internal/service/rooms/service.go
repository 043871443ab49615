package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
	"github.com/roombooker/booking-service/internal/service/rooms/models"
)

const (
	msgRoomCreated = "Room created"
	msgRoomUpdated = "Room updated"
	msgRoomDeleted = "Room deleted"
)

// Service manages meeting rooms and answers live room status queries.
type Service struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	permissions  PermissionChecker
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new rooms service.
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	permissions PermissionChecker,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		permissions:  permissions,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewServiceWithTimeProvider is NewService with an injected clock.
func NewServiceWithTimeProvider(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	permissions PermissionChecker,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	svc := NewService(roomRepo, bookingRepo, permissions, txManager, notifier, logger)
	svc.timeProvider = timeProvider
	return svc
}

// List returns every room ordered by name. Rooms are public: no permission
// is required to browse them.
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// GetByID returns one room.
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// Status classifies a room at the current instant: busy with the booking in
// progress, upcoming with the next booking of the day, or available.
func (s *Service) Status(ctx context.Context, roomID string) (*models.RoomStatusResponse, error) {
	if _, err := s.roomRepo.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			s.logger.Warn("Status: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Status: repository error for room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: Status - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListBookingsByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("Status: failed to list bookings for room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: Status - repository error: %v", ErrInternal, err)
	}

	status := domain.ResolveRoomStatus(roomID, bookings, s.timeProvider.Now())
	return models.FromDomainRoomStatus(roomID, status), nil
}

// Create adds a room. Requires the manage-rooms permission.
func (s *Service) Create(ctx context.Context, actorID string, req *models.SaveRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: user=%s creating room name=%q", actorID, req.Name)

	if err := s.requireManageRooms(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.CreateRoom(ctx, &domain.Room{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		s.logger.Error("Create: failed to create room: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%s", created.ID)
	s.notifier.Notify(msgRoomCreated, notify.SeveritySuccess)

	return models.FromDomainRoom(created), nil
}

// Update replaces a room's mutable fields. Requires the manage-rooms permission.
func (s *Service) Update(ctx context.Context, actorID string, id string, req *models.SaveRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: user=%s updating room id=%s", actorID, id)

	if err := s.requireManageRooms(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.roomRepo.UpdateRoom(ctx, &domain.Room{
		ID:        id,
		Name:      req.Name,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: failed to update room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%s", id)
	s.notifier.Notify(msgRoomUpdated, notify.SeveritySuccess)

	return models.FromDomainRoom(updated), nil
}

// Delete removes a room and every booking scheduled in it, atomically, so no
// booking can ever point at a missing room. Requires the manage-rooms
// permission.
func (s *Service) Delete(ctx context.Context, actorID string, id string) error {
	s.logger.Info("Delete: user=%s deleting room id=%s", actorID, id)

	if err := s.requireManageRooms(ctx, actorID); err != nil {
		return err
	}

	var removedBookings int

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.roomRepo.GetRoom(txCtx, id); err != nil {
			if errors.Is(err, storage.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		n, err := s.bookingRepo.DeleteBookingsByRoom(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - cascade error: %v", ErrInternal, err)
		}
		removedBookings = n

		if err := s.roomRepo.DeleteRoom(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRoomNotFound) {
			s.logger.Error("Delete: failed to delete room id=%s: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: successfully deleted room id=%s with %d bookings", id, removedBookings)
	s.notifier.Notify(msgRoomDeleted, notify.SeveritySuccess)

	return nil
}

func (s *Service) requireManageRooms(ctx context.Context, actorID string) error {
	if actorID == "" {
		return ErrUnauthenticated
	}

	allowed, err := s.permissions.HasPermission(ctx, actorID, domain.PermManageRooms)
	if err != nil {
		s.logger.Error("requireManageRooms: failed to check permissions for user=%s: %v", actorID, err)
		return fmt.Errorf("%w: permission check: %v", ErrInternal, err)
	}
	if !allowed {
		s.logger.Warn("requireManageRooms: user=%s lacks manage-rooms permission", actorID)
		return ErrAccessDenied
	}
	return nil
}

func validateSaveRequest(req *models.SaveRoomRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}
