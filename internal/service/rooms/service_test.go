package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
	"github.com/roombooker/booking-service/internal/service/rooms/models"
)

type stubRoomRepo struct {
	rooms   map[string]*domain.Room
	deleted []string
}

func (s *stubRoomRepo) CreateRoom(_ context.Context, room *domain.Room) (*domain.Room, error) {
	out := *room
	out.ID = "room-new"
	s.rooms[out.ID] = &out
	return &out, nil
}

func (s *stubRoomRepo) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, storage.ErrRoomNotFound
	}
	out := *room
	return &out, nil
}

func (s *stubRoomRepo) UpdateRoom(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if _, ok := s.rooms[room.ID]; !ok {
		return nil, storage.ErrRoomNotFound
	}
	out := *room
	s.rooms[out.ID] = &out
	return &out, nil
}

func (s *stubRoomRepo) DeleteRoom(_ context.Context, id string) error {
	if _, ok := s.rooms[id]; !ok {
		return storage.ErrRoomNotFound
	}
	delete(s.rooms, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubRoomRepo) ListRooms(_ context.Context) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	cascaded []string
}

func (s *stubBookingRepo) ListBookingsByRoom(_ context.Context, roomID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) DeleteBookingsByRoom(_ context.Context, roomID string) (int, error) {
	s.cascaded = append(s.cascaded, roomID)
	kept := s.bookings[:0]
	removed := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	s.bookings = kept
	return removed, nil
}

type stubPermissions struct {
	granted map[string]bool
}

func (s *stubPermissions) HasPermission(_ context.Context, userID string, _ domain.Permission) (bool, error) {
	return s.granted[userID], nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string, _ notify.Severity) {
	r.messages = append(r.messages, message)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.Local)
}

func fixture(now time.Time) (*stubRoomRepo, *stubBookingRepo, *recordingNotifier, *Service) {
	roomRepo := &stubRoomRepo{rooms: map[string]*domain.Room{
		"room-1": {ID: "room-1", Name: "Boardroom", Capacity: 10},
	}}
	bookingRepo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: "booking-1", RoomID: "room-1", UserID: "user-1", Title: "Standup", StartTime: at(9, 0), EndTime: at(9, 30)},
		{ID: "booking-2", RoomID: "room-1", UserID: "user-2", Title: "Review", StartTime: at(11, 0), EndTime: at(12, 0)},
	}}
	perms := &stubPermissions{granted: map[string]bool{"user-admin": true}}
	notifier := &recordingNotifier{}
	svc := NewServiceWithTimeProvider(roomRepo, bookingRepo, perms, stubTxManager{}, notifier, fixedClock{now}, nopLogger{})
	return roomRepo, bookingRepo, notifier, svc
}

func TestStatus(t *testing.T) {
	t.Run("busy during a booking", func(t *testing.T) {
		_, _, _, svc := fixture(at(9, 15))

		resp, err := svc.Status(context.Background(), "room-1")
		require.NoError(t, err)
		assert.Equal(t, "busy", resp.Status)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, "booking-1", resp.Booking.ID)
	})

	t.Run("upcoming between bookings", func(t *testing.T) {
		_, _, _, svc := fixture(at(10, 0))

		resp, err := svc.Status(context.Background(), "room-1")
		require.NoError(t, err)
		assert.Equal(t, "upcoming", resp.Status)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, "booking-2", resp.Booking.ID)
	})

	t.Run("available after the last booking", func(t *testing.T) {
		_, _, _, svc := fixture(at(12, 0))

		resp, err := svc.Status(context.Background(), "room-1")
		require.NoError(t, err)
		assert.Equal(t, "available", resp.Status)
		assert.Nil(t, resp.Booking)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, _, _, svc := fixture(at(9, 0))

		_, err := svc.Status(context.Background(), "room-missing")
		require.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestCreate(t *testing.T) {
	t.Run("admin creates a room", func(t *testing.T) {
		_, _, notifier, svc := fixture(at(9, 0))

		resp, err := svc.Create(context.Background(), "user-admin", &models.SaveRoomRequest{
			Name: "Skyline", Capacity: 8, Amenities: []string{"projector"},
		})
		require.NoError(t, err)
		assert.Equal(t, "room-new", resp.ID)
		assert.Equal(t, []string{"Room created"}, notifier.messages)
	})

	t.Run("regular user is denied", func(t *testing.T) {
		_, _, _, svc := fixture(at(9, 0))

		_, err := svc.Create(context.Background(), "user-1", &models.SaveRoomRequest{Name: "X", Capacity: 2})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, _, _, svc := fixture(at(9, 0))

		_, err := svc.Create(context.Background(), "user-admin", &models.SaveRoomRequest{Name: " ", Capacity: 2})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(context.Background(), "user-admin", &models.SaveRoomRequest{Name: "X", Capacity: 0})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete_CascadesBookings(t *testing.T) {
	roomRepo, bookingRepo, notifier, svc := fixture(at(9, 0))

	err := svc.Delete(context.Background(), "user-admin", "room-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"room-1"}, roomRepo.deleted)
	assert.Equal(t, []string{"room-1"}, bookingRepo.cascaded)
	assert.Empty(t, bookingRepo.bookings)
	assert.Equal(t, []string{"Room deleted"}, notifier.messages)
}

func TestDelete_AccessAndMissing(t *testing.T) {
	_, bookingRepo, _, svc := fixture(at(9, 0))

	err := svc.Delete(context.Background(), "user-1", "room-1")
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, bookingRepo.bookings, 2)

	err = svc.Delete(context.Background(), "user-admin", "room-missing")
	require.ErrorIs(t, err, ErrRoomNotFound)
}
