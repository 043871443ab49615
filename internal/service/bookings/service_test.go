package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	deleted  []string
}

func (s *stubBookingRepo) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (s *stubBookingRepo) DeleteBooking(_ context.Context, id string) error {
	if _, ok := s.bookings[id]; !ok {
		return storage.ErrBookingNotFound
	}
	delete(s.bookings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBookingRepo) ListBookings(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		out = append(out, b)
	}
	domain.SortByStartTime(out)
	return out, nil
}

func (s *stubBookingRepo) ListBookingsByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	domain.SortByStartTime(out)
	return out, nil
}

func (s *stubBookingRepo) ListBookingsByRoom(_ context.Context, roomID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	domain.SortByStartTime(out)
	return out, nil
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

type recordingDispatcher struct {
	cancelled []*domain.Booking
}

func (r *recordingDispatcher) BookingCancelled(_ context.Context, b *domain.Booking) {
	r.cancelled = append(r.cancelled, b)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.Local)
}

func fixture() (*stubBookingRepo, *stubPermissions, *recordingNotifier, *recordingDispatcher, *Service) {
	repo := &stubBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": {ID: "booking-1", UserID: "user-1", RoomID: "room-1", Title: "Standup", StartTime: at(9, 0), EndTime: at(9, 30)},
		"booking-2": {ID: "booking-2", UserID: "user-2", RoomID: "room-1", Title: "Review", StartTime: at(11, 0), EndTime: at(12, 0)},
	}}
	perms := &stubPermissions{granted: map[string]bool{"user-admin": true}}
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}
	svc := NewService(repo, perms, stubTxManager{}, notifier, dispatcher, nopLogger{})
	return repo, perms, notifier, dispatcher, svc
}

func TestGetByID(t *testing.T) {
	_, _, _, _, svc := fixture()

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "booking-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Standup", resp.Title)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "booking-1", "user-2")
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "booking-1", "user-admin")
		require.NoError(t, err)
		assert.Equal(t, "booking-1", resp.ID)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "booking-missing", "user-1")
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	_, _, _, _, svc := fixture()

	t.Run("regular user sees only own bookings", func(t *testing.T) {
		resp, err := svc.List(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "booking-1", resp.Bookings[0].ID)
	})

	t.Run("admin sees everything ordered by start", func(t *testing.T) {
		resp, err := svc.List(context.Background(), "user-admin")
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 2)
		assert.Equal(t, "booking-1", resp.Bookings[0].ID)
		assert.Equal(t, "booking-2", resp.Bookings[1].ID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := svc.List(context.Background(), "")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes and owner is mailed from snapshot", func(t *testing.T) {
		repo, _, notifier, dispatcher, svc := fixture()

		err := svc.Delete(context.Background(), "booking-1", "user-1")
		require.NoError(t, err)

		assert.Equal(t, []string{"booking-1"}, repo.deleted)
		require.Len(t, dispatcher.cancelled, 1)
		assert.Equal(t, "Standup", dispatcher.cancelled[0].Title)
		require.Len(t, notifier.messages, 1)
		assert.Equal(t, "Booking deleted", notifier.messages[0])
	})

	t.Run("deleting an absent booking is a no-op", func(t *testing.T) {
		repo, _, notifier, dispatcher, svc := fixture()

		err := svc.Delete(context.Background(), "booking-missing", "user-1")
		require.NoError(t, err)

		assert.Empty(t, repo.deleted)
		assert.Empty(t, dispatcher.cancelled)
		assert.Empty(t, notifier.messages)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		repo, _, _, _, svc := fixture()

		err := svc.Delete(context.Background(), "booking-1", "user-2")
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Contains(t, repo.bookings, "booking-1")
	})

	t.Run("admin deletes any booking", func(t *testing.T) {
		repo, _, _, dispatcher, svc := fixture()

		err := svc.Delete(context.Background(), "booking-2", "user-admin")
		require.NoError(t, err)
		assert.NotContains(t, repo.bookings, "booking-2")
		require.Len(t, dispatcher.cancelled, 1)
		assert.Equal(t, "user-2", dispatcher.cancelled[0].UserID)
	})
}
