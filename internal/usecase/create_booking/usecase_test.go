package create_booking

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
	bookings []*domain.Booking
	created  *domain.Booking
	listErr  error
}

func (s *stubBookingRepo) CreateBooking(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = "booking-new"
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

func (s *stubBookingRepo) ListBookingsByRoom(_ context.Context, roomID string) ([]*domain.Booking, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubRoomRepo struct {
	rooms map[string]*domain.Room
}

func (s *stubRoomRepo) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, storage.ErrRoomNotFound
	}
	return room, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	messages   []string
	severities []notify.Severity
}

func (r *recordingNotifier) Notify(message string, severity notify.Severity) {
	r.messages = append(r.messages, message)
	r.severities = append(r.severities, severity)
}

type recordingDispatcher struct {
	created []*domain.Booking
}

func (r *recordingDispatcher) BookingCreated(_ context.Context, b *domain.Booking) {
	r.created = append(r.created, b)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.Local)
}

func newUseCase(repo *stubBookingRepo, rooms *stubRoomRepo, notifier *recordingNotifier, dispatcher *recordingDispatcher) *UseCase {
	return NewUseCase(repo, rooms, stubTxManager{}, notifier, dispatcher, 4*time.Hour, nopLogger{})
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{"room-1": {ID: "room-1", Name: "Boardroom"}}}
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}

	uc := newUseCase(repo, rooms, notifier, dispatcher)

	resp, err := uc.Execute(context.Background(), &Request{
		ActorID:   "user-1",
		RoomID:    "room-1",
		Title:     "Sprint Planning",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	assert.Equal(t, "booking-new", resp.Booking.ID)
	assert.Equal(t, "user-1", resp.Booking.UserID)
	assert.Equal(t, "Sprint Planning", resp.Booking.Title)

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Booking created", notifier.messages[0])
	assert.Equal(t, notify.SeveritySuccess, notifier.severities[0])

	require.Len(t, dispatcher.created, 1)
	assert.Equal(t, "booking-new", dispatcher.created[0].ID)
}

func TestExecute_SchedulingConflict(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: "booking-1", RoomID: "room-1", StartTime: at(10, 0), EndTime: at(11, 0)},
	}}
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{"room-1": {ID: "room-1"}}}
	notifier := &recordingNotifier{}
	dispatcher := &recordingDispatcher{}

	uc := newUseCase(repo, rooms, notifier, dispatcher)

	_, err := uc.Execute(context.Background(), &Request{
		ActorID:   "user-2",
		RoomID:    "room-1",
		Title:     "Overlap",
		StartTime: at(10, 30),
		EndTime:   at(11, 30),
	})
	require.ErrorIs(t, err, ErrSchedulingConflict)

	assert.Nil(t, repo.created)
	assert.Empty(t, dispatcher.created)

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "This time slot conflicts with an existing booking", notifier.messages[0])
	assert.Equal(t, notify.SeverityError, notifier.severities[0])
}

func TestExecute_BackToBackIsAllowed(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: "booking-1", RoomID: "room-1", StartTime: at(10, 0), EndTime: at(11, 0)},
	}}
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{"room-1": {ID: "room-1"}}}

	uc := newUseCase(repo, rooms, &recordingNotifier{}, &recordingDispatcher{})

	resp, err := uc.Execute(context.Background(), &Request{
		ActorID:   "user-2",
		RoomID:    "room-1",
		Title:     "Follow-up",
		StartTime: at(11, 0),
		EndTime:   at(12, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, at(11, 0), resp.Booking.StartTime)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubRoomRepo{rooms: map[string]*domain.Room{}}, &recordingNotifier{}, &recordingDispatcher{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorID:   "user-1",
		RoomID:    "room-missing",
		Title:     "Nowhere",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_Validation(t *testing.T) {
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{"room-1": {ID: "room-1"}}}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing actor",
			req:     &Request{RoomID: "room-1", Title: "x", StartTime: at(9, 0), EndTime: at(10, 0)},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "missing room",
			req:     &Request{ActorID: "user-1", Title: "x", StartTime: at(9, 0), EndTime: at(10, 0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank title",
			req:     &Request{ActorID: "user-1", RoomID: "room-1", Title: "   ", StartTime: at(9, 0), EndTime: at(10, 0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "inverted interval",
			req:     &Request{ActorID: "user-1", RoomID: "room-1", Title: "x", StartTime: at(10, 0), EndTime: at(9, 0)},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "zero length",
			req:     &Request{ActorID: "user-1", RoomID: "room-1", Title: "x", StartTime: at(9, 0), EndTime: at(9, 0)},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "over four hours",
			req:     &Request{ActorID: "user-1", RoomID: "room-1", Title: "x", StartTime: at(9, 0), EndTime: at(13, 30)},
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&stubBookingRepo{}, rooms, &recordingNotifier{}, &recordingDispatcher{})
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ExactlyFourHoursAllowed(t *testing.T) {
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{"room-1": {ID: "room-1"}}}
	uc := newUseCase(&stubBookingRepo{}, rooms, &recordingNotifier{}, &recordingDispatcher{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorID:   "user-1",
		RoomID:    "room-1",
		Title:     "Workshop",
		StartTime: at(9, 0),
		EndTime:   at(13, 0),
	})
	require.NoError(t, err)
}
