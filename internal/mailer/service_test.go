package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roombooker/booking-service/internal/domain"
)

type mockUserReader struct {
	user *domain.User
	err  error
}

func (m *mockUserReader) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return m.user, m.err
}

type mockRoomReader struct {
	room *domain.Room
	err  error
}

func (m *mockRoomReader) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return m.room, m.err
}

type mockSender struct {
	sent []Message
	err  error
}

func (m *mockSender) Send(ctx context.Context, msg Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func fixtureBooking() *domain.Booking {
	start := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:        "b1",
		UserID:    "user-chen",
		RoomID:    "room-skyline",
		Title:     "Design review",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestDispatchComposesMessage(t *testing.T) {
	users := &mockUserReader{user: &domain.User{ID: "user-chen", Name: "Chen Wei", Email: "chen@roombooker.dev"}}
	rooms := &mockRoomReader{room: &domain.Room{ID: "room-skyline", Name: "Skyline"}}
	sender := &mockSender{}
	svc := NewService(users, rooms, sender, nopLogger{})

	svc.BookingCreated(context.Background(), fixtureBooking())

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "chen@roombooker.dev", msg.To)
	assert.Equal(t, "Booking Confirmation: Design review", msg.Subject)
	assert.Contains(t, msg.Body, "Hello Chen Wei")
	assert.Contains(t, msg.Body, "Room: Skyline")
	assert.Contains(t, msg.Body, "Monday, March 10, 2025")
	assert.Contains(t, msg.Body, "02:00 PM - 03:00 PM")
}

func TestDispatchSubjects(t *testing.T) {
	users := &mockUserReader{user: &domain.User{Name: "Chen Wei", Email: "chen@roombooker.dev"}}
	rooms := &mockRoomReader{room: &domain.Room{Name: "Skyline"}}
	sender := &mockSender{}
	svc := NewService(users, rooms, sender, nopLogger{})

	b := fixtureBooking()
	svc.BookingUpdated(context.Background(), b)
	svc.BookingCancelled(context.Background(), b)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Booking Updated: Design review", sender.sent[0].Subject)
	assert.Equal(t, "Booking Cancelled: Design review", sender.sent[1].Subject)
	assert.Contains(t, sender.sent[1].Body, "has been cancelled")
}

func TestDispatchSwallowsFailures(t *testing.T) {
	t.Run("missing user reference", func(t *testing.T) {
		users := &mockUserReader{err: errors.New("user not found")}
		sender := &mockSender{}
		svc := NewService(users, &mockRoomReader{room: &domain.Room{}}, sender, nopLogger{})

		svc.BookingCreated(context.Background(), fixtureBooking())

		assert.Empty(t, sender.sent, "nothing is sent without a resolvable user")
	})

	t.Run("missing room reference", func(t *testing.T) {
		users := &mockUserReader{user: &domain.User{Email: "chen@roombooker.dev"}}
		rooms := &mockRoomReader{err: errors.New("room not found")}
		sender := &mockSender{}
		svc := NewService(users, rooms, sender, nopLogger{})

		svc.BookingCreated(context.Background(), fixtureBooking())

		assert.Empty(t, sender.sent)
	})

	t.Run("sender failure does not panic or propagate", func(t *testing.T) {
		users := &mockUserReader{user: &domain.User{Email: "chen@roombooker.dev"}}
		rooms := &mockRoomReader{room: &domain.Room{Name: "Skyline"}}
		sender := &mockSender{err: errors.New("smtp down")}
		svc := NewService(users, rooms, sender, nopLogger{})

		assert.NotPanics(t, func() {
			svc.BookingCancelled(context.Background(), fixtureBooking())
		})
	})
}
