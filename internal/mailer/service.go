// Package mailer composes and dispatches booking confirmation messages.
// Dispatch is strictly best-effort: a missing user or room reference or
// a failing sender is logged and swallowed, never surfaced to the
// booking operation whose mutation has already committed.
package mailer

import (
	"context"
	"fmt"

	"github.com/roombooker/booking-service/internal/domain"
)

// Message is one human-readable email handed to a Sender.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Service resolves display data and dispatches confirmation messages.
type Service struct {
	users  UserReader
	rooms  RoomReader
	sender Sender
	logger Logger
}

// NewService creates the dispatcher.
func NewService(users UserReader, rooms RoomReader, sender Sender, logger Logger) *Service {
	return &Service{
		users:  users,
		rooms:  rooms,
		sender: sender,
		logger: logger,
	}
}

// BookingCreated dispatches the creation confirmation.
func (s *Service) BookingCreated(ctx context.Context, b *domain.Booking) {
	s.dispatch(ctx, b,
		fmt.Sprintf("Booking Confirmation: %s", b.Title),
		"Your booking for %q has been confirmed.")
}

// BookingUpdated dispatches the update confirmation.
func (s *Service) BookingUpdated(ctx context.Context, b *domain.Booking) {
	s.dispatch(ctx, b,
		fmt.Sprintf("Booking Updated: %s", b.Title),
		"Your booking for %q has been updated.")
}

// BookingCancelled dispatches the cancellation notice. Callers pass
// the pre-deletion snapshot: the booking can no longer be read back.
func (s *Service) BookingCancelled(ctx context.Context, b *domain.Booking) {
	s.dispatch(ctx, b,
		fmt.Sprintf("Booking Cancelled: %s", b.Title),
		"Your booking for %q has been cancelled.")
}

func (s *Service) dispatch(ctx context.Context, b *domain.Booking, subject, bodyLead string) {
	user, err := s.users.GetUser(ctx, b.UserID)
	if err != nil {
		s.logger.Error("mailer: booking id=%s - could not resolve user id=%s: %v", b.ID, b.UserID, err)
		return
	}
	room, err := s.rooms.GetRoom(ctx, b.RoomID)
	if err != nil {
		s.logger.Error("mailer: booking id=%s - could not resolve room id=%s: %v", b.ID, b.RoomID, err)
		return
	}

	msg := Message{
		To:      user.Email,
		Subject: subject,
		Body:    composeBody(fmt.Sprintf(bodyLead, b.Title), user, room, b),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("mailer: booking id=%s - send failed: %v", b.ID, err)
		return
	}
	s.logger.Info("mailer: dispatched %q to %s", subject, user.Email)
}

func composeBody(lead string, user *domain.User, room *domain.Room, b *domain.Booking) string {
	return fmt.Sprintf(
		"Hello %s,\n\n%s\n\nDetails:\n- Room: %s\n- Date: %s\n- Time: %s - %s\n\nThank you,\nRoom Booker",
		user.Name,
		lead,
		room.Name,
		formatDate(b.StartTime),
		formatTime(b.StartTime),
		formatTime(b.EndTime),
	)
}
