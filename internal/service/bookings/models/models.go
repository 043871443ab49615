package models

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
)

// BookingResponse is the transport representation of a booking.
type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RoomID    string    `json:"roomId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking into its transport form.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		Title:     b.Title,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(list []*domain.Booking) *BookingListResponse {
	out := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		out.Bookings = append(out.Bookings, *FromDomainBooking(b))
	}
	return out
}
