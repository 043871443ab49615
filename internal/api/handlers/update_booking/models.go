package update_booking

import (
	"time"

	updateBooking "github.com/roombooker/booking-service/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	RoomID    string    `json:"roomId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *UpdateBookingRequest) ToUseCaseRequest(actorID, bookingID string) *updateBooking.Request {
	return &updateBooking.Request{
		ActorID:   actorID,
		BookingID: bookingID,
		RoomID:    r.RoomID,
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	b := resp.Booking
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
