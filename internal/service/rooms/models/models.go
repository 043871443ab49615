package models

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
)

// Request models

// SaveRoomRequest carries the mutable fields of a room for create and update.
type SaveRoomRequest struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	PhotoURL  string   `json:"photoUrl"`
}

// Response models

// RoomResponse is the transport representation of a room.
type RoomResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	PhotoURL  string   `json:"photoUrl"`
}

// RoomListResponse wraps a list of rooms.
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// StatusBooking is the booking attached to a busy or upcoming status.
type StatusBooking struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// RoomStatusResponse reports what a room is doing right now.
type RoomStatusResponse struct {
	RoomID  string         `json:"roomId"`
	Status  string         `json:"status"`
	Booking *StatusBooking `json:"booking,omitempty"`
}

// FromDomainRoom converts a domain room into its transport form.
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Amenities: r.Amenities,
		PhotoURL:  r.PhotoURL,
	}
}

// FromDomainRoomList converts a slice of domain rooms.
func FromDomainRoomList(list []*domain.Room) *RoomListResponse {
	out := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(list))}
	for _, r := range list {
		out.Rooms = append(out.Rooms, *FromDomainRoom(r))
	}
	return out
}

// FromDomainRoomStatus converts a resolved status into its transport form.
func FromDomainRoomStatus(roomID string, status domain.RoomStatus) *RoomStatusResponse {
	out := &RoomStatusResponse{
		RoomID: roomID,
		Status: string(status.Kind),
	}
	if status.Booking != nil {
		out.Booking = &StatusBooking{
			ID:        status.Booking.ID,
			Title:     status.Booking.Title,
			UserID:    status.Booking.UserID,
			StartTime: status.Booking.StartTime,
			EndTime:   status.Booking.EndTime,
		}
	}
	return out
}
