package get_room_slots

import (
	"time"

	"github.com/roombooker/booking-service/internal/domain"
	getRoomSlots "github.com/roombooker/booking-service/internal/usecase/get_room_slots"
)

// SlotBooking is the booking occupying a slot, if any.
type SlotBooking struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Title  string `json:"title"`
}

// SlotResponse is one half-hour cell of the grid.
type SlotResponse struct {
	Start   time.Time    `json:"start"`
	End     time.Time    `json:"end"`
	Booking *SlotBooking `json:"booking,omitempty"`
}

// SlotsResponse is the full grid for one room and day.
type SlotsResponse struct {
	RoomID string         `json:"roomId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getRoomSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, slot := range resp.Slots {
		s := SlotResponse{Start: slot.Start, End: slot.End}
		if slot.Booking != nil {
			s.Booking = &SlotBooking{
				ID:     slot.Booking.ID,
				UserID: slot.Booking.UserID,
				Title:  slot.Booking.Title,
			}
		}
		out.Slots = append(out.Slots, s)
	}
	return out
}
