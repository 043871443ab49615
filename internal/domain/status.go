package domain

import "time"

// RoomStatusKind enumerates the states a room can be in at an instant.
type RoomStatusKind string

const (
	RoomBusy      RoomStatusKind = "busy"
	RoomUpcoming  RoomStatusKind = "upcoming"
	RoomAvailable RoomStatusKind = "available"
)

// RoomStatus is a tagged result: Booking is the current reservation for
// RoomBusy, the next one for RoomUpcoming, and nil for RoomAvailable.
type RoomStatus struct {
	Kind    RoomStatusKind
	Booking *Booking
}

// ResolveRoomStatus classifies a room at the given instant from its
// booking set. Bookings that already ended are ignored; a booking whose
// interval contains now makes the room busy (earliest start wins on
// ties, though overlapping bookings should not exist under the per-room
// invariant); otherwise the earliest future booking makes it upcoming;
// with nothing relevant the room is available.
//
// Pure and O(n): presentation layers recompute it per render tick
// rather than caching.
func ResolveRoomStatus(roomID string, bookings []*Booking, now time.Time) RoomStatus {
	var current *Booking
	var next *Booking

	for _, b := range bookings {
		if b.RoomID != roomID || !b.EndTime.After(now) {
			continue
		}
		if b.Interval().Contains(now) {
			if current == nil || b.StartTime.Before(current.StartTime) {
				current = b
			}
			continue
		}
		if b.StartTime.After(now) {
			if next == nil || b.StartTime.Before(next.StartTime) {
				next = b
			}
		}
	}

	switch {
	case current != nil:
		return RoomStatus{Kind: RoomBusy, Booking: current}
	case next != nil:
		return RoomStatus{Kind: RoomUpcoming, Booking: next}
	default:
		return RoomStatus{Kind: RoomAvailable}
	}
}
