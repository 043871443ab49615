package domain

import (
	"sort"
	"time"
)

// BookingCandidate is a proposed reservation checked against the
// existing booking set before it may be committed.
type BookingCandidate struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
}

// Interval returns the candidate's [StartTime, EndTime) range.
func (c BookingCandidate) Interval() Interval {
	return Interval{Start: c.StartTime, End: c.EndTime}
}

// FindConflict returns the existing booking that would overlap the
// candidate in the same room, or nil when the candidate is free to
// commit. excludeID skips one booking by ID; an update passes its own
// ID so the booking never conflicts with itself.
//
// Any overlapping booking is sufficient to reject the candidate. When
// several overlap, the one with the earliest StartTime is returned so
// the result is stable regardless of storage order.
func FindConflict(candidate BookingCandidate, existing []*Booking, excludeID string) *Booking {
	want := candidate.Interval()

	var conflict *Booking
	for _, b := range existing {
		if b.RoomID != candidate.RoomID {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if !want.Overlaps(b.Interval()) {
			continue
		}
		if conflict == nil || b.StartTime.Before(conflict.StartTime) {
			conflict = b
		}
	}
	return conflict
}

// SortByStartTime orders bookings by ascending StartTime, in place.
// Storage insertion order is irrelevant; every consumer that displays
// bookings re-sorts them this way.
func SortByStartTime(bookings []*Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
}
