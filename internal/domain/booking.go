package domain

import "time"

// Booking represents a reservation of a room for a half-open time range.
// The ID is assigned by the storage layer at creation and immutable
// afterwards, as is the owning UserID.
type Booking struct {
	ID        string
	UserID    string
	RoomID    string
	Title     string
	StartTime time.Time
	EndTime   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booking's [StartTime, EndTime) range.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Duration returns the booked length of time.
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// IsOnDay reports whether the booking starts on the same calendar day
// as date, in date's location.
func (b *Booking) IsOnDay(date time.Time) bool {
	y1, m1, d1 := b.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
