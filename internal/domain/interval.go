package domain

import "time"

// Interval is a half-open time range [Start, End): the start instant is
// included, the end instant is not. Two intervals that only touch at a
// boundary do not overlap, so back-to-back bookings are legal.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval without validating it; use IsValid to
// check that Start precedes End.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid reports whether the interval has positive length.
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// Strict comparisons on both sides keep boundary touches out.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t falls inside [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}
