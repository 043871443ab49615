package domain

import "time"

// Slot is a fixed-width segment of a room's work day, used for display
// and selection only. It is never a unit of storage: commit-time
// validation always goes through FindConflict, which works on arbitrary
// intervals, while the grid only samples at step boundaries.
type Slot struct {
	Start time.Time
	End   time.Time

	// Booking is the reservation occupying the slot, nil when free.
	// A booking that covers any part of the slot marks the whole slot
	// as occupied, so a 9:15-9:45 booking occupies both the 9:00 and
	// the 9:30 slot of a 30-minute grid.
	Booking *Booking
}

// IsFree reports whether the slot can be offered for selection.
func (s *Slot) IsFree() bool {
	return s.Booking == nil
}

// SlotWindow describes the portion of a day rendered as a slot grid.
type SlotWindow struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

// DefaultSlotWindow returns the reference 8:00-18:00 window with
// 30-minute steps.
func DefaultSlotWindow() SlotWindow {
	return SlotWindow{
		StartHour:   DefaultWorkDayStartHour,
		EndHour:     DefaultWorkDayEndHour,
		StepMinutes: DefaultSlotStepMinutes,
	}
}

// SlotCount returns the number of slots the window produces.
func (w SlotWindow) SlotCount() int {
	if w.StepMinutes <= 0 || w.EndHour <= w.StartHour {
		return 0
	}
	return (w.EndHour - w.StartHour) * 60 / w.StepMinutes
}

// IsValid reports whether the window can produce a non-empty grid.
func (w SlotWindow) IsValid() bool {
	return w.StartHour >= 0 && w.EndHour <= 24 && w.StartHour < w.EndHour &&
		w.StepMinutes >= MinSlotStepMinutes && w.StepMinutes <= MaxSlotStepMinutes
}

// GenerateSlots renders one room's day as an ordered sequence of
// contiguous, non-overlapping slots. date is anchored to local
// midnight; the grid then walks from StartHour:00 to EndHour:00 in
// StepMinutes increments. A slot is occupied iff it overlaps any of the
// given bookings for that room on that day, per the half-open rule.
//
// Bookings that extend past either edge of the window still mark the
// slots they intersect; bookings entirely outside the window are
// invisible to the grid. That asymmetry is intentional: the grid is a
// display aid and the conflict detector remains the source of truth.
func GenerateSlots(roomID string, date time.Time, bookings []*Booking, window SlotWindow) []Slot {
	dayBookings := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.RoomID == roomID && b.IsOnDay(date) {
			dayBookings = append(dayBookings, b)
		}
	}
	SortByStartTime(dayBookings)

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	windowStart := midnight.Add(time.Duration(window.StartHour) * time.Hour)
	step := time.Duration(window.StepMinutes) * time.Minute

	slots := make([]Slot, 0, window.SlotCount())
	for i := 0; i < window.SlotCount(); i++ {
		start := windowStart.Add(time.Duration(i) * step)
		slot := Slot{Start: start, End: start.Add(step)}

		for _, b := range dayBookings {
			if slot.overlapsBooking(b) {
				slot.Booking = b
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

func (s *Slot) overlapsBooking(b *Booking) bool {
	return Interval{Start: s.Start, End: s.End}.Overlaps(b.Interval())
}
