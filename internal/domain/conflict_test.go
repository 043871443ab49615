package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, roomID string, start, end time.Time) *Booking {
	return &Booking{
		ID:        id,
		UserID:    "user-1",
		RoomID:    roomID,
		Title:     "Meeting " + id,
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindConflict(t *testing.T) {
	existing := []*Booking{
		booking("b1", "room-1", at(14, 30), at(15, 30)),
		booking("b2", "room-1", at(9, 0), at(10, 0)),
		booking("b3", "room-2", at(14, 0), at(15, 0)),
	}

	t.Run("overlap in same room is a conflict", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-1", StartTime: at(14, 0), EndTime: at(15, 0)}

		conflict := FindConflict(candidate, existing, "")
		require.NotNil(t, conflict)
		assert.Equal(t, "b1", conflict.ID)
	})

	t.Run("overlap in another room is ignored", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-3", StartTime: at(14, 0), EndTime: at(15, 0)}

		assert.Nil(t, FindConflict(candidate, existing, ""))
	})

	t.Run("back to back booking is not a conflict", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-1", StartTime: at(10, 0), EndTime: at(11, 0)}

		assert.Nil(t, FindConflict(candidate, existing, ""))
	})

	t.Run("earliest overlapping booking is returned", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-1", StartTime: at(9, 30), EndTime: at(15, 0)}

		conflict := FindConflict(candidate, existing, "")
		require.NotNil(t, conflict)
		assert.Equal(t, "b2", conflict.ID, "b2 starts first among the overlapping bookings")
	})

	t.Run("excluded booking never conflicts with itself", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-1", StartTime: at(14, 45), EndTime: at(15, 15)}

		require.NotNil(t, FindConflict(candidate, existing, ""))
		assert.Nil(t, FindConflict(candidate, existing, "b1"))
	})

	t.Run("empty booking set has no conflicts", func(t *testing.T) {
		candidate := BookingCandidate{RoomID: "room-1", StartTime: at(9, 0), EndTime: at(18, 0)}

		assert.Nil(t, FindConflict(candidate, nil, ""))
	})
}

func TestSortByStartTime(t *testing.T) {
	bookings := []*Booking{
		booking("late", "room-1", at(16, 0), at(17, 0)),
		booking("early", "room-1", at(8, 0), at(9, 0)),
		booking("mid", "room-1", at(12, 0), at(13, 0)),
	}

	SortByStartTime(bookings)

	assert.Equal(t, "early", bookings[0].ID)
	assert.Equal(t, "mid", bookings[1].ID)
	assert.Equal(t, "late", bookings[2].ID)
}
