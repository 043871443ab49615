package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoomStatus(t *testing.T) {
	now := at(12, 0)

	t.Run("booking covering now makes the room busy", func(t *testing.T) {
		b := booking("b1", "room-1", now.Add(-time.Hour), now.Add(time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{b}, now)

		require.Equal(t, RoomBusy, status.Kind)
		assert.Equal(t, "b1", status.Booking.ID)
	})

	t.Run("future booking makes the room upcoming", func(t *testing.T) {
		b := booking("b1", "room-1", now.Add(time.Hour), now.Add(2*time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{b}, now)

		require.Equal(t, RoomUpcoming, status.Kind)
		assert.Equal(t, "b1", status.Booking.ID)
	})

	t.Run("earliest future booking wins", func(t *testing.T) {
		later := booking("later", "room-1", now.Add(3*time.Hour), now.Add(4*time.Hour))
		sooner := booking("sooner", "room-1", now.Add(time.Hour), now.Add(2*time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{later, sooner}, now)

		require.Equal(t, RoomUpcoming, status.Kind)
		assert.Equal(t, "sooner", status.Booking.ID)
	})

	t.Run("busy takes precedence over upcoming", func(t *testing.T) {
		current := booking("current", "room-1", now.Add(-time.Hour), now.Add(time.Hour))
		next := booking("next", "room-1", now.Add(2*time.Hour), now.Add(3*time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{next, current}, now)

		require.Equal(t, RoomBusy, status.Kind)
		assert.Equal(t, "current", status.Booking.ID)
	})

	t.Run("no relevant bookings means available", func(t *testing.T) {
		past := booking("past", "room-1", now.Add(-3*time.Hour), now.Add(-2*time.Hour))
		otherRoom := booking("other", "room-2", now.Add(-time.Hour), now.Add(time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{past, otherRoom}, now)

		assert.Equal(t, RoomAvailable, status.Kind)
		assert.Nil(t, status.Booking)
	})

	t.Run("booking ending exactly now is no longer relevant", func(t *testing.T) {
		b := booking("b1", "room-1", now.Add(-time.Hour), now)

		status := ResolveRoomStatus("room-1", []*Booking{b}, now)

		assert.Equal(t, RoomAvailable, status.Kind)
	})

	t.Run("booking starting exactly now is busy", func(t *testing.T) {
		b := booking("b1", "room-1", now, now.Add(time.Hour))

		status := ResolveRoomStatus("room-1", []*Booking{b}, now)

		assert.Equal(t, RoomBusy, status.Kind)
	})
}
