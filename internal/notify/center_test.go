package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func TestCenterNotifyAndExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	center := NewWithTimeProvider(3*time.Second, nopLogger{}, clock)

	center.Notify("booking created", SeveritySuccess)
	center.Notify("booking conflict", SeverityError)

	active := center.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "booking created", active[0].Message)
	assert.Equal(t, SeveritySuccess, active[0].Severity)
	assert.NotEmpty(t, active[0].ID)
	assert.NotEqual(t, active[0].ID, active[1].ID)

	// Just before the dismiss deadline both entries are still visible.
	clock.advance(2900 * time.Millisecond)
	assert.Len(t, center.Active(), 2)

	// At the deadline they auto-dismiss.
	clock.advance(200 * time.Millisecond)
	assert.Empty(t, center.Active())
}

func TestCenterExpiryIsPerEntry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)}
	center := NewWithTimeProvider(3*time.Second, nopLogger{}, clock)

	center.Notify("first", SeverityInfo)
	clock.advance(2 * time.Second)
	center.Notify("second", SeverityInfo)
	clock.advance(2 * time.Second)

	active := center.Active()
	require.Len(t, active, 1, "the first entry is past its deadline, the second is not")
	assert.Equal(t, "second", active[0].Message)
}
