package domain

// Default scheduling-window values. The config file may override them;
// everything that renders or validates a day falls back to these.
const (
	DefaultWorkDayStartHour = 8
	DefaultWorkDayEndHour   = 18
	DefaultSlotStepMinutes  = 30

	// DefaultMaxBookingDurationMinutes caps a single reservation (4 hours).
	DefaultMaxBookingDurationMinutes = 240
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 120
	MaxTitleLength     = 200
	MaxRoomNameLength  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
