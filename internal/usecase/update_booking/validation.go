package update_booking

import (
	"fmt"
	"strings"
	"time"
)

func validateRequest(req *Request, maxDuration time.Duration) error {
	if req.ActorID == "" {
		return ErrUnauthenticated
	}

	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidDuration)
	}

	if req.EndTime.Sub(req.StartTime) > maxDuration {
		return fmt.Errorf("%w: booking may not exceed %d minutes",
			ErrInvalidDuration, int(maxDuration.Minutes()))
	}

	return nil
}
