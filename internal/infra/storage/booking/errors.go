package booking

import (
	"errors"
	"fmt"

	"github.com/roombooker/booking-service/internal/infra/storage"
)

var (
	// ErrBookingNotFound is returned when a booking id is absent.
	ErrBookingNotFound = fmt.Errorf("booking.repository: %w", storage.ErrBookingNotFound)

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
