package directory

import (
	"errors"
	"fmt"

	"github.com/roombooker/booking-service/internal/infra/storage"
)

var (
	// ErrRoomNotFound is returned when a room id is absent.
	ErrRoomNotFound = fmt.Errorf("directory.repository: %w", storage.ErrRoomNotFound)

	// ErrUserNotFound is returned when a user id is absent.
	ErrUserNotFound = fmt.Errorf("directory.repository: %w", storage.ErrUserNotFound)

	// ErrRoleNotFound is returned when a role id is absent.
	ErrRoleNotFound = fmt.Errorf("directory.repository: %w", storage.ErrRoleNotFound)

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
