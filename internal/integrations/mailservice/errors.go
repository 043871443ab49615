package mailservice

import "errors"

var (
	// ErrInternal is returned on client-side request failures.
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse is returned when the service answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("mailservice client: invalid response")
)
