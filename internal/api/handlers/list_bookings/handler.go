package list_bookings

import (
	"errors"
	"net/http"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/service/bookings"
)

const msgUnauthenticated = "authentication required"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
//
// Regular users get their own bookings; holders of the view-all-bookings
// permission get every booking.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)

	result, err := h.service.List(r.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user=%s, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
