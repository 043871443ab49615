package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgAccessDenied    = "you may only view your own bookings"
	msgUnauthenticated = "authentication required"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	actorID := middleware.UserID(r)

	booking, err := h.service.GetByID(r.Context(), bookingID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/%s - Access denied: user=%s", bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("GET /bookings/%s - Failed to fetch booking: user=%s, error=%v",
				bookingID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}
