package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/service/bookings"
)

const (
	msgAccessDenied    = "you may only delete your own bookings"
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

// Handle DELETE /api/v1/bookings/{bookingId}
//
// Deleting an absent booking still returns 204: the operation is
// idempotent, so client retries never fail.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	actorID := middleware.UserID(r)

	if err := h.service.Delete(r.Context(), bookingID, actorID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%s - Access denied: user=%s", bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("DELETE /bookings/%s - Failed to delete booking: user=%s, error=%v",
				bookingID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking deleted: user=%s", bookingID, actorID)
	handlers.RespondNoContent(w)
}
