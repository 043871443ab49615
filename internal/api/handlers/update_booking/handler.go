package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	updateBooking "github.com/roombooker/booking-service/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSchedulingConflict = "the requested time slot conflicts with an existing booking"
	msgBookingNotFound    = "booking not found"
	msgRoomNotFound       = "room not found"
	msgInvalidDuration    = "invalid booking duration"
	msgAccessDenied       = "you may only modify your own bookings"
	msgUnauthenticated    = "authentication required"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%s - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actorID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrSchedulingConflict):
			h.logger.Warn("PUT /bookings/%s - Scheduling conflict: user=%s", bookingID, actorID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/%s - Room not found: room=%s", bookingID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/%s - Access denied: user=%s", bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateBooking.ErrInvalidDuration):
			h.logger.Warn("PUT /bookings/%s - Invalid duration: user=%s", bookingID, actorID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, updateBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%s - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/%s - Failed to update booking: user=%s, error=%v",
				bookingID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%s - Booking updated successfully: user=%s", bookingID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
