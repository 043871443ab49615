package create_booking

import (
	"errors"
	"net/http"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	createBooking "github.com/roombooker/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSchedulingConflict = "the requested time slot conflicts with an existing booking"
	msgRoomNotFound       = "room not found"
	msgInvalidDuration    = "invalid booking duration"
	msgUnauthenticated    = "authentication required"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSchedulingConflict):
			h.logger.Warn("POST /bookings - Scheduling conflict: user=%s, room=%s", actorID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: user=%s, room=%s", actorID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, room=%s, error=%v",
				actorID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking=%s, user=%s, room=%s",
		result.Booking.ID, actorID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
