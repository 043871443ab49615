package manage_rooms

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/service/rooms"
	"github.com/roombooker/booking-service/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
	msgAccessDenied       = "managing rooms requires the manage-rooms permission"
	msgUnauthenticated    = "authentication required"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/rooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	room, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		h.respondServiceError(w, "POST /rooms", actorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, room)
}

// HandleUpdate PUT /api/v1/rooms/{roomId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req models.SaveRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/%s - Invalid request body: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	room, err := h.service.Update(r.Context(), actorID, roomID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /rooms/"+roomID, actorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}

// HandleDelete DELETE /api/v1/rooms/{roomId}
//
// Deleting a room also deletes every booking scheduled in it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	actorID := middleware.UserID(r)

	if err := h.service.Delete(r.Context(), actorID, roomID); err != nil {
		h.respondServiceError(w, "DELETE /rooms/"+roomID, actorID, err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op, actorID string, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found", op)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, rooms.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%s", op, actorID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, rooms.ErrUnauthenticated):
		handlers.RespondUnauthorized(w, msgUnauthenticated)

	case errors.Is(err, rooms.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: user=%s, error=%v", op, actorID, err)
		handlers.RespondInternalError(w)
	}
}
