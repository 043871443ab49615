package get_room_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/service/rooms"
)

const msgRoomNotFound = "room not found"

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

// Handle GET /api/v1/rooms/{roomId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	status, err := h.service.Status(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/%s/status - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/%s/status - Failed to resolve status: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
