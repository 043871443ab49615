package get_room_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/domain"
	getRoomSlots "github.com/roombooker/booking-service/internal/usecase/get_room_slots"
)

const (
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgRoomNotFound = "room not found"
)

type Handler struct {
	useCase GetRoomSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/slots?date=YYYY-MM-DD
//
// Without a date parameter the grid is built for today.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /rooms/%s/slots - Invalid date %q: %v", roomID, raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomSlots.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomSlots.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/%s/slots - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/%s/slots - Invalid input: %v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/%s/slots - Failed to build slot grid: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
