package get_notifications

import (
	"net/http"
	"time"

	"github.com/roombooker/booking-service/internal/api/handlers"
)

// NotificationResponse is one live toast.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse wraps the live notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type Handler struct {
	source NotificationSource
	logger Logger
}

func NewHandler(source NotificationSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/notifications
//
// Returns only notifications that have not yet expired; expired ones are
// pruned on read.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	active := h.source.Active()

	resp := NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(active))}
	for _, n := range active {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Severity:  string(n.Severity),
			CreatedAt: n.CreatedAt,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
