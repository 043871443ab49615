package manage_roles

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roombooker/booking-service/internal/api/handlers"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/service/directory"
	"github.com/roombooker/booking-service/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoleNotFound       = "role not found"
	msgAccessDenied       = "managing roles requires the manage-settings permission"
	msgUnauthenticated    = "authentication required"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/roles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)

	result, err := h.service.ListRoles(r.Context(), actorID)
	if err != nil {
		h.respondServiceError(w, "GET /roles", actorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdatePermissions PUT /api/v1/roles/{roleId}/permissions
func (h *Handler) HandleUpdatePermissions(w http.ResponseWriter, r *http.Request) {
	roleID := mux.Vars(r)["roleId"]

	var req models.UpdateRolePermissionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /roles/%s/permissions - Invalid request body: %v", roleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	if err := h.service.UpdateRolePermissions(r.Context(), actorID, roleID, &req); err != nil {
		h.respondServiceError(w, "PUT /roles/"+roleID+"/permissions", actorID, err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op, actorID string, err error) {
	switch {
	case errors.Is(err, directory.ErrRoleNotFound):
		h.logger.Warn("%s - Role not found", op)
		handlers.RespondNotFound(w, msgRoleNotFound)

	case errors.Is(err, directory.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%s", op, actorID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, directory.ErrUnauthenticated):
		handlers.RespondUnauthorized(w, msgUnauthenticated)

	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: user=%s, error=%v", op, actorID, err)
		handlers.RespondInternalError(w)
	}
}
