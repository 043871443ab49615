package manage_users

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
	msgUserNotFound       = "user not found"
	msgRoleNotFound       = "role not found"
	msgAccessDenied       = "managing users requires the manage-settings permission"
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

// HandleList GET /api/v1/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)

	result, err := h.service.ListUsers(r.Context(), actorID)
	if err != nil {
		h.respondServiceError(w, "GET /users", actorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	user, err := h.service.CreateUser(r.Context(), actorID, &req)
	if err != nil {
		h.respondServiceError(w, "POST /users", actorID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, user)
}

// HandleDelete DELETE /api/v1/users/{userId}
//
// Deleting a user also deletes every booking they own.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	actorID := middleware.UserID(r)

	if err := h.service.DeleteUser(r.Context(), actorID, userID); err != nil {
		h.respondServiceError(w, "DELETE /users/"+userID, actorID, err)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleUpdateRole PUT /api/v1/users/{userId}/role
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req models.UpdateUserRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%s/role - Invalid request body: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := middleware.UserID(r)

	if err := h.service.UpdateUserRole(r.Context(), actorID, userID, &req); err != nil {
		h.respondServiceError(w, "PUT /users/"+userID+"/role", actorID, err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op, actorID string, err error) {
	switch {
	case errors.Is(err, directory.ErrUserNotFound):
		h.logger.Warn("%s - User not found", op)
		handlers.RespondNotFound(w, msgUserNotFound)

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
