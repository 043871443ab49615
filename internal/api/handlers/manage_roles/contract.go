package manage_roles

import (
	"context"

	"github.com/roombooker/booking-service/internal/service/directory/models"
)

type DirectoryService interface {
	ListRoles(ctx context.Context, actorID string) (*models.RoleListResponse, error)
	UpdateRolePermissions(ctx context.Context, actorID string, roleID string, req *models.UpdateRolePermissionsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
