package manage_users

import (
	"context"

	"github.com/roombooker/booking-service/internal/service/directory/models"
)

type DirectoryService interface {
	ListUsers(ctx context.Context, actorID string) (*models.UserListResponse, error)
	CreateUser(ctx context.Context, actorID string, req *models.CreateUserRequest) (*models.UserResponse, error)
	DeleteUser(ctx context.Context, actorID string, id string) error
	UpdateUserRole(ctx context.Context, actorID string, userID string, req *models.UpdateUserRoleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
