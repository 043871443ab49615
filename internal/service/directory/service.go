package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
	"github.com/roombooker/booking-service/internal/service/directory/models"
)

const (
	msgUserAdded   = "User added"
	msgUserRemoved = "User removed"
	msgRoleUpdated = "Role permissions updated"
)

// Service manages the user and role directory and answers permission checks
// for the rest of the application.
type Service struct {
	userRepo    UserRepository
	roleRepo    RoleRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewService creates a new directory service.
func NewService(
	userRepo UserRepository,
	roleRepo RoleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// HasPermission reports whether the user's role grants the permission. An
// unknown user or a dangling role id simply has no permissions.
func (s *Service) HasPermission(ctx context.Context, userID string, perm domain.Permission) (bool, error) {
	if userID == "" {
		return false, nil
	}

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: HasPermission - repository error: %v", ErrInternal, err)
	}

	role, err := s.roleRepo.GetRole(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, storage.ErrRoleNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: HasPermission - repository error: %v", ErrInternal, err)
	}

	return role.Has(perm), nil
}

// GetUser returns one user.
func (s *Service) GetUser(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUser: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetUser - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// ListUsers returns every user ordered by name. Requires the manage-settings
// permission.
func (s *Service) ListUsers(ctx context.Context, actorID string) (*models.UserListResponse, error) {
	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// CreateUser adds a user to the directory. Requires the manage-settings
// permission; the target role must exist.
func (s *Service) CreateUser(ctx context.Context, actorID string, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("CreateUser: user=%s adding name=%q role=%s", actorID, req.Name, req.RoleID)

	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	if _, err := s.roleRepo.GetRole(ctx, req.RoleID); err != nil {
		if errors.Is(err, storage.ErrRoleNotFound) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("CreateUser: failed to get role id=%s: %v", req.RoleID, err)
		return nil, fmt.Errorf("%w: CreateUser - repository error: %v", ErrInternal, err)
	}

	created, err := s.userRepo.CreateUser(ctx, &domain.User{
		Name:   req.Name,
		Email:  req.Email,
		RoleID: req.RoleID,
	})
	if err != nil {
		s.logger.Error("CreateUser: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: CreateUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: successfully created user id=%s", created.ID)
	s.notifier.Notify(msgUserAdded, notify.SeveritySuccess)

	return models.FromDomainUser(created), nil
}

// DeleteUser removes a user and every booking they own, atomically, so no
// booking can ever point at a missing user. Requires the manage-settings
// permission.
func (s *Service) DeleteUser(ctx context.Context, actorID string, id string) error {
	s.logger.Info("DeleteUser: user=%s deleting user id=%s", actorID, id)

	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return err
	}

	var removedBookings int

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.GetUser(txCtx, id); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: DeleteUser - repository error: %v", ErrInternal, err)
		}

		n, err := s.bookingRepo.DeleteBookingsByUser(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: DeleteUser - cascade error: %v", ErrInternal, err)
		}
		removedBookings = n

		if err := s.userRepo.DeleteUser(txCtx, id); err != nil {
			return fmt.Errorf("%w: DeleteUser - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.logger.Error("DeleteUser: failed to delete user id=%s: %v", id, err)
		}
		return err
	}

	s.logger.Info("DeleteUser: successfully deleted user id=%s with %d bookings", id, removedBookings)
	s.notifier.Notify(msgUserRemoved, notify.SeveritySuccess)

	return nil
}

// UpdateUserRole reassigns a user to another role. Requires the
// manage-settings permission; the target role must exist.
func (s *Service) UpdateUserRole(ctx context.Context, actorID string, userID string, req *models.UpdateUserRoleRequest) error {
	s.logger.Info("UpdateUserRole: user=%s assigning role=%s to user=%s", actorID, req.RoleID, userID)

	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return err
	}

	if _, err := s.roleRepo.GetRole(ctx, req.RoleID); err != nil {
		if errors.Is(err, storage.ErrRoleNotFound) {
			return ErrRoleNotFound
		}
		s.logger.Error("UpdateUserRole: failed to get role id=%s: %v", req.RoleID, err)
		return fmt.Errorf("%w: UpdateUserRole - repository error: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdateUserRole(ctx, userID, req.RoleID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateUserRole: failed to update user id=%s: %v", userID, err)
		return fmt.Errorf("%w: UpdateUserRole - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListRoles returns every role ordered by name. Requires the manage-settings
// permission.
func (s *Service) ListRoles(ctx context.Context, actorID string) (*models.RoleListResponse, error) {
	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.logger.Error("ListRoles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRoles - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoleList(roles), nil
}

// UpdateRolePermissions replaces a role's permission set. Unknown permission
// names are rejected. Requires the manage-settings permission.
func (s *Service) UpdateRolePermissions(ctx context.Context, actorID string, roleID string, req *models.UpdateRolePermissionsRequest) error {
	s.logger.Info("UpdateRolePermissions: user=%s updating role=%s", actorID, roleID)

	if err := s.requireManageSettings(ctx, actorID); err != nil {
		return err
	}

	perms := make([]domain.Permission, 0, len(req.Permissions))
	for _, raw := range req.Permissions {
		perm, err := domain.ParsePermission(raw)
		if err != nil {
			return fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, raw)
		}
		perms = append(perms, perm)
	}

	if err := s.roleRepo.UpdateRolePermissions(ctx, roleID, perms); err != nil {
		if errors.Is(err, storage.ErrRoleNotFound) {
			return ErrRoleNotFound
		}
		s.logger.Error("UpdateRolePermissions: failed to update role id=%s: %v", roleID, err)
		return fmt.Errorf("%w: UpdateRolePermissions - repository error: %v", ErrInternal, err)
	}

	s.notifier.Notify(msgRoleUpdated, notify.SeveritySuccess)
	return nil
}

func (s *Service) requireManageSettings(ctx context.Context, actorID string) error {
	if actorID == "" {
		return ErrUnauthenticated
	}

	allowed, err := s.HasPermission(ctx, actorID, domain.PermManageSettings)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Warn("requireManageSettings: user=%s lacks manage-settings permission", actorID)
		return ErrAccessDenied
	}
	return nil
}
