package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/internal/infra/storage"
	"github.com/roombooker/booking-service/internal/notify"
	"github.com/roombooker/booking-service/internal/service/directory/models"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	deleted []string
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	out := *user
	out.ID = "user-new"
	s.users[out.ID] = &out
	return &out, nil
}

func (s *stubUserRepo) GetUser(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *stubUserRepo) DeleteUser(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return storage.ErrUserNotFound
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUserRepo) UpdateUserRole(_ context.Context, userID, roleID string) error {
	u, ok := s.users[userID]
	if !ok {
		return storage.ErrUserNotFound
	}
	u.RoleID = roleID
	return nil
}

func (s *stubUserRepo) ListUsers(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func (s *stubRoleRepo) GetRole(_ context.Context, id string) (*domain.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, storage.ErrRoleNotFound
	}
	out := *r
	return &out, nil
}

func (s *stubRoleRepo) ListRoles(_ context.Context) ([]*domain.Role, error) {
	var out []*domain.Role
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRoleRepo) UpdateRolePermissions(_ context.Context, roleID string, permissions []domain.Permission) error {
	r, ok := s.roles[roleID]
	if !ok {
		return storage.ErrRoleNotFound
	}
	r.Permissions = permissions
	return nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	cascaded []string
}

func (s *stubBookingRepo) DeleteBookingsByUser(_ context.Context, userID string) (int, error) {
	s.cascaded = append(s.cascaded, userID)
	kept := s.bookings[:0]
	removed := 0
	for _, b := range s.bookings {
		if b.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	s.bookings = kept
	return removed, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string, _ notify.Severity) {
	r.messages = append(r.messages, message)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.Local)
}

func fixture() (*stubUserRepo, *stubRoleRepo, *stubBookingRepo, *recordingNotifier, *Service) {
	userRepo := &stubUserRepo{users: map[string]*domain.User{
		"user-admin": {ID: "user-admin", Name: "Alice", Email: "alice@example.com", RoleID: "role-admin"},
		"user-1":     {ID: "user-1", Name: "Bruno", Email: "bruno@example.com", RoleID: "role-employee"},
	}}
	roleRepo := &stubRoleRepo{roles: map[string]*domain.Role{
		"role-admin": {ID: "role-admin", Name: "Administrator", Permissions: domain.AllPermissions},
		"role-employee": {ID: "role-employee", Name: "Employee"},
	}}
	bookingRepo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: "booking-1", UserID: "user-1", RoomID: "room-1", StartTime: at(9, 0), EndTime: at(10, 0)},
	}}
	notifier := &recordingNotifier{}
	svc := NewService(userRepo, roleRepo, bookingRepo, stubTxManager{}, notifier, nopLogger{})
	return userRepo, roleRepo, bookingRepo, notifier, svc
}

func TestHasPermission(t *testing.T) {
	_, _, _, _, svc := fixture()

	allowed, err := svc.HasPermission(context.Background(), "user-admin", domain.PermManageRooms)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.HasPermission(context.Background(), "user-1", domain.PermManageRooms)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.HasPermission(context.Background(), "user-missing", domain.PermManageRooms)
	require.NoError(t, err)
	assert.False(t, allowed, "unknown users hold no permissions")

	allowed, err = svc.HasPermission(context.Background(), "", domain.PermManageRooms)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCreateUser(t *testing.T) {
	t.Run("admin creates a user", func(t *testing.T) {
		_, _, _, notifier, svc := fixture()

		resp, err := svc.CreateUser(context.Background(), "user-admin", &models.CreateUserRequest{
			Name: "Chen", Email: "chen@example.com", RoleID: "role-employee",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-new", resp.ID)
		assert.Equal(t, []string{"User added"}, notifier.messages)
	})

	t.Run("employee is denied", func(t *testing.T) {
		_, _, _, _, svc := fixture()

		_, err := svc.CreateUser(context.Background(), "user-1", &models.CreateUserRequest{
			Name: "Chen", Email: "chen@example.com", RoleID: "role-employee",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, _, _, _, svc := fixture()

		_, err := svc.CreateUser(context.Background(), "user-admin", &models.CreateUserRequest{
			Name: "Chen", Email: "chen@example.com", RoleID: "role-missing",
		})
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("bad email", func(t *testing.T) {
		_, _, _, _, svc := fixture()

		_, err := svc.CreateUser(context.Background(), "user-admin", &models.CreateUserRequest{
			Name: "Chen", Email: "not-an-email", RoleID: "role-employee",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteUser_CascadesBookings(t *testing.T) {
	userRepo, _, bookingRepo, notifier, svc := fixture()

	err := svc.DeleteUser(context.Background(), "user-admin", "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"user-1"}, userRepo.deleted)
	assert.Equal(t, []string{"user-1"}, bookingRepo.cascaded)
	assert.Empty(t, bookingRepo.bookings)
	assert.Equal(t, []string{"User removed"}, notifier.messages)
}

func TestUpdateUserRole(t *testing.T) {
	userRepo, _, _, _, svc := fixture()

	err := svc.UpdateUserRole(context.Background(), "user-admin", "user-1", &models.UpdateUserRoleRequest{RoleID: "role-admin"})
	require.NoError(t, err)
	assert.Equal(t, "role-admin", userRepo.users["user-1"].RoleID)

	err = svc.UpdateUserRole(context.Background(), "user-admin", "user-1", &models.UpdateUserRoleRequest{RoleID: "role-missing"})
	require.ErrorIs(t, err, ErrRoleNotFound)

	err = svc.UpdateUserRole(context.Background(), "user-admin", "user-missing", &models.UpdateUserRoleRequest{RoleID: "role-admin"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateRolePermissions(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		_, roles, _, _, svc := fixture()

		err := svc.UpdateRolePermissions(context.Background(), "user-admin", "role-employee", &models.UpdateRolePermissionsRequest{
			Permissions: []string{"manageRooms"},
		})
		require.NoError(t, err)
		assert.True(t, roles.roles["role-employee"].Has(domain.PermManageRooms))
	})

	t.Run("unknown permission name", func(t *testing.T) {
		_, _, _, _, svc := fixture()

		err := svc.UpdateRolePermissions(context.Background(), "user-admin", "role-employee", &models.UpdateRolePermissionsRequest{
			Permissions: []string{"launchMissiles"},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
