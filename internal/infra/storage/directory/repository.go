// Package directory is the postgres repository for rooms, users and
// roles. Array-valued columns (amenities, permissions) go through
// pq.Array.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/pkg/psqlbuilder"
	"github.com/roombooker/booking-service/pkg/txmanager"
)

// Repository stores rooms, users and roles.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a repository over db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// --- Rooms ---

// CreateRoom assigns a fresh id and inserts the room.
func (r *Repository) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	created := *room
	created.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("id", "name", "capacity", "amenities", "photo_url").
		Values(created.ID, created.Name, created.Capacity, pq.Array(created.Amenities), created.PhotoURL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRoom - build insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateRoom - execute insert: %v", ErrExecQuery, err)
	}
	return &created, nil
}

// GetRoom returns the room or ErrRoomNotFound.
func (r *Repository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "amenities", "photo_url").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID, &room.Name, &room.Capacity, pq.Array(&room.Amenities), &room.PhotoURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan: %v", ErrScanRow, err)
	}
	return &room, nil
}

// UpdateRoom replaces the stored room, keeping its id.
func (r *Repository) UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("amenities", pq.Array(room.Amenities)).
		Set("photo_url", room.PhotoURL).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRoom - build update: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRoom - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrRoomNotFound
	}
	out := *room
	return &out, nil
}

// DeleteRoom removes the room, ErrRoomNotFound when absent.
func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "rooms", id, ErrRoomNotFound)
}

// ListRooms returns every room ordered by name.
func (r *Repository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "amenities", "photo_url").
		From("rooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, pq.Array(&room.Amenities), &room.PhotoURL); err != nil {
			return nil, fmt.Errorf("%w: ListRooms - scan: %v", ErrScanRow, err)
		}
		out = append(out, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - rows: %v", ErrExecQuery, err)
	}
	return out, nil
}

// --- Users ---

// CreateUser assigns a fresh id and inserts the user.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	created := *user
	created.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "name", "email", "role_id").
		Values(created.ID, created.Name, created.Email, created.RoleID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - build insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateUser - execute insert: %v", ErrExecQuery, err)
	}
	return &created, nil
}

// GetUser returns the user or ErrUserNotFound.
func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "role_id").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - build select: %v", ErrBuildQuery, err)
	}

	var user domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email, &user.RoleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - scan: %v", ErrScanRow, err)
	}
	return &user, nil
}

// DeleteUser removes the user, ErrUserNotFound when absent.
func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "users", id, ErrUserNotFound)
}

// UpdateUserRole assigns a new role to the user.
func (r *Repository) UpdateUserRole(ctx context.Context, userID, roleID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("role_id", roleID).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateUserRole - build update: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateUserRole - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListUsers returns every user ordered by name.
func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "role_id").
		From("users").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsers - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.RoleID); err != nil {
			return nil, fmt.Errorf("%w: ListUsers - scan: %v", ErrScanRow, err)
		}
		out = append(out, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUsers - rows: %v", ErrExecQuery, err)
	}
	return out, nil
}

// --- Roles ---

// GetRole returns the role or ErrRoleNotFound.
func (r *Repository) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "permissions").
		From("roles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRole - build select: %v", ErrBuildQuery, err)
	}

	var role domain.Role
	var perms []string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&role.ID, &role.Name, pq.Array(&perms))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRole - scan: %v", ErrScanRow, err)
	}
	role.Permissions = parsePermissions(perms)
	return &role, nil
}

// ListRoles returns every role ordered by name.
func (r *Repository) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "permissions").
		From("roles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoles - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoles - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make([]*domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		var perms []string
		if err := rows.Scan(&role.ID, &role.Name, pq.Array(&perms)); err != nil {
			return nil, fmt.Errorf("%w: ListRoles - scan: %v", ErrScanRow, err)
		}
		role.Permissions = parsePermissions(perms)
		out = append(out, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRoles - rows: %v", ErrExecQuery, err)
	}
	return out, nil
}

// UpdateRolePermissions replaces the role's capability set.
func (r *Repository) UpdateRolePermissions(ctx context.Context, roleID string, permissions []domain.Permission) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	values := make([]string, len(permissions))
	for i, p := range permissions {
		values[i] = string(p)
	}

	query, args, err := psqlbuilder.Update("roles").
		Set("permissions", pq.Array(values)).
		Where(squirrel.Eq{"id": roleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRolePermissions - build update: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRolePermissions - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *Repository) deleteByID(ctx context.Context, table, id string, notFound error) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: deleteByID - build delete: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: deleteByID - execute delete: %v", ErrExecQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return notFound
	}
	return nil
}

// parsePermissions keeps only known capabilities; unknown strings in
// storage are dropped rather than failing the whole row.
func parsePermissions(values []string) []domain.Permission {
	out := make([]domain.Permission, 0, len(values))
	for _, v := range values {
		if p, err := domain.ParsePermission(v); err == nil {
			out = append(out, p)
		}
	}
	return out
}
