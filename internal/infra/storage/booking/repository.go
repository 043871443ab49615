// Package booking is the postgres repository for reservations. It
// mirrors the memory store's contract; writes issued inside a
// txmanager-managed transaction automatically join it.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/roombooker/booking-service/internal/domain"
	"github.com/roombooker/booking-service/pkg/psqlbuilder"
	"github.com/roombooker/booking-service/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"room_id",
	"title",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository stores bookings in the bookings table.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a repository over db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// CreateBooking assigns a fresh id and inserts the booking.
func (r *Repository) CreateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	created := *b
	created.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "user_id", "room_id", "title", "start_time", "end_time").
		Values(created.ID, created.UserID, created.RoomID, created.Title, created.StartTime, created.EndTime).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - build insert: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - execute insert: %v", ErrExecQuery, err)
	}
	return &created, nil
}

// GetBooking returns the booking or ErrBookingNotFound.
func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - build select: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.Title, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - scan: %v", ErrScanRow, err)
	}
	return &b, nil
}

// UpdateBooking replaces the booking's mutable fields, keeping id and
// user_id.
func (r *Repository) UpdateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("title", b.Title).
		Set("room_id", b.RoomID).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBooking - build update: %v", ErrBuildQuery, err)
	}

	updated := *b
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.UserID, &updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBooking - execute update: %v", ErrExecQuery, err)
	}
	return &updated, nil
}

// DeleteBooking removes the booking, ErrBookingNotFound when absent.
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - build delete: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - execute delete: %v", ErrExecQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListBookings returns every booking ordered by start time.
func (r *Repository) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{})
}

// ListBookingsByRoom returns the room's bookings ordered by start time.
func (r *Repository) ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"room_id": roomID})
}

// ListBookingsByUser returns the user's bookings ordered by start time.
func (r *Repository) ListBookingsByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_time ASC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.Title, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: list - scan: %v", ErrScanRow, err)
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows: %v", ErrExecQuery, err)
	}
	return out, nil
}

// DeleteBookingsByRoom removes every booking referencing the room.
func (r *Repository) DeleteBookingsByRoom(ctx context.Context, roomID string) (int, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"room_id": roomID})
}

// DeleteBookingsByUser removes every booking made by the user.
func (r *Repository) DeleteBookingsByUser(ctx context.Context, userID string) (int, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) deleteWhere(ctx context.Context, where squirrel.Eq) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - build delete: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - rows affected: %v", ErrExecQuery, err)
	}
	return int(affected), nil
}
