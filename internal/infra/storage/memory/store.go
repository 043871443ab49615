// Package memory implements the default persistence collaborator: an
// explicit, seed-initialized in-process store for bookings, rooms,
// users and roles. It satisfies the same repository contracts as the
// postgres driver and doubles as the transaction manager: one
// process-wide mutation lock makes every conflict-check-plus-mutation
// sequence a single indivisible step.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roombooker/booking-service/internal/domain"
)

// Store holds the collections. All getters return copies so callers
// never alias internal state.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	bookings map[string]*domain.Booking
	rooms    map[string]*domain.Room
	users    map[string]*domain.User
	roles    map[string]*domain.Role
}

// NewStore creates an empty store and applies the seed.
func NewStore(seed Seed) *Store {
	s := &Store{
		bookings: make(map[string]*domain.Booking),
		rooms:    make(map[string]*domain.Room),
		users:    make(map[string]*domain.User),
		roles:    make(map[string]*domain.Role),
	}
	for i := range seed.Roles {
		r := seed.Roles[i]
		s.roles[r.ID] = cloneRole(&r)
	}
	for i := range seed.Users {
		u := seed.Users[i]
		s.users[u.ID] = cloneUser(&u)
	}
	for i := range seed.Rooms {
		r := seed.Rooms[i]
		s.rooms[r.ID] = cloneRoom(&r)
	}
	for i := range seed.Bookings {
		b := seed.Bookings[i]
		s.bookings[b.ID] = cloneBooking(&b)
	}
	return s
}

// DoSerializable runs fn under the store-wide mutation lock, making it
// atomic with respect to every other DoSerializable call. The memory
// analogue of a SERIALIZABLE SQL transaction; there is no rollback, so
// fn must perform its reads and validation before its writes.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// --- Bookings ---

// CreateBooking assigns a fresh id and inserts the booking.
func (s *Store) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := cloneBooking(booking)
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.bookings[stored.ID] = stored
	return cloneBooking(stored), nil
}

// GetBooking returns the booking or ErrBookingNotFound.
func (s *Store) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// UpdateBooking replaces the stored booking's mutable fields, keeping
// ID, UserID and CreatedAt.
func (s *Store) UpdateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[booking.ID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	stored.Title = booking.Title
	stored.RoomID = booking.RoomID
	stored.StartTime = booking.StartTime
	stored.EndTime = booking.EndTime
	stored.UpdatedAt = time.Now()

	return cloneBooking(stored), nil
}

// DeleteBooking removes the booking, ErrBookingNotFound when absent.
func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

// ListBookings returns every booking ordered by start time.
func (s *Store) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	domain.SortByStartTime(out)
	return out, nil
}

// ListBookingsByRoom returns the room's bookings ordered by start time.
func (s *Store) ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, cloneBooking(b))
		}
	}
	domain.SortByStartTime(out)
	return out, nil
}

// ListBookingsByUser returns the user's bookings ordered by start time.
func (s *Store) ListBookingsByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	domain.SortByStartTime(out)
	return out, nil
}

// DeleteBookingsByRoom removes every booking referencing the room and
// returns how many were removed.
func (s *Store) DeleteBookingsByRoom(ctx context.Context, roomID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, b := range s.bookings {
		if b.RoomID == roomID {
			delete(s.bookings, id)
			removed++
		}
	}
	return removed, nil
}

// DeleteBookingsByUser removes every booking made by the user and
// returns how many were removed.
func (s *Store) DeleteBookingsByUser(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, b := range s.bookings {
		if b.UserID == userID {
			delete(s.bookings, id)
			removed++
		}
	}
	return removed, nil
}

// --- Rooms ---

// CreateRoom assigns a fresh id and inserts the room.
func (s *Store) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneRoom(room)
	stored.ID = uuid.NewString()
	s.rooms[stored.ID] = stored
	return cloneRoom(stored), nil
}

// GetRoom returns the room or ErrRoomNotFound.
func (s *Store) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return cloneRoom(r), nil
}

// UpdateRoom replaces the stored room, keeping its ID.
func (s *Store) UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[room.ID]; !ok {
		return nil, ErrRoomNotFound
	}
	s.rooms[room.ID] = cloneRoom(room)
	return cloneRoom(room), nil
}

// DeleteRoom removes the room, ErrRoomNotFound when absent.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return ErrRoomNotFound
	}
	delete(s.rooms, id)
	return nil
}

// ListRooms returns every room ordered by name.
func (s *Store) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, cloneRoom(r))
	}
	sortRooms(out)
	return out, nil
}

// --- Users ---

// CreateUser assigns a fresh id and inserts the user.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneUser(user)
	stored.ID = uuid.NewString()
	s.users[stored.ID] = stored
	return cloneUser(stored), nil
}

// GetUser returns the user or ErrUserNotFound.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

// DeleteUser removes the user, ErrUserNotFound when absent.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// UpdateUserRole assigns a new role to the user.
func (s *Store) UpdateUserRole(ctx context.Context, userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.RoleID = roleID
	return nil
}

// ListUsers returns every user ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	sortUsers(out)
	return out, nil
}

// --- Roles ---

// GetRole returns the role or ErrRoleNotFound.
func (s *Store) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.roles[id]
	if !ok {
		return nil, ErrRoleNotFound
	}
	return cloneRole(r), nil
}

// ListRoles returns every role ordered by name.
func (s *Store) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, cloneRole(r))
	}
	sortRoles(out)
	return out, nil
}

// UpdateRolePermissions replaces the role's capability set.
func (s *Store) UpdateRolePermissions(ctx context.Context, roleID string, permissions []domain.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.roles[roleID]
	if !ok {
		return ErrRoleNotFound
	}
	r.Permissions = append([]domain.Permission(nil), permissions...)
	return nil
}
