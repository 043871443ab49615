package memory

import "github.com/roombooker/booking-service/internal/domain"

// Seed is the initial state applied to a fresh store. IDs in the seed
// are kept as-is so fixtures can reference each other; IDs of entities
// created later are UUIDs.
type Seed struct {
	Roles    []domain.Role
	Users    []domain.User
	Rooms    []domain.Room
	Bookings []domain.Booking
}

// DefaultSeed returns the mock dataset the service starts with when no
// external backend is configured: three roles, a handful of users and
// rooms, and no bookings.
func DefaultSeed() Seed {
	return Seed{
		Roles: []domain.Role{
			{
				ID:   "role-admin",
				Name: "Administrator",
				Permissions: []domain.Permission{
					domain.PermManageRooms,
					domain.PermManageSettings,
					domain.PermViewAllBookings,
				},
			},
			{
				ID:   "role-manager",
				Name: "Office Manager",
				Permissions: []domain.Permission{
					domain.PermManageRooms,
					domain.PermViewAllBookings,
				},
			},
			{
				ID:          "role-employee",
				Name:        "Employee",
				Permissions: []domain.Permission{},
			},
		},
		Users: []domain.User{
			{ID: "user-alice", Name: "Alice Carter", Email: "alice@roombooker.dev", RoleID: "role-admin"},
			{ID: "user-bruno", Name: "Bruno Keller", Email: "bruno@roombooker.dev", RoleID: "role-manager"},
			{ID: "user-chen", Name: "Chen Wei", Email: "chen@roombooker.dev", RoleID: "role-employee"},
			{ID: "user-dana", Name: "Dana Flores", Email: "dana@roombooker.dev", RoleID: "role-employee"},
		},
		Rooms: []domain.Room{
			{
				ID:        "room-boardroom",
				Name:      "Boardroom",
				Capacity:  14,
				Amenities: []string{"projector", "whiteboard", "video-conference"},
				PhotoURL:  "https://static.roombooker.dev/rooms/boardroom.jpg",
			},
			{
				ID:        "room-huddle",
				Name:      "Huddle Corner",
				Capacity:  4,
				Amenities: []string{"whiteboard"},
				PhotoURL:  "https://static.roombooker.dev/rooms/huddle.jpg",
			},
			{
				ID:        "room-skyline",
				Name:      "Skyline",
				Capacity:  8,
				Amenities: []string{"tv", "video-conference"},
				PhotoURL:  "https://static.roombooker.dev/rooms/skyline.jpg",
			},
		},
	}
}
