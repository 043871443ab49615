package memory

import (
	"sort"

	"github.com/roombooker/booking-service/internal/domain"
)

func cloneBooking(b *domain.Booking) *domain.Booking {
	out := *b
	return &out
}

func cloneRoom(r *domain.Room) *domain.Room {
	out := *r
	out.Amenities = append([]string(nil), r.Amenities...)
	return &out
}

func cloneUser(u *domain.User) *domain.User {
	out := *u
	return &out
}

func cloneRole(r *domain.Role) *domain.Role {
	out := *r
	out.Permissions = append([]domain.Permission(nil), r.Permissions...)
	return &out
}

func sortRooms(rooms []*domain.Room) {
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
}

func sortUsers(users []*domain.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
}

func sortRoles(roles []*domain.Role) {
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
}
