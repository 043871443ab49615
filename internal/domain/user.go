package domain

import "fmt"

// Permission is an enumerated capability granted through a role.
type Permission string

const (
	PermManageRooms     Permission = "manageRooms"
	PermManageSettings  Permission = "manageSettings"
	PermViewAllBookings Permission = "viewAllBookings"
)

// AllPermissions lists every known capability, in a stable order.
var AllPermissions = []Permission{
	PermManageRooms,
	PermManageSettings,
	PermViewAllBookings,
}

// ParsePermission converts a wire string into a known Permission.
func ParsePermission(s string) (Permission, error) {
	for _, p := range AllPermissions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown permission %q", s)
}

// Role groups a named set of permissions. Users reference roles by ID.
type Role struct {
	ID          string
	Name        string
	Permissions []Permission
}

// Has reports whether the role grants the given permission.
func (r *Role) Has(p Permission) bool {
	for _, granted := range r.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

// User represents an account that can authenticate and own bookings.
// Deleting a user cascades deletion of the user's bookings.
type User struct {
	ID     string
	Name   string
	Email  string
	RoleID string
}
