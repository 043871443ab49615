package models

import "github.com/roombooker/booking-service/internal/domain"

// Request models

// CreateUserRequest carries the fields for adding a user.
type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}

// UpdateUserRoleRequest reassigns a user to another role.
type UpdateUserRoleRequest struct {
	RoleID string `json:"roleId"`
}

// UpdateRolePermissionsRequest replaces a role's permission set.
type UpdateRolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// Response models

// UserResponse is the transport representation of a user.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}

// UserListResponse wraps a list of users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// RoleResponse is the transport representation of a role.
type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// RoleListResponse wraps a list of roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// FromDomainUser converts a domain user into its transport form.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: u.RoleID,
	}
}

// FromDomainUserList converts a slice of domain users.
func FromDomainUserList(list []*domain.User) *UserListResponse {
	out := &UserListResponse{Users: make([]UserResponse, 0, len(list))}
	for _, u := range list {
		out.Users = append(out.Users, *FromDomainUser(u))
	}
	return out
}

// FromDomainRole converts a domain role into its transport form.
func FromDomainRole(r *domain.Role) *RoleResponse {
	perms := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, string(p))
	}
	return &RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: perms,
	}
}

// FromDomainRoleList converts a slice of domain roles.
func FromDomainRoleList(list []*domain.Role) *RoleListResponse {
	out := &RoleListResponse{Roles: make([]RoleResponse, 0, len(list))}
	for _, r := range list {
		out.Roles = append(out.Roles, *FromDomainRole(r))
	}
	return out
}
