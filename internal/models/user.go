package models

import "time"

// Role represents a user role as reported by the reservation backend.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Identity is the authenticated user attached to the current session.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// User is the full account record as exposed by the admin user endpoints.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserData is the body for POST /api/users.
type CreateUserData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// UpdateUserData is the body for PUT /api/users/{id}. Zero-valued fields
// are omitted so the server keeps the existing values.
type UpdateUserData struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     Role   `json:"role,omitempty"`
}
