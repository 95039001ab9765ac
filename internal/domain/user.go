package domain

import "time"

// Role gates access to admin and student surfaces.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User represents an account in the system.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewUser creates a new User instance
func NewUser(username, passwordHash string, role Role) *User {
	now := time.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username is required")
	}
	if u.PasswordHash == "" {
		return NewValidationError("password hash is required")
	}
	if !u.Role.Valid() {
		return NewValidationError("role must be admin or student")
	}
	return nil
}
