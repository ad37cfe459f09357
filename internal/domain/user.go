package domain

import "time"

// Role determines what a user may do once authenticated.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the domain model for the administrative account.
type User struct {
	ID           string
	Email        string
	Name         *string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SafeUser is the client-facing projection of a User. PasswordHash is never serialized.
type SafeUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  Role    `json:"role"`
}

// Safe returns the projection exposed to clients.
func (u *User) Safe() SafeUser {
	return SafeUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
