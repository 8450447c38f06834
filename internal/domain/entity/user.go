package entity

import (
	"time"
)

// Status governs login and access-gate admission for an account.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
	StatusDeleted Status = "deleted"
)

// User is the aggregate root for the directory domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Status       Status
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// PublicUser is the wire projection of an account. It never carries
// secret material.
type PublicUser struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Status    Status     `json:"status"`
	LastLogin *time.Time `json:"last_login"`
}

// Public returns the projection exposed by the directory listing.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		LastLogin: u.LastLogin,
	}
}
