package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"id"`            // Primary key
	Username     string    `db:"username"`      // Unique (case-insensitive) username
	Email        string    `db:"email"`         // Unique lower-cased email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// UserSummary is the non-sensitive view of a user returned to clients.
// swagger:model UserSummary
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Summary returns the client-safe view of the user.
func (u *UserDB) Summary() UserSummary {
	return UserSummary{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
