package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordDB represents a stored site credential in the database
type PasswordDB struct {
	PasswordID uuid.UUID `json:"id" db:"id"`               // Primary key
	OwnerID    uuid.UUID `json:"-" db:"owner_id"`          // Identifier of the owning user
	Site       string    `json:"site" db:"site"`           // Site or service name
	Username   string    `json:"username" db:"username"`   // Login for the site
	Password   string    `json:"password" db:"password"`   // Stored verbatim
	CreatedAt  time.Time `json:"createdAt" db:"created_at"` // Timestamp when the record was created
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"` // Timestamp of the last edit
}
