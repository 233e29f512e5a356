package models

import "github.com/google/uuid"

// Identity is the caller decoded from a verified token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
