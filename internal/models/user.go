package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Accounts are keyed by email and are
// never updated or deleted after signup.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash []byte    `json:"-" db:"password_hash"` // Hidden from JSON responses
	Salt         []byte    `json:"-" db:"salt"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
