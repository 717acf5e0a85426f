package models

import (
	"time"

	"github.com/google/uuid"
)

// OperatorDB represents an operator account in the database
type OperatorDB struct {
	OperatorID   uuid.UUID `json:"operator_id" db:"operator_id"` // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	Address      string    `json:"address" db:"address"`         // Address whose role grants apply to the operator
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
