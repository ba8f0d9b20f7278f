package models

import "time"

// ATMDB represents a registered ATM terminal in the database
type ATMDB struct {
	ATMID     int64     `json:"atm_id" db:"atm_id"`         // Primary key
	Location  string    `json:"location" db:"location"`     // Human-readable location
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Registration timestamp
}
