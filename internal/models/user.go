package models

import "time"

// Internal account IDs, seeded once at bootstrap and never created by users.
const (
	// CashVaultUserID is the internal account representing the bank's
	// physical cash holdings.
	CashVaultUserID int64 = 1

	// ShareholderEquityUserID is the internal account representing the
	// bank's equity.
	ShareholderEquityUserID int64 = 2
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         int64     `json:"user_id" db:"user_id"`                 // Primary key
	FullName       string    `json:"full_name" db:"full_name"`             // Display name
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`       // Unique phone number in E.164 format
	Email          string    `json:"email" db:"email"`                     // Unique email
	HashedPassword string    `json:"hashed_password" db:"hashed_password"` // Bcrypt hash
	IsInternal     bool      `json:"is_internal" db:"is_internal"`         // True for bank-internal accounts (vault, equity)
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
