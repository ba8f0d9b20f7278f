package models

import "time"

// TouchlessSessionDB represents the exclusivity record binding one user to
// one ATM. The user_id and atm_id columns are each independently unique, so
// a user can hold at most one ATM and an ATM can be held by at most one user.
type TouchlessSessionDB struct {
	UserID        int64     `json:"user_id" db:"user_id"`               // Session owner
	ATMID         int64     `json:"atm_id" db:"atm_id"`                 // Held terminal
	DepositAmount *float64  `json:"deposit_amount" db:"deposit_amount"` // Counted but not yet ledgered deposit, nil if none staged
	StartedAt     time.Time `json:"started_at" db:"started_at"`         // Session start timestamp
}
