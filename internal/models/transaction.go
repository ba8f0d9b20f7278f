package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionDB represents one financial event grouping ledger entries.
// Immutable once written.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Primary key
	Description   string    `json:"description" db:"description"`       // e.g. "Transfer", "Cash withdrawal"
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Event timestamp
}

// LedgerEntryDB represents one signed movement attached to exactly one
// account and one transaction. Entries are liabilities from the bank's
// perspective; a customer's displayed balance is the negated sum.
type LedgerEntryDB struct {
	EntryID       int64     `json:"entry_id" db:"entry_id"`             // Primary key
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Owning transaction
	UserID        int64     `json:"user_id" db:"user_id"`               // Owning account
	Change        float64   `json:"change" db:"change"`                 // Signed amount, 2 decimal places
}

// HistoryItem is one row of a user's transaction history: the user's own
// signed change joined against the counterparty entry of the same transaction.
type HistoryItem struct {
	TransactionID          uuid.UUID `json:"transaction_id" db:"transaction_id"`
	Timestamp              time.Time `json:"timestamp" db:"timestamp"`
	Description            string    `json:"description" db:"description"`
	Change                 float64   `json:"change" db:"change"` // Positive when the user gained money
	CounterpartyUserID     *int64    `json:"counterparty_user_id" db:"counterparty_user_id"`
	CounterpartyName       *string   `json:"counterparty_name" db:"counterparty_name"`
	CounterpartyIsInternal *bool     `json:"counterparty_is_internal" db:"counterparty_is_internal"`
}

// TransactionEvent is the payload published to Kafka after a ledger commit.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Committed ledger transaction
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (seconds)
	Amount        float64 `json:"amount"`         // Monetary value of the operation
	UserID        int64   `json:"user_id"`        // Initiating user
	Operation     string  `json:"operation"`      // "withdraw", "deposit" or "transfer"
}
