package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// ErrInsufficientFunds is returned by Transfer when the sender's balance
// does not cover the requested amount. The transaction is rolled back and
// no entries are persisted.
var ErrInsufficientFunds = errors.New("insufficient funds")

// LedgerWriterRepository commits double-entry ledger transactions.
//
// Entries model liabilities from the bank's perspective: a positive change
// on a customer account means the bank owes that customer less, so the
// customer's displayed balance is the negated sum of their entries.
// Every transaction written here carries exactly two entries summing to zero.
type LedgerWriterRepository struct {
	db *sqlx.DB
}

func NewLedgerWriterRepository(db *sqlx.DB) *LedgerWriterRepository {
	return &LedgerWriterRepository{db: db}
}

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, description, created_at)
	VALUES ($1, $2, NOW())
`

const insertEntryPairQuery = `
	INSERT INTO ledger (transaction_id, user_id, change)
	VALUES ($1, $2, $3), ($1, $4, $5)
`

// Transfer moves money between two accounts inside one database transaction.
// The sender's row is locked before the balance read so that two concurrent
// transfers from the same account serialize instead of both observing a
// stale balance.
func (r *LedgerWriterRepository) Transfer(ctx context.Context, fromUserID, toUserID int64, amount float64, description string) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transfer transaction", "error", err)
		return uuid.Nil, err
	}
	defer tx.Rollback()

	var lockedUserID int64
	if err := tx.GetContext(ctx, &lockedUserID,
		`SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE`, fromUserID); err != nil {
		logger.Log.Errorw("failed to lock sender row", "user_id", fromUserID, "error", err)
		return uuid.Nil, err
	}

	var balance float64
	if err := tx.GetContext(ctx, &balance,
		`SELECT COALESCE(-SUM(change), 0) FROM ledger WHERE user_id = $1`, fromUserID); err != nil {
		logger.Log.Errorw("failed to read sender balance", "user_id", fromUserID, "error", err)
		return uuid.Nil, err
	}

	if balance < amount {
		logger.Log.Infow("transfer rejected",
			"from", fromUserID, "to", toUserID, "amount", amount, "balance", balance,
			"error", ErrInsufficientFunds,
		)
		return uuid.Nil, ErrInsufficientFunds
	}

	transactionID := uuid.New()
	if _, err := tx.ExecContext(ctx, insertTransactionQuery, transactionID, description); err != nil {
		logger.Log.Errorw("failed to insert transaction", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}
	if _, err := tx.ExecContext(ctx, insertEntryPairQuery,
		transactionID, fromUserID, amount, toUserID, -amount); err != nil {
		logger.Log.Errorw("failed to insert ledger entries", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transfer", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertEntryPairQuery), " "),
		"args", []any{fromUserID, toUserID, amount, description},
		"result", transactionID,
		"error", nil,
	)

	return transactionID, nil
}

// Withdraw records a hardware-confirmed cash withdrawal: the user's liability
// entry goes up by amount and the cash vault's goes down. No balance check is
// performed because the ATM has already released the cash.
func (r *LedgerWriterRepository) Withdraw(ctx context.Context, userID int64, amount float64) (uuid.UUID, error) {
	return r.writeVaultPair(ctx, userID, amount, -amount, "Cash withdrawal")
}

// Deposit is the mirror of Withdraw with reversed signs.
func (r *LedgerWriterRepository) Deposit(ctx context.Context, userID int64, amount float64) (uuid.UUID, error) {
	return r.writeVaultPair(ctx, userID, -amount, amount, "Cash deposit")
}

func (r *LedgerWriterRepository) writeVaultPair(ctx context.Context, userID int64, userChange, vaultChange float64, description string) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin ledger transaction", "error", err)
		return uuid.Nil, err
	}
	defer tx.Rollback()

	transactionID := uuid.New()
	if _, err := tx.ExecContext(ctx, insertTransactionQuery, transactionID, description); err != nil {
		logger.Log.Errorw("failed to insert transaction", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}
	if _, err := tx.ExecContext(ctx, insertEntryPairQuery,
		transactionID, userID, userChange, models.CashVaultUserID, vaultChange); err != nil {
		logger.Log.Errorw("failed to insert ledger entries", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit ledger transaction", "transaction_id", transactionID, "error", err)
		return uuid.Nil, err
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertEntryPairQuery), " "),
		"args", []any{userID, userChange, vaultChange, description},
		"result", transactionID,
		"error", nil,
	)

	return transactionID, nil
}

// LedgerReaderRepository handles ledger read operations
type LedgerReaderRepository struct {
	db *sqlx.DB
}

func NewLedgerReaderRepository(db *sqlx.DB) *LedgerReaderRepository {
	return &LedgerReaderRepository{db: db}
}

// GetBalance returns the user's displayed balance: the negated sum of their
// ledger entries, zero for an account with no entries.
func (r *LedgerReaderRepository) GetBalance(ctx context.Context, userID int64) (float64, error) {
	const query = `
		SELECT COALESCE(-SUM(change), 0)
		FROM ledger
		WHERE user_id = $1
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// GetTransactionHistory returns one row per transaction the user participated
// in, joined against the counterparty entry of the same transaction, most
// recent first.
func (r *LedgerReaderRepository) GetTransactionHistory(ctx context.Context, userID int64) ([]models.HistoryItem, error) {
	const query = `
		SELECT t.transaction_id,
		       t.created_at AS timestamp,
		       t.description,
		       -mine.change AS change,
		       other.user_id AS counterparty_user_id,
		       u.full_name AS counterparty_name,
		       u.is_internal AS counterparty_is_internal
		FROM ledger mine
		JOIN transactions t ON t.transaction_id = mine.transaction_id
		LEFT JOIN ledger other
		  ON other.transaction_id = mine.transaction_id AND other.entry_id <> mine.entry_id
		LEFT JOIN users u ON u.user_id = other.user_id
		WHERE mine.user_id = $1
		ORDER BY t.created_at DESC
	`

	var history []models.HistoryItem
	err := r.db.SelectContext(ctx, &history, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(history),
		"error", err,
	)

	return history, err
}
