package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// Migrations creating the schema. The independent UNIQUE constraints on
// touchless_sessions.user_id and touchless_sessions.atm_id are what make the
// session arbitration race-free: only one insert wins a key.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		phone_number TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		is_internal BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS atms (
		atm_id BIGSERIAL PRIMARY KEY,
		location TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id UUID PRIMARY KEY,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS ledger (
		entry_id BIGSERIAL PRIMARY KEY,
		transaction_id UUID NOT NULL REFERENCES transactions(transaction_id),
		user_id BIGINT NOT NULL REFERENCES users(user_id),
		change NUMERIC(20,2) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS touchless_sessions (
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
		atm_id BIGINT NOT NULL UNIQUE REFERENCES atms(atm_id) ON DELETE CASCADE,
		deposit_amount NUMERIC(20,2),
		started_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, atm_id)
	);`,
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("migration failed", "error", err)
			return err
		}
	}
	return nil
}

// initialCapitalization is the opening balanced pair crediting the cash
// vault against shareholder equity.
const initialCapitalization = 10000.00

// Seed creates the internal accounts (cash vault, shareholder equity) and
// the opening capitalization transaction. Idempotent: reruns are no-ops.
func Seed(ctx context.Context, db *sqlx.DB) error {
	const insertInternalUser = `
		INSERT INTO users (user_id, full_name, phone_number, email, hashed_password, is_internal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'internal', TRUE, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	internal := []struct {
		userID int64
		name   string
		phone  string
		email  string
	}{
		{models.CashVaultUserID, "Cash Vault", "+00000000001", "cash-vault@internal.bank"},
		{models.ShareholderEquityUserID, "Shareholder Equity", "+00000000002", "shareholder-equity@internal.bank"},
	}
	for _, acc := range internal {
		if _, err := db.ExecContext(ctx, insertInternalUser, acc.userID, acc.name, acc.phone, acc.email); err != nil {
			logger.Log.Errorw("failed to seed internal account", "user_id", acc.userID, "error", err)
			return err
		}
	}

	// Keep the sequence ahead of the reserved internal IDs.
	if _, err := db.ExecContext(ctx,
		`SELECT setval('users_user_id_seq', GREATEST((SELECT MAX(user_id) FROM users), 2))`); err != nil {
		return err
	}

	var vaultEntries int64
	if err := db.GetContext(ctx, &vaultEntries,
		`SELECT COUNT(*) FROM ledger WHERE user_id = $1`, models.CashVaultUserID); err != nil {
		return err
	}
	if vaultEntries > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	transactionID := uuid.New()
	if _, err := tx.ExecContext(ctx, insertTransactionQuery, transactionID, "Initial bank capitalization"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, insertEntryPairQuery,
		transactionID,
		models.CashVaultUserID, initialCapitalization,
		models.ShareholderEquityUserID, -initialCapitalization,
	); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("seeded initial capitalization",
		"transaction_id", transactionID,
		"amount", initialCapitalization,
	)
	return nil
}

// SeedATM registers an ATM with the given ID if it is not present.
func SeedATM(ctx context.Context, db *sqlx.DB, atmID int64, location string) error {
	const query = `
		INSERT INTO atms (atm_id, location)
		VALUES ($1, $2)
		ON CONFLICT (atm_id) DO NOTHING
	`
	if _, err := db.ExecContext(ctx, query, atmID, location); err != nil {
		logger.Log.Errorw("failed to seed atm", "atm_id", atmID, "error", err)
		return err
	}
	_, err := db.ExecContext(ctx,
		`SELECT setval('atms_atm_id_seq', GREATEST((SELECT MAX(atm_id) FROM atms), 1))`)
	return err
}
