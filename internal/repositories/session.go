package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// ErrSessionDenied is returned by Acquire when the ATM is held by another
// user, the user holds another ATM, or the user/ATM does not exist. The
// caller only needs to know the pairing is not available.
var ErrSessionDenied = errors.New("atm or user already engaged")

// pgForeignKeyViolation is the Postgres error code for a foreign key
// constraint violation (unknown user or ATM on insert).
const pgForeignKeyViolation = "23503"

// SessionWriterRepository arbitrates touchless session ownership. The unique
// constraints on user_id and atm_id are the mutual-exclusion primitive: only
// one insert wins a key, no application-level locking is needed.
type SessionWriterRepository struct {
	db *sqlx.DB
}

func NewSessionWriterRepository(db *sqlx.DB) *SessionWriterRepository {
	return &SessionWriterRepository{db: db}
}

// Acquire claims the (userID, atmID) pairing. A conflict on exactly this pair
// is an idempotent re-acquire and returns the existing session with its
// staged deposit; any other conflict or referential failure is ErrSessionDenied.
func (r *SessionWriterRepository) Acquire(ctx context.Context, userID, atmID int64) (*models.TouchlessSessionDB, error) {
	const query = `
		INSERT INTO touchless_sessions (user_id, atm_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		RETURNING user_id, atm_id, deposit_amount, started_at
	`

	var session models.TouchlessSessionDB
	err := r.db.GetContext(ctx, &session, query, userID, atmID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, atmID},
		"error", err,
	)

	if err == nil {
		return &session, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return nil, ErrSessionDenied
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// The insert conflicted without an error, so either this exact pairing
	// already exists (re-acquire) or one side is held elsewhere. A re-read
	// of the pair disambiguates the two without a race: the row can only
	// exist if this user already holds this ATM.
	existing, err := getSessionByUserAndATM(ctx, r.db, userID, atmID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSessionDenied
	}
	return existing, nil
}

// SetDeposit stages a counted deposit amount on an existing session.
// Returns false if no such session exists (e.g. raced with an exit).
func (r *SessionWriterRepository) SetDeposit(ctx context.Context, userID, atmID int64, amount float64) (bool, error) {
	const query = `
		UPDATE touchless_sessions
		SET deposit_amount = $3
		WHERE user_id = $1 AND atm_id = $2
		RETURNING user_id
	`
	return r.execReturning(ctx, query, userID, atmID, amount)
}

// ClearDeposit removes any staged deposit amount from an existing session.
// Returns false if no such session exists.
func (r *SessionWriterRepository) ClearDeposit(ctx context.Context, userID, atmID int64) (bool, error) {
	const query = `
		UPDATE touchless_sessions
		SET deposit_amount = NULL
		WHERE user_id = $1 AND atm_id = $2
		RETURNING user_id
	`
	return r.execReturning(ctx, query, userID, atmID)
}

// Release deletes the session matched by the pair.
// Returns false if no such session exists.
func (r *SessionWriterRepository) Release(ctx context.Context, userID, atmID int64) (bool, error) {
	const query = `
		DELETE FROM touchless_sessions
		WHERE user_id = $1 AND atm_id = $2
		RETURNING user_id
	`
	return r.execReturning(ctx, query, userID, atmID)
}

func (r *SessionWriterRepository) execReturning(ctx context.Context, query string, args ...any) (bool, error) {
	var matched int64
	err := r.db.GetContext(ctx, &matched, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SessionReaderRepository handles session read operations
type SessionReaderRepository struct {
	db *sqlx.DB
}

func NewSessionReaderRepository(db *sqlx.DB) *SessionReaderRepository {
	return &SessionReaderRepository{db: db}
}

// GetByUserAndATM returns the session for the exact (userID, atmID) pair,
// or nil if none exists.
func (r *SessionReaderRepository) GetByUserAndATM(ctx context.Context, userID, atmID int64) (*models.TouchlessSessionDB, error) {
	return getSessionByUserAndATM(ctx, r.db, userID, atmID)
}

func getSessionByUserAndATM(ctx context.Context, db *sqlx.DB, userID, atmID int64) (*models.TouchlessSessionDB, error) {
	const query = `
		SELECT user_id, atm_id, deposit_amount, started_at
		FROM touchless_sessions
		WHERE user_id = $1 AND atm_id = $2
	`

	var session models.TouchlessSessionDB
	err := db.GetContext(ctx, &session, query, userID, atmID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, atmID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}
