package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, full_name, phone_number, email, hashed_password, is_internal, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

// GetByPhoneNumber returns the user with the given phone number, or nil if
// none exists. Used to resolve transfer recipients.
func (r *UserReadRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, full_name, phone_number, email, hashed_password, is_internal, created_at, updated_at
		FROM users
		WHERE phone_number = $1
	`
	return r.getOne(ctx, query, phoneNumber)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new customer account and returns its generated user ID.
func (r *UserWriteRepository) Save(ctx context.Context, fullName, phoneNumber, email, hashedPassword string) (int64, error) {
	const query = `
		INSERT INTO users (full_name, phone_number, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{fullName, phoneNumber, email, hashedPassword}

	var userID int64
	err := r.db.GetContext(ctx, &userID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fullName, phoneNumber, email},
		"result", userID,
		"error", err,
	)

	return userID, err
}
