package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// ATMReadRepository handles ATM reference-data reads
type ATMReadRepository struct {
	db *sqlx.DB
}

func NewATMReadRepository(db *sqlx.DB) *ATMReadRepository {
	return &ATMReadRepository{db: db}
}

// Exists reports whether an ATM with the given ID is registered.
func (r *ATMReadRepository) Exists(ctx context.Context, atmID int64) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM atms WHERE atm_id = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, atmID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{atmID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns all registered ATMs ordered by ID.
func (r *ATMReadRepository) List(ctx context.Context) ([]models.ATMDB, error) {
	const query = `
		SELECT atm_id, location, created_at
		FROM atms
		ORDER BY atm_id
	`

	var atms []models.ATMDB
	err := r.db.SelectContext(ctx, &atms, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(atms),
		"error", err,
	)

	return atms, err
}
