package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a disposable Postgres, applies the schema and
// seeds the internal accounts. Shared by every repository test in the package.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, Migrate(ctx, db))
	assert.NoError(t, Seed(ctx, db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// createCustomer inserts a customer account and returns its ID.
func createCustomer(t *testing.T, db *sqlx.DB, name, phone, email string) int64 {
	t.Helper()
	userID, err := NewUserWriteRepository(db).Save(context.Background(), name, phone, email, "hashed")
	assert.NoError(t, err)
	return userID
}

func TestSeed_InternalAccounts(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	var names []string
	err := db.Select(&names, "SELECT full_name FROM users WHERE is_internal = TRUE ORDER BY user_id")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cash Vault", "Shareholder Equity"}, names)

	// Vault holds the opening capitalization against equity.
	reader := NewLedgerReaderRepository(db)
	vaultBalance, err := reader.GetBalance(context.Background(), models.CashVaultUserID)
	assert.NoError(t, err)
	assert.Equal(t, -10000.00, vaultBalance)

	equityBalance, err := reader.GetBalance(context.Background(), models.ShareholderEquityUserID)
	assert.NoError(t, err)
	assert.Equal(t, 10000.00, equityBalance)
}

func TestSeed_Idempotent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	assert.NoError(t, Seed(ctx, db))
	assert.NoError(t, Seed(ctx, db))

	var entries int
	err := db.Get(&entries, "SELECT COUNT(*) FROM ledger WHERE user_id = $1", models.CashVaultUserID)
	assert.NoError(t, err)
	assert.Equal(t, 1, entries)
}

func TestSeed_SequenceSkipsInternalIDs(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	assert.Greater(t, userID, models.ShareholderEquityUserID)
}

func TestSeedATM(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	assert.NoError(t, SeedATM(ctx, db, 1, "Main branch lobby"))
	assert.NoError(t, SeedATM(ctx, db, 1, "Somewhere else"))

	var location string
	err := db.Get(&location, "SELECT location FROM atms WHERE atm_id = 1")
	assert.NoError(t, err)
	assert.Equal(t, "Main branch lobby", location)
}
