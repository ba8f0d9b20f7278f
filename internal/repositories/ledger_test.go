package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLedgerWriterRepository_WithdrawAndDeposit(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)
	reader := NewLedgerReaderRepository(db)

	userID := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")

	txnID, err := writer.Deposit(ctx, userID, 500.00)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txnID)

	balance, err := reader.GetBalance(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 500.00, balance)

	_, err = writer.Withdraw(ctx, userID, 100.50)
	assert.NoError(t, err)

	balance, err = reader.GetBalance(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 399.50, balance)

	// The vault absorbed the net cash movement.
	vaultBalance, err := reader.GetBalance(ctx, models.CashVaultUserID)
	assert.NoError(t, err)
	assert.Equal(t, -10000.00-500.00+100.50, vaultBalance)
}

func TestLedgerWriterRepository_Transfer(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)
	reader := NewLedgerReaderRepository(db)

	alice := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	bob := createCustomer(t, db, "Bob", "+6591230002", "bob@example.com")

	_, err := writer.Deposit(ctx, alice, 300.00)
	assert.NoError(t, err)

	txnID, err := writer.Transfer(ctx, alice, bob, 120.25, "Transfer to Bob")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txnID)

	aliceBalance, err := reader.GetBalance(ctx, alice)
	assert.NoError(t, err)
	assert.Equal(t, 179.75, aliceBalance)

	bobBalance, err := reader.GetBalance(ctx, bob)
	assert.NoError(t, err)
	assert.Equal(t, 120.25, bobBalance)
}

func TestLedgerWriterRepository_Transfer_InsufficientFunds(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)

	alice := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	bob := createCustomer(t, db, "Bob", "+6591230002", "bob@example.com")

	_, err := writer.Deposit(ctx, alice, 50.00)
	assert.NoError(t, err)

	_, err = writer.Transfer(ctx, alice, bob, 50.01, "Transfer to Bob")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Rejected transfers leave no trace in the ledger.
	var bobEntries int
	assert.NoError(t, db.Get(&bobEntries, "SELECT COUNT(*) FROM ledger WHERE user_id = $1", bob))
	assert.Equal(t, 0, bobEntries)
}

func TestLedgerWriterRepository_Transfer_ConcurrentSameSender(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)
	reader := NewLedgerReaderRepository(db)

	alice := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	bob := createCustomer(t, db, "Bob", "+6591230002", "bob@example.com")

	_, err := writer.Deposit(ctx, alice, 100.00)
	assert.NoError(t, err)

	// Two simultaneous transfers of 60 against a balance of 100: the sender
	// row lock serializes them and exactly one must be rejected.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = writer.Transfer(ctx, alice, bob, 60.00, "Transfer to Bob")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, e := range errs {
		if e == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, e, ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, succeeded)

	balance, err := reader.GetBalance(ctx, alice)
	assert.NoError(t, err)
	assert.Equal(t, 40.00, balance)
}

func TestLedger_ZeroSumInvariant(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)

	alice := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	bob := createCustomer(t, db, "Bob", "+6591230002", "bob@example.com")

	_, err := writer.Deposit(ctx, alice, 500.00)
	assert.NoError(t, err)
	_, err = writer.Withdraw(ctx, alice, 100.50)
	assert.NoError(t, err)
	_, err = writer.Transfer(ctx, alice, bob, 42.42, "Transfer to Bob")
	assert.NoError(t, err)

	var total float64
	assert.NoError(t, db.Get(&total, "SELECT COALESCE(SUM(change), 0) FROM ledger"))
	assert.Equal(t, 0.00, total)

	// Every transaction individually sums to zero as well.
	var nonZero int
	assert.NoError(t, db.Get(&nonZero, `
		SELECT COUNT(*) FROM (
			SELECT transaction_id FROM ledger GROUP BY transaction_id HAVING SUM(change) <> 0
		) unbalanced`))
	assert.Equal(t, 0, nonZero)
}

func TestLedgerReaderRepository_GetBalance_NoEntries(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")

	balance, err := NewLedgerReaderRepository(db).GetBalance(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 0.00, balance)
}

func TestLedgerReaderRepository_GetTransactionHistory(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewLedgerWriterRepository(db)
	reader := NewLedgerReaderRepository(db)

	alice := createCustomer(t, db, "Alice", "+6591230001", "alice@example.com")
	bob := createCustomer(t, db, "Bob", "+6591230002", "bob@example.com")

	_, err := writer.Deposit(ctx, alice, 500.00)
	assert.NoError(t, err)
	_, err = writer.Transfer(ctx, alice, bob, 120.25, "Transfer to Bob")
	assert.NoError(t, err)
	_, err = writer.Withdraw(ctx, alice, 100.50)
	assert.NoError(t, err)

	history, err := reader.GetTransactionHistory(ctx, alice)
	assert.NoError(t, err)
	assert.Len(t, history, 3)

	// Most recent first.
	assert.Equal(t, "Cash withdrawal", history[0].Description)
	assert.Equal(t, -100.50, history[0].Change)
	assert.Equal(t, "Transfer to Bob", history[1].Description)
	assert.Equal(t, -120.25, history[1].Change)
	assert.Equal(t, "Cash deposit", history[2].Description)
	assert.Equal(t, 500.00, history[2].Change)

	// Counterparty details: the transfer names Bob, the cash movements name
	// the internal vault account.
	assert.NotNil(t, history[1].CounterpartyName)
	assert.Equal(t, "Bob", *history[1].CounterpartyName)
	assert.NotNil(t, history[1].CounterpartyIsInternal)
	assert.False(t, *history[1].CounterpartyIsInternal)

	assert.NotNil(t, history[0].CounterpartyName)
	assert.Equal(t, "Cash Vault", *history[0].CounterpartyName)
	assert.NotNil(t, history[0].CounterpartyIsInternal)
	assert.True(t, *history[0].CounterpartyIsInternal)

	// Bob sees the incoming transfer as a positive change.
	bobHistory, err := reader.GetTransactionHistory(ctx, bob)
	assert.NoError(t, err)
	assert.Len(t, bobHistory, 1)
	assert.Equal(t, 120.25, bobHistory[0].Change)
	assert.NotNil(t, bobHistory[0].CounterpartyName)
	assert.Equal(t, "Alice", *bobHistory[0].CounterpartyName)
}
