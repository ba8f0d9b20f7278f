package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/sbilibin2017/gw-touchless-atm/internal/repositories"
)

// Error variables
var (
	// ErrInsufficientFunds is returned when the sender's balance does not
	// cover the transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrRecipientNotFound is returned when no user exists with the
	// recipient's phone number.
	ErrRecipientNotFound = errors.New("no existing user with specified phone number")
)

// LedgerTransferWriter commits peer-to-peer transfers.
type LedgerTransferWriter interface {
	Transfer(ctx context.Context, fromUserID, toUserID int64, amount float64, description string) (uuid.UUID, error)
}

// LedgerReader reads balances and histories.
type LedgerReader interface {
	GetBalance(ctx context.Context, userID int64) (float64, error)
	GetTransactionHistory(ctx context.Context, userID int64) ([]models.HistoryItem, error)
}

// RecipientReader resolves transfer recipients by phone number.
type RecipientReader interface {
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.UserDB, error)
}

// TransferService handles peer transfers, balances and transaction history.
type TransferService struct {
	writer      LedgerTransferWriter
	reader      LedgerReader
	users       RecipientReader
	kafkaWriter KafkaWriter
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	writer LedgerTransferWriter,
	reader LedgerReader,
	users RecipientReader,
	kafkaWriter KafkaWriter,
) *TransferService {
	return &TransferService{
		writer:      writer,
		reader:      reader,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// Transfer moves money to the user identified by recipientPhone and publishes
// the committed transaction. Insufficient funds leave the ledger untouched.
func (s *TransferService) Transfer(ctx context.Context, fromUserID int64, recipientPhone string, amount float64) (uuid.UUID, error) {
	if !validAmount(amount) {
		return uuid.Nil, ErrInvalidAmount
	}

	recipient, err := s.users.GetByPhoneNumber(ctx, recipientPhone)
	if err != nil {
		logger.Log.Errorw("failed to look up recipient", "phone", recipientPhone, "error", err)
		return uuid.Nil, err
	}
	if recipient == nil {
		return uuid.Nil, ErrRecipientNotFound
	}

	transactionID, err := s.writer.Transfer(ctx, fromUserID, recipient.UserID, amount, "Transfer")
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) {
			return uuid.Nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to transfer", "from", fromUserID, "to", recipient.UserID, "amount", amount, "error", err)
		return uuid.Nil, err
	}

	publishTransactionEvent(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: transactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		UserID:        fromUserID,
		Operation:     "transfer",
	})

	return transactionID, nil
}

// GetBalance returns the user's displayed balance.
func (s *TransferService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	balance, err := s.reader.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "user_id", userID, "error", err)
		return 0, err
	}
	return balance, nil
}

// GetTransactionHistory returns the user's history, most recent first.
func (s *TransferService) GetTransactionHistory(ctx context.Context, userID int64) ([]models.HistoryItem, error) {
	history, err := s.reader.GetTransactionHistory(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction history", "user_id", userID, "error", err)
		return nil, err
	}
	return history, nil
}
