package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/facades"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/sbilibin2017/gw-touchless-atm/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	// ErrATMNotFound is returned when no ATM with the requested ID is registered.
	ErrATMNotFound = errors.New("no atm with specified id")
	// ErrATMUnavailable is returned when the ATM is held by another user or
	// the user already holds a different ATM.
	ErrATMUnavailable = errors.New("atm already in use")
	// ErrNoActiveSession is returned when an operation requires a touchless
	// session that does not exist.
	ErrNoActiveSession = errors.New("no touchless session found")
	// ErrInvalidAmount is returned for amounts that are not positive
	// multiples of 0.01.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrATMTimeout is returned when the ATM does not acknowledge a command
	// in time. The session stays open and the ledger is untouched.
	ErrATMTimeout = errors.New("atm did not acknowledge in time")
	// ErrNoStagedDeposit is returned when confirming a deposit before the
	// ATM has counted one.
	ErrNoStagedDeposit = errors.New("no deposit amount staged")
)

// Wire event names. These must match the ATM firmware exactly.
const (
	eventStartSession   = "start-session"
	eventWithdraw       = "withdraw"
	eventWithdrawReady  = "withdraw-ready"
	eventDepositStart   = "deposit-start"
	eventDepositCount   = "deposit-count"
	eventDepositReview  = "deposit-review"
	eventDepositConfirm = "deposit-confirm"
	eventDepositCancel  = "deposit-cancel"
	eventExit           = "exit"
)

// SessionWriter arbitrates exclusive session ownership. Acquire returns
// repositories.ErrSessionDenied when the pairing is not available; the
// boolean results report whether a matching session row existed.
type SessionWriter interface {
	Acquire(ctx context.Context, userID, atmID int64) (*models.TouchlessSessionDB, error)
	SetDeposit(ctx context.Context, userID, atmID int64, amount float64) (bool, error)
	ClearDeposit(ctx context.Context, userID, atmID int64) (bool, error)
	Release(ctx context.Context, userID, atmID int64) (bool, error)
}

// SessionReader reads existing sessions.
type SessionReader interface {
	GetByUserAndATM(ctx context.Context, userID, atmID int64) (*models.TouchlessSessionDB, error)
}

// ATMReader checks ATM reference data.
type ATMReader interface {
	Exists(ctx context.Context, atmID int64) (bool, error)
}

// VaultLedgerWriter commits hardware-confirmed cash movements against the vault.
type VaultLedgerWriter interface {
	Withdraw(ctx context.Context, userID int64, amount float64) (uuid.UUID, error)
	Deposit(ctx context.Context, userID int64, amount float64) (uuid.UUID, error)
}

// ATMMessenger is the command/reply bridge to the ATM's pub/sub channel.
type ATMMessenger interface {
	Send(ctx context.Context, atmID int64, event string, data any) error
	WaitFor(ctx context.Context, atmID int64, event string) (json.RawMessage, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ATMSessionService drives the touchless session state machine: enter,
// withdraw, the deposit staging flow, and exit. Every money-moving operation
// first validates the session, then round-trips a command over the bridge,
// and only then commits the ledger write.
type ATMSessionService struct {
	sessions      SessionWriter
	sessionReader SessionReader
	atms          ATMReader
	ledger        VaultLedgerWriter
	messenger     ATMMessenger
	kafkaWriter   KafkaWriter
}

// NewATMSessionService creates a new ATMSessionService.
func NewATMSessionService(
	sessions SessionWriter,
	sessionReader SessionReader,
	atms ATMReader,
	ledger VaultLedgerWriter,
	messenger ATMMessenger,
	kafkaWriter KafkaWriter,
) *ATMSessionService {
	return &ATMSessionService{
		sessions:      sessions,
		sessionReader: sessionReader,
		atms:          atms,
		ledger:        ledger,
		messenger:     messenger,
		kafkaWriter:   kafkaWriter,
	}
}

// validAmount reports whether amount is positive with at most 2 decimal places.
func validAmount(amount float64) bool {
	if amount <= 0 {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-9
}

// Enter claims an exclusive session with the ATM. Re-entering an ATM the
// user already holds is idempotent and returns the current staged deposit.
func (s *ATMSessionService) Enter(ctx context.Context, userID, atmID int64) (*float64, error) {
	exists, err := s.atms.Exists(ctx, atmID)
	if err != nil {
		logger.Log.Errorw("failed to check atm exists", "atm_id", atmID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrATMNotFound
	}

	session, err := s.sessions.Acquire(ctx, userID, atmID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionDenied) {
			return nil, ErrATMUnavailable
		}
		logger.Log.Errorw("failed to acquire session", "user_id", userID, "atm_id", atmID, "error", err)
		return nil, err
	}

	// Best-effort notify; the session is valid even if the ATM misses it.
	if err := s.messenger.Send(ctx, atmID, eventStartSession, nil); err != nil {
		logger.Log.Warnw("failed to send start-session command", "atm_id", atmID, "error", err)
	}

	return session.DepositAmount, nil
}

// Exit releases the session and tells the ATM to end its screen session.
func (s *ATMSessionService) Exit(ctx context.Context, userID, atmID int64) error {
	released, err := s.sessions.Release(ctx, userID, atmID)
	if err != nil {
		logger.Log.Errorw("failed to release session", "user_id", userID, "atm_id", atmID, "error", err)
		return err
	}
	if !released {
		return ErrNoActiveSession
	}

	if err := s.messenger.Send(ctx, atmID, eventExit, nil); err != nil {
		logger.Log.Warnw("failed to send exit command", "atm_id", atmID, "error", err)
	}
	return nil
}

// Withdraw commands the ATM to dispense cash and, once the hardware confirms
// the release, posts the balanced ledger movement. A timeout leaves the
// session intact and the ledger untouched.
func (s *ATMSessionService) Withdraw(ctx context.Context, userID, atmID int64, amount float64) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}

	if err := s.requireSession(ctx, userID, atmID); err != nil {
		return err
	}

	if err := s.messenger.Send(ctx, atmID, eventWithdraw, map[string]float64{"amount": amount}); err != nil {
		logger.Log.Errorw("failed to send withdraw command", "atm_id", atmID, "error", err)
		return err
	}

	if _, err := s.messenger.WaitFor(ctx, atmID, eventWithdrawReady); err != nil {
		if errors.Is(err, facades.ErrWaitTimeout) {
			return ErrATMTimeout
		}
		logger.Log.Errorw("failed to await withdraw-ready", "atm_id", atmID, "error", err)
		return err
	}

	// The ATM has physically released the cash; the ledger write must not
	// fail on business grounds from here on.
	transactionID, err := s.ledger.Withdraw(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to ledger withdrawal", "user_id", userID, "amount", amount, "error", err)
		return err
	}

	s.publishTransaction(ctx, transactionID, userID, amount, "withdraw")
	return nil
}

// StartDeposit commands the ATM to open its deposit slot.
func (s *ATMSessionService) StartDeposit(ctx context.Context, userID, atmID int64) error {
	if err := s.requireSession(ctx, userID, atmID); err != nil {
		return err
	}

	if err := s.messenger.Send(ctx, atmID, eventDepositStart, nil); err != nil {
		logger.Log.Errorw("failed to send deposit-start command", "atm_id", atmID, "error", err)
		return err
	}
	return nil
}

// CountDeposit commands the ATM to count the inserted cash, waits for the
// counted amount, and stages it on the session pending confirmation.
func (s *ATMSessionService) CountDeposit(ctx context.Context, userID, atmID int64) (float64, error) {
	if err := s.requireSession(ctx, userID, atmID); err != nil {
		return 0, err
	}

	if err := s.messenger.Send(ctx, atmID, eventDepositCount, nil); err != nil {
		logger.Log.Errorw("failed to send deposit-count command", "atm_id", atmID, "error", err)
		return 0, err
	}

	payload, err := s.messenger.WaitFor(ctx, atmID, eventDepositReview)
	if err != nil {
		if errors.Is(err, facades.ErrWaitTimeout) {
			return 0, ErrATMTimeout
		}
		logger.Log.Errorw("failed to await deposit-review", "atm_id", atmID, "error", err)
		return 0, err
	}

	var review struct {
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(payload, &review); err != nil {
		logger.Log.Errorw("malformed deposit-review payload", "atm_id", atmID, "payload", string(payload), "error", err)
		return 0, err
	}
	if !validAmount(review.Amount) {
		logger.Log.Errorw("atm reported invalid deposit amount", "atm_id", atmID, "amount", review.Amount)
		return 0, ErrInvalidAmount
	}

	staged, err := s.sessions.SetDeposit(ctx, userID, atmID, review.Amount)
	if err != nil {
		logger.Log.Errorw("failed to stage deposit", "user_id", userID, "atm_id", atmID, "error", err)
		return 0, err
	}
	if !staged {
		// The session was released while the ATM was counting.
		return 0, ErrNoActiveSession
	}

	return review.Amount, nil
}

// ConfirmDeposit commands the ATM to store the counted cash and credits the
// staged amount to the user. Confirming before an amount has been staged is
// a protocol error and never touches the ledger.
func (s *ATMSessionService) ConfirmDeposit(ctx context.Context, userID, atmID int64) (float64, error) {
	session, err := s.sessionReader.GetByUserAndATM(ctx, userID, atmID)
	if err != nil {
		logger.Log.Errorw("failed to read session", "user_id", userID, "atm_id", atmID, "error", err)
		return 0, err
	}
	if session == nil {
		return 0, ErrNoActiveSession
	}
	if session.DepositAmount == nil {
		return 0, ErrNoStagedDeposit
	}
	amount := *session.DepositAmount

	if err := s.messenger.Send(ctx, atmID, eventDepositConfirm, nil); err != nil {
		logger.Log.Errorw("failed to send deposit-confirm command", "atm_id", atmID, "error", err)
		return 0, err
	}

	transactionID, err := s.ledger.Deposit(ctx, userID, amount)
	if err != nil {
		logger.Log.Errorw("failed to ledger deposit", "user_id", userID, "amount", amount, "error", err)
		return 0, err
	}

	if _, err := s.sessions.ClearDeposit(ctx, userID, atmID); err != nil {
		logger.Log.Errorw("failed to clear staged deposit", "user_id", userID, "atm_id", atmID, "error", err)
	}

	s.publishTransaction(ctx, transactionID, userID, amount, "deposit")
	return amount, nil
}

// CancelDeposit commands the ATM to return the cash and clears the staged
// amount without any ledger effect.
func (s *ATMSessionService) CancelDeposit(ctx context.Context, userID, atmID int64) error {
	if err := s.requireSession(ctx, userID, atmID); err != nil {
		return err
	}

	if err := s.messenger.Send(ctx, atmID, eventDepositCancel, nil); err != nil {
		logger.Log.Errorw("failed to send deposit-cancel command", "atm_id", atmID, "error", err)
		return err
	}

	if _, err := s.sessions.ClearDeposit(ctx, userID, atmID); err != nil {
		logger.Log.Errorw("failed to clear staged deposit", "user_id", userID, "atm_id", atmID, "error", err)
		return err
	}
	return nil
}

func (s *ATMSessionService) requireSession(ctx context.Context, userID, atmID int64) error {
	session, err := s.sessionReader.GetByUserAndATM(ctx, userID, atmID)
	if err != nil {
		logger.Log.Errorw("failed to read session", "user_id", userID, "atm_id", atmID, "error", err)
		return err
	}
	if session == nil {
		return ErrNoActiveSession
	}
	return nil
}

// publishTransaction publishes a committed ledger transaction to Kafka.
func (s *ATMSessionService) publishTransaction(ctx context.Context, transactionID uuid.UUID, userID int64, amount float64, operation string) {
	publishTransactionEvent(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: transactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		UserID:        userID,
		Operation:     operation,
	})
}

// publishTransactionEvent writes one transaction event to Kafka. Best-effort:
// the ledger commit is already durable, so publish failures are only logged.
func publishTransactionEvent(ctx context.Context, writer KafkaWriter, event models.TransactionEvent) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", event.TransactionID, "amount", event.Amount)
	}
}
