package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/facades"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/sbilibin2017/gw-touchless-atm/internal/repositories"
	"github.com/sbilibin2017/gw-touchless-atm/internal/services"
	"github.com/stretchr/testify/assert"
)

type atmServiceMocks struct {
	sessions      *services.MockSessionWriter
	sessionReader *services.MockSessionReader
	atms          *services.MockATMReader
	ledger        *services.MockVaultLedgerWriter
	messenger     *services.MockATMMessenger
	kafka         *services.MockKafkaWriter
}

func newATMService(ctrl *gomock.Controller) (*services.ATMSessionService, atmServiceMocks) {
	m := atmServiceMocks{
		sessions:      services.NewMockSessionWriter(ctrl),
		sessionReader: services.NewMockSessionReader(ctrl),
		atms:          services.NewMockATMReader(ctrl),
		ledger:        services.NewMockVaultLedgerWriter(ctrl),
		messenger:     services.NewMockATMMessenger(ctrl),
		kafka:         services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewATMSessionService(m.sessions, m.sessionReader, m.atms, m.ledger, m.messenger, m.kafka)
	return svc, m
}

func TestATMSessionService_Enter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()

	t.Run("ATMNotFound", func(t *testing.T) {
		m.atms.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)

		_, err := svc.Enter(ctx, 1, 99)
		assert.ErrorIs(t, err, services.ErrATMNotFound)
	})

	t.Run("ATMUnavailable", func(t *testing.T) {
		m.atms.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		m.sessions.EXPECT().Acquire(gomock.Any(), int64(1), int64(1)).
			Return(nil, repositories.ErrSessionDenied)

		_, err := svc.Enter(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrATMUnavailable)
	})

	t.Run("Success", func(t *testing.T) {
		m.atms.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		m.sessions.EXPECT().Acquire(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "start-session", nil).Return(nil)

		staged, err := svc.Enter(ctx, 1, 1)
		assert.NoError(t, err)
		assert.Nil(t, staged)
	})

	t.Run("ReacquireReturnsStagedDeposit", func(t *testing.T) {
		amount := 150.75
		m.atms.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		m.sessions.EXPECT().Acquire(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1, DepositAmount: &amount}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "start-session", nil).Return(nil)

		staged, err := svc.Enter(ctx, 1, 1)
		assert.NoError(t, err)
		assert.NotNil(t, staged)
		assert.Equal(t, 150.75, *staged)
	})

	t.Run("SendFailureDoesNotFailEnter", func(t *testing.T) {
		m.atms.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		m.sessions.EXPECT().Acquire(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "start-session", nil).
			Return(errors.New("redis down"))

		_, err := svc.Enter(ctx, 1, 1)
		assert.NoError(t, err)
	})
}

func TestATMSessionService_Exit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m.sessions.EXPECT().Release(gomock.Any(), int64(1), int64(1)).Return(true, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "exit", nil).Return(nil)

		assert.NoError(t, svc.Exit(ctx, 1, 1))
	})

	t.Run("NoSession", func(t *testing.T) {
		m.sessions.EXPECT().Release(gomock.Any(), int64(1), int64(1)).Return(false, nil)

		assert.ErrorIs(t, svc.Exit(ctx, 1, 1), services.ErrNoActiveSession)
	})
}

func TestATMSessionService_Withdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()
	session := &models.TouchlessSessionDB{UserID: 1, ATMID: 1}

	t.Run("InvalidAmount", func(t *testing.T) {
		assert.ErrorIs(t, svc.Withdraw(ctx, 1, 1, -5), services.ErrInvalidAmount)
		assert.ErrorIs(t, svc.Withdraw(ctx, 1, 1, 0), services.ErrInvalidAmount)
		assert.ErrorIs(t, svc.Withdraw(ctx, 1, 1, 10.005), services.ErrInvalidAmount)
	})

	t.Run("NoSession", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(nil, nil)

		assert.ErrorIs(t, svc.Withdraw(ctx, 1, 1, 100.50), services.ErrNoActiveSession)
	})

	t.Run("TimeoutLeavesLedgerUntouched", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "withdraw", map[string]float64{"amount": 100.50}).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "withdraw-ready").
			Return(nil, facades.ErrWaitTimeout)

		// No ledger expectation: a timeout must not move money.
		assert.ErrorIs(t, svc.Withdraw(ctx, 1, 1, 100.50), services.ErrATMTimeout)
	})

	t.Run("Success", func(t *testing.T) {
		txnID := uuid.New()
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "withdraw", map[string]float64{"amount": 100.50}).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "withdraw-ready").
			Return(json.RawMessage(nil), nil)
		m.ledger.EXPECT().Withdraw(gomock.Any(), int64(1), 100.50).Return(txnID, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Withdraw(ctx, 1, 1, 100.50))
	})
}

func TestATMSessionService_StartDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()

	t.Run("NoSession", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(nil, nil)

		assert.ErrorIs(t, svc.StartDeposit(ctx, 1, 1), services.ErrNoActiveSession)
	})

	t.Run("Success", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-start", nil).Return(nil)

		assert.NoError(t, svc.StartDeposit(ctx, 1, 1))
	})
}

func TestATMSessionService_CountDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()
	session := &models.TouchlessSessionDB{UserID: 1, ATMID: 1}

	t.Run("Success", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-count", nil).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "deposit-review").
			Return(json.RawMessage(`{"amount":150.75}`), nil)
		m.sessions.EXPECT().SetDeposit(gomock.Any(), int64(1), int64(1), 150.75).Return(true, nil)

		amount, err := svc.CountDeposit(ctx, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 150.75, amount)
	})

	t.Run("Timeout", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-count", nil).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "deposit-review").
			Return(nil, facades.ErrWaitTimeout)

		_, err := svc.CountDeposit(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrATMTimeout)
	})

	t.Run("ATMReportsInvalidAmount", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-count", nil).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "deposit-review").
			Return(json.RawMessage(`{"amount":-3}`), nil)

		_, err := svc.CountDeposit(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})

	t.Run("SessionReleasedWhileCounting", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(session, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-count", nil).Return(nil)
		m.messenger.EXPECT().WaitFor(gomock.Any(), int64(1), "deposit-review").
			Return(json.RawMessage(`{"amount":150.75}`), nil)
		m.sessions.EXPECT().SetDeposit(gomock.Any(), int64(1), int64(1), 150.75).Return(false, nil)

		_, err := svc.CountDeposit(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrNoActiveSession)
	})
}

func TestATMSessionService_ConfirmDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()

	t.Run("NoSession", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(nil, nil)

		_, err := svc.ConfirmDeposit(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrNoActiveSession)
	})

	t.Run("NoStagedDeposit", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1}, nil)

		_, err := svc.ConfirmDeposit(ctx, 1, 1)
		assert.ErrorIs(t, err, services.ErrNoStagedDeposit)
	})

	t.Run("Success", func(t *testing.T) {
		staged := 150.75
		txnID := uuid.New()
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1, DepositAmount: &staged}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-confirm", nil).Return(nil)
		m.ledger.EXPECT().Deposit(gomock.Any(), int64(1), 150.75).Return(txnID, nil)
		m.sessions.EXPECT().ClearDeposit(gomock.Any(), int64(1), int64(1)).Return(true, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		amount, err := svc.ConfirmDeposit(ctx, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 150.75, amount)
	})
}

func TestATMSessionService_CancelDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newATMService(ctrl)
	ctx := context.Background()

	t.Run("NoSession", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).Return(nil, nil)

		assert.ErrorIs(t, svc.CancelDeposit(ctx, 1, 1), services.ErrNoActiveSession)
	})

	t.Run("Success", func(t *testing.T) {
		m.sessionReader.EXPECT().GetByUserAndATM(gomock.Any(), int64(1), int64(1)).
			Return(&models.TouchlessSessionDB{UserID: 1, ATMID: 1}, nil)
		m.messenger.EXPECT().Send(gomock.Any(), int64(1), "deposit-cancel", nil).Return(nil)
		m.sessions.EXPECT().ClearDeposit(gomock.Any(), int64(1), int64(1)).Return(true, nil)

		assert.NoError(t, svc.CancelDeposit(ctx, 1, 1))
	})
}
