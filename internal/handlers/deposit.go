package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/services"
)

// DepositStarter defines the interface that the service must implement.
type DepositStarter interface {
	StartDeposit(ctx context.Context, userID, atmID int64) error
}

// DepositCounter defines the interface that the service must implement.
type DepositCounter interface {
	CountDeposit(ctx context.Context, userID, atmID int64) (float64, error)
}

// DepositConfirmer defines the interface that the service must implement.
type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, userID, atmID int64) (float64, error)
}

// DepositCanceler defines the interface that the service must implement.
type DepositCanceler interface {
	CancelDeposit(ctx context.Context, userID, atmID int64) error
}

// DepositAmountResponse carries a deposit amount back to the client
// swagger:model DepositAmountResponse
type DepositAmountResponse struct {
	// Counted or credited deposit amount
	// example: 150.75
	Amount float64 `json:"amount"`
}

// DepositErrorResponse represents an error response for deposit operations
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// example: No touchless session found
	Error string `json:"error"`
}

// depositHandler wraps the shared session/ATM-ID plumbing of the deposit
// endpoints around one service call.
func depositHandler(tokenGetter SessionTokener, call func(ctx context.Context, w http.ResponseWriter, userID, atmID int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Errorw("unauthorized deposit request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Unauthorized"})
			return
		}

		atmID, err := parseATMID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid ATM ID"})
			return
		}

		call(r.Context(), w, userID, atmID)
	}
}

// writeDepositError maps deposit service errors onto HTTP statuses.
func writeDepositError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoActiveSession):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(DepositErrorResponse{Error: "No touchless session found"})
	case errors.Is(err, services.ErrNoStagedDeposit):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(DepositErrorResponse{Error: "No deposit amount staged"})
	case errors.Is(err, services.ErrATMTimeout):
		w.WriteHeader(http.StatusGatewayTimeout)
		json.NewEncoder(w).Encode(DepositErrorResponse{Error: "ATM did not acknowledge in time"})
	case errors.Is(err, services.ErrInvalidAmount):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(DepositErrorResponse{Error: "ATM reported an invalid amount"})
	default:
		logger.Log.Errorw("deposit operation failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Internal server error"})
	}
}

// NewStartDepositHandler returns an HTTP handler that opens the ATM's deposit slot.
// @Summary Start cash deposit
// @Description Commands the ATM to open its deposit slot.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 "Deposit started"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DepositErrorResponse "No touchless session found"
// @Router /touchless/{atmID}/deposit [post]
// @Security BearerAuth
func NewStartDepositHandler(svc DepositStarter, tokenGetter SessionTokener) http.HandlerFunc {
	return depositHandler(tokenGetter, func(ctx context.Context, w http.ResponseWriter, userID, atmID int64) {
		if err := svc.StartDeposit(ctx, userID, atmID); err != nil {
			writeDepositError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// NewCountDepositHandler returns an HTTP handler that counts inserted cash.
// The counted amount is staged on the session pending confirmation.
// @Summary Count cash deposit
// @Description Commands the ATM to count the inserted cash, waits for the counted amount and stages it on the session.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 {object} handlers.DepositAmountResponse "Counted amount"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DepositErrorResponse "No touchless session found"
// @Failure 504 {object} handlers.DepositErrorResponse "ATM did not acknowledge in time"
// @Router /touchless/{atmID}/deposit/count [post]
// @Security BearerAuth
func NewCountDepositHandler(svc DepositCounter, tokenGetter SessionTokener) http.HandlerFunc {
	return depositHandler(tokenGetter, func(ctx context.Context, w http.ResponseWriter, userID, atmID int64) {
		amount, err := svc.CountDeposit(ctx, userID, atmID)
		if err != nil {
			writeDepositError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositAmountResponse{Amount: amount})
	})
}

// NewConfirmDepositHandler returns an HTTP handler that commits a staged deposit.
// @Summary Confirm cash deposit
// @Description Commands the ATM to store the counted cash and credits the staged amount to the user.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 {object} handlers.DepositAmountResponse "Credited amount"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DepositErrorResponse "No touchless session found"
// @Failure 409 {object} handlers.DepositErrorResponse "No deposit amount staged"
// @Router /touchless/{atmID}/deposit/confirm [post]
// @Security BearerAuth
func NewConfirmDepositHandler(svc DepositConfirmer, tokenGetter SessionTokener) http.HandlerFunc {
	return depositHandler(tokenGetter, func(ctx context.Context, w http.ResponseWriter, userID, atmID int64) {
		amount, err := svc.ConfirmDeposit(ctx, userID, atmID)
		if err != nil {
			writeDepositError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositAmountResponse{Amount: amount})
	})
}

// NewCancelDepositHandler returns an HTTP handler that aborts a staged deposit.
// @Summary Cancel cash deposit
// @Description Commands the ATM to return the cash and clears the staged amount without any ledger effect.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 "Deposit cancelled"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DepositErrorResponse "No touchless session found"
// @Router /touchless/{atmID}/deposit/cancel [post]
// @Security BearerAuth
func NewCancelDepositHandler(svc DepositCanceler, tokenGetter SessionTokener) http.HandlerFunc {
	return depositHandler(tokenGetter, func(ctx context.Context, w http.ResponseWriter, userID, atmID int64) {
		if err := svc.CancelDeposit(ctx, userID, atmID); err != nil {
			writeDepositError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
