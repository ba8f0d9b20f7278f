package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/services"
)

// CashWithdrawer defines the interface that the service must implement.
type CashWithdrawer interface {
	Withdraw(ctx context.Context, userID, atmID int64, amount float64) error
}

// WithdrawRequest represents the JSON body for a cash withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw, a positive multiple of 0.01
	// required: true
	// example: 100.50
	Amount float64 `json:"amount"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// example: Withdrawal successful
	Message string `json:"message"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// example: No touchless session found
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler for cash withdrawal at an ATM.
// Success is only returned after the ATM hardware has confirmed releasing
// the cash and the ledger movement has been committed.
// @Summary Withdraw cash
// @Description Commands the ATM to dispense cash and posts the ledger movement once the hardware confirms.
// @Tags touchless
// @Accept json
// @Produce json
// @Param atmID path int true "ATM ID"
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal successful"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Invalid amount or ATM ID"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WithdrawErrorResponse "No touchless session found"
// @Failure 504 {object} handlers.WithdrawErrorResponse "ATM did not acknowledge in time"
// @Router /touchless/{atmID}/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc CashWithdrawer, tokenGetter SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Errorw("unauthorized withdraw request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Unauthorized"})
			return
		}

		atmID, err := parseATMID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid ATM ID"})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Withdraw(r.Context(), userID, atmID, req.Amount); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrNoActiveSession):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "No touchless session found"})
			case errors.Is(err, services.ErrATMTimeout):
				w.WriteHeader(http.StatusGatewayTimeout)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "ATM did not acknowledge in time"})
			default:
				logger.Log.Errorw("failed to withdraw", "user_id", userID, "atm_id", atmID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{Message: "Withdrawal successful"})
	}
}
