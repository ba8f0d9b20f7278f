package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/services"
)

// MoneyTransferer defines the interface that the service must implement.
type MoneyTransferer interface {
	Transfer(ctx context.Context, fromUserID int64, recipientPhone string, amount float64) (uuid.UUID, error)
}

// TransferRequest represents the JSON body for a peer transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient phone number in E.164 format
	// required: true
	// example: +6591234567
	Recipient string `json:"recipient"`

	// Amount to transfer, a positive multiple of 0.01
	// required: true
	// example: 100.50
	Amount float64 `json:"amount"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Identifier of the committed ledger transaction
	// example: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
	TransactionID string `json:"transaction_id"`
}

// TransferErrorResponse represents an error response for transfers
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler for peer-to-peer transfers.
// @Summary Transfer money
// @Description Transfers money to the user identified by phone number. Rejected without ledger effect when funds are insufficient.
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer committed"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid amount, unknown recipient or insufficient funds"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Router /transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc MoneyTransferer, tokenGetter SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Errorw("unauthorized transfer request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		transactionID, err := svc.Transfer(r.Context(), userID, req.Recipient, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrRecipientNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "No existing user with specified phone number"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to transfer", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{TransactionID: transactionID.String()})
	}
}
