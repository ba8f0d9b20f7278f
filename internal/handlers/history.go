package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	GetTransactionHistory(ctx context.Context, userID int64) ([]models.HistoryItem, error)
}

// HistoryErrorResponse represents an error response when fetching history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewTransactionHistoryHandler returns an HTTP handler for the user's
// transaction history, most recent first.
// @Summary Get transaction history
// @Description Returns the authenticated user's transactions with counterparty details, ordered by timestamp descending
// @Tags account
// @Produce json
// @Success 200 {array} models.HistoryItem "Transaction history"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.HistoryErrorResponse "Internal server error"
// @Router /transaction-history [get]
// @Security BearerAuth
func NewTransactionHistoryHandler(svc HistoryReader, tokenGetter SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Error("unauthorized history request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		history, err := svc.GetTransactionHistory(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to get transaction history", "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}
		if history == nil {
			history = []models.HistoryItem{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(history)
	}
}
