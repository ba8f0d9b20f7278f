package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-touchless-atm/internal/jwt"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/services"
)

// SessionTokener defines only the token methods needed by the session handlers.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionStarter defines the interface that the service must implement.
type SessionStarter interface {
	Enter(ctx context.Context, userID, atmID int64) (*float64, error)
}

// SessionEnder defines the interface that the service must implement.
type SessionEnder interface {
	Exit(ctx context.Context, userID, atmID int64) error
}

// StartSessionResponse represents a successful session start
// swagger:model StartSessionResponse
type StartSessionResponse struct {
	// Deposit amount staged on a re-acquired session, null otherwise
	// example: 150.75
	DepositAmount *float64 `json:"deposit_amount"`
}

// SessionErrorResponse represents an error response for session operations
// swagger:model SessionErrorResponse
type SessionErrorResponse struct {
	// Error message
	// example: ATM already in use
	Error string `json:"error"`
}

// parseATMID extracts and validates the atmID route parameter.
func parseATMID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "atmID"), 10, 64)
}

// authenticatedUserID resolves the caller's user ID from the bearer token.
func authenticatedUserID(tokenGetter SessionTokener, r *http.Request) (int64, error) {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		return 0, err
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// NewStartSessionHandler returns an HTTP handler that claims a touchless session.
// @Summary Start touchless session
// @Description Claims exclusive control of the ATM for the authenticated user. Re-entering an ATM the user already holds is idempotent.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 {object} handlers.StartSessionResponse "Session started"
// @Failure 400 {object} handlers.SessionErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SessionErrorResponse "No ATM with specified ID"
// @Failure 409 {object} handlers.SessionErrorResponse "ATM already in use"
// @Router /touchless/{atmID} [post]
// @Security BearerAuth
func NewStartSessionHandler(svc SessionStarter, tokenGetter SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Errorw("unauthorized session request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		atmID, err := parseATMID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Invalid ATM ID"})
			return
		}

		depositAmount, err := svc.Enter(r.Context(), userID, atmID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrATMNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "No ATM with specified ID"})
			case errors.Is(err, services.ErrATMUnavailable):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "ATM already in use"})
			default:
				logger.Log.Errorw("failed to start session", "user_id", userID, "atm_id", atmID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StartSessionResponse{DepositAmount: depositAmount})
	}
}

// NewEndSessionHandler returns an HTTP handler that releases a touchless session.
// @Summary End touchless session
// @Description Releases the authenticated user's session with the ATM.
// @Tags touchless
// @Produce json
// @Param atmID path int true "ATM ID"
// @Success 200 "Session ended"
// @Failure 400 {object} handlers.SessionErrorResponse "Invalid ATM ID"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SessionErrorResponse "No such existing session"
// @Router /touchless/{atmID} [delete]
// @Security BearerAuth
func NewEndSessionHandler(svc SessionEnder, tokenGetter SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authenticatedUserID(tokenGetter, r)
		if err != nil {
			logger.Log.Errorw("unauthorized session request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		atmID, err := parseATMID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Invalid ATM ID"})
			return
		}

		if err := svc.Exit(r.Context(), userID, atmID); err != nil {
			if errors.Is(err, services.ErrNoActiveSession) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "No such existing session"})
				return
			}
			logger.Log.Errorw("failed to end session", "user_id", userID, "atm_id", atmID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
