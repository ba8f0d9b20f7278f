package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
)

// ATMLister defines the interface that the repository must implement.
type ATMLister interface {
	List(ctx context.Context) ([]models.ATMDB, error)
}

// ATMsErrorResponse represents an error response when listing ATMs
// swagger:model ATMsErrorResponse
type ATMsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListATMsHandler returns an HTTP handler listing the registered ATMs.
// @Summary List ATMs
// @Description Returns all registered ATM terminals with their locations
// @Tags touchless
// @Produce json
// @Success 200 {array} models.ATMDB "Registered ATMs"
// @Failure 401 {object} handlers.ATMsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ATMsErrorResponse "Internal server error"
// @Router /atms [get]
// @Security BearerAuth
func NewListATMsHandler(atms ATMLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := atms.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list atms", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ATMsErrorResponse{Error: "Internal server error"})
			return
		}
		if list == nil {
			list = []models.ATMDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
