package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-touchless-atm/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransactionHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryReader(ctrl)
	mockTok := NewMockSessionTokener(ctrl)

	handler := NewTransactionHistoryHandler(mockSvc, mockTok)

	t.Run("Success", func(t *testing.T) {
		bob := "Bob"
		internal := false
		bobID := int64(2)
		history := []models.HistoryItem{
			{
				TransactionID:          uuid.New(),
				Timestamp:              time.Now(),
				Description:            "Transfer",
				Change:                 -120.25,
				CounterpartyUserID:     &bobID,
				CounterpartyName:       &bob,
				CounterpartyIsInternal: &internal,
			},
			{
				TransactionID: uuid.New(),
				Timestamp:     time.Now().Add(-time.Hour),
				Description:   "Cash deposit",
				Change:        500.00,
			},
		}
		expectAuth(mockTok, 1)
		mockSvc.EXPECT().GetTransactionHistory(gomock.Any(), int64(1)).Return(history, nil)

		req := httptest.NewRequest(http.MethodGet, "/transaction-history", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []models.HistoryItem
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, -120.25, resp[0].Change)
		assert.Equal(t, "Bob", *resp[0].CounterpartyName)
	})

	t.Run("EmptyHistoryIsAnEmptyArray", func(t *testing.T) {
		expectAuth(mockTok, 1)
		mockSvc.EXPECT().GetTransactionHistory(gomock.Any(), int64(1)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/transaction-history", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Unauthorized", func(t *testing.T) {
		expectAuthFailure(mockTok)

		req := httptest.NewRequest(http.MethodGet, "/transaction-history", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
