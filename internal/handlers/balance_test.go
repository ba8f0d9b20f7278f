package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBalanceReader(ctrl)
	mockTok := NewMockSessionTokener(ctrl)

	handler := NewGetBalanceHandler(mockSvc, mockTok)

	t.Run("Success", func(t *testing.T) {
		expectAuth(mockTok, 1)
		mockSvc.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(399.50, nil)

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp BalanceResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 399.50, resp.Balance)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		expectAuthFailure(mockTok)

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InternalError", func(t *testing.T) {
		expectAuth(mockTok, 1)
		mockSvc.EXPECT().GetBalance(gomock.Any(), int64(1)).
			Return(0.0, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
