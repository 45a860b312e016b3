package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	h, m := newTestHandler(t)
	approved := decidedTransaction(models.TransactionStatusApproved, "")
	m.transactions.On("ListTransactions", mock.Anything, models.TransactionFilter{
		CardholderID: "ich_1",
		Status:       models.TransactionStatusApproved,
		Limit:        10,
	}).Return([]models.Transaction{*approved}, nil)

	cardholderID := "ich_1"
	status := api.DecisionOutcomeApproved
	limit := 10
	resp, err := h.ListTransactions(context.Background(), api.ListTransactionsRequestObject{
		Params: api.ListTransactionsParams{CardholderId: &cardholderID, Status: &status, Limit: &limit},
	})
	require.NoError(t, err)

	result, ok := resp.(api.ListTransactions200JSONResponse)
	require.True(t, ok, "expected 200 response, got %T", resp)
	require.Len(t, result.Data, 1)
	assert.Equal(t, approved.DecisionID, result.Data[0].DecisionId)
}

func TestListTransactions_QueryBinding(t *testing.T) {
	h, m := newTestHandler(t)
	m.transactions.On("ListTransactions", mock.Anything, models.TransactionFilter{
		CardID: "ic_1",
		Status: models.TransactionStatusDeclined,
		Limit:  5,
	}).Return([]models.Transaction{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?card_id=ic_1&status=declined&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListTransactions_BadParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non numeric limit", query: "limit=ten"},
		{name: "zero limit", query: "limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?"+tt.query, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, api.ErrorCodeInvalidRequest, decodeResponse[api.Error](t, rec).Error)
		})
	}
}

func TestListTransactions_ServiceError(t *testing.T) {
	h, m := newTestHandler(t)
	m.transactions.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, &service.ServiceError{Code: service.ErrCodeInvalidRequest, Message: "unknown status filter"})

	pending := api.DecisionOutcome("pending")
	resp, err := h.ListTransactions(context.Background(), api.ListTransactionsRequestObject{
		Params: api.ListTransactionsParams{Status: &pending},
	})
	require.NoError(t, err)

	result, ok := resp.(api.ListTransactions400JSONResponse)
	require.True(t, ok, "expected 400 response, got %T", resp)
	assert.Equal(t, "unknown status filter", result.Message)
}

func TestGetTransaction(t *testing.T) {
	h, m := newTestHandler(t)
	declined := decidedTransaction(models.TransactionStatusDeclined, decline.CodeCardInactive)
	m.transactions.On("GetTransaction", mock.Anything, "auth_1").Return(declined, nil)

	resp, err := h.GetTransaction(context.Background(), api.GetTransactionRequestObject{ExternalId: "auth_1"})
	require.NoError(t, err)

	result, ok := resp.(api.GetTransaction200JSONResponse)
	require.True(t, ok, "expected 200 response, got %T", resp)
	assert.Equal(t, api.DecisionOutcomeDeclined, result.Status)
	require.NotNil(t, result.DeclineCode)
	assert.Equal(t, api.DeclineCodeCardInactive, *result.DeclineCode)
	assert.Nil(t, result.BusinessId)
}

func TestGetTransaction_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.transactions.On("GetTransaction", mock.Anything, "auth_9").
		Return(nil, &service.ServiceError{Code: service.ErrCodeTransactionNotFound, Message: "transaction not found"})

	resp, err := h.GetTransaction(context.Background(), api.GetTransactionRequestObject{ExternalId: "auth_9"})
	require.NoError(t, err)

	result, ok := resp.(api.GetTransaction404JSONResponse)
	require.True(t, ok, "expected 404 response, got %T", resp)
	assert.Equal(t, api.ErrorCodeTransactionNotFound, result.Error)
}

func TestGetTransaction_PathBinding(t *testing.T) {
	h, m := newTestHandler(t)
	m.transactions.On("GetTransaction", mock.Anything, "auth 7").
		Return(decidedTransaction(models.TransactionStatusApproved, ""), nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/auth%207", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
