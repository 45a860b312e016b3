package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
	"github.com/fleetcard/authengine/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedTransaction(status models.TransactionStatus) *models.Transaction {
	t := &models.Transaction{
		ExternalID:           "auth_1",
		DecisionID:           uuid.New(),
		CardholderID:         "ich_1",
		CardID:               "ic_1",
		Amount:               4000,
		MerchantCategoryCode: "5541",
		Status:               status,
	}
	if status == models.TransactionStatusDeclined {
		t.DeclineCode = decline.CodeSpendingControls
		t.DeclineReason = decline.ReasonFor(decline.CodeSpendingControls, decline.Context{})
	}
	return t
}

func TestPerformSettlement(t *testing.T) {
	settledAt := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		storedStatus  models.TransactionStatus
		networkStatus string
		mismatch      bool
	}{
		{name: "approved and settled", storedStatus: models.TransactionStatusApproved, networkStatus: "settled", mismatch: false},
		{name: "approved and captured", storedStatus: models.TransactionStatusApproved, networkStatus: "captured", mismatch: false},
		{name: "approved but reversed", storedStatus: models.TransactionStatusApproved, networkStatus: "reversed", mismatch: true},
		{name: "declined and refused", storedStatus: models.TransactionStatusDeclined, networkStatus: "refused", mismatch: false},
		{name: "declined but captured", storedStatus: models.TransactionStatusDeclined, networkStatus: "captured", mismatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo := mocks.NewMockTransactionRepository(t)
			txRepo.On("FindByExternalID", mock.Anything, "auth_1").Return(storedTransaction(tt.storedStatus), nil)
			txRepo.On("UpdateSettlement", mock.Anything, "auth_1", repository.SettlementUpdate{
				SettledAt:              settledAt,
				NetworkStatus:          tt.networkStatus,
				SettledAmount:          3900,
				ReconciliationMismatch: tt.mismatch,
			}).Return(nil)

			svc := NewSettlementService(nil, testLogger())
			txn, err := svc.performSettlement(context.Background(), txRepo, SettlementRequest{
				ExternalID:    "auth_1",
				NetworkStatus: tt.networkStatus,
				SettledAmount: 3900,
				SettledAt:     settledAt,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.storedStatus, txn.Status, "stored decision never changes")
			assert.Equal(t, tt.mismatch, txn.ReconciliationMismatch)
			require.NotNil(t, txn.SettledAmount)
			assert.Equal(t, int64(3900), *txn.SettledAmount)
			require.NotNil(t, txn.NetworkStatus)
			assert.Equal(t, tt.networkStatus, *txn.NetworkStatus)
		})
	}
}

func TestPerformSettlement_Errors(t *testing.T) {
	req := SettlementRequest{
		ExternalID:    "auth_1",
		NetworkStatus: "settled",
		SettledAmount: 100,
		SettledAt:     time.Now(),
	}

	t.Run("unknown transaction", func(t *testing.T) {
		txRepo := mocks.NewMockTransactionRepository(t)
		txRepo.On("FindByExternalID", mock.Anything, "auth_1").Return(nil, models.ErrNotFound)

		_, err := NewSettlementService(nil, testLogger()).performSettlement(context.Background(), txRepo, req)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeTransactionNotFound, svcErr.Code)
	})

	t.Run("update fails", func(t *testing.T) {
		txRepo := mocks.NewMockTransactionRepository(t)
		txRepo.On("FindByExternalID", mock.Anything, "auth_1").Return(storedTransaction(models.TransactionStatusApproved), nil)
		txRepo.On("UpdateSettlement", mock.Anything, "auth_1", mock.Anything).Return(errors.New("disk full"))

		_, err := NewSettlementService(nil, testLogger()).performSettlement(context.Background(), txRepo, req)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	})
}

func TestSettle_Validation(t *testing.T) {
	valid := SettlementRequest{
		ExternalID:    "auth_1",
		NetworkStatus: "settled",
		SettledAmount: 100,
		SettledAt:     time.Now(),
	}

	tests := []struct {
		modify       func(r *SettlementRequest)
		name         string
		expectedCode string
	}{
		{name: "empty external id", modify: func(r *SettlementRequest) { r.ExternalID = "" }, expectedCode: ErrCodeInvalidExternalID},
		{name: "negative amount", modify: func(r *SettlementRequest) { r.SettledAmount = -1 }, expectedCode: ErrCodeInvalidAmount},
		{name: "unknown network status", modify: func(r *SettlementRequest) { r.NetworkStatus = "pending" }, expectedCode: ErrCodeInvalidNetworkStatus},
		{name: "missing settled at", modify: func(r *SettlementRequest) { r.SettledAt = time.Time{} }, expectedCode: ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			_, err := NewSettlementService(nil, testLogger()).Settle(context.Background(), req)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
		})
	}
}

func TestSettle_StoresSettlement(t *testing.T) {
	database, engine := setupEngine(t, &fakeClock{now: decisionTime})
	setLimit(t, database, "ich_1", models.IntervalDaily, 10000)
	ctx := context.Background()

	decision, err := engine.Decide(ctx, authRequest("auth_1", 4000))
	require.NoError(t, err)

	svc := NewSettlementService(database, testLogger())
	_, err = svc.Settle(ctx, SettlementRequest{
		ExternalID:    "auth_1",
		NetworkStatus: "reversed",
		SettledAmount: 0,
		SettledAt:     decisionTime.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	stored, err := repository.NewTransactionRepository(database).FindByExternalID(ctx, "auth_1")
	require.NoError(t, err)
	assert.Equal(t, decision.Transaction.DecisionID, stored.DecisionID)
	assert.Equal(t, models.TransactionStatusApproved, stored.Status)
	assert.True(t, stored.ReconciliationMismatch)
	require.NotNil(t, stored.SettledAt)
	assert.True(t, decisionTime.Add(48*time.Hour).Equal(*stored.SettledAt))
	assert.Equal(t, int64(4000), ledgerTotal(t, database, "ich_1", models.IntervalDaily), "settlement leaves the ledger alone")
}
