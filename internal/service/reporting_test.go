package service

import (
	"context"
	"testing"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReporting(t *testing.T) (*db.DB, *DecisionEngine, *ReportingService) {
	t.Helper()
	clock := &fakeClock{now: decisionTime}
	database, engine := setupEngine(t, clock)
	reporting := NewReportingService(database, testLogger())
	reporting.now = clock.Now
	return database, engine, reporting
}

func TestReporting_GetTransaction(t *testing.T) {
	_, engine, reporting := setupReporting(t)
	ctx := context.Background()

	decision, err := engine.Decide(ctx, authRequest("auth_1", 100))
	require.NoError(t, err)

	txn, err := reporting.GetTransaction(ctx, "auth_1")
	require.NoError(t, err)
	assert.Equal(t, decision.Transaction.DecisionID, txn.DecisionID)

	_, err = reporting.GetTransaction(ctx, "auth_missing")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeTransactionNotFound, svcErr.Code)
}

func TestReporting_ListTransactions(t *testing.T) {
	database, engine, reporting := setupReporting(t)
	setLimit(t, database, "ich_1", models.IntervalDaily, 1000)
	ctx := context.Background()

	for i, amount := range []int64{600, 600, 300} {
		_, err := engine.Decide(ctx, authRequest([]string{"auth_a", "auth_b", "auth_c"}[i], amount))
		require.NoError(t, err)
	}

	all, err := reporting.ListTransactions(ctx, models.TransactionFilter{CardholderID: "ich_1"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	declined, err := reporting.ListTransactions(ctx, models.TransactionFilter{Status: models.TransactionStatusDeclined})
	require.NoError(t, err)
	require.Len(t, declined, 1)
	assert.Equal(t, "auth_b", declined[0].ExternalID)

	limited, err := reporting.ListTransactions(ctx, models.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	var svcErr *ServiceError
	_, err = reporting.ListTransactions(ctx, models.TransactionFilter{Status: "pending"})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInvalidRequest, svcErr.Code)

	_, err = reporting.ListTransactions(ctx, models.TransactionFilter{Limit: repository.MaxListLimit + 1})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInvalidRequest, svcErr.Code)
}

func TestReporting_CardholderLedger(t *testing.T) {
	database, engine, reporting := setupReporting(t)
	setLimit(t, database, "ich_1", models.IntervalDaily, 10000)
	ctx := context.Background()

	_, err := engine.Decide(ctx, authRequest("auth_1", 2500))
	require.NoError(t, err)

	view, err := reporting.CardholderLedger(ctx, "ich_1")
	require.NoError(t, err)
	assert.Equal(t, "ich_1", view.CardholderID)
	assert.Equal(t, "America/New_York", view.Timezone)
	require.Len(t, view.Windows, 5)

	daily := view.Windows[0]
	assert.Equal(t, models.IntervalDaily, daily.Window.Interval)
	assert.Equal(t, int64(2500), daily.Window.AccumulatedAmount)
	require.NotNil(t, daily.Limit)
	require.NotNil(t, daily.Remaining)
	assert.Equal(t, int64(7500), *daily.Remaining)

	weekly := view.Windows[1]
	assert.Nil(t, weekly.Limit)
	assert.Nil(t, weekly.Remaining)

	_, err = reporting.CardholderLedger(ctx, "ich_missing")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeCardholderNotFound, svcErr.Code)
}

func TestReporting_RebuildLedger(t *testing.T) {
	database, engine, reporting := setupReporting(t)
	setLimit(t, database, "ich_1", models.IntervalDaily, 10000)
	ctx := context.Background()

	for _, id := range []string{"auth_1", "auth_2"} {
		_, err := engine.Decide(ctx, authRequest(id, 1500))
		require.NoError(t, err)
	}

	ledgerRepo := repository.NewLedgerRepository(database)
	drifted, err := ledgerRepo.Get(ctx, "ich_1", models.IntervalDaily)
	require.NoError(t, err)
	drifted.AccumulatedAmount = 99
	require.NoError(t, ledgerRepo.Replace(ctx, drifted))

	windows, err := reporting.RebuildLedger(ctx, "ich_1")
	require.NoError(t, err)
	assert.Len(t, windows, 5)
	assert.Equal(t, int64(3000), ledgerTotal(t, database, "ich_1", models.IntervalDaily))
	assert.Equal(t, int64(3000), ledgerTotal(t, database, "ich_1", models.IntervalAllTime))

	_, err = reporting.RebuildLedger(ctx, "ich_missing")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeCardholderNotFound, svcErr.Code)
}
