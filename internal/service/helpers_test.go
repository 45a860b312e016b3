package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/audit"
	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// recordingEmitter keeps every audit event it receives.
type recordingEmitter struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingEmitter) Emit(_ context.Context, e audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingEmitter) Events() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.events...)
}

// seedFleet writes one New York business that allows fuel purchases, an
// active and an inactive cardholder, and three cards.
func seedFleet(t *testing.T, database *db.DB) {
	t.Helper()
	ctx := context.Background()
	w := repository.NewConfigWriter(database)

	require.NoError(t, w.UpsertBusiness(ctx, &models.Business{ID: "biz_1", Name: "Acme Haulage", Timezone: "America/New_York"}))
	require.NoError(t, w.UpsertCardholder(ctx, &models.Cardholder{ID: "ich_1", BusinessID: "biz_1", Name: "Dana Driver", Active: true}))
	require.NoError(t, w.UpsertCardholder(ctx, &models.Cardholder{ID: "ich_2", BusinessID: "biz_1", Name: "Sam Spare", Active: false}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_1", CardholderID: "ich_1", Last4: "4242", Status: models.CardStatusActive}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_2", CardholderID: "ich_1", Last4: "1881", Status: models.CardStatusInactive}))
	require.NoError(t, w.UpsertCard(ctx, &models.Card{ID: "ic_3", CardholderID: "ich_2", Last4: "0005", Status: models.CardStatusActive}))
	require.NoError(t, w.UpsertCategoryRule(ctx, &models.CategoryRule{
		BusinessID:            "biz_1",
		Name:                  "fuel",
		Enabled:               true,
		MerchantCategoryCodes: []string{"5541", "5542"},
	}))
}

func setLimit(t *testing.T, database *db.DB, cardholderID string, interval models.Interval, amount int64) {
	t.Helper()
	require.NoError(t, repository.NewConfigWriter(database).SetCardholderLimit(context.Background(), cardholderID,
		models.SpendingLimit{Interval: interval, Amount: amount, Active: true}))
}

func setupEngine(t *testing.T, clock *fakeClock) (*db.DB, *DecisionEngine) {
	t.Helper()
	database := db.NewTestDB(t)
	seedFleet(t, database)
	engine := NewDecisionEngine(database, testLogger(),
		WithClock(clock.Now),
		WithAuditEmitter(audit.Discard{}),
		WithStoreRetryBackoff(time.Millisecond),
	)
	return database, engine
}

func authRequest(externalID string, amount int64) models.AuthorizationRequest {
	return models.AuthorizationRequest{
		ExternalID:           externalID,
		CardID:               "ic_1",
		Amount:               amount,
		MerchantCategoryCode: "5541",
		Timestamp:            time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func ledgerTotal(t *testing.T, database *db.DB, cardholderID string, interval models.Interval) int64 {
	t.Helper()
	w, err := repository.NewLedgerRepository(database).Get(context.Background(), cardholderID, interval)
	require.NoError(t, err)
	return w.AccumulatedAmount
}
