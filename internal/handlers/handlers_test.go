package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/config"
	"github.com/fleetcard/authengine/internal/service/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testEngineConfig = config.EngineConfig{
	WebhookDeadline:   200 * time.Millisecond,
	StoreRetryBackoff: time.Millisecond,
	FailClosedTimeout: 100 * time.Millisecond,
}

type testMocks struct {
	decider      *mocks.MockDecider
	settler      *mocks.MockSettler
	transactions *mocks.MockTransactionReader
	ledgers      *mocks.MockLedgerViewer
	health       *mocks.MockHealthChecker
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	m := testMocks{
		decider:      mocks.NewMockDecider(t),
		settler:      mocks.NewMockSettler(t),
		transactions: mocks.NewMockTransactionReader(t),
		ledgers:      mocks.NewMockLedgerViewer(t),
		health:       mocks.NewMockHealthChecker(t),
	}
	h := NewHandler(m.decider, m.settler, m.transactions, m.ledgers, m.health, testEngineConfig, testLogger())
	return h, m
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// serve runs a request through the generated router without the auth
// middlewares, so body decoding and parameter binding are exercised.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Mount(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
