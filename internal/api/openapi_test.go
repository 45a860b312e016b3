package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetcard/authengine/internal/decline"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/health",
		"/webhooks/authorizations",
		"/webhooks/settlements",
		"/api/v1/transactions",
		"/api/v1/transactions/{externalId}",
		"/api/v1/cardholders/{cardholderId}/ledger",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s", path)
	}

}

func TestDeclineCodeEnumMatchesReasonTable(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	var documented []string
	for _, v := range doc.Components.Schemas["DeclineCode"].Value.Enum {
		documented = append(documented, v.(string))
	}
	var known []string
	for _, c := range decline.Codes() {
		known = append(known, string(c))
	}
	assert.ElementsMatch(t, known, documented)

	generated := []DeclineCode{
		DeclineCodeAccountDisabled, DeclineCodeAuthorizationControls, DeclineCodeCardInactive,
		DeclineCodeCardholderInactive, DeclineCodeIncorrectPin, DeclineCodeInsufficientFunds,
		DeclineCodeProhibitedMerchant, DeclineCodeSpendingControls, DeclineCodeSuspectedFraud,
		DeclineCodeSystemError, DeclineCodeVerificationFailed, DeclineCodeWebhookTimeout,
	}
	for _, c := range generated {
		assert.Contains(t, known, string(c))
	}
}

func TestDocsRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterDocsRoutes(r)

	t.Run("root redirects to docs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})

	t.Run("reference page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `spec-url="/docs/openapi"`)
	})

	t.Run("openapi source", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "/webhooks/authorizations:")
	})

	t.Run("openapi document as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
	})
}
