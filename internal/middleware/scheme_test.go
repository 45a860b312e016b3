package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/stretchr/testify/assert"
)

func TestForScheme(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := ForScheme(api.WebhookSignatureScopes, deny)(next)

	tests := []struct {
		name           string
		scheme         string
		expectedStatus int
	}{
		{name: "operation declares the scheme", scheme: api.WebhookSignatureScopes, expectedStatus: http.StatusUnauthorized},
		{name: "operation declares another scheme", scheme: api.BearerAuthScopes, expectedStatus: http.StatusOK},
		{name: "operation is public", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhooks/authorizations", nil)
			if tt.scheme != "" {
				req = req.WithContext(context.WithValue(req.Context(), tt.scheme, []string{})) //nolint:staticcheck // generated router keys
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
