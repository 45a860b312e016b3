package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/auth"
)

type subjectKey struct{}

// SubjectFromContext returns the token subject stored by RequireBearer.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok
}

// RequireBearer rejects requests without a valid bearer token. When no JWT
// secret is configured the read API is open.
func RequireBearer(tokens *auth.TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tokens.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "Authorization header required")
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "Invalid Authorization header format")
				return
			}

			subject, err := tokens.ParseToken(tokenStr)
			if err != nil {
				logger.Debug("rejected bearer token", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey{}, subject)))
		})
	}
}
