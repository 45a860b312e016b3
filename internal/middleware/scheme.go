package middleware

import "net/http"

// ForScheme applies mw only to operations the generated router marked with
// the security scheme whose scopes are stored under key.
func ForScheme(key string, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		secured := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(key) == nil {
				next.ServeHTTP(w, r)
				return
			}
			secured.ServeHTTP(w, r)
		})
	}
}
