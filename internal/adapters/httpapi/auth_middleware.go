package httpapi

import (
	"net/http"
	"strings"
)

// requireAuth enforces Authorization: Bearer <token> and stores the resolved
// user in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing Authorization header", nil)
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(authz, prefix) {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "malformed Authorization header", nil)
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
		if raw == "" {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
			return
		}

		u, err := s.Auth.Resolve(r.Context(), raw)
		if err != nil {
			writeAppError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), u)))
	})
}
