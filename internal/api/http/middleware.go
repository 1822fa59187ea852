package http

import (
	"context"
	"net/http"
	"strings"

	"rakshak-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates a Bearer token when one is present and, when
// enforcement is on, rejects requests without a valid one. Login,
// registration, and the password-reset endpoints are always open.
type AuthMiddleware struct {
	tokens  security.TokenManager
	enforce bool
}

func NewAuthMiddleware(tokens security.TokenManager, enforce bool) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, enforce: enforce}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.open(r) {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			if m.enforce {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func (m *AuthMiddleware) open(r *http.Request) bool {
	switch {
	case r.URL.Path == "/api/login":
		return true
	case r.URL.Path == "/api/users" && r.Method == http.MethodPost:
		return true
	case strings.HasPrefix(r.URL.Path, "/auth/"):
		return true
	}
	return false
}

// ClaimsFromContext returns the validated token claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}
