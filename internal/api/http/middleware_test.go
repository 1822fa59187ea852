package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "rakshak-backend/internal/api/http"
	"rakshak-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-test-secret-test-secret!", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpapi.ClaimsFromContext(r.Context()); ok {
			w.Header().Set("X-User-ID", "set")
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("LoginIsAlwaysOpen", func(t *testing.T) {
		mw := httpapi.NewAuthMiddleware(tokens, true)
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("EnforcedRejectsMissingToken", func(t *testing.T) {
		mw := httpapi.NewAuthMiddleware(tokens, true)
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/available", nil)
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnenforcedAllowsMissingToken", func(t *testing.T) {
		mw := httpapi.NewAuthMiddleware(tokens, false)
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/available", nil)
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ValidTokenAttachesClaims", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(1, "a@test.com", "User")
		assert.NoError(t, err)

		mw := httpapi.NewAuthMiddleware(tokens, true)
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/available", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "set", rec.Header().Get("X-User-ID"))
	})

	t.Run("InvalidTokenRejectedEvenUnenforced", func(t *testing.T) {
		mw := httpapi.NewAuthMiddleware(tokens, false)
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/available", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		mw.Handler(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
