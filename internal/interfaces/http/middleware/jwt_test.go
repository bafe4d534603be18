package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mhassanrahi/invoice-asaan/internal/infrastructure/auth"
	"github.com/mhassanrahi/invoice-asaan/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars-long",
		AccessTokenExpiration: time.Hour,
		Issuer:                "invoice-backend-test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, userID, orgID string) string {
	t.Helper()
	token, _, err := svc.GenerateToken(auth.GenerateTokenInput{
		UserID:         userID,
		OrganizationID: orgID,
		Email:          "user@example.test",
	})
	require.NoError(t, err)
	return token
}

func newJWTTestRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddlewareWithConfig(cfg))
	r.GET("/protected", func(c *gin.Context) {
		identity := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":         identity.UserID,
			"organization_id": identity.OrganizationID,
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService(t)

	t.Run("accepts valid token and exposes identity", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))
		token := issueToken(t, svc, "user-1", "org-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
		assert.Contains(t, w.Body.String(), `"organization_id":"org-1"`)
	})

	t.Run("token without organization yields private identity", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))
		token := issueToken(t, svc, "user-1", "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"organization_id":""`)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))
		other := auth.NewJWTService(config.JWTConfig{
			Secret:                "another-secret-key-that-is-32-chars!",
			AccessTokenExpiration: time.Hour,
			Issuer:                "invoice-backend-test",
		})
		token := issueToken(t, other, "user-1", "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects blacklisted token", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist
		r := newJWTTestRouter(cfg)

		token := issueToken(t, svc, "user-1", "")
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("skips configured paths", func(t *testing.T) {
		r := newJWTTestRouter(DefaultJWTConfig(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
