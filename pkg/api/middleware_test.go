package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestAPIKeyAuth(t *testing.T) {
	newApp := func() *echo.Echo {
		e := echo.New()
		e.Use(apiKeyAuth("secret"))
		ok := func(c *echo.Context) error { return c.String(http.StatusOK, "ok") }
		e.GET("/health", ok)
		e.GET("/tasks", ok)
		e.POST("/health", ok)
		return e
	}

	serve := func(e *echo.Echo, method, path, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("GET /health is open", func(t *testing.T) {
		rec := serve(newApp(), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other routes require the key", func(t *testing.T) {
		rec := serve(newApp(), http.MethodGet, "/tasks", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-GET health is protected", func(t *testing.T) {
		rec := serve(newApp(), http.MethodPost, "/health", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		rec := serve(newApp(), http.MethodGet, "/tasks", "not-the-secret")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key passes", func(t *testing.T) {
		rec := serve(newApp(), http.MethodGet, "/tasks", "secret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
