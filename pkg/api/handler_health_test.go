package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t, &stubRunner{result: stubResult()})

	probe := func() *httptest.ResponseRecorder {
		// No API key on purpose: the probe must stay open.
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("healthy", func(t *testing.T) {
		rec := probe()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[HealthResponse](t, rec)
		assert.Equal(t, healthStatusHealthy, resp.Status)
		assert.NotEmpty(t, resp.Version)
		require.Contains(t, resp.Checks, "database")
		assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
		require.Contains(t, resp.Checks, "batch_executor")
		assert.Equal(t, healthStatusHealthy, resp.Checks["batch_executor"].Status)
	})

	t.Run("degraded while draining", func(t *testing.T) {
		awaitExecutor(t, ts)

		rec := probe()
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[HealthResponse](t, rec)
		assert.Equal(t, healthStatusDegraded, resp.Status)
		assert.Equal(t, healthStatusDegraded, resp.Checks["batch_executor"].Status)
	})
}
