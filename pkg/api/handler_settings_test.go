package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandlers(t *testing.T) {
	ts := newTestServer(t, &stubRunner{result: stubResult()})

	t.Run("put then get", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/settings/qc", map[string]any{"llm_enabled": true})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = ts.do(t, http.MethodGet, "/api/settings/qc", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		setting := decode[map[string]any](t, rec)
		assert.Equal(t, "qc", setting["key"])
		value, ok := setting["value"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, value["llm_enabled"])
	})

	t.Run("put replaces the value", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/settings/qc", map[string]any{"llm_enabled": false})
		require.Equal(t, http.StatusOK, rec.Code)

		setting := decode[map[string]any](t, rec)
		value := setting["value"].(map[string]any)
		assert.Equal(t, false, value["llm_enabled"])
	})

	t.Run("list is sorted by key", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/settings/scoring", map[string]any{"domain_boost": 2.5})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/settings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		settings := decode[[]map[string]any](t, rec)
		require.Len(t, settings, 2)
		assert.Equal(t, "qc", settings[0]["key"])
		assert.Equal(t, "scoring", settings[1]["key"])
	})

	t.Run("get missing setting is 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/settings/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
