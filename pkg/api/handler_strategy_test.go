package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/models"
)

const sampleStrategyJSON = `{
	"meta": {
		"slug": "tech-weekly",
		"version": 1,
		"category": "technology",
		"time_window": "week",
		"depth": "overview",
		"priority": 10
	},
	"tool_chain": [
		{"use": "exa.search", "inputs": {"query": "{{topic}}"}}
	]
}`

const sampleStrategyYAML = `meta:
  slug: finance-daily
  version: 1
  category: finance
  time_window: day
  depth: brief
tool_chain:
  - use: sonar.search
    inputs:
      query: "{{topic}}"
`

func TestStrategyHandlers(t *testing.T) {
	ts := newTestServer(t, &stubRunner{result: stubResult()})

	t.Run("create accepts JSON documents", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/strategies/tech-weekly", sampleStrategyJSON)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		st := decode[models.Strategy](t, rec)
		assert.Equal(t, "tech-weekly", st.Meta.Slug)
		assert.Equal(t, 10, st.Meta.Priority)
	})

	t.Run("create accepts YAML documents", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/strategies/finance-daily", sampleStrategyYAML)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("duplicate create is 409", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/strategies/tech-weekly", sampleStrategyJSON)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("slug mismatch is 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/strategies/other-slug", sampleStrategyJSON)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid document is 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/strategies/bad",
			`{"meta": {"slug": "bad", "time_window": "fortnight", "depth": "brief"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get returns the stored document", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/strategies/tech-weekly", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		st := decode[models.Strategy](t, rec)
		assert.Equal(t, "technology", st.Meta.Category)
		require.Len(t, st.ToolChain, 1)
		assert.Equal(t, "exa.search", st.ToolChain[0].Use)
	})

	t.Run("list is sorted by slug", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/strategies", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		strategies := decode[[]models.Strategy](t, rec)
		require.Len(t, strategies, 2)
		assert.Equal(t, "finance-daily", strategies[0].Meta.Slug)
		assert.Equal(t, "tech-weekly", strategies[1].Meta.Slug)
	})

	t.Run("put replaces the document", func(t *testing.T) {
		updated := `{
			"meta": {"slug": "tech-weekly", "version": 2, "category": "technology",
				"time_window": "week", "depth": "deep", "priority": 20},
			"tool_chain": [{"use": "exa.search", "inputs": {"query": "{{topic}} news"}}]
		}`
		rec := ts.do(t, http.MethodPut, "/api/strategies/tech-weekly", updated)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = ts.do(t, http.MethodGet, "/api/strategies/tech-weekly", nil)
		st := decode[models.Strategy](t, rec)
		assert.Equal(t, 20, st.Meta.Priority)
		assert.Equal(t, "deep", string(st.Meta.Depth))
	})

	t.Run("put on a missing slug is 404", func(t *testing.T) {
		doc := `{
			"meta": {"slug": "ghost", "version": 1, "category": "x",
				"time_window": "week", "depth": "brief"},
			"tool_chain": [{"use": "exa.search", "inputs": {"query": "q"}}]
		}`
		rec := ts.do(t, http.MethodPut, "/api/strategies/ghost", doc)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete removes the strategy", func(t *testing.T) {
		rec := ts.do(t, http.MethodDelete, "/api/strategies/finance-daily", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[DeleteResponse](t, rec).Success)

		rec = ts.do(t, http.MethodGet, "/api/strategies/finance-daily", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = ts.do(t, http.MethodDelete, "/api/strategies/finance-daily", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
