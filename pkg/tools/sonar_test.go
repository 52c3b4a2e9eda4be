package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/evidence"
)

func sonarTestServer(t *testing.T, resp sonarResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestSonarSearch(t *testing.T) {
	server := sonarTestServer(t, sonarResponse{
		Choices: []struct {
			Message sonarMessage `json:"message"`
		}{{Message: sonarMessage{Role: "assistant", Content: "grounded summary"}}},
		SearchResults: []sonarSearchResult{
			{Title: "One", URL: "https://example.com/one", Date: "2026-08-10"},
		},
		Citations: []string{"https://example.com/one", "https://example.com/two"},
	})
	defer server.Close()

	adapter := NewSonarAdapter("test-key", server.URL, "", server.Client(), nil)
	res, err := adapter.Invoke(context.Background(), "search", map[string]any{"query": "q"})
	require.NoError(t, err)

	// search_results entry plus the one citation not already covered.
	require.Len(t, res.Evidence, 2)
	assert.Equal(t, "https://example.com/one", res.Evidence[0].URL)
	assert.Equal(t, "One", res.Evidence[0].Title)
	require.NotNil(t, res.Evidence[0].PublishedAt)
	assert.Equal(t, "https://example.com/two", res.Evidence[1].URL)
}

func TestSonarOverviewCarriesSentinel(t *testing.T) {
	server := sonarTestServer(t, sonarResponse{
		Choices: []struct {
			Message sonarMessage `json:"message"`
		}{{Message: sonarMessage{Role: "assistant", Content: "the overview text"}}},
		SearchResults: []sonarSearchResult{
			{Title: "One", URL: "https://example.com/one"},
		},
	})
	defer server.Close()

	adapter := NewSonarAdapter("test-key", server.URL, "", server.Client(), nil)
	res, err := adapter.Invoke(context.Background(), "overview", map[string]any{"query": "q"})
	require.NoError(t, err)
	require.Len(t, res.Evidence, 2)

	last := res.Evidence[len(res.Evidence)-1]
	assert.Equal(t, evidence.ToolLLMAnalysis, last.Tool)
	assert.Equal(t, "the overview text", last.Snippet)
}

func TestSonarRequiresQuery(t *testing.T) {
	adapter := NewSonarAdapter("test-key", "http://unused", "", nil, nil)
	_, err := adapter.Invoke(context.Background(), "search", map[string]any{})
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}
