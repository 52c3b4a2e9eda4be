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

func TestExaSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "quantum computing", body["query"])

		_ = json.NewEncoder(w).Encode(exaSearchResponse{
			Results: []exaSearchResult{
				{URL: "https://example.com/a?utm_source=x", Title: "A", Text: "snippet a", PublishedDate: "2026-08-01", Score: 0.9},
				{URL: "", Title: "no url"},
			},
		})
	}))
	defer server.Close()

	adapter := NewExaAdapter("test-key", server.URL, server.Client(), nil)
	res, err := adapter.Invoke(context.Background(), "search", map[string]any{"query": "quantum computing"})
	require.NoError(t, err)

	// The url-less result is dropped during normalization.
	require.Len(t, res.Evidence, 1)
	assert.Equal(t, "https://example.com/a", res.Evidence[0].URL)
	assert.Equal(t, "exa", res.Evidence[0].Tool)
}

func TestExaAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/answer", r.URL.Path)
		_ = json.NewEncoder(w).Encode(exaAnswerResponse{
			Answer:    "the answer",
			Citations: []exaSearchResult{{URL: "https://example.com/src", Title: "Src"}},
		})
	}))
	defer server.Close()

	adapter := NewExaAdapter("test-key", server.URL, server.Client(), nil)
	res, err := adapter.Invoke(context.Background(), "answer", map[string]any{"query": "q"})
	require.NoError(t, err)
	require.Len(t, res.Evidence, 2)
	assert.Equal(t, evidence.ToolExaAnswer, res.Evidence[1].Tool)
	assert.Empty(t, res.Evidence[1].URL)
}

func TestExaErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
		exhausted bool
	}{
		{"server error is retryable", 500, true, false},
		{"rate limit is retryable", 429, true, false},
		{"payment required is exhausted", 402, false, true},
		{"bad request is permanent", 400, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			adapter := NewExaAdapter("test-key", server.URL, server.Client(), nil)
			_, err := adapter.Invoke(context.Background(), "search", map[string]any{"query": "q"})
			require.Error(t, err)
			assert.Equal(t, tt.retryable, IsRetryable(err))
			assert.Equal(t, tt.exhausted, IsExhausted(err))
		})
	}
}

func TestExaUnknownMethod(t *testing.T) {
	adapter := NewExaAdapter("test-key", "http://unused", nil, nil)
	_, err := adapter.Invoke(context.Background(), "summarize", nil)
	assert.ErrorIs(t, err, ErrMethodNotFound)
}
