package evidence

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases scheme and host", "HTTPS://Example.COM/Path", "https://example.com/Path"},
		{"strips default https port", "https://example.com:443/a", "https://example.com/a"},
		{"strips default http port", "http://example.com:80/a", "http://example.com/a"},
		{"keeps non-default port", "https://example.com:8443/a", "https://example.com:8443/a"},
		{"strips fragment", "https://example.com/a#section", "https://example.com/a"},
		{"strips utm params", "https://example.com/a?utm_source=x&utm_medium=y&id=1", "https://example.com/a?id=1"},
		{"strips ref and clids", "https://example.com/a?ref=tw&fbclid=f&gclid=g&q=k", "https://example.com/a?q=k"},
		{"trims trailing slash", "https://example.com/news/", "https://example.com/news"},
		{"keeps root slash", "https://example.com/", "https://example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizeURL(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("truncates long snippets", func(t *testing.T) {
		long := make([]byte, 800)
		for i := range long {
			long[i] = 'x'
		}
		ev, err := Normalize(map[string]any{
			"url":     "https://example.com/a",
			"snippet": string(long),
		}, "exa")
		require.NoError(t, err)
		assert.Len(t, ev.Snippet, MaxSnippetLen)
	})

	t.Run("snippet truncation never splits a rune", func(t *testing.T) {
		// One ascii byte then two-byte runes, so the cap lands mid-rune.
		long := "x" + strings.Repeat("é", 300)
		ev, err := Normalize(map[string]any{
			"url":     "https://example.com/a",
			"snippet": long,
		}, "exa")
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(ev.Snippet))
		assert.LessOrEqual(t, len(ev.Snippet), MaxSnippetLen)
	})

	t.Run("requires url for non-sentinel tools", func(t *testing.T) {
		_, err := Normalize(map[string]any{"title": "no url"}, "sonar")
		assert.Error(t, err)
	})

	t.Run("sentinel tools may omit url", func(t *testing.T) {
		ev, err := Normalize(map[string]any{"snippet": "direct answer"}, ToolExaAnswer)
		require.NoError(t, err)
		assert.Empty(t, ev.URL)
		assert.True(t, IsSentinelTool(ev.Tool))
	})

	t.Run("parses dates", func(t *testing.T) {
		ev, err := Normalize(map[string]any{
			"url":          "https://example.com/a",
			"published_at": "2026-08-20",
		}, "exa")
		require.NoError(t, err)
		require.NotNil(t, ev.PublishedAt)
		assert.Equal(t, 2026, ev.PublishedAt.Year())
	})

	t.Run("derives publisher from host", func(t *testing.T) {
		ev, err := Normalize(map[string]any{"url": "https://www.reuters.com/article"}, "exa")
		require.NoError(t, err)
		assert.Equal(t, "reuters.com", ev.Publisher)
	})
}

func TestStore_MergeDedupes(t *testing.T) {
	s := NewStore()
	s.Merge(
		Evidence{URL: "https://example.com/a", Tool: "exa", Score: 1.0, Snippet: "short"},
		Evidence{URL: "https://example.com/a/", Tool: "sonar", Score: 3.0, Snippet: "a much longer snippet"},
		Evidence{URL: "https://example.com/b", Tool: "exa", Score: 2.0},
	)

	require.Equal(t, 2, s.Len())
	items := s.Items()
	// First occurrence keeps its metadata, takes max score + longest snippet.
	assert.Equal(t, "exa", items[0].Tool)
	assert.Equal(t, 3.0, items[0].Score)
	assert.Equal(t, "a much longer snippet", items[0].Snippet)
}

func TestStore_OrderIndependence(t *testing.T) {
	// Merging then filtering yields the same set regardless of arrival order.
	records := []Evidence{
		{URL: "https://a.com/1", Tool: "exa", Score: 3},
		{URL: "https://b.com/2", Tool: "sonar", Score: 2},
		{URL: "https://c.com/3", Tool: "exa", Score: 1},
		{URL: "https://a.com/1?utm_source=x", Tool: "sonar", Score: 5},
	}

	reference := NewStore()
	reference.Merge(records...)
	want := Filter(reference.Items(), 3, nil)

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Evidence, len(records))
		copy(shuffled, records)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		s := NewStore()
		s.Merge(shuffled...)
		got := Filter(s.Items(), 3, nil)

		require.Len(t, got, len(want))
		gotURLs := map[string]float64{}
		for _, ev := range got {
			gotURLs[ev.URL] = ev.Score
		}
		for _, ev := range want {
			assert.Equal(t, ev.Score, gotURLs[ev.URL], "url %s", ev.URL)
		}
	}
}

func TestStore_MergeEmptyIsNoOp(t *testing.T) {
	s := NewStore()
	s.Merge()
	assert.Zero(t, s.Len())
}

func TestFilter_SortAndBudget(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-1 * time.Hour)
	old := now.Add(-72 * time.Hour)

	items := []Evidence{
		{URL: "https://old.com/a", Tool: "exa", Score: 2, PublishedAt: &old},
		{URL: "https://recent.com/a", Tool: "exa", Score: 2, PublishedAt: &recent},
		{URL: "https://undated.com/a", Tool: "exa", Score: 2},
		{URL: "", Tool: ToolLLMAnalysis, Score: 2},
		{URL: "https://top.com/a", Tool: "exa", Score: 9},
	}

	got := Filter(items, 0, nil)
	require.Len(t, got, 5)
	assert.Equal(t, "https://top.com/a", got[0].URL)
	assert.Equal(t, "https://recent.com/a", got[1].URL)
	assert.Equal(t, "https://old.com/a", got[2].URL)
	// Missing date sorts after dated; explicit source before sentinel.
	assert.Equal(t, "https://undated.com/a", got[3].URL)
	assert.Equal(t, ToolLLMAnalysis, got[4].Tool)

	trimmed := Filter(items, 2, nil)
	assert.Len(t, trimmed, 2)
}

func TestFilter_ProtectedSentinelSurvivesTrim(t *testing.T) {
	items := []Evidence{
		{URL: "https://a.com/1", Tool: "exa", Score: 9},
		{URL: "https://b.com/2", Tool: "exa", Score: 8},
		{URL: "llm://analysis/1", Tool: ToolLLMAnalysis, Score: 0.1},
	}

	got := Filter(items, 2, map[string]bool{"llm://analysis/1": true})
	require.Len(t, got, 3)
	assert.Equal(t, ToolLLMAnalysis, got[2].Tool)
}

func TestScore_Monotonicity(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-2 * time.Hour)
	stale := now.Add(-6 * 24 * time.Hour)

	p := ScoreParams{
		Now:          now,
		Window:       7 * 24 * time.Hour,
		AllowDomains: map[string]bool{"reuters.com": true},
		Weights:      DefaultWeights,
	}

	onList := Evidence{URL: "https://reuters.com/x", Publisher: "reuters.com", PublishedAt: &recent, Snippet: "s"}
	offList := Evidence{URL: "https://blog.example.com/x", Publisher: "blog.example.com", PublishedAt: &stale, Snippet: "s"}

	assert.Greater(t, Score(onList, p), Score(offList, p))
}

func TestScore_Components(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	p := ScoreParams{Now: now, Window: 24 * time.Hour, Weights: DefaultWeights}

	bare := Evidence{URL: "https://x.com/a"}
	withSnippet := Evidence{URL: "https://x.com/a", Snippet: "text"}
	assert.Equal(t, DefaultWeights.SnippetBonus, Score(withSnippet, p)-Score(bare, p))

	outside := now.Add(-48 * time.Hour)
	dated := Evidence{URL: "https://x.com/a", PublishedAt: &outside}
	assert.Equal(t, Score(bare, p), Score(dated, p), "dates outside the window add nothing")
}
