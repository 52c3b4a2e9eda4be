// Package evidence implements the evidence pipeline: normalization of raw
// adapter records, URL canonicalization, order-preserving deduplication,
// tunable scoring, and budget trimming.
package evidence

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxSnippetLen is the hard cap applied to snippets during normalization.
const MaxSnippetLen = 500

// Sentinel tool names. Evidence produced by these tools carries no web URL;
// it is excluded from diversity counts but may back citations.
const (
	ToolLLMAnalysis = "llm_analysis_result"
	ToolExaAnswer   = "exa_answer"
)

// IsSentinelTool reports whether the tool produces sentinel-URL evidence.
func IsSentinelTool(tool string) bool {
	return tool == ToolLLMAnalysis || tool == ToolExaAnswer
}

// Evidence is a normalized record of a retrieved source. The field set is
// closed — adapters must not attach extra metadata outside Raw.
type Evidence struct {
	URL         string     `json:"url"`
	Title       string     `json:"title,omitempty"`
	Snippet     string     `json:"snippet,omitempty"`
	Publisher   string     `json:"publisher,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Tool        string     `json:"tool"`
	Score       float64    `json:"score"`

	// Raw is the opaque tool payload. Pipeline-lifetime only, never persisted.
	Raw any `json:"-"`
}

// Normalize builds an Evidence from a raw adapter record. The url field is
// required unless the tool is a sentinel; snippets are truncated to
// MaxSnippetLen; dates are parsed best-effort (RFC3339, then date-only).
func Normalize(raw map[string]any, tool string) (Evidence, error) {
	ev := Evidence{Tool: tool, Raw: raw}

	if u, _ := raw["url"].(string); u != "" {
		ev.URL = CanonicalizeURL(u)
	}
	if ev.URL == "" && !IsSentinelTool(tool) {
		return Evidence{}, fmt.Errorf("evidence from tool %q has no url", tool)
	}

	ev.Title, _ = raw["title"].(string)
	ev.Publisher, _ = raw["publisher"].(string)
	if ev.Publisher == "" {
		ev.Publisher = hostOf(ev.URL)
	}

	if snippet, _ := raw["snippet"].(string); snippet != "" {
		if len(snippet) > MaxSnippetLen {
			cut := MaxSnippetLen
			// Back up to a rune boundary so multi-byte characters survive.
			for cut > 0 && !utf8.RuneStart(snippet[cut]) {
				cut--
			}
			snippet = snippet[:cut]
		}
		ev.Snippet = snippet
	}

	if dateStr, _ := raw["published_at"].(string); dateStr != "" {
		if ts, ok := parseDate(dateStr); ok {
			ev.PublishedAt = &ts
		}
	}

	if score, ok := raw["score"].(float64); ok && score > 0 {
		ev.Score = score
	}

	return ev, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// trackingParams are query keys stripped during canonicalization.
var trackingParams = map[string]bool{
	"ref":    true,
	"fbclid": true,
	"gclid":  true,
}

// CanonicalizeURL produces the dedupe key form of a URL: lowercase scheme
// and host, default ports and fragment stripped, tracking query params
// removed, trailing slash trimmed unless the path is "/".
func CanonicalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return strings.TrimSpace(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if (u.Scheme == "http" && strings.HasSuffix(u.Host, ":80")) ||
		(u.Scheme == "https" && strings.HasSuffix(u.Host, ":443")) {
		u.Host = u.Host[:strings.LastIndexByte(u.Host, ':')]
	}

	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if trackingParams[key] || strings.HasPrefix(key, "utm_") {
				q.Del(key)
			}
		}
		u.RawQuery = q.Encode()
	}

	if len(u.Path) > 1 && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimRight(u.Path, "/")
	}

	return u.String()
}

// Store accumulates evidence across pipeline steps, deduplicating by
// canonical URL while preserving first-arrival order. Not safe for
// concurrent use — a workflow owns its store exclusively.
type Store struct {
	byURL map[string]int
	items []Evidence
}

// NewStore creates an empty evidence store.
func NewStore() *Store {
	return &Store{byURL: make(map[string]int)}
}

// Merge folds incoming records into the store. On a canonical-URL collision
// the first occurrence keeps its metadata; the merged record takes the
// maximum score and the longest non-empty snippet. Sentinel records never
// collide with each other (each one is distinct analysis text).
func (s *Store) Merge(records ...Evidence) {
	for _, rec := range records {
		if rec.URL == "" {
			s.items = append(s.items, rec)
			continue
		}
		key := CanonicalizeURL(rec.URL)
		if idx, seen := s.byURL[key]; seen {
			existing := &s.items[idx]
			if rec.Score > existing.Score {
				existing.Score = rec.Score
			}
			if len(rec.Snippet) > len(existing.Snippet) {
				existing.Snippet = rec.Snippet
			}
			continue
		}
		rec.URL = key
		s.byURL[key] = len(s.items)
		s.items = append(s.items, rec)
	}
}

// Items returns the deduplicated evidence in arrival order.
func (s *Store) Items() []Evidence {
	out := make([]Evidence, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.items) }

// NonSentinelCount counts records with a real web URL.
func (s *Store) NonSentinelCount() int {
	n := 0
	for _, ev := range s.items {
		if !IsSentinelTool(ev.Tool) {
			n++
		}
	}
	return n
}
