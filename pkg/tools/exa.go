package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/scout-research/scout/pkg/evidence"
)

const exaName = "exa"

// ExaAdapter calls the Exa search API over REST.
type ExaAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewExaAdapter builds the exa adapter. baseURL defaults to the public API
// when empty.
func NewExaAdapter(apiKey, baseURL string, client *http.Client, logger *slog.Logger) *ExaAdapter {
	if baseURL == "" {
		baseURL = "https://api.exa.ai"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExaAdapter{apiKey: apiKey, baseURL: baseURL, client: client, logger: logger}
}

// Name implements Adapter.
func (a *ExaAdapter) Name() string { return exaName }

// Methods implements Adapter.
func (a *ExaAdapter) Methods() []string {
	return []string{"search", "contents", "find_similar", "answer"}
}

type exaSearchResult struct {
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	PublishedDate string  `json:"publishedDate"`
	Author        string  `json:"author"`
	Text          string  `json:"text"`
	Score         float64 `json:"score"`
}

type exaSearchResponse struct {
	Results []exaSearchResult `json:"results"`
}

type exaAnswerResponse struct {
	Answer    string            `json:"answer"`
	Citations []exaSearchResult `json:"citations"`
}

// Invoke implements Adapter.
func (a *ExaAdapter) Invoke(ctx context.Context, method string, inputs map[string]any) (Result, error) {
	switch method {
	case "search":
		return a.search(ctx, inputs, "/search")
	case "find_similar":
		return a.findSimilar(ctx, inputs)
	case "contents":
		return a.contents(ctx, inputs)
	case "answer":
		return a.answer(ctx, inputs)
	default:
		return Result{}, fmt.Errorf("%w: %q has no method %q", ErrMethodNotFound, exaName, method)
	}
}

func (a *ExaAdapter) search(ctx context.Context, inputs map[string]any, path string) (Result, error) {
	body := map[string]any{
		"query":      stringInput(inputs, "query"),
		"numResults": intInput(inputs, "num_results", 10),
		"contents":   map[string]any{"text": map[string]any{"maxCharacters": evidence.MaxSnippetLen}},
	}
	if t := stringInput(inputs, "type"); t != "" {
		body["type"] = t
	}
	if domains := stringSliceInput(inputs, "include_domains"); len(domains) > 0 {
		body["includeDomains"] = domains
	}
	if start := stringInput(inputs, "start_published_date"); start != "" {
		body["startPublishedDate"] = start
	}

	var resp exaSearchResponse
	if err := a.post(ctx, "search", path, body, &resp); err != nil {
		return Result{}, err
	}
	return EvidenceResult(a.normalizeResults(resp.Results)), nil
}

func (a *ExaAdapter) findSimilar(ctx context.Context, inputs map[string]any) (Result, error) {
	body := map[string]any{
		"url":        stringInput(inputs, "url"),
		"numResults": intInput(inputs, "num_results", 10),
		"contents":   map[string]any{"text": map[string]any{"maxCharacters": evidence.MaxSnippetLen}},
	}

	var resp exaSearchResponse
	if err := a.post(ctx, "find_similar", "/findSimilar", body, &resp); err != nil {
		return Result{}, err
	}
	return EvidenceResult(a.normalizeResults(resp.Results)), nil
}

func (a *ExaAdapter) contents(ctx context.Context, inputs map[string]any) (Result, error) {
	urls := stringSliceInput(inputs, "urls")
	if len(urls) == 0 {
		if u := stringInput(inputs, "url"); u != "" {
			urls = []string{u}
		}
	}
	body := map[string]any{
		"urls": urls,
		"text": map[string]any{"maxCharacters": evidence.MaxSnippetLen},
	}

	var resp exaSearchResponse
	if err := a.post(ctx, "contents", "/contents", body, &resp); err != nil {
		return Result{}, err
	}
	return EvidenceResult(a.normalizeResults(resp.Results)), nil
}

// answer calls Exa's generated-answer endpoint. The synthesized answer is
// carried as a sentinel evidence record alongside the cited sources.
func (a *ExaAdapter) answer(ctx context.Context, inputs map[string]any) (Result, error) {
	body := map[string]any{
		"query": stringInput(inputs, "query"),
	}

	var resp exaAnswerResponse
	if err := a.post(ctx, "answer", "/answer", body, &resp); err != nil {
		return Result{}, err
	}

	items := a.normalizeResults(resp.Citations)
	if resp.Answer != "" {
		ev, err := evidence.Normalize(map[string]any{
			"snippet": resp.Answer,
			"title":   "Exa answer",
		}, evidence.ToolExaAnswer)
		if err == nil {
			items = append(items, ev)
		}
	}
	return EvidenceResult(items), nil
}

func (a *ExaAdapter) normalizeResults(results []exaSearchResult) []evidence.Evidence {
	items := make([]evidence.Evidence, 0, len(results))
	for _, r := range results {
		raw := map[string]any{
			"url":          r.URL,
			"title":        r.Title,
			"snippet":      r.Text,
			"published_at": r.PublishedDate,
			"score":        r.Score,
		}
		ev, err := evidence.Normalize(raw, exaName)
		if err != nil {
			a.logger.Debug("skipping malformed exa result", "url", r.URL, "error", err)
			continue
		}
		items = append(items, ev)
	}
	return items
}

func (a *ExaAdapter) post(ctx context.Context, method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewToolError(exaName, method, KindBadRequest, false, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return NewToolError(exaName, method, KindBadRequest, false, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return NewToolError(exaName, method, KindNetwork, true, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		kind, retryable := ClassifyHTTP(resp.StatusCode)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewToolError(exaName, method, kind, retryable,
			fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewToolError(exaName, method, KindProvider, false, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
