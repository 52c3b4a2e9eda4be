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

const sonarName = "sonar"

// SonarAdapter calls the Perplexity Sonar API. The endpoint is
// OpenAI-compatible but extends responses with citations and search_results,
// so the adapter speaks REST directly rather than going through the generic
// chat client.
type SonarAdapter struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

// NewSonarAdapter builds the sonar adapter. baseURL defaults to the public
// Perplexity API when empty; model defaults to "sonar".
func NewSonarAdapter(apiKey, baseURL, model string, client *http.Client, logger *slog.Logger) *SonarAdapter {
	if baseURL == "" {
		baseURL = "https://api.perplexity.ai"
	}
	if model == "" {
		model = "sonar"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SonarAdapter{apiKey: apiKey, baseURL: baseURL, model: model, client: client, logger: logger}
}

// Name implements Adapter.
func (a *SonarAdapter) Name() string { return sonarName }

// Methods implements Adapter.
func (a *SonarAdapter) Methods() []string {
	return []string{"search", "overview"}
}

type sonarRequest struct {
	Model    string         `json:"model"`
	Messages []sonarMessage `json:"messages"`
}

type sonarMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type sonarSearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}

type sonarResponse struct {
	Choices []struct {
		Message sonarMessage `json:"message"`
	} `json:"choices"`
	Citations     []string            `json:"citations"`
	SearchResults []sonarSearchResult `json:"search_results"`
}

// Invoke implements Adapter. Both methods issue a grounded completion; search
// returns the cited sources as evidence, overview additionally carries the
// synthesized text as a sentinel analysis record.
func (a *SonarAdapter) Invoke(ctx context.Context, method string, inputs map[string]any) (Result, error) {
	switch method {
	case "search", "overview":
	default:
		return Result{}, fmt.Errorf("%w: %q has no method %q", ErrMethodNotFound, sonarName, method)
	}

	query := stringInput(inputs, "query")
	if query == "" {
		return Result{}, NewToolError(sonarName, method, KindBadRequest, false,
			fmt.Errorf("query input is required"))
	}

	system := stringInput(inputs, "system_prompt")
	if system == "" {
		system = "Be precise and concise. Cite sources for every claim."
	}
	model := stringInput(inputs, "model")
	if model == "" {
		model = a.model
	}

	reqBody := sonarRequest{
		Model: model,
		Messages: []sonarMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: query},
		},
	}

	var resp sonarResponse
	if err := a.post(ctx, method, &reqBody, &resp); err != nil {
		return Result{}, err
	}

	items := a.normalizeSources(resp)

	if method == "overview" && len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		ev, err := evidence.Normalize(map[string]any{
			"snippet": resp.Choices[0].Message.Content,
			"title":   "Sonar overview",
		}, evidence.ToolLLMAnalysis)
		if err == nil {
			items = append(items, ev)
		}
	}

	return EvidenceResult(items), nil
}

func (a *SonarAdapter) normalizeSources(resp sonarResponse) []evidence.Evidence {
	items := make([]evidence.Evidence, 0, len(resp.SearchResults)+len(resp.Citations))
	seen := make(map[string]bool)

	for _, r := range resp.SearchResults {
		raw := map[string]any{
			"url":          r.URL,
			"title":        r.Title,
			"published_at": r.Date,
		}
		ev, err := evidence.Normalize(raw, sonarName)
		if err != nil {
			a.logger.Debug("skipping malformed sonar result", "url", r.URL, "error", err)
			continue
		}
		seen[ev.URL] = true
		items = append(items, ev)
	}

	// Bare citation URLs that did not appear in search_results.
	for _, u := range resp.Citations {
		ev, err := evidence.Normalize(map[string]any{"url": u}, sonarName)
		if err != nil || seen[ev.URL] {
			continue
		}
		seen[ev.URL] = true
		items = append(items, ev)
	}
	return items
}

func (a *SonarAdapter) post(ctx context.Context, method string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewToolError(sonarName, method, KindBadRequest, false, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return NewToolError(sonarName, method, KindBadRequest, false, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return NewToolError(sonarName, method, KindNetwork, true, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		kind, retryable := ClassifyHTTP(resp.StatusCode)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewToolError(sonarName, method, kind, retryable,
			fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewToolError(sonarName, method, KindProvider, false, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
