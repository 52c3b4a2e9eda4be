package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
)

const analyzerName = "llm_analyzer"

// AnalyzerAdapter runs an LLM analysis over the caller-provided prompt and
// optional evidence context. Its output is carried as a sentinel evidence
// record so downstream phases can cite it.
type AnalyzerAdapter struct {
	client llm.Client
	cfg    config.LLMConfig
}

// NewAnalyzerAdapter builds the llm_analyzer adapter with the given default
// model configuration.
func NewAnalyzerAdapter(client llm.Client, cfg config.LLMConfig) *AnalyzerAdapter {
	return &AnalyzerAdapter{client: client, cfg: cfg}
}

// Name implements Adapter.
func (a *AnalyzerAdapter) Name() string { return analyzerName }

// Methods implements Adapter.
func (a *AnalyzerAdapter) Methods() []string { return []string{"call"} }

// Invoke implements Adapter. Inputs:
//   - prompt (required): the analysis instruction.
//   - context: optional free text appended to the prompt.
//   - evidence: optional pre-rendered evidence digest.
//   - as_value: when truthy, the analysis text is returned as a structured
//     value instead of a sentinel evidence record.
func (a *AnalyzerAdapter) Invoke(ctx context.Context, method string, inputs map[string]any) (Result, error) {
	if method != "call" {
		return Result{}, fmt.Errorf("%w: %q has no method %q", ErrMethodNotFound, analyzerName, method)
	}

	prompt := stringInput(inputs, "prompt")
	if prompt == "" {
		return Result{}, NewToolError(analyzerName, method, KindBadRequest, false,
			fmt.Errorf("prompt input is required"))
	}

	var sb strings.Builder
	sb.WriteString(prompt)
	if extra := stringInput(inputs, "context"); extra != "" {
		sb.WriteString("\n\nContext:\n")
		sb.WriteString(extra)
	}
	if digest := stringInput(inputs, "evidence"); digest != "" {
		sb.WriteString("\n\nEvidence:\n")
		sb.WriteString(digest)
	}

	cfg := a.cfg
	if maxTokens := intInput(inputs, "max_tokens", 0); maxTokens > 0 {
		cfg.MaxTokens = &maxTokens
	}

	out, err := a.client.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: "You are a research analyst. Answer directly from the provided material."},
			{Role: "user", Content: sb.String()},
		},
		Config: cfg,
	})
	if err != nil {
		retryable := llm.IsRetryable(err)
		kind := KindProvider
		if !retryable {
			kind = KindBadRequest
		}
		return Result{}, NewToolError(analyzerName, method, kind, retryable, err)
	}

	if asValue, ok := inputs["as_value"].(bool); ok && asValue {
		return ValueResult(out.Content), nil
	}

	ev, err := evidence.Normalize(map[string]any{
		"snippet": out.Content,
		"title":   "LLM analysis",
	}, evidence.ToolLLMAnalysis)
	if err != nil {
		return Result{}, NewToolError(analyzerName, method, KindProvider, false, err)
	}
	return EvidenceResult([]evidence.Evidence{ev}), nil
}
