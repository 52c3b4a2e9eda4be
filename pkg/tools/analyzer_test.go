package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
)

type fakeLLM struct {
	lastInput *llm.GenerateInput
	output    *llm.GenerateOutput
	err       error
}

func (f *fakeLLM) Generate(_ context.Context, input *llm.GenerateInput) (*llm.GenerateOutput, error) {
	f.lastInput = input
	return f.output, f.err
}

func (f *fakeLLM) Close() error { return nil }

func TestAnalyzerCall(t *testing.T) {
	t.Run("returns sentinel evidence", func(t *testing.T) {
		fake := &fakeLLM{output: &llm.GenerateOutput{Content: "analysis text"}}
		adapter := NewAnalyzerAdapter(fake, config.LLMConfig{Model: "gpt-4o-mini"})

		res, err := adapter.Invoke(context.Background(), "call", map[string]any{
			"prompt":   "compare the findings",
			"evidence": "- item one\n- item two",
		})
		require.NoError(t, err)
		require.Len(t, res.Evidence, 1)
		assert.Equal(t, evidence.ToolLLMAnalysis, res.Evidence[0].Tool)
		assert.Equal(t, "analysis text", res.Evidence[0].Snippet)

		require.Len(t, fake.lastInput.Messages, 2)
		assert.Contains(t, fake.lastInput.Messages[1].Content, "compare the findings")
		assert.Contains(t, fake.lastInput.Messages[1].Content, "item one")
	})

	t.Run("as_value returns structured value", func(t *testing.T) {
		fake := &fakeLLM{output: &llm.GenerateOutput{Content: "plain value"}}
		adapter := NewAnalyzerAdapter(fake, config.LLMConfig{Model: "gpt-4o-mini"})

		res, err := adapter.Invoke(context.Background(), "call", map[string]any{
			"prompt":   "extract the name",
			"as_value": true,
		})
		require.NoError(t, err)
		assert.Nil(t, res.Evidence)
		assert.Equal(t, "plain value", res.Value)
	})

	t.Run("prompt is required", func(t *testing.T) {
		adapter := NewAnalyzerAdapter(&fakeLLM{}, config.LLMConfig{Model: "gpt-4o-mini"})
		_, err := adapter.Invoke(context.Background(), "call", map[string]any{})
		require.Error(t, err)
		assert.False(t, IsRetryable(err))
	})

	t.Run("provider errors carry retryability", func(t *testing.T) {
		fake := &fakeLLM{err: errors.New("bad prompt")}
		adapter := NewAnalyzerAdapter(fake, config.LLMConfig{Model: "gpt-4o-mini"})
		_, err := adapter.Invoke(context.Background(), "call", map[string]any{"prompt": "p"})
		require.Error(t, err)
		assert.False(t, IsRetryable(err))
	})

	t.Run("unknown method", func(t *testing.T) {
		adapter := NewAnalyzerAdapter(&fakeLLM{}, config.LLMConfig{Model: "gpt-4o-mini"})
		_, err := adapter.Invoke(context.Background(), "summarize", nil)
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})
}
