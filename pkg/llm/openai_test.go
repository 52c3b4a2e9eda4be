package llm

import (
	"context"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
)

type fakeChat struct {
	lastCtx     context.Context
	lastRequest openai.ChatCompletionRequest
	response    openai.ChatCompletionResponse
	err         error
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastCtx = ctx
	f.lastRequest = req
	return f.response, f.err
}

func textResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: "assistant", Content: content}},
		},
		Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("returns content and usage", func(t *testing.T) {
		fake := &fakeChat{response: textResponse("hello")}
		client := NewOpenAIClientFromChat(fake)

		out, err := client.Generate(context.Background(), &GenerateInput{
			Messages: []Message{{Role: "user", Content: "hi"}},
			Config:   config.LLMConfig{Model: "gpt-4o-mini"},
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", out.Content)
		assert.Equal(t, 15, out.Usage.TotalTokens)
		assert.Equal(t, "gpt-4o-mini", fake.lastRequest.Model)
	})

	t.Run("requires messages", func(t *testing.T) {
		client := NewOpenAIClientFromChat(&fakeChat{})
		_, err := client.Generate(context.Background(), &GenerateInput{
			Config: config.LLMConfig{Model: "gpt-4o-mini"},
		})
		assert.Error(t, err)
	})

	t.Run("requires model", func(t *testing.T) {
		client := NewOpenAIClientFromChat(&fakeChat{})
		_, err := client.Generate(context.Background(), &GenerateInput{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		assert.Error(t, err)
	})

	t.Run("forced tool sets tool choice", func(t *testing.T) {
		fake := &fakeChat{response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role: "assistant",
					ToolCalls: []openai.ToolCall{{
						ID:       "call_1",
						Type:     openai.ToolTypeFunction,
						Function: openai.FunctionCall{Name: "set_scope", Arguments: `{"category":"technology"}`},
					}},
				},
			}},
		}}
		client := NewOpenAIClientFromChat(fake)

		out, err := client.Generate(context.Background(), &GenerateInput{
			Messages:  []Message{{Role: "user", Content: "classify"}},
			Config:    config.LLMConfig{Model: "gpt-4o-mini"},
			Tools:     []ToolDefinition{{Name: "set_scope", ParametersSchema: `{"type":"object"}`}},
			ForceTool: "set_scope",
		})
		require.NoError(t, err)
		require.Len(t, out.ToolCalls, 1)
		assert.Equal(t, "set_scope", out.ToolCalls[0].Name)

		tc, ok := fake.lastRequest.ToolChoice.(openai.ToolChoice)
		require.True(t, ok)
		assert.Equal(t, "set_scope", tc.Function.Name)
	})

	t.Run("forced tool must be defined", func(t *testing.T) {
		client := NewOpenAIClientFromChat(&fakeChat{})
		_, err := client.Generate(context.Background(), &GenerateInput{
			Messages:  []Message{{Role: "user", Content: "classify"}},
			Config:    config.LLMConfig{Model: "gpt-4o-mini"},
			ForceTool: "set_scope",
		})
		assert.Error(t, err)
	})

	t.Run("bounds each call with the configured timeout", func(t *testing.T) {
		fake := &fakeChat{response: textResponse("hello")}
		client := NewOpenAIClientFromChat(fake)
		client.timeout = time.Minute

		_, err := client.Generate(context.Background(), &GenerateInput{
			Messages: []Message{{Role: "user", Content: "hi"}},
			Config:   config.LLMConfig{Model: "gpt-4o-mini"},
		})
		require.NoError(t, err)

		deadline, ok := fake.lastCtx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("zero timeout leaves the caller's context alone", func(t *testing.T) {
		fake := &fakeChat{response: textResponse("hello")}
		client := NewOpenAIClientFromChat(fake)

		_, err := client.Generate(context.Background(), &GenerateInput{
			Messages: []Message{{Role: "user", Content: "hi"}},
			Config:   config.LLMConfig{Model: "gpt-4o-mini"},
		})
		require.NoError(t, err)

		_, ok := fake.lastCtx.Deadline()
		assert.False(t, ok)
	})

	t.Run("json mode sets response format", func(t *testing.T) {
		fake := &fakeChat{response: textResponse(`{"ok":true}`)}
		client := NewOpenAIClientFromChat(fake)

		_, err := client.Generate(context.Background(), &GenerateInput{
			Messages: []Message{{Role: "user", Content: "hi"}},
			Config:   config.LLMConfig{Model: "gpt-4o-mini"},
			JSONMode: true,
		})
		require.NoError(t, err)
		require.NotNil(t, fake.lastRequest.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, fake.lastRequest.ResponseFormat.Type)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&openai.APIError{HTTPStatusCode: 429}))
	assert.True(t, IsRetryable(&openai.APIError{HTTPStatusCode: 503}))
	assert.False(t, IsRetryable(&openai.APIError{HTTPStatusCode: 400}))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(assert.AnError))
}
