package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient captures the subset of the go-openai client used by the adapter.
// Both OpenAI and Perplexity expose this API surface; Perplexity is reached by
// pointing BaseURL at https://api.perplexity.ai.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// OpenAIClient implements Client via the OpenAI Chat Completions API.
type OpenAIClient struct {
	chat    ChatClient
	timeout time.Duration
}

// NewOpenAIClient constructs a client for the given API key and optional
// base URL override. A positive timeout bounds each Generate call so a hung
// provider cannot eat the whole workflow deadline.
func NewOpenAIClient(apiKey, baseURL string, timeout time.Duration) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{chat: openai.NewClientWithConfig(cfg), timeout: timeout}, nil
}

// NewOpenAIClientFromChat wraps an existing ChatClient (useful for testing).
func NewOpenAIClientFromChat(chat ChatClient) *OpenAIClient {
	return &OpenAIClient{chat: chat}
}

// Generate implements Client.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if len(input.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	if input.Config.Model == "" {
		return nil, errors.New("model is required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	request := openai.ChatCompletionRequest{
		Model:    input.Config.Model,
		Messages: encodeMessages(input.Messages),
		Tools:    encodeTools(input.Tools),
	}
	if input.Config.Temperature != nil {
		request.Temperature = *input.Config.Temperature
	}
	if input.Config.MaxTokens != nil {
		request.MaxTokens = *input.Config.MaxTokens
	}
	if input.JSONMode {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	if input.ForceTool != "" {
		if !hasToolDefinition(input.Tools, input.ForceTool) {
			return nil, fmt.Errorf("forced tool %q does not match any tool definition", input.ForceTool)
		}
		request.ToolChoice = openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: input.ForceTool},
		}
	}

	resp, err := c.chat.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	out := &GenerateOutput{
		Content: choice.Message.Content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out, nil
}

// Close implements Client. The go-openai client holds no persistent
// connections, so this is a no-op.
func (c *OpenAIClient) Close() error { return nil }

func encodeMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		out = append(out, msg)
	}
	return out
}

func encodeTools(tools []ToolDefinition) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  jsonSchema(t.ParametersSchema),
			},
		})
	}
	return out
}

func hasToolDefinition(tools []ToolDefinition, name string) bool {
	for _, t := range tools {
		if t.Name == name {
			return true
		}
	}
	return false
}

// jsonSchema wraps a raw JSON Schema string so go-openai marshals it verbatim.
type jsonSchema string

func (s jsonSchema) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte(`{"type":"object","properties":{}}`), nil
	}
	return []byte(s), nil
}

// IsRetryable reports whether an error from Generate represents a transient
// provider failure (rate limiting, server errors, network timeouts).
func IsRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
