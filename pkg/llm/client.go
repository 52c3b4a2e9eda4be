// Package llm provides the LLM client interface and its OpenAI-compatible
// implementation. Phase logic depends only on the Client interface so tests
// can substitute deterministic fakes.
package llm

import (
	"context"

	"github.com/scout-research/scout/pkg/config"
)

// Client is the interface for calling a chat-completion LLM provider.
type Client interface {
	// Generate sends a conversation to the LLM and returns the completed
	// response. Tool calls requested by the model are returned on the
	// output, not executed.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Close releases any underlying connections.
	Close() error
}

// GenerateInput is a single Generate request.
type GenerateInput struct {
	Messages []Message
	Config   config.LLMConfig
	Tools    []ToolDefinition // nil = no tools
	// ForceTool names a tool the model must call. Empty means auto.
	ForceTool string
	// JSONMode requests a JSON-object response format.
	JSONMode bool
}

// Message is a single conversation turn.
type Message struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // For assistant messages
	ToolCallID string     // For tool result messages
	ToolName   string     // For tool result messages
}

// ToolDefinition describes a tool available to the LLM.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall represents an LLM's request to call a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// GenerateOutput is the completed response for a Generate request.
type GenerateOutput struct {
	Content   string
	ToolCalls []ToolCall
	Usage     Usage
}

// Usage reports token consumption for one LLM call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
