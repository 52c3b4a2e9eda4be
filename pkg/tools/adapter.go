// Package tools implements the provider adapter registry: named adapters
// (exa, sonar, llm_analyzer) dispatched by "provider.method" references from
// strategy plans, with retry and per-adapter rate limiting at the dispatch
// layer.
package tools

import (
	"context"

	"github.com/scout-research/scout/pkg/evidence"
)

// Result is the outcome of an adapter invocation: either a normalized
// evidence list or a structured value (string, mapping, sequence), never
// both.
type Result struct {
	Evidence []evidence.Evidence
	Value    any
}

// EvidenceResult wraps an evidence list as a Result.
func EvidenceResult(items []evidence.Evidence) Result {
	return Result{Evidence: items}
}

// ValueResult wraps a structured value as a Result.
func ValueResult(v any) Result {
	return Result{Value: v}
}

// IsEvidence reports whether the result carries evidence.
func (r Result) IsEvidence() bool { return r.Evidence != nil }

// Adapter is the contract a provider adapter implements.
type Adapter interface {
	// Name returns the adapter's registry name, e.g. "exa".
	Name() string

	// Methods returns the method names this adapter dispatches.
	Methods() []string

	// Invoke executes one method with templated inputs. The context carries
	// the per-call deadline. Failures are returned as *ToolError.
	Invoke(ctx context.Context, method string, inputs map[string]any) (Result, error)
}

func hasMethod(a Adapter, method string) bool {
	for _, m := range a.Methods() {
		if m == method {
			return true
		}
	}
	return false
}

// stringInput extracts a string input by key, tolerating missing values.
func stringInput(inputs map[string]any, key string) string {
	if v, ok := inputs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// intInput extracts an integer input by key, falling back to def.
func intInput(inputs map[string]any, key string, def int) int {
	switch v := inputs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// stringSliceInput extracts a []string input by key.
func stringSliceInput(inputs map[string]any, key string) []string {
	switch v := inputs[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
