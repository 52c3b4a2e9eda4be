package config

import "dario.cat/mergo"

// LLMConfig configures one LLM call site: model, sampling, and budget.
// Strategies may override per phase; unset fields fall back to defaults.
type LLMConfig struct {
	Model       string   `yaml:"model,omitempty" json:"model,omitempty"`
	Temperature *float32 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
}

// defaultLLM is the built-in per-phase tuning. Scope and QC use the cheap
// model; finalize gets a larger completion budget.
func defaultLLM() map[Phase]LLMConfig {
	return map[Phase]LLMConfig{
		PhaseScope:    {Model: "gpt-4o-mini", MaxTokens: intPtr(1024)},
		PhaseFill:     {Model: "gpt-4o-mini", MaxTokens: intPtr(1024)},
		PhaseResearch: {Model: "gpt-4o-mini", MaxTokens: intPtr(512)},
		PhaseFinalize: {Model: "gpt-4o", MaxTokens: intPtr(4096)},
		PhaseQC:       {Model: "gpt-4o-mini", MaxTokens: intPtr(1024)},
	}
}

// ResolveLLM merges a strategy-level override onto the phase default.
// Override fields win; unset fields keep the default.
func (c *Config) ResolveLLM(phase Phase, override *LLMConfig) LLMConfig {
	resolved := c.LLMDefaults[phase]
	if override != nil {
		merged := *override
		// mergo fills zero-valued fields of merged from resolved.
		_ = mergo.Merge(&merged, resolved)
		resolved = merged
	}
	return resolved
}

func intPtr(v int) *int { return &v }
