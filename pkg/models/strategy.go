// Package models defines the domain types shared across layers: the
// declarative strategy document, the workflow state composition, and the
// webhook result shapes.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scout-research/scout/pkg/config"
)

// Strategy is the declarative research blueprint, persisted as JSONB and
// authored as YAML.
type Strategy struct {
	Meta              StrategyMeta                  `yaml:"meta" json:"meta"`
	Queries           map[string]string             `yaml:"queries,omitempty" json:"queries,omitempty"`
	ToolChain         []Step                        `yaml:"tool_chain" json:"tool_chain"`
	Limits            Limits                        `yaml:"limits,omitempty" json:"limits,omitempty"`
	FanOut            FanOut                        `yaml:"fan_out,omitempty" json:"fan_out,omitempty"`
	RequiredVariables []RequiredVariable            `yaml:"required_variables,omitempty" json:"required_variables,omitempty"`
	AllowDomains      []string                      `yaml:"allow_domains,omitempty" json:"allow_domains,omitempty"`
	Render            Render                        `yaml:"render,omitempty" json:"render,omitempty"`
	Finalize          *FinalizeConfig               `yaml:"finalize,omitempty" json:"finalize,omitempty"`
	LLM               map[string]*config.LLMConfig  `yaml:"llm,omitempty" json:"llm,omitempty"`
}

// StrategyMeta identifies and classifies a strategy.
type StrategyMeta struct {
	Slug        string            `yaml:"slug" json:"slug"`
	Version     int               `yaml:"version" json:"version"`
	Category    string            `yaml:"category" json:"category"`
	TimeWindow  config.TimeWindow `yaml:"time_window" json:"time_window"`
	Depth       config.Depth      `yaml:"depth" json:"depth"`
	Priority    int               `yaml:"priority,omitempty" json:"priority,omitempty"`
	Active      *bool             `yaml:"active,omitempty" json:"active,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsActive reports whether the strategy participates in selection. Documents
// that omit the flag are active.
func (m StrategyMeta) IsActive() bool {
	return m.Active == nil || *m.Active
}

// SetActive sets the selection flag explicitly.
func (m *StrategyMeta) SetActive(active bool) {
	m.Active = &active
}

// RequiredVariable declares a variable the scope classifier must supply.
type RequiredVariable struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Limits are the per-strategy evidence and LLM budgets.
type Limits struct {
	MaxResults         int `yaml:"max_results,omitempty" json:"max_results,omitempty"`
	MaxLLMQueries      int `yaml:"max_llm_queries,omitempty" json:"max_llm_queries,omitempty"`
	MinCitations       int `yaml:"min_citations,omitempty" json:"min_citations,omitempty"`
	MinRefineThreshold int `yaml:"min_refine_threshold,omitempty" json:"min_refine_threshold,omitempty"`
}

// Render declares the output shape.
type Render struct {
	Sections      []string `yaml:"sections,omitempty" json:"sections,omitempty"`
	CitationStyle string   `yaml:"citation_style,omitempty" json:"citation_style,omitempty"`
}

// FinalizeConfig selects the finalize mode and its budget.
type FinalizeConfig struct {
	Reactive      bool   `yaml:"reactive" json:"reactive"`
	Instructions  string `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	MaxIterations int    `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty"`
}

// Fan-out modes.
const (
	FanOutNone = "none"
	FanOutTask = "task"
	FanOutVar  = "var"
)

// FanOut declares the research iteration mode. In YAML it is either the
// scalar "none"/"task" or a mapping {mode: var, var: ..., map_to: ..., limit: N}.
type FanOut struct {
	Mode  string `yaml:"mode" json:"mode"`
	Var   string `yaml:"var,omitempty" json:"var,omitempty"`
	MapTo string `yaml:"map_to,omitempty" json:"map_to,omitempty"`
	Limit int    `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// UnmarshalYAML accepts both the scalar and mapping forms.
func (f *FanOut) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Mode = value.Value
		return nil
	}
	type plain FanOut
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = FanOut(p)
	return nil
}

// UnmarshalJSON mirrors the YAML leniency for the persisted JSONB form.
func (f *FanOut) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var mode string
		if err := json.Unmarshal(data, &mode); err != nil {
			return err
		}
		f.Mode = mode
		return nil
	}
	type plain FanOut
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = FanOut(p)
	return nil
}

// Validate checks the fan-out declaration.
func (f FanOut) Validate() error {
	switch f.Mode {
	case "", FanOutNone, FanOutTask:
		return nil
	case FanOutVar:
		if f.Var == "" {
			return fmt.Errorf("fan_out mode %q requires var", FanOutVar)
		}
		return nil
	default:
		return fmt.Errorf("unknown fan_out mode %q", f.Mode)
	}
}

// Step is one entry of a strategy's tool chain — a tagged variant of the
// legacy built-in form {name, params} and the extended adapter form
// {use: "provider.method", inputs, ...}.
type Step struct {
	// Legacy form.
	Name   string         `yaml:"name,omitempty" json:"name,omitempty"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`

	// Extended form.
	Use    string         `yaml:"use,omitempty" json:"use,omitempty"`
	Inputs map[string]any `yaml:"inputs,omitempty" json:"inputs,omitempty"`

	LLMFill     []string     `yaml:"llm_fill,omitempty" json:"llm_fill,omitempty"`
	Foreach     string       `yaml:"foreach,omitempty" json:"foreach,omitempty"`
	When        string       `yaml:"when,omitempty" json:"when,omitempty"`
	SaveAs      string       `yaml:"save_as,omitempty" json:"save_as,omitempty"`
	Phase       config.Phase `yaml:"phase,omitempty" json:"phase,omitempty"`
	MaxTokens   int          `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsLegacy reports whether the step uses the built-in dispatch table.
func (s Step) IsLegacy() bool { return s.Name != "" }

// Provider and Method split the extended form's "provider.method" address.
func (s Step) Provider() string {
	provider, _, _ := strings.Cut(s.Use, ".")
	return provider
}

// Method returns the method half of the "provider.method" address.
func (s Step) Method() string {
	_, method, _ := strings.Cut(s.Use, ".")
	return method
}

// Validate checks the step's structural invariants.
func (s Step) Validate() error {
	switch {
	case s.Name != "" && s.Use != "":
		return fmt.Errorf("step declares both name %q and use %q", s.Name, s.Use)
	case s.Name == "" && s.Use == "":
		return fmt.Errorf("step declares neither name nor use")
	case s.Use != "":
		provider, method, ok := strings.Cut(s.Use, ".")
		if !ok || provider == "" || method == "" {
			return fmt.Errorf("step use %q must be \"provider.method\"", s.Use)
		}
	}
	if s.Phase != "" && s.Phase != config.PhaseFinalize {
		return fmt.Errorf("step phase %q is not supported (only %q)", s.Phase, config.PhaseFinalize)
	}
	return nil
}

// Validate checks the whole strategy document.
func (s *Strategy) Validate() error {
	if s.Meta.Slug == "" {
		return fmt.Errorf("strategy meta.slug is required")
	}
	if !s.Meta.TimeWindow.IsValid() {
		return fmt.Errorf("strategy %s: invalid time_window %q", s.Meta.Slug, s.Meta.TimeWindow)
	}
	if !s.Meta.Depth.IsValid() {
		return fmt.Errorf("strategy %s: invalid depth %q", s.Meta.Slug, s.Meta.Depth)
	}
	if len(s.ToolChain) == 0 {
		return fmt.Errorf("strategy %s: tool_chain must not be empty", s.Meta.Slug)
	}
	for i, step := range s.ToolChain {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("strategy %s: step %d: %w", s.Meta.Slug, i, err)
		}
	}
	if err := s.FanOut.Validate(); err != nil {
		return fmt.Errorf("strategy %s: %w", s.Meta.Slug, err)
	}
	for phase := range s.LLM {
		if !config.Phase(phase).IsValid() {
			return fmt.Errorf("strategy %s: llm override for unknown phase %q", s.Meta.Slug, phase)
		}
	}
	return nil
}

// ParseStrategyYAML parses and validates a strategy document.
func ParseStrategyYAML(data []byte) (*Strategy, error) {
	var s Strategy
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing strategy yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LLMOverride returns the strategy's per-phase LLM override, or nil.
func (s *Strategy) LLMOverride(phase config.Phase) *config.LLMConfig {
	if s.LLM == nil {
		return nil
	}
	return s.LLM[string(phase)]
}
