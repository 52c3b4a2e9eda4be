package workflow

import (
	"context"
	"time"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/tools"
)

// scriptedLLM plays back a fixed sequence of responses and records every
// input for assertions. After the script runs out, the last entry repeats.
type scriptedLLM struct {
	outputs []*llm.GenerateOutput
	errs    []error
	inputs  []*llm.GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *llm.GenerateInput) (*llm.GenerateOutput, error) {
	idx := len(s.inputs)
	s.inputs = append(s.inputs, input)
	if idx >= len(s.outputs) {
		idx = len(s.outputs) - 1
	}
	if idx < 0 {
		return &llm.GenerateOutput{}, nil
	}
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	return s.outputs[idx], nil
}

func (s *scriptedLLM) Close() error { return nil }

func textLLM(contents ...string) *scriptedLLM {
	outputs := make([]*llm.GenerateOutput, len(contents))
	for i, c := range contents {
		outputs[i] = &llm.GenerateOutput{Content: c}
	}
	return &scriptedLLM{outputs: outputs}
}

// stubCall records one dispatch through a stub adapter.
type stubCall struct {
	method string
	inputs map[string]any
}

// stubAdapter is a scriptable tools.Adapter for executor tests.
type stubAdapter struct {
	name    string
	methods []string
	handler func(method string, inputs map[string]any) (tools.Result, error)
	calls   []stubCall
}

func (a *stubAdapter) Name() string      { return a.name }
func (a *stubAdapter) Methods() []string { return a.methods }

func (a *stubAdapter) Invoke(_ context.Context, method string, inputs map[string]any) (tools.Result, error) {
	a.calls = append(a.calls, stubCall{method: method, inputs: inputs})
	return a.handler(method, inputs)
}

func evidenceFor(urls ...string) []evidence.Evidence {
	items := make([]evidence.Evidence, len(urls))
	for i, u := range urls {
		items[i] = evidence.Evidence{URL: u, Title: "source", Snippet: "snippet for " + u, Tool: "exa_search"}
	}
	return items
}

func workflowConfig() *config.Config {
	return &config.Config{
		WorkflowTimeout: time.Minute,
		ScopeCacheTTL:   24 * time.Hour,
		ConfigVersion:   "v1",
		LLMDefaults: map[config.Phase]config.LLMConfig{
			config.PhaseScope:    {Model: "test-model"},
			config.PhaseFill:     {Model: "test-model"},
			config.PhaseResearch: {Model: "test-model"},
			config.PhaseFinalize: {Model: "test-model"},
			config.PhaseQC:       {Model: "test-model"},
		},
	}
}

func weeklyStrategy(steps ...models.Step) *models.Strategy {
	return &models.Strategy{
		Meta: models.StrategyMeta{
			Slug:       "tech-weekly",
			Version:    1,
			Category:   "technology",
			TimeWindow: config.TimeWindowWeek,
			Depth:      config.DepthOverview,
		},
		ToolChain: steps,
	}
}

// plannedState builds a post-fill state carrying the given runtime plan.
func plannedState(userRequest string, plan []models.Step) *models.State {
	state := models.NewState("thread-1", userRequest)
	state.Scope.StrategySlug = "tech-weekly"
	state.Scope.Category = "technology"
	state.Scope.TimeWindow = config.TimeWindowWeek
	state.Scope.Depth = config.DepthOverview
	state.Write.Vars[runtimePlanVar] = plan
	return state
}
