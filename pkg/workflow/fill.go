package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
)

// runtimePlanVar is the state variable holding the materialized plan.
const runtimePlanVar = "runtime_plan"

// Planner materializes a strategy's tool chain into the runtime plan:
// computing time-window variables and letting the LLM populate whitelisted
// step inputs.
type Planner struct {
	llm    llm.Client
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewPlanner builds the fill-phase planner.
func NewPlanner(llmClient llm.Client, cfg *config.Config, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{llm: llmClient, cfg: cfg, logger: logger, now: time.Now}
}

// Run executes the fill phase: time variables into state.vars, then the
// finalized plan under state.vars["runtime_plan"]. Failures are FILL_FAILED
// and fatal.
func (p *Planner) Run(ctx context.Context, state *models.State, st *models.Strategy) error {
	ctx, span := observability.StartSpan(ctx, "phase.fill")
	err := p.run(ctx, state, st)
	observability.EndSpan(span, err)
	return err
}

func (p *Planner) run(ctx context.Context, state *models.State, st *models.Strategy) error {
	window := state.Scope.TimeWindow
	if window == "" {
		window = st.Meta.TimeWindow
	}
	for k, v := range TimeVariables(p.now(), window) {
		state.Write.Vars[k] = v
	}

	plan, err := deepCopySteps(st.ToolChain)
	if err != nil {
		return WrapError(KindFillFailed, fmt.Errorf("failed to copy tool chain: %w", err))
	}

	for i := range plan {
		if len(plan[i].LLMFill) == 0 {
			continue
		}
		if err := p.fillStep(ctx, state, st, &plan[i]); err != nil {
			return err
		}
	}

	state.Write.Vars[runtimePlanVar] = plan
	return nil
}

// TimeVariables computes the built-in time variables for a window.
func TimeVariables(now time.Time, window config.TimeWindow) map[string]any {
	start := now.Add(-window.Duration())
	return map[string]any{
		"current_date":          now.Format("2006-01-02"),
		"start_date":            start.Format("2006-01-02"),
		"end_date":              now.Format("2006-01-02"),
		"search_recency_filter": string(window),
	}
}

// fillStep asks the LLM to populate exactly the whitelisted input keys of one
// step. Unknown keys in the response are rejected; missing keys fail.
func (p *Planner) fillStep(ctx context.Context, state *models.State, st *models.Strategy, step *models.Step) error {
	prompt := p.fillPrompt(state, step)

	out, err := p.llm.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: "You populate tool-call inputs for a research plan. Respond with a single JSON object containing exactly the requested keys and nothing else."},
			{Role: "user", Content: prompt},
		},
		Config:   p.cfg.ResolveLLM(config.PhaseFill, st.LLMOverride(config.PhaseFill)),
		JSONMode: true,
	})
	if err != nil {
		return WrapError(KindFillFailed, fmt.Errorf("plan fill LLM call failed: %w", err))
	}

	var filled map[string]any
	if err := json.Unmarshal([]byte(out.Content), &filled); err != nil {
		return WrapError(KindFillFailed, fmt.Errorf("plan fill response is not a JSON object: %w", err))
	}

	allowed := make(map[string]bool, len(step.LLMFill))
	for _, key := range step.LLMFill {
		allowed[key] = true
	}
	for key := range filled {
		if !allowed[key] {
			return NewError(KindFillFailed, "plan fill returned unknown key %q for step %q", key, stepLabel(*step))
		}
	}
	for _, key := range step.LLMFill {
		value, ok := filled[key]
		if !ok {
			return NewError(KindFillFailed, "plan fill omitted required key %q for step %q", key, stepLabel(*step))
		}
		if step.Inputs == nil {
			step.Inputs = make(map[string]any)
		}
		step.Inputs[key] = value
	}
	return nil
}

func (p *Planner) fillPrompt(state *models.State, step *models.Step) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Research request: %s\n", state.Scope.UserRequest)
	if len(state.Research.Tasks) > 0 {
		fmt.Fprintf(&sb, "Tasks:\n")
		for _, task := range state.Research.Tasks {
			fmt.Fprintf(&sb, "- %s\n", task)
		}
	}
	if len(state.Write.Vars) > 0 {
		fmt.Fprintf(&sb, "Current variables:\n")
		for k, v := range state.Write.Vars {
			if k == runtimePlanVar {
				continue
			}
			fmt.Fprintf(&sb, "- %s: %v\n", k, v)
		}
	}
	fmt.Fprintf(&sb, "\nStep: %s", stepLabel(*step))
	if step.Description != "" {
		fmt.Fprintf(&sb, " (%s)", step.Description)
	}
	fmt.Fprintf(&sb, "\nPopulate these input keys: %s\n", strings.Join(step.LLMFill, ", "))
	return sb.String()
}

func stepLabel(step models.Step) string {
	if step.IsLegacy() {
		return step.Name
	}
	return step.Use
}

// deepCopySteps clones the tool chain so runtime mutation never touches the
// cached strategy document.
func deepCopySteps(steps []models.Step) ([]models.Step, error) {
	data, err := json.Marshal(steps)
	if err != nil {
		return nil, err
	}
	var out []models.Step
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlanFromState extracts the runtime plan stored by the fill phase. The
// checkpoint round-trip may have demoted it to generic JSON, so both
// representations are accepted.
func PlanFromState(state *models.State) ([]models.Step, error) {
	raw, ok := state.Write.Vars[runtimePlanVar]
	if !ok {
		return nil, NewError(KindStrategyError, "state has no runtime plan; fill phase has not run")
	}
	switch plan := raw.(type) {
	case []models.Step:
		return plan, nil
	default:
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, WrapError(KindStrategyError, fmt.Errorf("unreadable runtime plan: %w", err))
		}
		var steps []models.Step
		if err := json.Unmarshal(data, &steps); err != nil {
			return nil, WrapError(KindStrategyError, fmt.Errorf("malformed runtime plan: %w", err))
		}
		return steps, nil
	}
}
