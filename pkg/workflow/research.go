package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/template"
	"github.com/scout-research/scout/pkg/tools"
)

// itemVar is the reserved iteration variable bound by foreach.
const itemVar = "_item"

const defaultMinRefineThreshold = 3

// builtins maps legacy step names onto adapter references. Legacy params are
// passed through as inputs, with the extras merged in.
var builtins = map[string]struct {
	use    string
	extras map[string]any
}{
	"sonar_search":        {use: "sonar.search"},
	"sonar_overview":      {use: "sonar.overview"},
	"exa_search":          {use: "exa.search"},
	"exa_search_semantic": {use: "exa.search", extras: map[string]any{"type": "neural"}},
	"exa_contents":        {use: "exa.contents"},
	"exa_find_similar":    {use: "exa.find_similar"},
	"exa_answer":          {use: "exa.answer"},
	"llm_analyze":         {use: "llm_analyzer.call"},
}

// Executor runs the research phase: iterating the runtime plan under the
// strategy's fan-out mode, dispatching steps through the adapter registry,
// and accumulating deduplicated evidence.
type Executor struct {
	registry *tools.Registry
	llm      llm.Client
	cfg      *config.Config
	weights  evidence.ScoringWeights
	logger   *slog.Logger
	now      func() time.Time
}

// NewExecutor builds the research executor. Scoring weights are injectable
// so deployments can tune ranking without a rebuild.
func NewExecutor(registry *tools.Registry, llmClient llm.Client, cfg *config.Config, weights evidence.ScoringWeights, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		registry: registry,
		llm:      llmClient,
		cfg:      cfg,
		weights:  weights,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes the research phase. A step never fails the workflow; only an
// empty evidence set at the end does (NO_EVIDENCE), besides fatal strategy
// and config errors raised by dispatch.
func (e *Executor) Run(ctx context.Context, state *models.State, st *models.Strategy) error {
	ctx, span := observability.StartSpan(ctx, "phase.research",
		attribute.String("strategy", st.Meta.Slug))
	err := e.run(ctx, state, st)
	observability.EndSpan(span, err)
	return err
}

func (e *Executor) run(ctx context.Context, state *models.State, st *models.Strategy) error {
	plan, err := PlanFromState(state)
	if err != nil {
		return err
	}

	iterations, err := e.resolveIterations(state, st)
	if err != nil {
		return err
	}

	// Seed with prior evidence so replay after a checkpoint stays idempotent.
	store := evidence.NewStore()
	store.Merge(state.Research.Evidence...)

	llmBudget := newBudget(st.Limits.MaxLLMQueries)

	for _, bindings := range iterations {
		if err := e.runIteration(ctx, state, st, plan, bindings, store, llmBudget); err != nil {
			return err
		}
	}

	items := store.Items()
	evidence.Rescore(items, evidence.ScoreParams{
		Now:          e.now(),
		Window:       windowOf(state, st).Duration(),
		AllowDomains: allowSet(st.AllowDomains),
		Weights:      e.weights,
	})
	state.Research.Evidence = evidence.Filter(items, st.Limits.MaxResults, nil)

	if len(state.Research.Evidence) == 0 {
		return NewError(KindNoEvidence, "research produced no evidence for %q", state.Scope.UserRequest)
	}
	return nil
}

// RunFinalizeSteps executes the plan steps deferred to the finalize phase.
// They run once, outside fan-out, with their evidence merged into the state
// ahead of synthesis. Step failures follow the research continue-on-error
// policy.
func (e *Executor) RunFinalizeSteps(ctx context.Context, state *models.State, st *models.Strategy) error {
	plan, err := PlanFromState(state)
	if err != nil {
		return err
	}

	store := evidence.NewStore()
	store.Merge(state.Research.Evidence...)

	varCtx := e.buildVarContext(state, nil)
	for _, step := range plan {
		if step.Phase != config.PhaseFinalize {
			continue
		}

		if step.When != "" {
			ok, err := EvalWhen(step.When, varCtx)
			if err != nil {
				return WrapError(KindStrategyError, fmt.Errorf("step %q: bad when expression: %w", stepLabel(step), err))
			}
			if !ok {
				continue
			}
		}

		if _, err := e.runStep(ctx, state, st, step, varCtx, store); err != nil && IsFatal(err) {
			return err
		}
	}

	state.Research.Evidence = store.Items()
	return nil
}

// resolveIterations expands the fan-out declaration into per-iteration
// variable bindings.
func (e *Executor) resolveIterations(state *models.State, st *models.Strategy) ([]map[string]any, error) {
	switch st.FanOut.Mode {
	case "", models.FanOutNone:
		topic, _ := state.Write.Vars["topic"].(string)
		if topic == "" {
			topic = state.Scope.UserRequest
		}
		return []map[string]any{{"topic": topic}}, nil

	case models.FanOutTask:
		iterations := make([]map[string]any, 0, len(state.Research.Tasks))
		for _, task := range state.Research.Tasks {
			bindings := map[string]any{"topic": task}
			if topic, subtopic, ok := strings.Cut(task, ":"); ok {
				bindings["topic"] = strings.TrimSpace(topic)
				bindings["subtopic"] = strings.TrimSpace(subtopic)
			}
			iterations = append(iterations, bindings)
		}
		return iterations, nil

	case models.FanOutVar:
		raw, ok := state.Write.Vars[st.FanOut.Var]
		if !ok {
			return nil, nil
		}
		elements := toSlice(raw)
		if st.FanOut.Limit > 0 && len(elements) > st.FanOut.Limit {
			elements = elements[:st.FanOut.Limit]
		}
		mapTo := st.FanOut.MapTo
		if mapTo == "" {
			mapTo = "topic"
		}
		iterations := make([]map[string]any, 0, len(elements))
		for _, el := range elements {
			iterations = append(iterations, map[string]any{mapTo: el})
		}
		return iterations, nil

	default:
		return nil, NewError(KindStrategyError, "unknown fan_out mode %q", st.FanOut.Mode)
	}
}

func (e *Executor) runIteration(ctx context.Context, state *models.State, st *models.Strategy, plan []models.Step, bindings map[string]any, store *evidence.Store, llmBudget *budget) error {
	varCtx := e.buildVarContext(state, bindings)

	for i := range plan {
		step := plan[i]

		// Finalize-tagged steps run during the finalize phase, not here.
		if step.Phase == config.PhaseFinalize {
			continue
		}

		if step.When != "" {
			ok, err := EvalWhen(step.When, varCtx)
			if err != nil {
				return WrapError(KindStrategyError, fmt.Errorf("step %q: bad when expression: %w", stepLabel(step), err))
			}
			if !ok {
				e.logger.Debug("step skipped by guard", "step", stepLabel(step), "when", step.When)
				continue
			}
		}

		produced, err := e.runStep(ctx, state, st, step, varCtx, store)
		if err != nil {
			if IsFatal(err) {
				return err
			}
			continue
		}

		// Query refinement between legacy search steps: when this search
		// underdelivered and the next step searches again, rewrite its query.
		if isLegacySearch(step) && i+1 < len(plan) && isLegacySearch(plan[i+1]) &&
			produced < minRefineThreshold(st) && llmBudget.take() {
			e.refineQuery(ctx, state, st, &plan[i+1], varCtx, produced)
		}
	}
	return nil
}

// runStep executes one step (including its foreach expansion) and returns
// the number of evidence records it produced.
func (e *Executor) runStep(ctx context.Context, state *models.State, st *models.Strategy, step models.Step, varCtx map[string]any, store *evidence.Store) (int, error) {
	if step.Foreach == "" {
		return e.invokeStep(ctx, state, st, step, varCtx, store)
	}

	seqValue, ok := template.Lookup(step.Foreach, varCtx)
	if !ok {
		e.logger.Debug("foreach path unresolved, skipping step", "step", stepLabel(step), "foreach", step.Foreach)
		return 0, nil
	}

	produced := 0
	for _, item := range toSlice(seqValue) {
		iterCtx := cloneVars(varCtx)
		iterCtx[itemVar] = item
		n, err := e.invokeStep(ctx, state, st, step, iterCtx, store)
		if err != nil {
			if IsFatal(err) {
				return produced, err
			}
			continue
		}
		produced += n
	}
	return produced, nil
}

func (e *Executor) invokeStep(ctx context.Context, state *models.State, st *models.Strategy, step models.Step, varCtx map[string]any, store *evidence.Store) (int, error) {
	use, inputs, err := e.resolveDispatch(st, step)
	if err != nil {
		return 0, err
	}

	var warns template.Warnings
	rendered := template.RenderInputs(inputs, varCtx, &warns)
	for _, w := range warns.Entries() {
		state.Write.Warnings = append(state.Write.Warnings, fmt.Sprintf("step %s: %s", stepLabel(step), w))
	}
	if step.MaxTokens > 0 {
		rendered["max_tokens"] = step.MaxTokens
	}

	if query, ok := rendered["query"].(string); ok && query != "" {
		state.Research.Queries[stepLabel(step)] = query
	}

	ctx, span := observability.StartSpan(ctx, "research.step",
		attribute.String("step", stepLabel(step)),
		attribute.String("use", use))
	result, err := e.registry.Invoke(ctx, use, rendered)
	observability.EndSpan(span, err)

	if err != nil {
		return 0, e.recordStepError(state, step, err)
	}

	if step.SaveAs != "" {
		state.Write.Vars[step.SaveAs] = accumulateSaved(state.Write.Vars[step.SaveAs], step, savedValue(result))
		varCtx[step.SaveAs] = state.Write.Vars[step.SaveAs]
	}

	if result.IsEvidence() {
		store.Merge(result.Evidence...)
		return len(result.Evidence), nil
	}
	return 0, nil
}

// resolveDispatch maps a step to its adapter reference and raw inputs.
func (e *Executor) resolveDispatch(st *models.Strategy, step models.Step) (string, map[string]any, error) {
	if !step.IsLegacy() {
		return step.Use, cloneVars(step.Inputs), nil
	}

	builtin, ok := builtins[step.Name]
	if !ok {
		return "", nil, NewError(KindStrategyError, "unknown built-in step %q", step.Name)
	}

	inputs := cloneVars(step.Params)
	if inputs == nil {
		inputs = make(map[string]any)
	}
	for k, v := range builtin.extras {
		if _, present := inputs[k]; !present {
			inputs[k] = v
		}
	}

	// Legacy steps may reference a named query template from the strategy.
	if ref, ok := inputs["query_template"].(string); ok {
		if tmpl, found := st.Queries[ref]; found {
			inputs["query"] = tmpl
		}
		delete(inputs, "query_template")
	}
	if _, ok := inputs["query"]; !ok {
		inputs["query"] = "{{topic}}"
	}
	return builtin.use, inputs, nil
}

// recordStepError applies the continue-on-error policy: dispatch failures
// (missing adapter or method) are fatal; everything else is recorded on the
// state and the plan continues.
func (e *Executor) recordStepError(state *models.State, step models.Step, err error) error {
	switch {
	case errors.Is(err, tools.ErrAdapterNotFound):
		return WrapError(KindConfigError, err)
	case errors.Is(err, tools.ErrMethodNotFound):
		return WrapError(KindStrategyError, err)
	case tools.IsExhausted(err):
		msg := fmt.Sprintf("%s: provider credits exhausted, step skipped", stepLabel(step))
		state.Write.Warnings = append(state.Write.Warnings, msg)
		state.Write.Errors = append(state.Write.Errors, string(KindProviderExhausted)+": "+err.Error())
		e.logger.Warn("provider exhausted", "step", stepLabel(step), "error", err)
		return WrapError(KindProviderExhausted, err)
	default:
		state.Write.Errors = append(state.Write.Errors, string(KindProviderUnavailable)+": "+err.Error())
		e.logger.Warn("step failed, continuing", "step", stepLabel(step), "error", err)
		return WrapError(KindProviderUnavailable, err)
	}
}

// refineQuery rewrites the next search step's query after an underdelivering
// search. Best effort: failures leave the original query untouched.
func (e *Executor) refineQuery(ctx context.Context, state *models.State, st *models.Strategy, next *models.Step, varCtx map[string]any, produced int) {
	current := ""
	if next.Params != nil {
		current, _ = next.Params["query"].(string)
	}
	if current == "" {
		current = "{{topic}}"
	}

	var warns template.Warnings
	rendered := template.Render(current, varCtx, &warns)

	out, err := e.llm.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: "You refine web search queries. The previous query returned too few results. Respond with a single improved query string, nothing else."},
			{Role: "user", Content: fmt.Sprintf("Research request: %s\nPrevious query: %s\nResults found: %d\nRewrite the query to find more relevant sources.", state.Scope.UserRequest, rendered, produced)},
		},
		Config: e.cfg.ResolveLLM(config.PhaseResearch, st.LLMOverride(config.PhaseResearch)),
	})
	if err != nil {
		e.logger.Warn("query refinement failed", "error", err)
		return
	}
	refined := strings.TrimSpace(strings.Trim(strings.TrimSpace(out.Content), `"`))
	if refined == "" {
		return
	}
	if next.Params == nil {
		next.Params = make(map[string]any)
	}
	next.Params["query"] = refined
	// The refined query replaces whatever the next step would have searched,
	// including a named query template.
	delete(next.Params, "query_template")
	e.logger.Debug("refined search query", "from", rendered, "to", refined)
}

func (e *Executor) buildVarContext(state *models.State, bindings map[string]any) map[string]any {
	ctx := make(map[string]any, len(state.Write.Vars)+len(bindings)+4)
	for k, v := range state.Write.Vars {
		if k == runtimePlanVar {
			continue
		}
		ctx[k] = v
	}
	ctx["user_request"] = state.Scope.UserRequest
	ctx["category"] = state.Scope.Category
	ctx["depth"] = string(state.Scope.Depth)
	ctx["tasks"] = state.Research.Tasks
	// Iteration-local bindings shadow.
	for k, v := range bindings {
		ctx[k] = v
	}
	return ctx
}

func windowOf(state *models.State, st *models.Strategy) config.TimeWindow {
	if state.Scope.TimeWindow.IsValid() {
		return state.Scope.TimeWindow
	}
	return st.Meta.TimeWindow
}

func minRefineThreshold(st *models.Strategy) int {
	if st.Limits.MinRefineThreshold > 0 {
		return st.Limits.MinRefineThreshold
	}
	return defaultMinRefineThreshold
}

func allowSet(domains []string) map[string]bool {
	if len(domains) == 0 {
		return nil
	}
	set := make(map[string]bool, len(domains))
	for _, d := range domains {
		set[strings.TrimPrefix(strings.ToLower(d), "www.")] = true
	}
	return set
}

func isLegacySearch(step models.Step) bool {
	return step.IsLegacy() && strings.Contains(step.Name, "search")
}

// savedValue picks what save_as binds: the structured value, or the evidence
// snippets for evidence results.
func savedValue(result tools.Result) any {
	if !result.IsEvidence() {
		return result.Value
	}
	snippets := make([]any, 0, len(result.Evidence))
	for _, ev := range result.Evidence {
		if ev.Snippet != "" {
			snippets = append(snippets, ev.Snippet)
		}
	}
	return snippets
}

// accumulateSaved appends foreach results into a slice instead of
// overwriting; single-shot steps overwrite.
func accumulateSaved(existing any, step models.Step, value any) any {
	if step.Foreach == "" {
		return value
	}
	var acc []any
	if existing != nil {
		acc = toSlice(existing)
	}
	return append(acc, value)
}

func toSlice(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{t}
	}
}

func cloneVars(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// budget is a simple decrementing call allowance. Zero max means unlimited.
type budget struct {
	remaining int
	unlimited bool
}

func newBudget(max int) *budget {
	return &budget{remaining: max, unlimited: max <= 0}
}

func (b *budget) take() bool {
	if b.unlimited {
		return true
	}
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// available reports whether at least one call remains without consuming it.
func (b *budget) available() bool {
	return b.unlimited || b.remaining > 0
}
