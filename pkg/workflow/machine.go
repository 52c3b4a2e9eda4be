// Package workflow implements the deterministic research pipeline: scope
// classification, plan fill, research execution, report synthesis, and QC,
// sequenced by a fixed phase machine with checkpointed state.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/strategy"
)

// Machine sequences the workflow phases. Transitions are strictly
// sequential; each phase mutates the shared State and is checkpointed at its
// boundary.
type Machine struct {
	classifier  *Classifier
	planner     *Planner
	executor    *Executor
	synthesizer *Synthesizer
	validator   *Validator
	strategies  *strategy.Store
	checkpoints Checkpointer
	cfg         *config.Config
	logger      *slog.Logger
}

// NewMachine wires the phase machine.
func NewMachine(
	classifier *Classifier,
	planner *Planner,
	executor *Executor,
	synthesizer *Synthesizer,
	validator *Validator,
	strategies *strategy.Store,
	checkpoints Checkpointer,
	cfg *config.Config,
	logger *slog.Logger,
) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	if checkpoints == nil {
		checkpoints = NopCheckpointer{}
	}
	return &Machine{
		classifier:  classifier,
		planner:     planner,
		executor:    executor,
		synthesizer: synthesizer,
		validator:   validator,
		strategies:  strategies,
		checkpoints: checkpoints,
		cfg:         cfg,
		logger:      logger,
	}
}

// Run executes one workflow invocation under the configured deadline.
// Re-invocation with a thread_id that has checkpoints resumes after the last
// completed phase. On success the checkpoints are cleared and the shaped
// result returned.
func (m *Machine) Run(ctx context.Context, threadID, userRequest string) (*models.TaskResult, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.WorkflowTimeout)
	defer cancel()

	ctx, span := observability.StartSpan(ctx, "workflow.run",
		attribute.String("thread_id", threadID))
	result, err := m.run(ctx, threadID, userRequest)
	observability.EndSpan(span, err)
	return result, err
}

func (m *Machine) run(ctx context.Context, threadID, userRequest string) (*models.TaskResult, error) {
	state, err := m.checkpoints.Load(ctx, threadID)
	if err != nil {
		m.logger.Warn("checkpoint load failed, starting fresh", "thread_id", threadID, "error", err)
		state = nil
	}
	if state == nil {
		state = models.NewState(threadID, userRequest)
	} else {
		m.logger.Info("resuming workflow from checkpoint",
			"thread_id", threadID, "completed_phase", state.CompletedPhase)
		// Empty maps are dropped by the checkpoint encoding.
		if state.Research.Queries == nil {
			state.Research.Queries = make(map[string]string)
		}
		if state.Write.Vars == nil {
			state.Write.Vars = make(map[string]any)
		}
	}

	completed := phaseOrder[state.CompletedPhase]

	// Scope.
	if completed < phaseOrder[config.PhaseScope] {
		scope, err := m.classifier.Classify(ctx, userRequest, false)
		if err != nil {
			return nil, err
		}
		state.Scope.StrategySlug = scope.StrategySlug
		state.Scope.Category = scope.Category
		state.Scope.TimeWindow = scope.TimeWindow
		state.Scope.Depth = scope.Depth
		state.Research.Tasks = scope.Tasks
		for k, v := range scope.Variables {
			state.Write.Vars[k] = v
		}
		m.checkpoint(ctx, state, config.PhaseScope)
	}

	st, err := m.strategies.Get(ctx, state.Scope.StrategySlug)
	if err != nil {
		return nil, WrapError(KindStrategyError, err)
	}
	if len(st.Queries) > 0 && len(state.Research.Queries) == 0 {
		for name, tmpl := range st.Queries {
			state.Research.Queries[name] = tmpl
		}
	}

	// Fill.
	if completed < phaseOrder[config.PhaseFill] {
		if err := m.planner.Run(ctx, state, st); err != nil {
			return nil, err
		}
		m.checkpoint(ctx, state, config.PhaseFill)
	}

	// Research.
	if completed < phaseOrder[config.PhaseResearch] {
		if err := m.executor.Run(ctx, state, st); err != nil {
			return nil, err
		}
		m.checkpoint(ctx, state, config.PhaseResearch)
	}

	// Finalize. Plan steps deferred to this phase run first; synthesis sees
	// their evidence.
	if completed < phaseOrder[config.PhaseFinalize] {
		if err := m.executor.RunFinalizeSteps(ctx, state, st); err != nil {
			return nil, err
		}
		if err := m.synthesizer.Run(ctx, state, st); err != nil {
			return nil, err
		}
		m.checkpoint(ctx, state, config.PhaseFinalize)
	}

	// QC annotates but never fails.
	if completed < phaseOrder[config.PhaseQC] {
		if err := m.validator.Run(ctx, state, st); err != nil {
			return nil, err
		}
		m.checkpoint(ctx, state, config.PhaseQC)
	}

	if err := m.checkpoints.Clear(ctx, threadID); err != nil {
		m.logger.Warn("failed to clear checkpoints", "thread_id", threadID, "error", err)
	}

	return shapeResult(state), nil
}

func (m *Machine) checkpoint(ctx context.Context, state *models.State, phase config.Phase) {
	state.CompletedPhase = phase
	if err := m.checkpoints.Save(ctx, state.ThreadID, phase, state); err != nil {
		// Checkpointing is best effort; the workflow keeps going.
		m.logger.Warn("checkpoint save failed", "thread_id", state.ThreadID, "phase", phase, "error", err)
	}
}

func shapeResult(state *models.State) *models.TaskResult {
	return &models.TaskResult{
		Sections:  state.Write.Sections,
		Citations: state.Write.Citations,
		Metadata: models.ResultMetadata{
			StrategySlug:  state.Scope.StrategySlug,
			EvidenceCount: len(state.Research.Evidence),
			ExecutedAt:    time.Now().UTC(),
			Warnings:      state.Write.Warnings,
		},
	}
}
