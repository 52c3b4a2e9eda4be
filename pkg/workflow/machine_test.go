package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/strategy"
	"github.com/scout-research/scout/pkg/tools"
	testdb "github.com/scout-research/scout/test/database"
)

// machineFixture wires a full machine with scripted LLMs and a stub adapter.
type machineFixture struct {
	machine  *Machine
	scope    *scriptedLLM
	finalize *scriptedLLM
	adapter  *stubAdapter
}

func newMachineFixture(t *testing.T, db *ent.Client, store *strategy.Store, checkpoints Checkpointer, adapter *stubAdapter) *machineFixture {
	t.Helper()
	cfg := workflowConfig()

	registry := tools.NewRegistry(0, nil)
	require.NoError(t, registry.Register(adapter))

	scopeLLM := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(validScopeArgs)}}
	finalizeLLM := textLLM("## Summary\nFindings at https://example.com/quantum today.")

	machine := NewMachine(
		NewClassifier(scopeLLM, store, db, cfg, nil),
		NewPlanner(textLLM(), cfg, nil),
		NewExecutor(registry, textLLM(), cfg, evidence.DefaultWeights, nil),
		NewSynthesizer(finalizeLLM, registry, cfg, nil),
		NewValidator(textLLM(), cfg, nil),
		store,
		checkpoints,
		cfg,
		nil,
	)
	return &machineFixture{machine: machine, scope: scopeLLM, finalize: finalizeLLM, adapter: adapter}
}

// fixedURLStub ignores the query and always returns the same source.
func fixedURLStub() *stubAdapter {
	return &stubAdapter{
		name:    "stub",
		methods: []string{"search"},
		handler: func(string, map[string]any) (tools.Result, error) {
			return tools.EvidenceResult(evidenceFor("https://example.com/quantum")), nil
		},
	}
}

func TestMachineRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := seedScopeStrategy(t, client.Client)

	t.Run("full pipeline produces a shaped result", func(t *testing.T) {
		fixture := newMachineFixture(t, client.Client, store, NopCheckpointer{}, fixedURLStub())

		result, err := fixture.machine.Run(ctx, "thread-full", "quantum computing this week")
		require.NoError(t, err)

		require.NotEmpty(t, result.Sections)
		assert.Contains(t, result.Sections[0], "## Summary")
		assert.Equal(t, "tech-weekly", result.Metadata.StrategySlug)
		assert.NotZero(t, result.Metadata.EvidenceCount)
		assert.False(t, result.Metadata.ExecutedAt.IsZero())
		require.Len(t, result.Citations, 1)
		assert.Contains(t, result.Citations[0], "https://example.com/quantum")
		require.NotEmpty(t, fixture.adapter.calls)
	})

	t.Run("fatal research error surfaces and keeps checkpoints", func(t *testing.T) {
		checkpoints := NewDBCheckpointer(client.Client)
		empty := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.EvidenceResult([]evidence.Evidence{}), nil
			},
		}
		fixture := newMachineFixture(t, client.Client, store, checkpoints, empty)

		_, err := fixture.machine.Run(ctx, "thread-resume", "quantum computing this week")
		require.Error(t, err)
		assert.Equal(t, KindNoEvidence, KindOf(err))

		// Scope and fill made it to the checkpoint table.
		n, err := client.Client.WorkflowCheckpoint.Query().
			Where(workflowcheckpoint.ThreadIDEQ("thread-resume")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("resume skips completed phases and clears on success", func(t *testing.T) {
		checkpoints := NewDBCheckpointer(client.Client)
		fixture := newMachineFixture(t, client.Client, store, checkpoints, fixedURLStub())

		result, err := fixture.machine.Run(ctx, "thread-resume", "quantum computing this week")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Sections)

		// The scope classifier never ran: the phase was checkpointed.
		assert.Empty(t, fixture.scope.inputs)

		n, err := client.Client.WorkflowCheckpoint.Query().
			Where(workflowcheckpoint.ThreadIDEQ("thread-resume")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("missing strategy is a strategy error", func(t *testing.T) {
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(fixedURLStub()))
		cfg := workflowConfig()

		// A checkpoint pointing at a since-deleted strategy hits the lookup path.
		state := models.NewState("thread-gone", "request")
		state.Scope.StrategySlug = "deleted-strategy"
		state.CompletedPhase = config.PhaseScope

		machine := NewMachine(
			NewClassifier(&scriptedLLM{}, store, client.Client, cfg, nil),
			NewPlanner(textLLM(), cfg, nil),
			NewExecutor(registry, textLLM(), cfg, evidence.DefaultWeights, nil),
			NewSynthesizer(textLLM("## S\nbody"), registry, cfg, nil),
			NewValidator(textLLM(), cfg, nil),
			store,
			fixedCheckpointer{state: state},
			cfg,
			nil,
		)

		_, err := machine.Run(ctx, "thread-gone", "request")
		require.Error(t, err)
		assert.Equal(t, KindStrategyError, KindOf(err))
	})
}

// fixedCheckpointer always loads a canned state.
type fixedCheckpointer struct {
	state *models.State
}

func (f fixedCheckpointer) Save(context.Context, string, config.Phase, *models.State) error {
	return nil
}
func (f fixedCheckpointer) Load(context.Context, string) (*models.State, error) {
	return f.state, nil
}
func (f fixedCheckpointer) Clear(context.Context, string) error { return nil }

func TestDBCheckpointer(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cp := NewDBCheckpointer(client.Client)

	t.Run("empty thread loads nil", func(t *testing.T) {
		state, err := cp.Load(ctx, "nothing-here")
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("latest phase wins", func(t *testing.T) {
		state := models.NewState("thread-cp", "request")
		state.Scope.StrategySlug = "tech-weekly"
		require.NoError(t, cp.Save(ctx, "thread-cp", config.PhaseScope, state))

		state.Write.Vars["filled"] = true
		require.NoError(t, cp.Save(ctx, "thread-cp", config.PhaseFill, state))

		loaded, err := cp.Load(ctx, "thread-cp")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, config.PhaseFill, loaded.CompletedPhase)
		assert.Equal(t, "tech-weekly", loaded.Scope.StrategySlug)
		assert.Equal(t, true, loaded.Write.Vars["filled"])
	})

	t.Run("saving the same phase upserts", func(t *testing.T) {
		state := models.NewState("thread-up", "request")
		require.NoError(t, cp.Save(ctx, "thread-up", config.PhaseScope, state))
		state.Write.Vars["rev"] = "second"
		require.NoError(t, cp.Save(ctx, "thread-up", config.PhaseScope, state))

		n, err := client.Client.WorkflowCheckpoint.Query().
			Where(workflowcheckpoint.ThreadIDEQ("thread-up")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		loaded, err := cp.Load(ctx, "thread-up")
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.Write.Vars["rev"])
	})

	t.Run("clear removes all phases", func(t *testing.T) {
		require.NoError(t, cp.Clear(ctx, "thread-cp"))
		state, err := cp.Load(ctx, "thread-cp")
		require.NoError(t, err)
		assert.Nil(t, state)
	})
}
