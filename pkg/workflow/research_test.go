package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/tools"
)

// searchStub returns one evidence record per call, echoing the query.
func searchStub(name string) *stubAdapter {
	return &stubAdapter{
		name:    name,
		methods: []string{"search", "contents"},
		handler: func(_ string, inputs map[string]any) (tools.Result, error) {
			query, _ := inputs["query"].(string)
			return tools.EvidenceResult(evidenceFor("https://example.com/" + query)), nil
		},
	}
}

func newTestExecutor(t *testing.T, llm *scriptedLLM, adapters ...tools.Adapter) *Executor {
	t.Helper()
	registry := tools.NewRegistry(0, nil)
	for _, a := range adapters {
		require.NoError(t, registry.Register(a))
	}
	if llm == nil {
		llm = textLLM()
	}
	return NewExecutor(registry, llm, workflowConfig(), evidence.DefaultWeights, nil)
}

func TestExecutorRun(t *testing.T) {
	ctx := context.Background()

	t.Run("single iteration collects evidence", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search", Inputs: map[string]any{"query": "{{topic}}"}})
		state := plannedState("quantum", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, state.Research.Evidence, 1)
		assert.Equal(t, "https://example.com/quantum", state.Research.Evidence[0].URL)
		assert.Equal(t, "quantum", state.Research.Queries["stub.search"])
	})

	t.Run("no evidence is fatal", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.EvidenceResult([]evidence.Evidence{}), nil
			},
		}
		exec := newTestExecutor(t, nil, stub)
		st := weeklyStrategy(models.Step{Use: "stub.search"})
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindNoEvidence, KindOf(err))
		assert.True(t, IsFatal(err))
	})

	t.Run("task fan-out iterates per task with subtopic split", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search", Inputs: map[string]any{"query": "{{topic}}"}})
		st.FanOut = models.FanOut{Mode: models.FanOutTask}
		state := plannedState("request", st.ToolChain)
		state.Research.Tasks = []string{"ai: chips", "robotics"}

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 2)
		assert.Equal(t, "ai", stub.calls[0].inputs["query"])
		assert.Equal(t, "robotics", stub.calls[1].inputs["query"])
	})

	t.Run("var fan-out respects limit and map_to", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search", Inputs: map[string]any{"query": "{{region}}"}})
		st.FanOut = models.FanOut{Mode: models.FanOutVar, Var: "regions", MapTo: "region", Limit: 2}
		state := plannedState("request", st.ToolChain)
		state.Write.Vars["regions"] = []any{"us", "eu", "apac"}

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 2)
		assert.Equal(t, "us", stub.calls[0].inputs["query"])
		assert.Equal(t, "eu", stub.calls[1].inputs["query"])
	})

	t.Run("var fan-out with absent variable yields no evidence", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search"})
		st.FanOut = models.FanOut{Mode: models.FanOutVar, Var: "regions"}
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindNoEvidence, KindOf(err))
		assert.Empty(t, stub.calls)
	})

	t.Run("unknown fan-out mode is a strategy error", func(t *testing.T) {
		exec := newTestExecutor(t, nil, searchStub("stub"))
		st := weeklyStrategy(models.Step{Use: "stub.search"})
		st.FanOut = models.FanOut{Mode: "shotgun"}
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindStrategyError, KindOf(err))
	})

	t.Run("when guard skips steps", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{Use: "stub.search", When: `depth == "comprehensive"`, Inputs: map[string]any{"query": "deep dive"}},
			models.Step{Use: "stub.search", When: `depth == "overview"`, Inputs: map[string]any{"query": "survey"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 1)
		assert.Equal(t, "survey", stub.calls[0].inputs["query"])
	})

	t.Run("finalize-tagged steps are deferred", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{Use: "stub.search", Inputs: map[string]any{"query": "now"}},
			models.Step{Use: "stub.search", Phase: config.PhaseFinalize, Inputs: map[string]any{"query": "later"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 1)
		assert.Equal(t, "now", stub.calls[0].inputs["query"])
	})

	t.Run("deferred steps execute during finalize", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{Use: "stub.search", Inputs: map[string]any{"query": "base"}},
			models.Step{Use: "stub.contents", Phase: config.PhaseFinalize, Inputs: map[string]any{"query": "followup"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 1)

		require.NoError(t, exec.RunFinalizeSteps(ctx, state, st))
		require.Len(t, stub.calls, 2)
		assert.Equal(t, "contents", stub.calls[1].method)
		assert.Equal(t, "followup", stub.calls[1].inputs["query"])
		assert.Len(t, state.Research.Evidence, 2)
	})

	t.Run("deferred steps honor their when guard", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{Use: "stub.search", Inputs: map[string]any{"query": "base"}},
			models.Step{Use: "stub.search", Phase: config.PhaseFinalize, When: `depth == "comprehensive"`},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.NoError(t, exec.RunFinalizeSteps(ctx, state, st))
		assert.Len(t, stub.calls, 1)
	})

	t.Run("foreach binds the item variable and save_as accumulates", func(t *testing.T) {
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{
				Use:     "stub.search",
				Foreach: "angles",
				Inputs:  map[string]any{"query": "{{_item}}"},
				SaveAs:  "found",
			},
		)
		state := plannedState("request", st.ToolChain)
		state.Write.Vars["angles"] = []any{"funding", "hiring"}

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 2)
		assert.Equal(t, "funding", stub.calls[0].inputs["query"])
		assert.Equal(t, "hiring", stub.calls[1].inputs["query"])

		saved, ok := state.Write.Vars["found"].([]any)
		require.True(t, ok)
		assert.Len(t, saved, 2)
	})

	t.Run("save_as binds structured values for later steps", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search", "extract"},
			handler: func(method string, inputs map[string]any) (tools.Result, error) {
				if method == "extract" {
					return tools.ValueResult([]any{"alpha", "beta"}), nil
				}
				query, _ := inputs["query"].(string)
				return tools.EvidenceResult(evidenceFor("https://example.com/" + query)), nil
			},
		}
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(
			models.Step{Use: "stub.extract", SaveAs: "names"},
			models.Step{Use: "stub.search", Foreach: "names", Inputs: map[string]any{"query": "{{_item}}"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, stub.calls, 3)
		assert.Equal(t, "alpha", stub.calls[1].inputs["query"])
		assert.Equal(t, "beta", stub.calls[2].inputs["query"])
	})

	t.Run("missing adapter is a config error", func(t *testing.T) {
		exec := newTestExecutor(t, nil, searchStub("stub"))
		st := weeklyStrategy(models.Step{Use: "ghost.search"})
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindConfigError, KindOf(err))
	})

	t.Run("missing method is a strategy error", func(t *testing.T) {
		exec := newTestExecutor(t, nil, searchStub("stub"))
		st := weeklyStrategy(models.Step{Use: "stub.teleport"})
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindStrategyError, KindOf(err))
	})

	t.Run("exhausted provider skips the step and continues", func(t *testing.T) {
		broke := &stubAdapter{
			name:    "broke",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.Result{}, tools.NewToolError("broke", "search", tools.KindExhausted, false, errors.New("payment required"))
			},
		}
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, broke, stub)

		st := weeklyStrategy(
			models.Step{Use: "broke.search", Inputs: map[string]any{"query": "a"}},
			models.Step{Use: "stub.search", Inputs: map[string]any{"query": "b"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, state.Research.Evidence, 1)
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "exhausted")
		require.Len(t, state.Write.Errors, 1)
		assert.Contains(t, state.Write.Errors[0], string(KindProviderExhausted))
	})

	t.Run("provider failure records the error and continues", func(t *testing.T) {
		flaky := &stubAdapter{
			name:    "flaky",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.Result{}, tools.NewToolError("flaky", "search", tools.KindBadRequest, false, errors.New("boom"))
			},
		}
		stub := searchStub("stub")
		exec := newTestExecutor(t, nil, flaky, stub)

		st := weeklyStrategy(
			models.Step{Use: "flaky.search"},
			models.Step{Use: "stub.search", Inputs: map[string]any{"query": "b"}},
		)
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, state.Research.Evidence, 1)
		require.Len(t, state.Write.Errors, 1)
		assert.Contains(t, state.Write.Errors[0], string(KindProviderUnavailable))
	})

	t.Run("max_results trims the evidence budget", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.EvidenceResult(evidenceFor(
					"https://a.example.com/1",
					"https://b.example.com/2",
					"https://c.example.com/3",
				)), nil
			},
		}
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search"})
		st.Limits.MaxResults = 2
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		assert.Len(t, state.Research.Evidence, 2)
	})

	t.Run("allow-listed domains outrank others", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.EvidenceResult(evidenceFor(
					"https://random.example.com/post",
					"https://nature.com/article",
				)), nil
			},
		}
		exec := newTestExecutor(t, nil, stub)

		st := weeklyStrategy(models.Step{Use: "stub.search"})
		st.AllowDomains = []string{"nature.com"}
		st.Limits.MaxResults = 1
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, state.Research.Evidence, 1)
		assert.Equal(t, "https://nature.com/article", state.Research.Evidence[0].URL)
	})
}

func TestExecutorLegacySteps(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin dispatch with query template", func(t *testing.T) {
		exa := searchStub("exa")
		exec := newTestExecutor(t, nil, exa)

		st := weeklyStrategy(models.Step{Name: "exa_search", Params: map[string]any{"query_template": "main"}})
		st.Queries = map[string]string{"main": "{{topic}} latest news"}
		state := plannedState("request", st.ToolChain)
		state.Write.Vars["topic"] = "fusion energy"

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, exa.calls, 1)
		assert.Equal(t, "search", exa.calls[0].method)
		assert.Equal(t, "fusion energy latest news", exa.calls[0].inputs["query"])
	})

	t.Run("semantic variant injects neural type", func(t *testing.T) {
		exa := searchStub("exa")
		exec := newTestExecutor(t, nil, exa)

		st := weeklyStrategy(models.Step{Name: "exa_search_semantic"})
		state := plannedState("deep learning papers", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, exa.calls, 1)
		assert.Equal(t, "neural", exa.calls[0].inputs["type"])
		assert.Equal(t, "deep learning papers", exa.calls[0].inputs["query"])
	})

	t.Run("unknown builtin is a strategy error", func(t *testing.T) {
		exec := newTestExecutor(t, nil, searchStub("exa"))
		st := weeklyStrategy(models.Step{Name: "astral_projection"})
		state := plannedState("request", st.ToolChain)

		err := exec.Run(ctx, state, st)
		require.Error(t, err)
		assert.Equal(t, KindStrategyError, KindOf(err))
	})

	t.Run("underdelivering search triggers refinement", func(t *testing.T) {
		exa := searchStub("exa")
		fake := textLLM(`"fusion energy commercial milestones 2026"`)
		exec := newTestExecutor(t, fake, exa)

		st := weeklyStrategy(
			models.Step{Name: "exa_search", Params: map[string]any{"query": "fusion"}},
			models.Step{Name: "exa_search", Params: map[string]any{"query": "fusion again"}},
		)
		state := plannedState("fusion energy progress", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, fake.inputs, 1)
		require.Len(t, exa.calls, 2)
		assert.Equal(t, "fusion energy commercial milestones 2026", exa.calls[1].inputs["query"])
	})

	t.Run("refinement overrides the next step's query template", func(t *testing.T) {
		exa := searchStub("exa")
		fake := textLLM("fusion funding rounds")
		exec := newTestExecutor(t, fake, exa)

		st := weeklyStrategy(
			models.Step{Name: "exa_search", Params: map[string]any{"query": "fusion"}},
			models.Step{Name: "exa_search", Params: map[string]any{"query_template": "main"}},
		)
		st.Queries = map[string]string{"main": "{{topic}} latest news"}
		state := plannedState("fusion progress", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		require.Len(t, fake.inputs, 1)
		require.Len(t, exa.calls, 2)
		assert.Equal(t, "fusion funding rounds", exa.calls[1].inputs["query"])
	})

	t.Run("refinement respects the llm budget", func(t *testing.T) {
		exa := searchStub("exa")
		fake := textLLM("refined")
		exec := newTestExecutor(t, fake, exa)

		st := weeklyStrategy(
			models.Step{Name: "exa_search", Params: map[string]any{"query": "one"}},
			models.Step{Name: "exa_search", Params: map[string]any{"query": "two"}},
			models.Step{Name: "exa_search", Params: map[string]any{"query": "three"}},
		)
		st.Limits.MaxLLMQueries = 1
		state := plannedState("request", st.ToolChain)

		require.NoError(t, exec.Run(ctx, state, st))
		assert.Len(t, fake.inputs, 1)
	})
}
