package workflow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
)

func TestTimeVariables(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	vars := TimeVariables(now, config.TimeWindowWeek)

	assert.Equal(t, "2026-08-24", vars["current_date"])
	assert.Equal(t, "2026-08-24", vars["end_date"])
	assert.Equal(t, "2026-08-17", vars["start_date"])
	assert.Equal(t, "week", vars["search_recency_filter"])
}

func TestPlannerRun(t *testing.T) {
	newPlanner := func(fake *scriptedLLM) *Planner {
		p := NewPlanner(fake, workflowConfig(), nil)
		p.now = func() time.Time { return time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) }
		return p
	}

	t.Run("materializes plan with time variables", func(t *testing.T) {
		st := weeklyStrategy(
			models.Step{Use: "exa.search", Inputs: map[string]any{"query": "{{topic}}"}},
		)
		state := models.NewState("t1", "quantum computing news")
		state.Scope.TimeWindow = config.TimeWindowWeek

		require.NoError(t, newPlanner(textLLM()).Run(context.Background(), state, st))

		assert.Equal(t, "2026-08-24", state.Write.Vars["current_date"])
		assert.Equal(t, "week", state.Write.Vars["search_recency_filter"])

		plan, err := PlanFromState(state)
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, "exa.search", plan[0].Use)
	})

	t.Run("falls back to strategy window", func(t *testing.T) {
		st := weeklyStrategy(models.Step{Use: "exa.search"})
		state := models.NewState("t1", "request")

		require.NoError(t, newPlanner(textLLM()).Run(context.Background(), state, st))
		assert.Equal(t, "week", state.Write.Vars["search_recency_filter"])
	})

	t.Run("llm fills whitelisted keys", func(t *testing.T) {
		st := weeklyStrategy(
			models.Step{Use: "exa.search", LLMFill: []string{"query", "num_results"}},
		)
		state := models.NewState("t1", "quantum computing news")
		fake := textLLM(`{"query": "quantum computing breakthroughs", "num_results": 10}`)

		require.NoError(t, newPlanner(fake).Run(context.Background(), state, st))

		plan, err := PlanFromState(state)
		require.NoError(t, err)
		assert.Equal(t, "quantum computing breakthroughs", plan[0].Inputs["query"])
		assert.Equal(t, float64(10), plan[0].Inputs["num_results"])

		require.Len(t, fake.inputs, 1)
		assert.True(t, fake.inputs[0].JSONMode)
		assert.Contains(t, fake.inputs[0].Messages[1].Content, "query, num_results")
	})

	t.Run("unknown key fails", func(t *testing.T) {
		st := weeklyStrategy(models.Step{Use: "exa.search", LLMFill: []string{"query"}})
		state := models.NewState("t1", "request")
		fake := textLLM(`{"query": "q", "surprise": true}`)

		err := newPlanner(fake).Run(context.Background(), state, st)
		require.Error(t, err)
		assert.Equal(t, KindFillFailed, KindOf(err))
		assert.True(t, IsFatal(err))
	})

	t.Run("missing key fails", func(t *testing.T) {
		st := weeklyStrategy(models.Step{Use: "exa.search", LLMFill: []string{"query", "num_results"}})
		state := models.NewState("t1", "request")
		fake := textLLM(`{"query": "q"}`)

		err := newPlanner(fake).Run(context.Background(), state, st)
		require.Error(t, err)
		assert.Equal(t, KindFillFailed, KindOf(err))
	})

	t.Run("non-object response fails", func(t *testing.T) {
		st := weeklyStrategy(models.Step{Use: "exa.search", LLMFill: []string{"query"}})
		state := models.NewState("t1", "request")

		err := newPlanner(textLLM("not json")).Run(context.Background(), state, st)
		require.Error(t, err)
		assert.Equal(t, KindFillFailed, KindOf(err))
	})

	t.Run("steps without llm_fill skip the model", func(t *testing.T) {
		st := weeklyStrategy(
			models.Step{Use: "exa.search", Inputs: map[string]any{"query": "fixed"}},
			models.Step{Name: "sonar_search"},
		)
		state := models.NewState("t1", "request")
		fake := textLLM()

		require.NoError(t, newPlanner(fake).Run(context.Background(), state, st))
		assert.Empty(t, fake.inputs)
	})

	t.Run("plan mutation leaves the strategy untouched", func(t *testing.T) {
		st := weeklyStrategy(models.Step{Use: "exa.search", LLMFill: []string{"query"}})
		state := models.NewState("t1", "request")
		fake := textLLM(`{"query": "filled"}`)

		require.NoError(t, newPlanner(fake).Run(context.Background(), state, st))
		assert.Nil(t, st.ToolChain[0].Inputs)
	})
}

func TestPlanFromState(t *testing.T) {
	t.Run("missing plan is a strategy error", func(t *testing.T) {
		state := models.NewState("t1", "request")
		_, err := PlanFromState(state)
		require.Error(t, err)
		assert.Equal(t, KindStrategyError, KindOf(err))
	})

	t.Run("accepts the checkpoint-demoted form", func(t *testing.T) {
		plan := []models.Step{{Use: "exa.search", Inputs: map[string]any{"query": "q"}}}
		data, err := json.Marshal(plan)
		require.NoError(t, err)
		var demoted any
		require.NoError(t, json.Unmarshal(data, &demoted))

		state := models.NewState("t1", "request")
		state.Write.Vars[runtimePlanVar] = demoted

		got, err := PlanFromState(state)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "exa.search", got[0].Use)
		assert.Equal(t, "q", got[0].Inputs["query"])
	})
}
