package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/strategy"
	testdb "github.com/scout-research/scout/test/database"
)

func scopeCall(args string) *llm.GenerateOutput {
	return &llm.GenerateOutput{ToolCalls: []llm.ToolCall{{ID: "1", Name: setScopeTool, Arguments: args}}}
}

const validScopeArgs = `{
  "strategy_slug": "tech-weekly",
  "category": "technology",
  "time_window": "week",
  "depth": "overview",
  "tasks": ["quantum hardware", "quantum software"],
  "variables": {"company": "QuantumCo"}
}`

func seedScopeStrategy(t *testing.T, db *ent.Client) *strategy.Store {
	t.Helper()
	store := strategy.NewStore(db, "", nil)
	st := weeklyStrategy(models.Step{Use: "exa.search", Inputs: map[string]any{"query": "{{topic}}"}})
	st.RequiredVariables = []models.RequiredVariable{{Name: "company"}}
	require.NoError(t, store.Create(context.Background(), st))
	return store
}

func TestClassifierFingerprint(t *testing.T) {
	c := &Classifier{cfg: workflowConfig()}

	t.Run("whitespace and case insensitive", func(t *testing.T) {
		assert.Equal(t,
			c.Fingerprint("quantum computing news"),
			c.Fingerprint("  Quantum   COMPUTING\tnews "))
	})

	t.Run("different requests differ", func(t *testing.T) {
		assert.NotEqual(t, c.Fingerprint("quantum computing"), c.Fingerprint("fusion energy"))
	})

	t.Run("config version is part of the key", func(t *testing.T) {
		other := workflowConfig()
		other.ConfigVersion = "v2"
		c2 := &Classifier{cfg: other}
		assert.NotEqual(t, c.Fingerprint("quantum computing"), c2.Fingerprint("quantum computing"))
	})
}

func TestClassifierClassify(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := seedScopeStrategy(t, client.Client)

	newClassifier := func(fake *scriptedLLM) *Classifier {
		return NewClassifier(fake, store, client.Client, workflowConfig(), nil)
	}

	t.Run("classifies and caches", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(validScopeArgs)}}
		c := newClassifier(fake)

		result, err := c.Classify(ctx, "quantum computing this week", false)
		require.NoError(t, err)
		assert.Equal(t, "tech-weekly", result.StrategySlug)
		assert.Equal(t, config.TimeWindowWeek, result.TimeWindow)
		assert.Equal(t, config.DepthOverview, result.Depth)
		assert.Equal(t, []string{"quantum hardware", "quantum software"}, result.Tasks)
		assert.Equal(t, "QuantumCo", result.Variables["company"])

		// Catalog rendered into the system prompt.
		require.Len(t, fake.inputs, 1)
		assert.Contains(t, fake.inputs[0].Messages[0].Content, "slug=tech-weekly")
		assert.Equal(t, setScopeTool, fake.inputs[0].ForceTool)

		// Second call is served from the cache.
		again, err := c.Classify(ctx, "Quantum   computing THIS week", false)
		require.NoError(t, err)
		assert.Equal(t, result.StrategySlug, again.StrategySlug)
		assert.Len(t, fake.inputs, 1)
	})

	t.Run("nocache bypasses the cache", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(validScopeArgs)}}
		c := newClassifier(fake)

		_, err := c.Classify(ctx, "ai chips roundup", false)
		require.NoError(t, err)
		_, err = c.Classify(ctx, "ai chips roundup", true)
		require.NoError(t, err)
		assert.Len(t, fake.inputs, 2)
	})

	t.Run("expired cache entries are ignored", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(validScopeArgs)}}
		c := newClassifier(fake)

		fp := c.Fingerprint("stale request")
		err := client.Client.ScopeClassification.Create().
			SetID(fp).
			SetResult(map[string]interface{}{"strategy_slug": "tech-weekly"}).
			SetCreatedAt(time.Now().Add(-48 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = c.Classify(ctx, "stale request", false)
		require.NoError(t, err)
		assert.Len(t, fake.inputs, 1)
	})

	t.Run("empty request fails", func(t *testing.T) {
		c := newClassifier(&scriptedLLM{})
		_, err := c.Classify(ctx, "   ", false)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("no tool call fails", func(t *testing.T) {
		c := newClassifier(textLLM("I refuse to call tools"))
		_, err := c.Classify(ctx, "request one", true)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("unknown strategy fails", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(`{
			"strategy_slug": "nope", "category": "x", "time_window": "week",
			"depth": "overview", "tasks": ["t"]
		}`)}}
		_, err := newClassifier(fake).Classify(ctx, "request two", true)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("invalid time window fails", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(`{
			"strategy_slug": "tech-weekly", "category": "technology", "time_window": "fortnight",
			"depth": "overview", "tasks": ["t"], "variables": {"company": "c"}
		}`)}}
		_, err := newClassifier(fake).Classify(ctx, "request three", true)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("empty task list fails", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(`{
			"strategy_slug": "tech-weekly", "category": "technology", "time_window": "week",
			"depth": "overview", "tasks": [], "variables": {"company": "c"}
		}`)}}
		_, err := newClassifier(fake).Classify(ctx, "request four", true)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{scopeCall(`{
			"strategy_slug": "tech-weekly", "category": "technology", "time_window": "week",
			"depth": "overview", "tasks": ["t"]
		}`)}}
		_, err := newClassifier(fake).Classify(ctx, "request five", true)
		require.Error(t, err)
		assert.Equal(t, KindScopeFailed, KindOf(err))
	})

	t.Run("failed validation is not cached", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{
			scopeCall(`{"strategy_slug": "nope", "category": "x", "time_window": "week", "depth": "overview", "tasks": ["t"]}`),
			scopeCall(validScopeArgs),
		}}
		c := newClassifier(fake)

		_, err := c.Classify(ctx, "request six", false)
		require.Error(t, err)

		result, err := c.Classify(ctx, "request six", false)
		require.NoError(t, err)
		assert.Equal(t, "tech-weekly", result.StrategySlug)
		assert.Len(t, fake.inputs, 2)
	})
}

func TestClassifierEmptyCatalog(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := strategy.NewStore(client.Client, "", nil)
	c := NewClassifier(&scriptedLLM{}, store, client.Client, workflowConfig(), nil)

	_, err := c.Classify(context.Background(), "anything", true)
	require.Error(t, err)
	assert.Equal(t, KindScopeFailed, KindOf(err))
}
