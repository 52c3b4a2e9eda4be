package strategy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	testdb "github.com/scout-research/scout/test/database"
)

func testStrategy(slug, category string, window config.TimeWindow, depth config.Depth, priority int) *models.Strategy {
	return &models.Strategy{
		Meta: models.StrategyMeta{
			Slug:       slug,
			Version:    1,
			Category:   category,
			TimeWindow: window,
			Depth:      depth,
			Priority:   priority,
		},
		ToolChain: []models.Step{
			{Use: "exa.search", Inputs: map[string]any{"query": "{{topic}}"}},
		},
	}
}

func TestStoreCRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "", nil)
	ctx := context.Background()

	st := testStrategy("tech-weekly", "technology", config.TimeWindowWeek, config.DepthOverview, 10)

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, st))

		got, err := store.Get(ctx, "tech-weekly")
		require.NoError(t, err)
		assert.Equal(t, "technology", got.Meta.Category)
		assert.Equal(t, 10, got.Meta.Priority)
		require.Len(t, got.ToolChain, 1)
		assert.Equal(t, "exa.search", got.ToolChain[0].Use)
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		err := store.Create(ctx, st)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("get missing fails", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		updated := testStrategy("tech-weekly", "technology", config.TimeWindowWeek, config.DepthDeep, 20)
		require.NoError(t, store.Update(ctx, "tech-weekly", updated))

		got, err := store.Get(ctx, "tech-weekly")
		require.NoError(t, err)
		assert.Equal(t, config.DepthDeep, got.Meta.Depth)
		assert.Equal(t, 20, got.Meta.Priority)
	})

	t.Run("update missing fails", func(t *testing.T) {
		err := store.Update(ctx, "nope", testStrategy("nope", "x", config.TimeWindowWeek, config.DepthBrief, 0))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update slug mismatch fails", func(t *testing.T) {
		err := store.Update(ctx, "tech-weekly", testStrategy("other", "x", config.TimeWindowWeek, config.DepthBrief, 0))
		assert.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "tech-weekly"))
		_, err := store.Get(ctx, "tech-weekly")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, store.Delete(ctx, "tech-weekly"), ErrNotFound)
	})
}

func TestStoreCacheInvalidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "", nil)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testStrategy("a", "cat", config.TimeWindowWeek, config.DepthBrief, 1)))
	v1 := store.Version()

	// Warm the cache.
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)

	// A write bumps the version exactly once and the next read sees it.
	require.NoError(t, store.Update(ctx, "a", testStrategy("a", "cat", config.TimeWindowWeek, config.DepthDeep, 1)))
	assert.Equal(t, v1+1, store.Version())

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, config.DepthDeep, got.Meta.Depth)
}

func TestStoreSelect(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "", nil)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testStrategy("low", "tech", config.TimeWindowWeek, config.DepthOverview, 1)))
	require.NoError(t, store.Create(ctx, testStrategy("high", "tech", config.TimeWindowWeek, config.DepthOverview, 5)))
	require.NoError(t, store.Create(ctx, testStrategy("alpha", "tech", config.TimeWindowMonth, config.DepthOverview, 5)))
	require.NoError(t, store.Create(ctx, testStrategy("beta", "tech", config.TimeWindowMonth, config.DepthOverview, 5)))

	inactive := testStrategy("winner-inactive", "tech", config.TimeWindowWeek, config.DepthOverview, 100)
	inactive.Meta.SetActive(false)
	require.NoError(t, store.Create(ctx, inactive))

	t.Run("highest priority wins", func(t *testing.T) {
		got, err := store.Select(ctx, "tech", config.TimeWindowWeek, config.DepthOverview)
		require.NoError(t, err)
		assert.Equal(t, "high", got.Meta.Slug)
	})

	t.Run("lexicographic tiebreak", func(t *testing.T) {
		got, err := store.Select(ctx, "tech", config.TimeWindowMonth, config.DepthOverview)
		require.NoError(t, err)
		assert.Equal(t, "alpha", got.Meta.Slug)
	})

	t.Run("inactive strategies are skipped", func(t *testing.T) {
		got, err := store.Select(ctx, "tech", config.TimeWindowWeek, config.DepthOverview)
		require.NoError(t, err)
		assert.NotEqual(t, "winner-inactive", got.Meta.Slug)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := store.Select(ctx, "sports", config.TimeWindowWeek, config.DepthOverview)
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestStoreBootstrap(t *testing.T) {
	dir := t.TempDir()
	doc := `meta:
  slug: seeded-weekly
  version: 1
  category: technology
  time_window: week
  depth: overview
  priority: 3
tool_chain:
  - use: exa.search
    inputs:
      query: "{{topic}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seeded.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("not: [valid"), 0o644))

	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, dir, nil)
	ctx := context.Background()

	// First read triggers bootstrap; the broken file is skipped.
	got, err := store.Get(ctx, "seeded-weekly")
	require.NoError(t, err)
	assert.Equal(t, "technology", got.Meta.Category)

	list, err := store.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStoreBootstrapSkippedWhenNotEmpty(t *testing.T) {
	dir := t.TempDir()
	doc := `meta:
  slug: should-not-load
  version: 1
  category: x
  time_window: week
  depth: brief
tool_chain:
  - use: exa.search
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.yaml"), []byte(doc), 0o644))

	client := testdb.NewTestClient(t)

	// Pre-populate via a separate store instance.
	seeder := NewStore(client.Client, "", nil)
	ctx := context.Background()
	require.NoError(t, seeder.Create(ctx, testStrategy("existing", "cat", config.TimeWindowWeek, config.DepthBrief, 1)))

	store := NewStore(client.Client, dir, nil)
	_, err := store.Get(ctx, "should-not-load")
	assert.ErrorIs(t, err, ErrNotFound)
}
