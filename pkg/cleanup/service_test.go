package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/ent"
	testdb "github.com/scout-research/scout/test/database"
)

func testConfig() Config {
	return Config{
		ScopeCacheTTL:       24 * time.Hour,
		CheckpointRetention: 7 * 24 * time.Hour,
		Interval:            1 * time.Hour,
	}
}

func seedScopeEntry(t *testing.T, db *ent.Client, id string, age time.Duration) {
	t.Helper()
	err := db.ScopeClassification.Create().
		SetID(id).
		SetResult(map[string]interface{}{"strategy_slug": "tech-weekly"}).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func seedCheckpoint(t *testing.T, db *ent.Client, threadID, phase string, age time.Duration) {
	t.Helper()
	err := db.WorkflowCheckpoint.Create().
		SetThreadID(threadID).
		SetPhase(phase).
		SetState(map[string]interface{}{"thread_id": threadID}).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestServicePurgesExpiredScopeEntries(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedScopeEntry(t, client.Client, "expired", 48*time.Hour)
	seedScopeEntry(t, client.Client, "fresh", 1*time.Hour)

	svc := NewService(testConfig(), client.Client, nil)
	svc.runAll(ctx)

	remaining, err := client.Client.ScopeClassification.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].ID)
}

func TestServicePurgesStaleCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedCheckpoint(t, client.Client, "dead-thread", "fill", 8*24*time.Hour)
	seedCheckpoint(t, client.Client, "live-thread", "scope", 1*time.Hour)

	svc := NewService(testConfig(), client.Client, nil)
	svc.runAll(ctx)

	remaining, err := client.Client.WorkflowCheckpoint.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "live-thread", remaining[0].ThreadID)
}

func TestServiceStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := testConfig()
	cfg.Interval = 10 * time.Millisecond
	svc := NewService(cfg, client.Client, nil)

	seedScopeEntry(t, client.Client, "expired", 48*time.Hour)

	svc.Start(context.Background())
	// Second Start is a no-op.
	svc.Start(context.Background())

	assert.Eventually(t, func() bool {
		n, err := client.Client.ScopeClassification.Query().Count(context.Background())
		return err == nil && n == 0
	}, 5*time.Second, 20*time.Millisecond)

	svc.Stop()
}
