package batch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/workflow"
	testdb "github.com/scout-research/scout/test/database"
)

// fakeRunner records invocations and returns a canned result per thread.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []string
	err    error
	result *models.TaskResult
}

func (f *fakeRunner) Run(_ context.Context, threadID, _ string) (*models.TaskResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, threadID)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeRunner) threadIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// blockingRunner parks until its context is cancelled.
type blockingRunner struct{}

func (blockingRunner) Run(ctx context.Context, _, _ string) (*models.TaskResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// webhookRecorder collects delivered payloads.
type webhookRecorder struct {
	mu       sync.Mutex
	payloads []models.WebhookPayload
	srv      *httptest.Server
}

func newWebhookRecorder(t *testing.T) *webhookRecorder {
	t.Helper()
	rec := &webhookRecorder{}
	rec.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p models.WebhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		rec.mu.Lock()
		rec.payloads = append(rec.payloads, p)
		rec.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(rec.srv.Close)
	return rec
}

func (r *webhookRecorder) received() []models.WebhookPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.WebhookPayload(nil), r.payloads...)
}

func sampleResult() *models.TaskResult {
	return &models.TaskResult{
		Sections:  []string{"## Summary\ntext"},
		Citations: []string{"example.com: https://example.com/a"},
		Metadata: models.ResultMetadata{
			StrategySlug:  "tech-weekly",
			EvidenceCount: 3,
			ExecutedAt:    time.Now().UTC(),
		},
	}
}

func newTestExecutor(t *testing.T, taskSvc *services.TaskService, runner Runner) *Executor {
	t.Helper()
	sender := NewWebhookSender(nil)
	sender.baseInterval = time.Millisecond
	cfg := &config.Config{MaxConcurrency: 2}
	return NewExecutor(taskSvc, runner, sender, cfg, nil, nil)
}

func awaitShutdown(t *testing.T, exec *Executor) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, exec.Shutdown(ctx))
}

func TestExecutorBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskSvc := services.NewTaskService(client.Client)
	ctx := context.Background()

	mkTask := func(topic string, freq config.Frequency) string {
		task, err := taskSvc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "batch@example.com",
			ResearchTopic: topic,
			Frequency:     freq,
		})
		require.NoError(t, err)
		return task.ID
	}

	t.Run("runs all matching tasks and updates last_run_at", func(t *testing.T) {
		id1 := mkTask("topic one", config.FrequencyWeekly)
		id2 := mkTask("topic two", config.FrequencyWeekly)
		mkTask("daily topic", config.FrequencyDaily)

		runner := &fakeRunner{result: sampleResult()}
		rec := newWebhookRecorder(t)
		exec := newTestExecutor(t, taskSvc, runner)

		status, err := exec.ExecuteBatch(ctx, models.BatchExecuteRequest{
			Frequency:   config.FrequencyWeekly,
			CallbackURL: rec.srv.URL,
		})
		require.NoError(t, err)
		assert.Equal(t, models.BatchStatusRunning, status.Status)
		assert.Equal(t, 2, status.TasksFound)
		assert.False(t, status.StartedAt.IsZero())

		awaitShutdown(t, exec)

		assert.ElementsMatch(t, []string{id1, id2}, runner.threadIDs())

		payloads := rec.received()
		require.Len(t, payloads, 2)
		for _, p := range payloads {
			assert.Equal(t, models.StatusCompleted, p.Status)
			assert.Equal(t, "batch@example.com", p.Email)
			assert.Equal(t, "weekly", p.Frequency)
			require.NotNil(t, p.Result)
			assert.Equal(t, "tech-weekly", p.Result.Metadata.StrategySlug)
		}

		for _, id := range []string{id1, id2} {
			task, err := taskSvc.GetTask(ctx, id)
			require.NoError(t, err)
			assert.NotNil(t, task.LastRunAt)
		}
	})

	t.Run("workflow failure delivers a failed payload without last_run_at", func(t *testing.T) {
		id := mkTask("doomed topic", config.FrequencyMonthly)

		runner := &fakeRunner{err: workflow.NewError(workflow.KindNoEvidence, "nothing found")}
		rec := newWebhookRecorder(t)
		exec := newTestExecutor(t, taskSvc, runner)

		status, err := exec.ExecuteBatch(ctx, models.BatchExecuteRequest{
			Frequency:   config.FrequencyMonthly,
			CallbackURL: rec.srv.URL,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, status.TasksFound)

		awaitShutdown(t, exec)

		payloads := rec.received()
		require.Len(t, payloads, 1)
		assert.Equal(t, models.StatusFailed, payloads[0].Status)
		assert.Contains(t, payloads[0].Error, "NO_EVIDENCE")
		assert.Nil(t, payloads[0].Result)

		task, err := taskSvc.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, task.LastRunAt)
	})

	t.Run("validates the request", func(t *testing.T) {
		exec := newTestExecutor(t, taskSvc, &fakeRunner{result: sampleResult()})

		_, err := exec.ExecuteBatch(ctx, models.BatchExecuteRequest{
			Frequency:   config.Frequency("hourly"),
			CallbackURL: "http://example.com/hook",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = exec.ExecuteBatch(ctx, models.BatchExecuteRequest{Frequency: config.FrequencyDaily})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("rejects batches during shutdown", func(t *testing.T) {
		exec := newTestExecutor(t, taskSvc, &fakeRunner{result: sampleResult()})
		awaitShutdown(t, exec)

		_, err := exec.ExecuteBatch(ctx, models.BatchExecuteRequest{
			Frequency:   config.FrequencyDaily,
			CallbackURL: "http://example.com/hook",
		})
		assert.ErrorIs(t, err, ErrShuttingDown)
	})
}

func TestExecutorManual(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskSvc := services.NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("synchronous without callback", func(t *testing.T) {
		runner := &fakeRunner{result: sampleResult()}
		exec := newTestExecutor(t, taskSvc, runner)

		result, status, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{
			ResearchTopic: "one-off topic",
		})
		require.NoError(t, err)
		assert.Nil(t, status)
		require.NotNil(t, result)
		assert.Equal(t, "tech-weekly", result.Metadata.StrategySlug)
		assert.Len(t, runner.threadIDs(), 1)
	})

	t.Run("synchronous failure propagates", func(t *testing.T) {
		runner := &fakeRunner{err: workflow.NewError(workflow.KindScopeFailed, "bad request")}
		exec := newTestExecutor(t, taskSvc, runner)

		_, _, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{ResearchTopic: "t"})
		require.Error(t, err)
		assert.Equal(t, workflow.KindScopeFailed, workflow.KindOf(err))
	})

	t.Run("async with callback", func(t *testing.T) {
		runner := &fakeRunner{result: sampleResult()}
		rec := newWebhookRecorder(t)
		exec := newTestExecutor(t, taskSvc, runner)

		result, status, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{
			ResearchTopic: "async topic",
			Email:         "manual@example.com",
			CallbackURL:   rec.srv.URL,
		})
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, status)
		assert.Equal(t, 1, status.TasksFound)

		awaitShutdown(t, exec)

		payloads := rec.received()
		require.Len(t, payloads, 1)
		assert.Equal(t, models.StatusCompleted, payloads[0].Status)
		assert.Equal(t, "manual@example.com", payloads[0].Email)
		assert.Equal(t, "async topic", payloads[0].ResearchTopic)
		assert.Empty(t, payloads[0].Frequency)
	})

	t.Run("requires a topic", func(t *testing.T) {
		exec := newTestExecutor(t, taskSvc, &fakeRunner{result: sampleResult()})
		_, _, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("cancelled workflow still emits its failure webhook", func(t *testing.T) {
		rec := newWebhookRecorder(t)
		exec := newTestExecutor(t, taskSvc, blockingRunner{})

		_, _, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{
			ResearchTopic: "t",
			CallbackURL:   rec.srv.URL,
		})
		require.NoError(t, err)

		// The first shutdown deadline expires while the runner blocks,
		// cancelling the in-flight workflow; the second waits for the
		// goroutine to finish delivery.
		shortCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.Error(t, exec.Shutdown(shortCtx))
		awaitShutdown(t, exec)

		payloads := rec.received()
		require.Len(t, payloads, 1)
		assert.Equal(t, models.StatusFailed, payloads[0].Status)
		assert.Contains(t, payloads[0].Error, "context canceled")
	})

	t.Run("tasks cancelled before starting still get a webhook", func(t *testing.T) {
		rec := newWebhookRecorder(t)
		sender := NewWebhookSender(nil)
		sender.baseInterval = time.Millisecond
		exec := NewExecutor(taskSvc, blockingRunner{}, sender, &config.Config{MaxConcurrency: 1}, nil, nil)

		// One task occupies the single slot; the other waits on the
		// semaphore and never gets to run.
		for i := 0; i < 2; i++ {
			_, _, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{
				ResearchTopic: "t",
				CallbackURL:   rec.srv.URL,
			})
			require.NoError(t, err)
		}

		shortCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.Error(t, exec.Shutdown(shortCtx))
		awaitShutdown(t, exec)

		payloads := rec.received()
		require.Len(t, payloads, 2)
		for _, p := range payloads {
			assert.Equal(t, models.StatusFailed, p.Status)
		}
	})

	t.Run("errors also reach the callback", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("engine exploded")}
		rec := newWebhookRecorder(t)
		exec := newTestExecutor(t, taskSvc, runner)

		_, _, err := exec.ExecuteManual(ctx, models.ManualExecuteRequest{
			ResearchTopic: "t",
			CallbackURL:   rec.srv.URL,
		})
		require.NoError(t, err)
		awaitShutdown(t, exec)

		payloads := rec.received()
		require.Len(t, payloads, 1)
		assert.Equal(t, models.StatusFailed, payloads[0].Status)
		assert.Contains(t, payloads[0].Error, "engine exploded")
	})
}
