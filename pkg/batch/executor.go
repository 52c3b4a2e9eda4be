package batch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/workflow"
)

// ErrShuttingDown is returned when a batch is triggered during shutdown.
var ErrShuttingDown = errors.New("executor is shutting down")

// Runner runs one workflow invocation. Satisfied by *workflow.Machine.
type Runner interface {
	Run(ctx context.Context, threadID, userRequest string) (*models.TaskResult, error)
}

// SpanFlusher exports buffered spans after a batch. Satisfied by
// *observability.TracerProvider.
type SpanFlusher interface {
	ForceFlush(ctx context.Context) error
}

// Executor runs subscription tasks concurrently, bounded by the configured
// concurrency, and delivers shaped results to callback URLs. A failing task
// never aborts its batch; per-task outcomes surface only through the webhook
// stream and spans.
type Executor struct {
	tasks    *services.TaskService
	machine  Runner
	webhooks *WebhookSender
	flusher  SpanFlusher
	logger   *slog.Logger

	sem     *semaphore.Weighted
	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	stopping bool
	wg       sync.WaitGroup
}

// NewExecutor builds the batch executor. flusher may be nil.
func NewExecutor(tasks *services.TaskService, machine Runner, webhooks *WebhookSender, cfg *config.Config, flusher SpanFlusher, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	baseCtx, cancel := context.WithCancel(context.Background())
	return &Executor{
		tasks:    tasks,
		machine:  machine,
		webhooks: webhooks,
		flusher:  flusher,
		logger:   logger,
		sem:      semaphore.NewWeighted(int64(maxConcurrency)),
		baseCtx:  baseCtx,
		cancel:   cancel,
	}
}

// ExecuteBatch enumerates active tasks for the frequency and starts them in
// the background. The response returns immediately; per-task results go to
// the callback URL.
func (e *Executor) ExecuteBatch(ctx context.Context, req models.BatchExecuteRequest) (*models.BatchStatus, error) {
	if !req.Frequency.IsValid() {
		return nil, services.NewValidationError("frequency", "must be daily, weekly or monthly")
	}
	if req.CallbackURL == "" {
		return nil, services.NewValidationError("callback_url", "required")
	}

	tasks, err := e.tasks.ListActiveByFrequency(ctx, req.Frequency)
	if err != nil {
		return nil, err
	}

	if err := e.track(len(tasks) + 1); err != nil {
		return nil, err
	}
	go e.runBatch(tasks, req)

	return &models.BatchStatus{
		Status:     models.BatchStatusRunning,
		TasksFound: len(tasks),
		StartedAt:  time.Now().UTC(),
	}, nil
}

// ExecuteManual runs a one-off request. Without a callback URL the workflow
// runs synchronously and the shaped result is returned; with one, the run is
// dispatched like a single-task batch.
func (e *Executor) ExecuteManual(ctx context.Context, req models.ManualExecuteRequest) (*models.TaskResult, *models.BatchStatus, error) {
	if req.ResearchTopic == "" {
		return nil, nil, services.NewValidationError("research_topic", "required")
	}

	threadID := uuid.New().String()

	if req.CallbackURL == "" {
		result, err := e.machine.Run(ctx, threadID, req.ResearchTopic)
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}

	if err := e.track(1); err != nil {
		return nil, nil, err
	}
	go func() {
		defer e.wg.Done()
		e.runOne(e.baseCtx, taskSpec{
			id:    threadID,
			email: req.Email,
			topic: req.ResearchTopic,
		}, req.CallbackURL, false)
	}()

	return nil, &models.BatchStatus{
		Status:     models.BatchStatusRunning,
		TasksFound: 1,
		StartedAt:  time.Now().UTC(),
	}, nil
}

// Shutdown stops accepting work and waits for in-flight tasks, up to the
// context deadline. Remaining workflows are cancelled after that.
func (e *Executor) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.stopping = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.cancel()
		return nil
	case <-ctx.Done():
		e.cancel()
		return ctx.Err()
	}
}

// Draining reports whether the executor has stopped accepting work.
func (e *Executor) Draining() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopping
}

// track reserves n waitgroup slots unless the executor is stopping.
func (e *Executor) track(n int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopping {
		return ErrShuttingDown
	}
	e.wg.Add(n)
	return nil
}

// taskSpec is the slice of a task the runner needs; manual runs have no
// backing row.
type taskSpec struct {
	id        string
	email     string
	topic     string
	frequency string
}

func (e *Executor) runBatch(tasks []*ent.ResearchTask, req models.BatchExecuteRequest) {
	defer e.wg.Done()

	var inner sync.WaitGroup
	for _, task := range tasks {
		spec := taskSpec{
			id:        task.ID,
			email:     task.Email,
			topic:     task.ResearchTopic,
			frequency: string(task.Frequency),
		}
		inner.Add(1)
		go func() {
			defer inner.Done()
			defer e.wg.Done()
			e.runOne(e.baseCtx, spec, req.CallbackURL, true)
		}()
	}
	inner.Wait()

	if e.flusher != nil {
		flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.flusher.ForceFlush(flushCtx); err != nil {
			e.logger.Warn("span flush failed", "error", err)
		}
	}
	e.logger.Info("batch complete", "frequency", req.Frequency, "tasks", len(tasks))
}

// deliveryWindow bounds webhook delivery including all retry pauses.
const deliveryWindow = 2 * time.Minute

// runOne executes a single task under the concurrency bound and delivers its
// webhook. subscribed marks tasks with a backing row whose last_run_at is
// updated after delivery.
func (e *Executor) runOne(ctx context.Context, spec taskSpec, callbackURL string, subscribed bool) {
	payload := &models.WebhookPayload{
		TaskID:        spec.id,
		Email:         spec.email,
		ResearchTopic: spec.topic,
		Frequency:     spec.frequency,
	}

	if err := e.sem.Acquire(ctx, 1); err != nil {
		// A task listed at batch start still owes its callback a webhook,
		// even when it never got to run.
		e.logger.Warn("task cancelled before start", "task_id", spec.id, "error", err)
		payload.Status = models.StatusFailed
		payload.Error = "task cancelled before start: " + err.Error()
		e.deliver(ctx, callbackURL, payload)
		return
	}
	defer e.sem.Release(1)

	ctx, span := observability.StartSpan(ctx, "batch.task",
		attribute.String("task_id", spec.id),
		attribute.String("user", spec.email),
		attribute.String("session", spec.id),
		attribute.String("frequency", spec.frequency),
	)

	result, err := e.machine.Run(ctx, spec.id, spec.topic)
	if err != nil {
		e.logger.Error("task workflow failed",
			"task_id", spec.id, "kind", workflow.KindOf(err), "error", err)
		payload.Status = models.StatusFailed
		payload.Error = err.Error()
	} else {
		payload.Status = models.StatusCompleted
		payload.Result = result
	}

	deliverErr := e.deliver(ctx, callbackURL, payload)

	// last_run_at moves only after the result actually reached the callback.
	if subscribed && err == nil && deliverErr == nil {
		markCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if markErr := e.tasks.MarkRun(markCtx, spec.id, time.Now().UTC()); markErr != nil {
			e.logger.Warn("failed to update last_run_at", "task_id", spec.id, "error", markErr)
		}
	}

	observability.EndSpan(span, err)
}

// deliver posts the webhook on a context detached from the workflow's, so a
// run that failed by cancellation or timeout still emits its failure webhook.
func (e *Executor) deliver(ctx context.Context, callbackURL string, payload *models.WebhookPayload) error {
	deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliveryWindow)
	defer cancel()

	err := e.webhooks.Deliver(deliveryCtx, callbackURL, payload)
	if err != nil {
		e.logger.Error("webhook delivery failed", "task_id", payload.TaskID, "error", err)
	}
	return err
}
