package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/batch"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/database"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/strategy"
	testdb "github.com/scout-research/scout/test/database"
)

const testAPIKey = "test-api-key"

// stubRunner satisfies batch.Runner with a canned outcome.
type stubRunner struct {
	mu     sync.Mutex
	calls  int
	err    error
	result *models.TaskResult
}

func (r *stubRunner) Run(context.Context, string, string) (*models.TaskResult, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func stubResult() *models.TaskResult {
	return &models.TaskResult{
		Sections:  []string{"## Summary\ntext"},
		Citations: []string{"example.com: https://example.com/a"},
		Metadata: models.ResultMetadata{
			StrategySlug:  "tech-weekly",
			EvidenceCount: 2,
			ExecutedAt:    time.Now().UTC(),
		},
	}
}

// testServer wires a full Server over a test database with a stubbed
// workflow runner.
type testServer struct {
	srv      *Server
	handler  *echo.Echo
	db       *database.Client
	tasks    *services.TaskService
	executor *batch.Executor
}

func newTestServer(t *testing.T, runner batch.Runner) *testServer {
	t.Helper()

	client := testdb.NewTestClient(t)
	cfg := &config.Config{APIKey: testAPIKey, MaxConcurrency: 2}

	tasks := services.NewTaskService(client.Client)
	settings := services.NewSettingsService(client.Client)
	strategies := strategy.NewStore(client.Client, "", nil)

	sender := batch.NewWebhookSender(nil)
	executor := batch.NewExecutor(tasks, runner, sender, cfg, nil, nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = executor.Shutdown(ctx)
	})

	srv := NewServer(cfg, client, tasks, settings, strategies, executor, nil)
	return &testServer{
		srv:      srv,
		handler:  srv.Handler(),
		db:       client,
		tasks:    tasks,
		executor: executor,
	}
}

// do performs an authenticated request against the full router.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-API-Key", testAPIKey)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// awaitExecutor waits for background runs to drain. The executor rejects new
// work afterwards, so each test builds its own server.
func awaitExecutor(t *testing.T, ts *testServer) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, ts.executor.Shutdown(ctx))
}

func mustCreateTask(t *testing.T, ts *testServer, email, topic string, freq config.Frequency) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/tasks", models.CreateTaskRequest{
		Email:         email,
		ResearchTopic: topic,
		Frequency:     freq,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]any](t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	return id
}
