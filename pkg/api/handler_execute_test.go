package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/workflow"
)

// callbackRecorder collects webhook payloads delivered by background runs.
type callbackRecorder struct {
	mu       sync.Mutex
	payloads []models.WebhookPayload
	srv      *httptest.Server
}

func newCallbackRecorder(t *testing.T) *callbackRecorder {
	t.Helper()
	rec := &callbackRecorder{}
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

func (r *callbackRecorder) received() []models.WebhookPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.WebhookPayload(nil), r.payloads...)
}

func TestExecuteBatchHandler(t *testing.T) {
	t.Run("starts matching tasks and returns immediately", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		cb := newCallbackRecorder(t)
		mustCreateTask(t, ts, "batch@example.com", "topic one", config.FrequencyWeekly)
		mustCreateTask(t, ts, "batch@example.com", "topic two", config.FrequencyWeekly)
		mustCreateTask(t, ts, "batch@example.com", "daily topic", config.FrequencyDaily)

		rec := ts.do(t, http.MethodPost, "/execute/batch", models.BatchExecuteRequest{
			Frequency:   config.FrequencyWeekly,
			CallbackURL: cb.srv.URL,
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		status := decode[models.BatchStatus](t, rec)
		assert.Equal(t, models.BatchStatusRunning, status.Status)
		assert.Equal(t, 2, status.TasksFound)
		assert.False(t, status.StartedAt.IsZero())

		awaitExecutor(t, ts)
		assert.Len(t, cb.received(), 2)
	})

	t.Run("invalid frequency is 400", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		rec := ts.do(t, http.MethodPost, "/execute/batch", models.BatchExecuteRequest{
			Frequency:   config.Frequency("hourly"),
			CallbackURL: "http://example.com/hook",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing callback is 400", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		rec := ts.do(t, http.MethodPost, "/execute/batch", models.BatchExecuteRequest{
			Frequency: config.FrequencyDaily,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExecuteManualHandler(t *testing.T) {
	t.Run("synchronous run returns the shaped result", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		rec := ts.do(t, http.MethodPost, "/execute/manual", models.ManualExecuteRequest{
			ResearchTopic: "fusion energy",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[ManualExecuteResponse](t, rec)
		assert.Equal(t, models.StatusCompleted, resp.Status)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "tech-weekly", resp.Result.Metadata.StrategySlug)
	})

	t.Run("failed synchronous run is a structured error", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{
			err: workflow.NewError(workflow.KindNoEvidence, "nothing found"),
		})
		rec := ts.do(t, http.MethodPost, "/execute/manual", models.ManualExecuteRequest{
			ResearchTopic: "obscure topic",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decode[ManualExecuteResponse](t, rec)
		assert.Equal(t, models.StatusFailed, resp.Status)
		assert.Contains(t, resp.Error, "NO_EVIDENCE")
		assert.Nil(t, resp.Result)
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{
			err: workflow.NewError(workflow.KindProviderUnavailable, "exa is down"),
		})
		rec := ts.do(t, http.MethodPost, "/execute/manual", models.ManualExecuteRequest{
			ResearchTopic: "t",
		})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("callback URL makes the run asynchronous", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		cb := newCallbackRecorder(t)

		rec := ts.do(t, http.MethodPost, "/execute/manual", models.ManualExecuteRequest{
			ResearchTopic: "async topic",
			Email:         "manual@example.com",
			CallbackURL:   cb.srv.URL,
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		status := decode[models.BatchStatus](t, rec)
		assert.Equal(t, models.BatchStatusRunning, status.Status)
		assert.Equal(t, 1, status.TasksFound)

		awaitExecutor(t, ts)
		payloads := cb.received()
		require.Len(t, payloads, 1)
		assert.Equal(t, models.StatusCompleted, payloads[0].Status)
		assert.Equal(t, "manual@example.com", payloads[0].Email)
	})

	t.Run("missing topic is 400", func(t *testing.T) {
		ts := newTestServer(t, &stubRunner{result: stubResult()})
		rec := ts.do(t, http.MethodPost, "/execute/manual", models.ManualExecuteRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
