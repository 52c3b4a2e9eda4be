package batch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/workflow"
)

func testSender() *WebhookSender {
	s := NewWebhookSender(nil)
	s.baseInterval = time.Millisecond
	return s
}

func testPayload() *models.WebhookPayload {
	return &models.WebhookPayload{
		TaskID:        "task-1",
		Email:         "user@example.com",
		ResearchTopic: "quantum computing",
		Status:        models.StatusCompleted,
	}
}

func TestWebhookSenderDeliver(t *testing.T) {
	t.Run("posts json payload", func(t *testing.T) {
		var got models.WebhookPayload
		var contentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, testSender().Deliver(context.Background(), srv.URL, testPayload()))
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, "task-1", got.TaskID)
		assert.Equal(t, models.StatusCompleted, got.Status)
	})

	t.Run("retries on 5xx until success", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, testSender().Deliver(context.Background(), srv.URL, testPayload()))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := testSender().Deliver(context.Background(), srv.URL, testPayload())
		require.Error(t, err)
		assert.Equal(t, workflow.KindWebhookDeliveryFailed, workflow.KindOf(err))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("4xx is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		err := testSender().Deliver(context.Background(), srv.URL, testPayload())
		require.Error(t, err)
		assert.Equal(t, workflow.KindWebhookDeliveryFailed, workflow.KindOf(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("network failure is retried", func(t *testing.T) {
		// A closed server refuses connections.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		url := srv.URL
		srv.Close()

		err := testSender().Deliver(context.Background(), url, testPayload())
		require.Error(t, err)
		assert.Equal(t, workflow.KindWebhookDeliveryFailed, workflow.KindOf(err))
	})
}
