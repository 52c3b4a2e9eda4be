package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
)

func TestTaskHandlers(t *testing.T) {
	ts := newTestServer(t, &stubRunner{result: stubResult()})

	t.Run("create returns the task record", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/tasks", models.CreateTaskRequest{
			Email:         "crud@example.com",
			ResearchTopic: "fusion energy",
			Frequency:     config.FrequencyWeekly,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		task := decode[map[string]any](t, rec)
		assert.NotEmpty(t, task["id"])
		assert.Equal(t, "crud@example.com", task["email"])
		assert.Equal(t, "fusion energy", task["research_topic"])
		assert.Equal(t, "weekly", task["frequency"])
	})

	t.Run("create rejects an invalid email", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/tasks", models.CreateTaskRequest{
			Email:         "not-an-email",
			ResearchTopic: "x",
			Frequency:     config.FrequencyDaily,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get and list", func(t *testing.T) {
		id := mustCreateTask(t, ts, "list@example.com", "topic a", config.FrequencyDaily)
		mustCreateTask(t, ts, "list@example.com", "topic b", config.FrequencyWeekly)

		rec := ts.do(t, http.MethodGet, "/tasks/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		task := decode[map[string]any](t, rec)
		assert.Equal(t, "topic a", task["research_topic"])

		rec = ts.do(t, http.MethodGet, "/tasks?email=list@example.com", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		tasks := decode[[]map[string]any](t, rec)
		assert.Len(t, tasks, 2)
	})

	t.Run("list requires an email filter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/tasks", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get missing task is 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/tasks/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("patch updates only the given fields", func(t *testing.T) {
		id := mustCreateTask(t, ts, "patch@example.com", "old topic", config.FrequencyWeekly)

		newTopic := "new topic"
		inactive := false
		rec := ts.do(t, http.MethodPatch, "/tasks/"+id, models.UpdateTaskRequest{
			ResearchTopic: &newTopic,
			IsActive:      &inactive,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		task := decode[map[string]any](t, rec)
		assert.Equal(t, "new topic", task["research_topic"])
		assert.Equal(t, false, task["is_active"])
		assert.Equal(t, "patch@example.com", task["email"])
	})

	t.Run("patch missing task is 404", func(t *testing.T) {
		topic := "x"
		rec := ts.do(t, http.MethodPatch, "/tasks/does-not-exist", models.UpdateTaskRequest{
			ResearchTopic: &topic,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete removes the task", func(t *testing.T) {
		id := mustCreateTask(t, ts, "del@example.com", "doomed", config.FrequencyMonthly)

		rec := ts.do(t, http.MethodDelete, "/tasks/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[DeleteResponse](t, rec).Success)

		rec = ts.do(t, http.MethodGet, "/tasks/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = ts.do(t, http.MethodDelete, "/tasks/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
