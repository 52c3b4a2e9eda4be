package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
	testdb "github.com/scout-research/scout/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates task with defaults", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "user@example.com",
			ResearchTopic: "quantum computing",
			Frequency:     config.FrequencyWeekly,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "user@example.com", task.Email)
		assert.Equal(t, "08:00", task.ScheduleTime)
		assert.True(t, task.IsActive)
		assert.Nil(t, task.LastRunAt)
	})

	t.Run("accepts explicit schedule time", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "user@example.com",
			ResearchTopic: "fusion energy",
			Frequency:     config.FrequencyDaily,
			ScheduleTime:  "17:30",
		})
		require.NoError(t, err)
		assert.Equal(t, "17:30", task.ScheduleTime)
	})

	t.Run("validates email", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "not-an-address",
			ResearchTopic: "topic",
			Frequency:     config.FrequencyDaily,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates research_topic required", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:     "user@example.com",
			Frequency: config.FrequencyDaily,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates frequency", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "user@example.com",
			ResearchTopic: "topic",
			Frequency:     config.Frequency("hourly"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates schedule time format", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "user@example.com",
			ResearchTopic: "topic",
			Frequency:     config.FrequencyDaily,
			ScheduleTime:  "25:99",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		Email:         "list@example.com",
		ResearchTopic: "ai chips",
		Frequency:     config.FrequencyWeekly,
	})
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		task, err := svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "ai chips", task.ResearchTopic)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := svc.GetTask(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by email", func(t *testing.T) {
		tasks, err := svc.ListTasksByEmail(ctx, "list@example.com")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, created.ID, tasks[0].ID)
	})

	t.Run("list unknown email is empty", func(t *testing.T) {
		tasks, err := svc.ListTasksByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		Email:         "update@example.com",
		ResearchTopic: "robotics",
		Frequency:     config.FrequencyWeekly,
	})
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		topic := "humanoid robotics"
		active := false
		task, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{
			ResearchTopic: &topic,
			IsActive:      &active,
		})
		require.NoError(t, err)
		assert.Equal(t, "humanoid robotics", task.ResearchTopic)
		assert.False(t, task.IsActive)
		// Untouched fields survive.
		assert.Equal(t, "update@example.com", task.Email)
	})

	t.Run("update missing", func(t *testing.T) {
		topic := "x"
		_, err := svc.UpdateTask(ctx, "nonexistent", models.UpdateTaskRequest{ResearchTopic: &topic})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		topic := "  "
		_, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{ResearchTopic: &topic})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects bad frequency", func(t *testing.T) {
		freq := config.Frequency("sometimes")
		_, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{Frequency: &freq})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		Email:         "delete@example.com",
		ResearchTopic: "topic",
		Frequency:     config.FrequencyMonthly,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))
	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, created.ID), ErrNotFound)
}

func TestTaskService_ListActiveByFrequency(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	mk := func(topic string, freq config.Frequency, active bool) string {
		task, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			Email:         "batch@example.com",
			ResearchTopic: topic,
			Frequency:     freq,
		})
		require.NoError(t, err)
		if !active {
			off := false
			_, err = svc.UpdateTask(ctx, task.ID, models.UpdateTaskRequest{IsActive: &off})
			require.NoError(t, err)
		}
		return task.ID
	}

	weeklyID := mk("weekly on", config.FrequencyWeekly, true)
	mk("weekly off", config.FrequencyWeekly, false)
	mk("daily on", config.FrequencyDaily, true)

	tasks, err := svc.ListActiveByFrequency(ctx, config.FrequencyWeekly)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, weeklyID, tasks[0].ID)

	_, err = svc.ListActiveByFrequency(ctx, config.Frequency("never"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTaskService_MarkRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		Email:         "run@example.com",
		ResearchTopic: "topic",
		Frequency:     config.FrequencyDaily,
	})
	require.NoError(t, err)

	at := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	require.NoError(t, svc.MarkRun(ctx, created.ID, at))

	task, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, task.LastRunAt)
	assert.True(t, task.LastRunAt.Equal(at))

	assert.ErrorIs(t, svc.MarkRun(ctx, "nonexistent", at), ErrNotFound)
}
