// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/researchtask"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
)

const dbTimeout = 5 * time.Second

// TaskService manages subscription research tasks.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask registers a new subscription task.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.ResearchTask, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.ResearchTopic) == "" {
		return nil, NewValidationError("research_topic", "required")
	}
	if !req.Frequency.IsValid() {
		return nil, NewValidationError("frequency", "must be daily, weekly or monthly")
	}
	if req.ScheduleTime != "" {
		if err := validateScheduleTime(req.ScheduleTime); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	create := s.client.ResearchTask.Create().
		SetID(uuid.New().String()).
		SetEmail(req.Email).
		SetResearchTopic(req.ResearchTopic).
		SetFrequency(researchtask.Frequency(req.Frequency))
	if req.ScheduleTime != "" {
		create.SetScheduleTime(req.ScheduleTime)
	}

	task, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask returns a task by ID.
func (s *TaskService) GetTask(httpCtx context.Context, id string) (*ent.ResearchTask, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	task, err := s.client.ResearchTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasksByEmail returns all tasks registered for one email, newest first.
func (s *TaskService) ListTasksByEmail(httpCtx context.Context, email string) ([]*ent.ResearchTask, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tasks, err := s.client.ResearchTask.Query().
		Where(researchtask.EmailEQ(email)).
		Order(ent.Desc(researchtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task.
func (s *TaskService) UpdateTask(httpCtx context.Context, id string, req models.UpdateTaskRequest) (*ent.ResearchTask, error) {
	if req.ResearchTopic != nil && strings.TrimSpace(*req.ResearchTopic) == "" {
		return nil, NewValidationError("research_topic", "must not be empty")
	}
	if req.Frequency != nil && !req.Frequency.IsValid() {
		return nil, NewValidationError("frequency", "must be daily, weekly or monthly")
	}
	if req.ScheduleTime != nil {
		if err := validateScheduleTime(*req.ScheduleTime); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	update := s.client.ResearchTask.UpdateOneID(id)
	if req.ResearchTopic != nil {
		update.SetResearchTopic(*req.ResearchTopic)
	}
	if req.Frequency != nil {
		update.SetFrequency(researchtask.Frequency(*req.Frequency))
	}
	if req.ScheduleTime != nil {
		update.SetScheduleTime(*req.ScheduleTime)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	task, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task by ID.
func (s *TaskService) DeleteTask(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	err := s.client.ResearchTask.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListActiveByFrequency returns the active tasks the batch executor should
// run for one frequency, in creation order.
func (s *TaskService) ListActiveByFrequency(httpCtx context.Context, frequency config.Frequency) ([]*ent.ResearchTask, error) {
	if !frequency.IsValid() {
		return nil, NewValidationError("frequency", "must be daily, weekly or monthly")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tasks, err := s.client.ResearchTask.Query().
		Where(
			researchtask.IsActiveEQ(true),
			researchtask.FrequencyEQ(researchtask.Frequency(frequency)),
		).
		Order(ent.Asc(researchtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	return tasks, nil
}

// MarkRun records a successful delivery time. Called only after the webhook
// was accepted; failures here are the caller's to log, not to fail on.
func (s *TaskService) MarkRun(httpCtx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	err := s.client.ResearchTask.UpdateOneID(id).
		SetLastRunAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark task run: %w", err)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return NewValidationError("email", "malformed address")
	}
	return nil
}

func validateScheduleTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return NewValidationError("schedule_time", "must be HH:MM")
	}
	return nil
}
