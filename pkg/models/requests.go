package models

import (
	"time"

	"github.com/scout-research/scout/pkg/config"
)

// CreateTaskRequest creates a subscription task.
type CreateTaskRequest struct {
	Email         string           `json:"email"`
	ResearchTopic string           `json:"research_topic"`
	Frequency     config.Frequency `json:"frequency"`
	ScheduleTime  string           `json:"schedule_time,omitempty"`
}

// UpdateTaskRequest patches a subscription task. Nil fields are untouched.
type UpdateTaskRequest struct {
	ResearchTopic *string           `json:"research_topic,omitempty"`
	Frequency     *config.Frequency `json:"frequency,omitempty"`
	ScheduleTime  *string           `json:"schedule_time,omitempty"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

// BatchExecuteRequest triggers all active tasks of one frequency.
type BatchExecuteRequest struct {
	Frequency   config.Frequency `json:"frequency"`
	CallbackURL string           `json:"callback_url"`
}

// ManualExecuteRequest runs a one-off research request. Without a callback
// URL the shaped result is returned synchronously.
type ManualExecuteRequest struct {
	ResearchTopic string `json:"research_topic"`
	Email         string `json:"email,omitempty"`
	CallbackURL   string `json:"callback_url,omitempty"`
}

// BatchStatus is the immediate response to a batch or async manual trigger;
// execution continues in the background.
type BatchStatus struct {
	Status     string    `json:"status"`
	TasksFound int       `json:"tasks_found"`
	StartedAt  time.Time `json:"started_at"`
}

// Batch statuses.
const (
	BatchStatusRunning = "running"
)
