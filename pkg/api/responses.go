package api

import (
	"github.com/scout-research/scout/pkg/models"
)

// HealthCheck is the state of one internal component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// DeleteResponse is returned by DELETE handlers.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ManualExecuteResponse is the synchronous response to POST /execute/manual
// when no callback URL is given.
type ManualExecuteResponse struct {
	Status string             `json:"status"`
	Result *models.TaskResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}
