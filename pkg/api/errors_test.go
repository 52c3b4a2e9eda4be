package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scout-research/scout/pkg/batch"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/strategy"
	"github.com/scout-research/scout/pkg/workflow"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("email", "invalid"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create: %w", services.NewValidationError("email", "invalid")), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"shutting down", batch.ErrShuttingDown, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapServiceError(tt.err).Code)
		})
	}
}

func TestMapStrategyError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, mapStrategyError(strategy.ErrNotFound).Code)
	assert.Equal(t, http.StatusConflict, mapStrategyError(strategy.ErrDuplicate).Code)
	assert.Equal(t, http.StatusBadRequest, mapStrategyError(errors.New("tool_chain must not be empty")).Code)
}

func TestStatusForWorkflowError(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity,
		statusForWorkflowError(workflow.NewError(workflow.KindScopeFailed, "bad")))
	assert.Equal(t, http.StatusUnprocessableEntity,
		statusForWorkflowError(workflow.NewError(workflow.KindNoEvidence, "empty")))
	assert.Equal(t, http.StatusBadGateway,
		statusForWorkflowError(workflow.NewError(workflow.KindProviderUnavailable, "down")))
	assert.Equal(t, http.StatusBadGateway,
		statusForWorkflowError(workflow.NewError(workflow.KindProviderExhausted, "credits")))
}
