package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/workflow"
)

// executeBatchHandler handles POST /execute/batch. The response returns
// immediately; per-task outcomes go to the callback URL.
func (s *Server) executeBatchHandler(c *echo.Context) error {
	var req models.BatchExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := s.executor.ExecuteBatch(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, status)
}

// executeManualHandler handles POST /execute/manual. Without a callback URL
// the workflow runs synchronously and the shaped result is returned inline;
// with one, the run is dispatched in the background like a one-task batch.
func (s *Server) executeManualHandler(c *echo.Context) error {
	var req models.ManualExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, status, err := s.executor.ExecuteManual(c.Request().Context(), req)
	if err != nil {
		if workflow.KindOf(err) == "" {
			return mapServiceError(err)
		}
		// A failed synchronous run is still a structured response, never a
		// bare 500.
		s.logger.Warn("manual run failed",
			"kind", workflow.KindOf(err), "error", err)
		return c.JSON(statusForWorkflowError(err), &ManualExecuteResponse{
			Status: models.StatusFailed,
			Error:  err.Error(),
		})
	}

	if status != nil {
		return c.JSON(http.StatusAccepted, status)
	}
	return c.JSON(http.StatusOK, &ManualExecuteResponse{
		Status: models.StatusCompleted,
		Result: result,
	})
}
