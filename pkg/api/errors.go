package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scout-research/scout/pkg/batch"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/strategy"
	"github.com/scout-research/scout/pkg/workflow"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, batch.ErrShuttingDown) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapStrategyError maps strategy store errors to HTTP error responses.
// Anything that is not a known sentinel is treated as a document problem:
// the store validates on write, so malformed strategies surface here.
func mapStrategyError(err error) *echo.HTTPError {
	if errors.Is(err, strategy.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "strategy not found")
	}
	if errors.Is(err, strategy.ErrDuplicate) {
		return echo.NewHTTPError(http.StatusConflict, "strategy already exists")
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// statusForWorkflowError picks the HTTP status for a synchronous manual run
// that failed. Request-shaped failures (the classifier rejected the request,
// nothing was found) are the caller's problem; everything else means a
// provider or the engine let us down.
func statusForWorkflowError(err error) int {
	switch workflow.KindOf(err) {
	case workflow.KindScopeFailed,
		workflow.KindFillFailed,
		workflow.KindNoEvidence,
		workflow.KindStrategyError,
		workflow.KindConfigError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
