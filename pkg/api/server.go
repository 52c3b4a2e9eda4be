// Package api exposes the HTTP surface: subscription task CRUD, batch and
// manual execution triggers, strategy and settings administration, and an
// unauthenticated health probe. Handlers stay thin and delegate to the
// service layer.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/scout-research/scout/pkg/batch"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/database"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/strategy"
)

// Server is the HTTP server wiring handlers to the service layer.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	tasks      *services.TaskService
	settings   *services.SettingsService
	strategies *strategy.Store
	executor   *batch.Executor
	logger     *slog.Logger

	httpSrv *http.Server
}

// NewServer creates the API server. All dependencies are required except the
// logger, which defaults to slog.Default().
func NewServer(cfg *config.Config, dbClient *database.Client, tasks *services.TaskService, settings *services.SettingsService, strategies *strategy.Store, executor *batch.Executor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		tasks:      tasks,
		settings:   settings,
		strategies: strategies,
		executor:   executor,
		logger:     logger,
	}
}

// Handler builds the echo engine with all routes and middleware registered.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(apiKeyAuth(s.cfg.APIKey))

	e.GET("/health", s.healthHandler)

	e.POST("/tasks", s.createTaskHandler)
	e.GET("/tasks", s.listTasksHandler)
	e.GET("/tasks/:id", s.getTaskHandler)
	e.PATCH("/tasks/:id", s.updateTaskHandler)
	e.DELETE("/tasks/:id", s.deleteTaskHandler)

	e.POST("/execute/batch", s.executeBatchHandler)
	e.POST("/execute/manual", s.executeManualHandler)

	api := e.Group("/api")
	api.GET("/strategies", s.listStrategiesHandler)
	api.GET("/strategies/:slug", s.getStrategyHandler)
	api.POST("/strategies/:slug", s.createStrategyHandler)
	api.PUT("/strategies/:slug", s.updateStrategyHandler)
	api.DELETE("/strategies/:slug", s.deleteStrategyHandler)

	api.GET("/settings", s.listSettingsHandler)
	api.GET("/settings/:key", s.getSettingHandler)
	api.PUT("/settings/:key", s.putSettingHandler)

	return e
}

// Start serves HTTP on the given address until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
