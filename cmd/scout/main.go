// Scout research orchestrator server — provides the HTTP API, runs the
// deterministic research workflow, and delivers results to webhooks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scout-research/scout/pkg/api"
	"github.com/scout-research/scout/pkg/batch"
	"github.com/scout-research/scout/pkg/cleanup"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/database"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/services"
	"github.com/scout-research/scout/pkg/strategy"
	"github.com/scout-research/scout/pkg/tools"
	"github.com/scout-research/scout/pkg/version"
	"github.com/scout-research/scout/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadScoringWeights resolves evidence scoring weights from the scoring
// setting, falling back to the defaults for missing fields.
func loadScoringWeights(ctx context.Context, settings *services.SettingsService) evidence.ScoringWeights {
	weights := evidence.DefaultWeights
	setting, err := settings.GetSetting(ctx, "scoring")
	if err != nil {
		return weights
	}
	if v, ok := setting.Value["domain_boost"].(float64); ok {
		weights.DomainBoost = v
	}
	if v, ok := setting.Value["recency_max"].(float64); ok {
		weights.RecencyMax = v
	}
	if v, ok := setting.Value["snippet_bonus"].(float64); ok {
		weights.SnippetBonus = v
	}
	return weights
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting scout",
		"version", version.GitCommit,
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Runtime configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Tracing
	tracerProvider, err := observability.NewTracerProvider(observability.TracingConfig{
		Enabled:        cfg.OTLPEndpoint != "",
		OTLPEndpoint:   cfg.OTLPEndpoint,
		ServiceName:    version.AppName,
		ServiceVersion: version.GitCommit,
	})
	if err != nil {
		slog.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error shutting down tracer provider", "error", err)
		}
	}()

	// 4. LLM client
	llmClient, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMTimeout)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	// 5. Tool adapters
	registry := tools.NewRegistry(cfg.AdapterTimeout, nil)
	adapters := []tools.Adapter{
		tools.NewExaAdapter(cfg.ExaAPIKey, cfg.ExaBaseURL, nil, nil),
		tools.NewSonarAdapter(cfg.SonarAPIKey, cfg.SonarBaseURL, "", nil, nil),
		tools.NewAnalyzerAdapter(llmClient, cfg.LLMDefaults[config.PhaseResearch]),
	}
	for _, a := range adapters {
		if err := registry.Register(a); err != nil {
			slog.Error("Failed to register adapter", "adapter", a.Name(), "error", err)
			os.Exit(1)
		}
	}
	for name, rps := range cfg.AdapterRPS {
		registry.SetRateLimit(name, rps)
		slog.Info("Adapter rate limit set", "adapter", name, "rps", rps)
	}

	// 6. Strategy catalog (bootstraps from YAML on an empty store) and
	// domain services
	strategies := strategy.NewStore(dbClient.Client, cfg.StrategyDir, nil)
	taskService := services.NewTaskService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)

	// 7. Workflow pipeline. QC consults the qc setting per run; scoring
	// weights are resolved from the scoring setting once at startup.
	validator := workflow.NewValidator(llmClient, cfg, nil)
	validator.SetSettingLookup(func(ctx context.Context, key string) (map[string]any, error) {
		setting, err := settingsService.GetSetting(ctx, key)
		if err != nil {
			return nil, err
		}
		return setting.Value, nil
	})

	machine := workflow.NewMachine(
		workflow.NewClassifier(llmClient, strategies, dbClient.Client, cfg, nil),
		workflow.NewPlanner(llmClient, cfg, nil),
		workflow.NewExecutor(registry, llmClient, cfg, loadScoringWeights(ctx, settingsService), nil),
		workflow.NewSynthesizer(llmClient, registry, cfg, nil),
		validator,
		strategies,
		workflow.NewDBCheckpointer(dbClient.Client),
		cfg,
		nil,
	)

	// 8. Batch executor and retention sweep
	webhooks := batch.NewWebhookSender(nil)
	executor := batch.NewExecutor(taskService, machine, webhooks, cfg, tracerProvider, nil)

	cleanupService := cleanup.NewService(cleanup.DefaultConfig(cfg.ScopeCacheTTL), dbClient.Client, nil)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, taskService, settingsService, strategies, executor, nil)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Scout started successfully", "max_concurrency", cfg.MaxConcurrency)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop taking requests, then drain batch work.
	httpCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Warn("HTTP server shutdown timeout exceeded", "error", err)
	}

	batchCtx, batchCancel := context.WithTimeout(ctx, cfg.WorkflowTimeout)
	defer batchCancel()
	if err := executor.Shutdown(batchCtx); err != nil {
		slog.Warn("Batch executor shutdown timeout exceeded", "error", err)
	} else {
		slog.Info("Batch executor drained")
	}

	slog.Info("Scout shutdown complete")
}
