// Package config loads environment-driven runtime configuration and defines
// the shared enums (time windows, depths, frequencies, phases) used across
// the pipeline.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide runtime configuration, loaded once at startup
// and passed by dependency injection — no module-level globals.
type Config struct {
	// APIKey is the shared secret checked against the X-API-Key header.
	APIKey string

	// Provider credentials. Each provider is independent: a missing key
	// disables that adapter and surfaces CONFIG_ERROR only when a strategy
	// actually calls it.
	OpenAIAPIKey  string
	OpenAIBaseURL string // optional, for OpenAI-compatible gateways
	SonarAPIKey   string
	SonarBaseURL  string
	ExaAPIKey     string
	ExaBaseURL    string

	// StrategyDir holds bootstrap YAML strategies, read once per process
	// when the strategies table is empty.
	StrategyDir string

	// Timeouts.
	AdapterTimeout  time.Duration // per adapter call
	LLMTimeout      time.Duration // per LLM call
	WorkflowTimeout time.Duration // per workflow

	// MaxConcurrency bounds parallel task execution in a batch.
	MaxConcurrency int

	// AdapterRPS carries per-adapter rate-limit overrides
	// (SCOUT_<ADAPTER>_RPS). Zero means no limit.
	AdapterRPS map[string]float64

	// QCLLMEnabled turns on the LLM grounding check by default; the
	// qc.llm_enabled global setting overrides it at runtime.
	QCLLMEnabled bool

	// ScopeCacheTTL bounds scope classification reuse.
	ScopeCacheTTL time.Duration

	// ConfigVersion participates in the scope fingerprint so classifier
	// prompt changes invalidate cached classifications.
	ConfigVersion string

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string

	// LLMDefaults is the per-phase LLM tuning (see llm.go).
	LLMDefaults map[Phase]LLMConfig
}

const (
	defaultAdapterTimeout  = 30 * time.Second
	defaultLLMTimeout      = 60 * time.Second
	defaultWorkflowTimeout = 600 * time.Second
	defaultScopeCacheTTL   = 24 * time.Hour
)

// Load builds the Config from environment variables. Only the API key is
// required up front; provider credentials are validated lazily at call time.
func Load() (*Config, error) {
	apiKey := os.Getenv("SCOUT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SCOUT_API_KEY is required")
	}

	cfg := &Config{
		APIKey:          apiKey,
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		SonarAPIKey:     os.Getenv("PERPLEXITY_API_KEY"),
		SonarBaseURL:    getEnvOrDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
		ExaAPIKey:       os.Getenv("EXA_API_KEY"),
		ExaBaseURL:      getEnvOrDefault("EXA_BASE_URL", "https://api.exa.ai"),
		StrategyDir:     getEnvOrDefault("STRATEGY_DIR", "./deploy/strategies"),
		AdapterTimeout:  getEnvDuration("ADAPTER_TIMEOUT", defaultAdapterTimeout),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", defaultLLMTimeout),
		WorkflowTimeout: getEnvDuration("WORKFLOW_TIMEOUT", defaultWorkflowTimeout),
		MaxConcurrency:  getEnvInt("MAX_CONCURRENCY", 1),
		AdapterRPS:      loadAdapterRPS(),
		QCLLMEnabled:    getEnvBool("QC_LLM_ENABLED", false),
		ScopeCacheTTL:   getEnvDuration("SCOPE_CACHE_TTL", defaultScopeCacheTTL),
		ConfigVersion:   getEnvOrDefault("CONFIG_VERSION", "1"),
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		LLMDefaults:     defaultLLM(),
	}

	if cfg.MaxConcurrency < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENCY must be >= 1, got %d", cfg.MaxConcurrency)
	}

	return cfg, nil
}

// loadAdapterRPS reads SCOUT_<NAME>_RPS overrides (e.g. SCOUT_EXA_RPS=2.5).
func loadAdapterRPS() map[string]float64 {
	out := make(map[string]float64)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "SCOUT_") || !strings.HasSuffix(key, "_RPS") {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(key, "SCOUT_"), "_RPS"))
		if rps, err := strconv.ParseFloat(value, 64); err == nil && rps > 0 {
			out[name] = rps
		}
	}
	return out
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
