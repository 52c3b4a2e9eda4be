package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Retry policy for retryable adapter failures.
const (
	retryBaseInterval = 500 * time.Millisecond
	retryMaxInterval  = 8 * time.Second
	retryMaxAttempts  = 3
)

// Registry holds named adapters and dispatches "provider.method" calls with
// retry and per-adapter rate limiting. Adapters are registered once at
// startup; dispatch is read-only after that.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	limiters map[string]*rate.Limiter
	timeout  time.Duration
	logger   *slog.Logger
}

// NewRegistry creates an empty adapter registry. callTimeout bounds each
// individual invocation attempt; zero means no per-call bound beyond the
// caller's context.
func NewRegistry(callTimeout time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		adapters: make(map[string]Adapter),
		limiters: make(map[string]*rate.Limiter),
		timeout:  callTimeout,
		logger:   logger,
	}
}

// Register adds an adapter to the registry. Registering a duplicate name is
// a programming error and fails.
func (r *Registry) Register(a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := a.Name()
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("adapter %q already registered", name)
	}
	r.adapters[name] = a
	return nil
}

// SetRateLimit installs a requests-per-second limit for the named adapter.
// Burst is set to the ceiling of rps, minimum 1.
func (r *Registry) SetRateLimit(name string, rps float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	r.limiters[name] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Get returns the named adapter, or ErrAdapterNotFound.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAdapterNotFound, name)
	}
	return a, nil
}

// Names returns the registered adapter names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}

// Invoke dispatches a "provider.method" reference. Retryable failures are
// retried with exponential backoff (base 500ms, cap 8s, 3 attempts total).
func (r *Registry) Invoke(ctx context.Context, use string, inputs map[string]any) (Result, error) {
	provider, method, ok := strings.Cut(use, ".")
	if !ok || provider == "" || method == "" {
		return Result{}, fmt.Errorf("%w: malformed reference %q", ErrMethodNotFound, use)
	}

	adapter, err := r.Get(provider)
	if err != nil {
		return Result{}, err
	}
	if !hasMethod(adapter, method) {
		return Result{}, fmt.Errorf("%w: %q has no method %q", ErrMethodNotFound, provider, method)
	}

	r.mu.RLock()
	limiter := r.limiters[provider]
	r.mu.RUnlock()

	var result Result
	operation := func() error {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		callCtx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		res, err := adapter.Invoke(callCtx, method, inputs)
		if err != nil {
			if IsRetryable(err) {
				r.logger.Warn("adapter call failed, will retry",
					"adapter", provider, "method", method, "error", err)
				return err
			}
			return backoff.Permanent(err)
		}
		result = res
		return nil
	}

	policy := backoff.WithContext(newRetryBackoff(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return Result{}, err
	}
	return result, nil
}

func newRetryBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryBaseInterval
	b.MaxInterval = retryMaxInterval
	b.RandomizationFactor = 0
	b.Multiplier = 2
	return backoff.WithMaxRetries(b, retryMaxAttempts-1)
}
