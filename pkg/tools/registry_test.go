package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/evidence"
)

type scriptedAdapter struct {
	name    string
	methods []string
	calls   int
	invoke  func(calls int, method string, inputs map[string]any) (Result, error)
}

func (s *scriptedAdapter) Name() string      { return s.name }
func (s *scriptedAdapter) Methods() []string { return s.methods }
func (s *scriptedAdapter) Invoke(_ context.Context, method string, inputs map[string]any) (Result, error) {
	s.calls++
	return s.invoke(s.calls, method, inputs)
}

func TestRegistryDispatch(t *testing.T) {
	t.Run("routes to registered adapter", func(t *testing.T) {
		reg := NewRegistry(0, nil)
		adapter := &scriptedAdapter{
			name:    "fake",
			methods: []string{"search"},
			invoke: func(_ int, method string, inputs map[string]any) (Result, error) {
				assert.Equal(t, "search", method)
				assert.Equal(t, "golang", inputs["query"])
				return EvidenceResult([]evidence.Evidence{{URL: "https://example.com", Tool: "fake"}}), nil
			},
		}
		require.NoError(t, reg.Register(adapter))

		res, err := reg.Invoke(context.Background(), "fake.search", map[string]any{"query": "golang"})
		require.NoError(t, err)
		require.Len(t, res.Evidence, 1)
	})

	t.Run("missing adapter", func(t *testing.T) {
		reg := NewRegistry(0, nil)
		_, err := reg.Invoke(context.Background(), "ghost.search", nil)
		assert.ErrorIs(t, err, ErrAdapterNotFound)
	})

	t.Run("missing method", func(t *testing.T) {
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(&scriptedAdapter{name: "fake", methods: []string{"search"}}))
		_, err := reg.Invoke(context.Background(), "fake.summarize", nil)
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})

	t.Run("malformed reference", func(t *testing.T) {
		reg := NewRegistry(0, nil)
		_, err := reg.Invoke(context.Background(), "noperiod", nil)
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(&scriptedAdapter{name: "fake", methods: []string{"search"}}))
		assert.Error(t, reg.Register(&scriptedAdapter{name: "fake", methods: []string{"search"}}))
	})
}

func TestRegistryRetry(t *testing.T) {
	t.Run("retries retryable errors up to three attempts", func(t *testing.T) {
		adapter := &scriptedAdapter{
			name:    "flaky",
			methods: []string{"search"},
			invoke: func(calls int, _ string, _ map[string]any) (Result, error) {
				if calls < 3 {
					return Result{}, NewToolError("flaky", "search", KindProvider, true, fmt.Errorf("boom %d", calls))
				}
				return ValueResult("ok"), nil
			},
		}
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(adapter))

		res, err := reg.Invoke(context.Background(), "flaky.search", nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Value)
		assert.Equal(t, 3, adapter.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		adapter := &scriptedAdapter{
			name:    "down",
			methods: []string{"search"},
			invoke: func(calls int, _ string, _ map[string]any) (Result, error) {
				return Result{}, NewToolError("down", "search", KindProvider, true, errors.New("unavailable"))
			},
		}
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(adapter))

		_, err := reg.Invoke(context.Background(), "down.search", nil)
		require.Error(t, err)
		assert.Equal(t, 3, adapter.calls)
		assert.True(t, IsRetryable(err))
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		adapter := &scriptedAdapter{
			name:    "broke",
			methods: []string{"search"},
			invoke: func(calls int, _ string, _ map[string]any) (Result, error) {
				return Result{}, NewToolError("broke", "search", KindExhausted, false, errors.New("payment required"))
			},
		}
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(adapter))

		_, err := reg.Invoke(context.Background(), "broke.search", nil)
		require.Error(t, err)
		assert.Equal(t, 1, adapter.calls)
		assert.True(t, IsExhausted(err))
	})

	t.Run("context cancellation stops retries", func(t *testing.T) {
		adapter := &scriptedAdapter{
			name:    "slow",
			methods: []string{"search"},
			invoke: func(calls int, _ string, _ map[string]any) (Result, error) {
				return Result{}, NewToolError("slow", "search", KindNetwork, true, errors.New("timeout"))
			},
		}
		reg := NewRegistry(0, nil)
		require.NoError(t, reg.Register(adapter))

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := reg.Invoke(ctx, "slow.search", nil)
		require.Error(t, err)
		assert.Less(t, adapter.calls, 3)
	})
}

func TestClassifyHTTP(t *testing.T) {
	tests := []struct {
		status    int
		kind      ErrorKind
		retryable bool
	}{
		{429, KindRateLimited, true},
		{402, KindExhausted, false},
		{401, KindAuth, false},
		{403, KindAuth, false},
		{400, KindBadRequest, false},
		{500, KindProvider, true},
		{503, KindProvider, true},
	}
	for _, tt := range tests {
		kind, retryable := ClassifyHTTP(tt.status)
		assert.Equal(t, tt.kind, kind, "status %d", tt.status)
		assert.Equal(t, tt.retryable, retryable, "status %d", tt.status)
	}
}
