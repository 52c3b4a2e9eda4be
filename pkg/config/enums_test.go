package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindow(t *testing.T) {
	for _, w := range []TimeWindow{TimeWindowDay, TimeWindowWeek, TimeWindowMonth, TimeWindowYear} {
		assert.True(t, w.IsValid(), string(w))
		assert.Greater(t, w.Duration(), time.Duration(0), string(w))
	}

	assert.False(t, TimeWindow("fortnight").IsValid())
	assert.Equal(t, time.Duration(0), TimeWindow("fortnight").Duration())
	assert.Equal(t, 7*24*time.Hour, TimeWindowWeek.Duration())
}

func TestDepthAndFrequency(t *testing.T) {
	for _, d := range []Depth{DepthBrief, DepthOverview, DepthDeep, DepthComprehensive} {
		assert.True(t, d.IsValid(), string(d))
	}
	assert.False(t, Depth("exhaustive").IsValid())

	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly} {
		assert.True(t, f.IsValid(), string(f))
	}
	assert.False(t, Frequency("hourly").IsValid())
	assert.False(t, Frequency("").IsValid())
}

func TestPhase(t *testing.T) {
	for _, p := range []Phase{PhaseScope, PhaseFill, PhaseResearch, PhaseFinalize, PhaseQC, PhaseDone} {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, Phase("render").IsValid())
}

func TestResolveLLM(t *testing.T) {
	cfg := &Config{LLMDefaults: defaultLLM()}

	t.Run("no override returns the defaults", func(t *testing.T) {
		resolved := cfg.ResolveLLM(PhaseScope, nil)
		assert.Equal(t, "gpt-4o-mini", resolved.Model)
	})

	t.Run("override fields win, gaps fall back", func(t *testing.T) {
		resolved := cfg.ResolveLLM(PhaseFinalize, &LLMConfig{Model: "gpt-4o-mini"})
		assert.Equal(t, "gpt-4o-mini", resolved.Model)
		// MaxTokens comes from the phase default.
		if assert.NotNil(t, resolved.MaxTokens) {
			assert.Equal(t, 4096, *resolved.MaxTokens)
		}
	})

	t.Run("temperature override survives the merge", func(t *testing.T) {
		temp := float32(0.2)
		resolved := cfg.ResolveLLM(PhaseQC, &LLMConfig{Temperature: &temp})
		assert.Equal(t, "gpt-4o-mini", resolved.Model)
		if assert.NotNil(t, resolved.Temperature) {
			assert.InDelta(t, 0.2, float64(*resolved.Temperature), 1e-6)
		}
	})
}
