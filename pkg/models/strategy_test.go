package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/config"
)

const minimalStrategyYAML = `meta:
  slug: tech-weekly
  version: 1
  category: technology
  time_window: week
  depth: overview
  priority: 10
tool_chain:
  - use: exa.search
    inputs:
      query: "{{topic}}"
`

func TestParseStrategyYAML(t *testing.T) {
	t.Run("minimal document", func(t *testing.T) {
		st, err := ParseStrategyYAML([]byte(minimalStrategyYAML))
		require.NoError(t, err)
		assert.Equal(t, "tech-weekly", st.Meta.Slug)
		assert.Equal(t, config.TimeWindowWeek, st.Meta.TimeWindow)
		assert.True(t, st.Meta.IsActive())
		require.Len(t, st.ToolChain, 1)
		assert.Equal(t, "exa", st.ToolChain[0].Provider())
		assert.Equal(t, "search", st.ToolChain[0].Method())
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		_, err := ParseStrategyYAML([]byte("meta: [broken"))
		assert.Error(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			doc  string
			want string
		}{
			{
				name: "missing slug",
				doc:  "meta:\n  time_window: week\n  depth: brief\ntool_chain:\n  - use: exa.search\n",
				want: "meta.slug",
			},
			{
				name: "bad time window",
				doc:  "meta:\n  slug: s\n  time_window: fortnight\n  depth: brief\ntool_chain:\n  - use: exa.search\n",
				want: "time_window",
			},
			{
				name: "empty tool chain",
				doc:  "meta:\n  slug: s\n  time_window: week\n  depth: brief\ntool_chain: []\n",
				want: "tool_chain",
			},
			{
				name: "step with both forms",
				doc:  "meta:\n  slug: s\n  time_window: week\n  depth: brief\ntool_chain:\n  - name: sonar_search\n    use: sonar.search\n",
				want: "both",
			},
			{
				name: "bad use address",
				doc:  "meta:\n  slug: s\n  time_window: week\n  depth: brief\ntool_chain:\n  - use: exa\n",
				want: "provider.method",
			},
			{
				name: "llm override for unknown phase",
				doc:  minimalStrategyYAML + "llm:\n  render:\n    model: gpt-4o\n",
				want: "unknown phase",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseStrategyYAML([]byte(tt.doc))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestFanOutForms(t *testing.T) {
	t.Run("scalar yaml form", func(t *testing.T) {
		st, err := ParseStrategyYAML([]byte(minimalStrategyYAML + "fan_out: task\n"))
		require.NoError(t, err)
		assert.Equal(t, FanOutTask, st.FanOut.Mode)
	})

	t.Run("mapping yaml form", func(t *testing.T) {
		st, err := ParseStrategyYAML([]byte(minimalStrategyYAML +
			"fan_out:\n  mode: var\n  var: companies\n  map_to: company\n  limit: 5\n"))
		require.NoError(t, err)
		assert.Equal(t, FanOutVar, st.FanOut.Mode)
		assert.Equal(t, "companies", st.FanOut.Var)
		assert.Equal(t, "company", st.FanOut.MapTo)
		assert.Equal(t, 5, st.FanOut.Limit)
	})

	t.Run("string json form", func(t *testing.T) {
		var f FanOut
		require.NoError(t, json.Unmarshal([]byte(`"none"`), &f))
		assert.Equal(t, FanOutNone, f.Mode)
	})

	t.Run("object json form", func(t *testing.T) {
		var f FanOut
		require.NoError(t, json.Unmarshal([]byte(`{"mode":"var","var":"companies"}`), &f))
		assert.Equal(t, FanOutVar, f.Mode)
		assert.Equal(t, "companies", f.Var)
	})

	t.Run("var mode requires a var name", func(t *testing.T) {
		_, err := ParseStrategyYAML([]byte(minimalStrategyYAML + "fan_out:\n  mode: var\n"))
		assert.Error(t, err)
	})
}

func TestStrategyLLMOverride(t *testing.T) {
	st, err := ParseStrategyYAML([]byte(minimalStrategyYAML + "llm:\n  finalize:\n    model: gpt-4o\n"))
	require.NoError(t, err)

	override := st.LLMOverride(config.PhaseFinalize)
	require.NotNil(t, override)
	assert.Equal(t, "gpt-4o", override.Model)

	assert.Nil(t, st.LLMOverride(config.PhaseScope))
}

func TestJSONRoundTrip(t *testing.T) {
	// Strategies are authored as YAML but persisted as JSONB; the JSON form
	// must survive a round trip without losing the tagged step variant.
	st, err := ParseStrategyYAML([]byte(minimalStrategyYAML + "fan_out: task\n"))
	require.NoError(t, err)

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var back Strategy
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, st.Meta, back.Meta)
	assert.Equal(t, st.FanOut, back.FanOut)
	require.Len(t, back.ToolChain, 1)
	assert.Equal(t, "exa.search", back.ToolChain[0].Use)
}
