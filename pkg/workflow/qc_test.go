package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
)

func newTestValidator(fake *scriptedLLM, llmEnabled bool) *Validator {
	cfg := workflowConfig()
	cfg.QCLLMEnabled = llmEnabled
	v := NewValidator(fake, cfg, nil)
	v.now = func() time.Time { return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) }
	return v
}

func reportState(sections, citations []string) *models.State {
	state := plannedState("request", nil)
	state.Write.Sections = sections
	state.Write.Citations = citations
	return state
}

func TestValidatorMechanicalChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("clean report produces no warnings", func(t *testing.T) {
		state := reportState(
			[]string{"## Summary\ntext with https://example.com/a"},
			[]string{"example.com: https://example.com/a"},
		)
		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, state.Write.Warnings)
	})

	t.Run("empty report is flagged", func(t *testing.T) {
		state := reportState(nil, nil)
		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, weeklyStrategy()))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], string(KindQCWarning)+": ")
		assert.Contains(t, state.Write.Warnings[0], "no sections")
	})

	t.Run("missing required section is flagged", func(t *testing.T) {
		st := weeklyStrategy()
		st.Render.Sections = []string{"Summary", "Outlook"}
		state := reportState([]string{"## Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, st))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], `"Outlook"`)
	})

	t.Run("section match is case-insensitive on the heading line", func(t *testing.T) {
		st := weeklyStrategy()
		st.Render.Sections = []string{"summary"}
		state := reportState([]string{"## Executive Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, st))
		assert.Empty(t, state.Write.Warnings)
	})

	t.Run("too few citations is flagged", func(t *testing.T) {
		st := weeklyStrategy()
		st.Limits.MinCitations = 2
		state := reportState(
			[]string{"## Summary\ntext"},
			[]string{"example.com: https://example.com/a", "example.com: https://example.com/a"},
		)

		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, st))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "only 1 unique citations, need 2")
	})

	t.Run("stale citations are flagged", func(t *testing.T) {
		stale := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		fresh := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
		state := reportState([]string{"## Summary\ntext"}, []string{"a", "b"})
		state.Research.Evidence = []evidence.Evidence{
			{URL: "https://old.com/a", Tool: "exa_search", PublishedAt: &stale},
			{URL: "https://new.com/b", Tool: "exa_search", PublishedAt: &fresh},
			{URL: "https://undated.com/c", Tool: "exa_search"},
			{Tool: evidence.ToolLLMAnalysis, Snippet: "analysis", PublishedAt: &stale},
		}

		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, weeklyStrategy()))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "https://old.com/a")
		assert.Contains(t, state.Write.Warnings[0], "outside the week window")
	})

	t.Run("duplicate sections are flagged", func(t *testing.T) {
		state := reportState([]string{"## A\nsame", "## A\nsame"}, nil)
		require.NoError(t, newTestValidator(textLLM(), false).Run(ctx, state, weeklyStrategy()))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "duplicate sections")
	})

	t.Run("disabled grounding never calls the llm", func(t *testing.T) {
		fake := textLLM()
		state := reportState([]string{"## Summary\ntext"}, nil)
		require.NoError(t, newTestValidator(fake, false).Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, fake.inputs)
	})
}

func TestValidatorGroundingCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("ungrounded report is annotated", func(t *testing.T) {
		fake := textLLM(`{"grounded": false, "warnings": ["claim X lacks support"], "inconsistencies": ["dates disagree"]}`)
		state := reportState([]string{"## Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(fake, true).Run(ctx, state, weeklyStrategy()))
		require.Len(t, fake.inputs, 1)
		assert.True(t, fake.inputs[0].JSONMode)

		require.Len(t, state.Write.Warnings, 3)
		assert.Contains(t, state.Write.Warnings[0], "claim X lacks support")
		assert.Contains(t, state.Write.Warnings[1], "inconsistency: dates disagree")
		assert.Contains(t, state.Write.Warnings[2], "not be fully grounded")
	})

	t.Run("grounded report stays clean", func(t *testing.T) {
		fake := textLLM(`{"grounded": true, "warnings": [], "inconsistencies": []}`)
		state := reportState([]string{"## Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(fake, true).Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, state.Write.Warnings)
	})

	t.Run("llm failure fails open", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{nil}, errs: []error{errors.New("down")}}
		state := reportState([]string{"## Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(fake, true).Run(ctx, state, weeklyStrategy()))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "grounding check skipped")
	})

	t.Run("unparseable response fails open", func(t *testing.T) {
		fake := textLLM("not json at all")
		state := reportState([]string{"## Summary\ntext"}, nil)

		require.NoError(t, newTestValidator(fake, true).Run(ctx, state, weeklyStrategy()))
		require.Len(t, state.Write.Warnings, 1)
		assert.Contains(t, state.Write.Warnings[0], "grounding check skipped")
	})
}

func TestValidatorSettingOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("setting enables grounding over a disabled default", func(t *testing.T) {
		fake := textLLM(`{"grounded": true, "warnings": [], "inconsistencies": []}`)
		v := newTestValidator(fake, false)
		v.SetSettingLookup(func(context.Context, string) (map[string]any, error) {
			return map[string]any{"llm_enabled": true}, nil
		})

		state := reportState([]string{"## Summary\ntext"}, nil)
		require.NoError(t, v.Run(ctx, state, weeklyStrategy()))
		assert.Len(t, fake.inputs, 1)
	})

	t.Run("setting disables grounding over an enabled default", func(t *testing.T) {
		fake := textLLM(`{"grounded": true, "warnings": [], "inconsistencies": []}`)
		v := newTestValidator(fake, true)
		v.SetSettingLookup(func(context.Context, string) (map[string]any, error) {
			return map[string]any{"llm_enabled": false}, nil
		})

		state := reportState([]string{"## Summary\ntext"}, nil)
		require.NoError(t, v.Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, fake.inputs)
	})

	t.Run("lookup failure falls back to the default", func(t *testing.T) {
		fake := textLLM(`{"grounded": true, "warnings": [], "inconsistencies": []}`)
		v := newTestValidator(fake, false)
		v.SetSettingLookup(func(context.Context, string) (map[string]any, error) {
			return nil, errors.New("db down")
		})

		state := reportState([]string{"## Summary\ntext"}, nil)
		require.NoError(t, v.Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, fake.inputs)
	})

	t.Run("non-bool field falls back to the default", func(t *testing.T) {
		fake := textLLM(`{"grounded": true, "warnings": [], "inconsistencies": []}`)
		v := newTestValidator(fake, false)
		v.SetSettingLookup(func(context.Context, string) (map[string]any, error) {
			return map[string]any{"llm_enabled": "yes"}, nil
		})

		state := reportState([]string{"## Summary\ntext"}, nil)
		require.NoError(t, v.Run(ctx, state, weeklyStrategy()))
		assert.Empty(t, fake.inputs)
	})
}
