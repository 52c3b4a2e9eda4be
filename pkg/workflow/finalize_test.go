package workflow

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/tools"
)

func TestParseSections(t *testing.T) {
	t.Run("splits on headings", func(t *testing.T) {
		report := "## Summary\nIntro text.\n\n## Details\nMore text.\n"
		sections := parseSections(report)
		require.Len(t, sections, 2)
		assert.Equal(t, "## Summary\nIntro text.", sections[0])
		assert.Equal(t, "## Details\nMore text.", sections[1])
	})

	t.Run("preamble before the first heading is its own section", func(t *testing.T) {
		sections := parseSections("lead-in paragraph\n## Body\ntext")
		require.Len(t, sections, 2)
		assert.Equal(t, "lead-in paragraph", sections[0])
	})

	t.Run("headingless report is one section", func(t *testing.T) {
		sections := parseSections("just a paragraph")
		require.Len(t, sections, 1)
	})

	t.Run("empty report yields nothing", func(t *testing.T) {
		assert.Empty(t, parseSections("   \n  "))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ab", truncate("ab", 5))

	out := truncate("héllo wörld", 2)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "h…", out)
}

func TestDedupeSections(t *testing.T) {
	kept, dropped := dedupeSections([]string{"## A\ntext", "## B\nother", "## A\ntext"})
	assert.Len(t, kept, 2)
	assert.Len(t, dropped, 1)
}

func TestBuildCitations(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	items := []evidence.Evidence{
		{URL: "https://nature.com/a", Publisher: "nature.com", PublishedAt: &date, Tool: "exa_search"},
		{URL: "https://nature.com/a", Publisher: "nature.com", Tool: "exa_search"},
		{URL: "https://unused.com/b", Publisher: "unused.com", Tool: "exa_search"},
		{Tool: evidence.ToolLLMAnalysis, Title: "cross-source analysis", Snippet: "analysis conclusion text"},
		{Tool: evidence.ToolExaAnswer, Title: "direct answer", Snippet: "never quoted"},
	}
	sections := []string{"## Findings\nPer https://nature.com/a the field moved.\nanalysis conclusion text"}

	citations := buildCitations(items, sections)
	require.Len(t, citations, 2)
	assert.Equal(t, "nature.com (2026-08-20): https://nature.com/a", citations[0])
	assert.Equal(t, "cross-source analysis", citations[1])
}

func TestSynthesizerSingleShot(t *testing.T) {
	newSynth := func(fake *scriptedLLM) *Synthesizer {
		return NewSynthesizer(fake, tools.NewRegistry(0, nil), workflowConfig(), nil)
	}

	t.Run("writes sections and citations", func(t *testing.T) {
		fake := textLLM("## Summary\nBig news at https://example.com/story today.\n\n## Outlook\nMore to come.")
		synth := newSynth(fake)

		st := weeklyStrategy(models.Step{Use: "exa.search"})
		st.Render.Sections = []string{"Summary", "Outlook"}
		state := plannedState("tech news", nil)
		state.Research.Evidence = evidenceFor("https://example.com/story")

		require.NoError(t, synth.Run(context.Background(), state, st))
		require.Len(t, state.Write.Sections, 2)
		require.Len(t, state.Write.Citations, 1)
		assert.Contains(t, state.Write.Citations[0], "https://example.com/story")

		require.Len(t, fake.inputs, 1)
		prompt := fake.inputs[0].Messages[1].Content
		assert.Contains(t, prompt, "tech news")
		assert.Contains(t, prompt, "Summary, Outlook")
		assert.Contains(t, prompt, "https://example.com/story")
	})

	t.Run("duplicate sections are dropped", func(t *testing.T) {
		fake := textLLM("## Same\nrepeated body\n\n## Same\nrepeated body")
		synth := newSynth(fake)

		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, weeklyStrategy()))
		assert.Len(t, state.Write.Sections, 1)
	})

	t.Run("llm failure is provider unavailable", func(t *testing.T) {
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{nil}, errs: []error{errors.New("down")}}
		synth := newSynth(fake)

		err := synth.Run(context.Background(), plannedState("request", nil), weeklyStrategy())
		require.Error(t, err)
		assert.Equal(t, KindProviderUnavailable, KindOf(err))
	})
}

func TestSynthesizerReactive(t *testing.T) {
	reactiveStrategy := func(maxIterations int) *models.Strategy {
		st := weeklyStrategy(models.Step{Use: "stub.search"})
		st.Finalize = &models.FinalizeConfig{Reactive: true, MaxIterations: maxIterations}
		return st
	}

	t.Run("tool call feeds evidence into the final report", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(_ string, inputs map[string]any) (tools.Result, error) {
				query, _ := inputs["query"].(string)
				return tools.EvidenceResult(evidenceFor("https://example.com/" + query)), nil
			},
		}
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(stub))

		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{
			{ToolCalls: []llm.ToolCall{{ID: "c1", Name: "stub__search", Arguments: `{"query": "gap"}`}}},
			{Content: "## Findings\nFilled the gap via https://example.com/gap.\n"},
		}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, reactiveStrategy(0)))

		require.Len(t, stub.calls, 1)
		assert.Equal(t, "gap", stub.calls[0].inputs["query"])
		require.Len(t, state.Write.Sections, 1)
		require.Len(t, state.Research.Evidence, 1)
		assert.Contains(t, state.Write.Citations[0], "https://example.com/gap")

		// Second turn carries the assistant call and the tool result.
		require.Len(t, fake.inputs, 2)
		second := fake.inputs[1].Messages
		require.Len(t, second, 4)
		assert.Equal(t, "assistant", second[2].Role)
		assert.Equal(t, "tool", second[3].Role)
		assert.Equal(t, "c1", second[3].ToolCallID)
	})

	t.Run("repeated identical tool calls are collapsed", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(_ string, inputs map[string]any) (tools.Result, error) {
				query, _ := inputs["query"].(string)
				return tools.EvidenceResult(evidenceFor("https://example.com/" + query)), nil
			},
		}
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(stub))

		// Same call on two consecutive turns, differing only in whitespace
		// and call id.
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{
			{ToolCalls: []llm.ToolCall{{ID: "c1", Name: "stub__search", Arguments: `{"query": "gap"}`}}},
			{ToolCalls: []llm.ToolCall{{ID: "c2", Name: "stub__search", Arguments: `{"query":"gap"}`}}},
			{Content: "## Findings\nDone via https://example.com/gap.\n"},
		}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, reactiveStrategy(0)))

		require.Len(t, stub.calls, 1)

		// The replayed turn still answers the model with a tool message.
		require.Len(t, fake.inputs, 3)
		third := fake.inputs[2].Messages
		assert.Equal(t, "tool", third[len(third)-1].Role)
		assert.Equal(t, "c2", third[len(third)-1].ToolCallID)
	})

	t.Run("each dispatched tool call consumes one budget unit", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(_ string, inputs map[string]any) (tools.Result, error) {
				query, _ := inputs["query"].(string)
				return tools.EvidenceResult(evidenceFor("https://example.com/" + query)), nil
			},
		}
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(stub))

		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{
			{ToolCalls: []llm.ToolCall{
				{ID: "c1", Name: "stub__search", Arguments: `{"query":"one"}`},
				{ID: "c2", Name: "stub__search", Arguments: `{"query":"two"}`},
			}},
			{Content: "## Findings\nWrote with what was available.\n"},
		}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		st := reactiveStrategy(0)
		st.Limits.MaxLLMQueries = 1
		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, st))

		require.Len(t, stub.calls, 1)
		assert.Equal(t, "one", stub.calls[0].inputs["query"])

		require.Len(t, fake.inputs, 2)
		second := fake.inputs[1].Messages
		assert.Contains(t, second[len(second)-1].Content, "limit")
		// The spent budget withdraws the tool offer on the next turn.
		assert.Empty(t, fake.inputs[1].Tools)
	})

	t.Run("tool failure is reported back, not fatal", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.Result{}, tools.NewToolError("stub", "search", tools.KindBadRequest, false, errors.New("bad query"))
			},
		}
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(stub))

		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{
			{ToolCalls: []llm.ToolCall{{ID: "c1", Name: "stub__search", Arguments: `{"query": "x"}`}}},
			{Content: "## Findings\nWrote it anyway.\n"},
		}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, reactiveStrategy(0)))
		assert.Len(t, state.Write.Sections, 1)
		require.Len(t, fake.inputs, 2)
		assert.Contains(t, fake.inputs[1].Messages[3].Content, "error:")
	})

	t.Run("iteration cap takes the last text output", func(t *testing.T) {
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.EvidenceResult(evidenceFor("https://example.com/loop")), nil
			},
		}
		registry := tools.NewRegistry(0, nil)
		require.NoError(t, registry.Register(stub))

		looping := &llm.GenerateOutput{
			Content:   "## Draft\npartial",
			ToolCalls: []llm.ToolCall{{ID: "c", Name: "stub__search", Arguments: `{}`}},
		}
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{looping, looping}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		state := plannedState("request", nil)
		require.NoError(t, synth.Run(context.Background(), state, reactiveStrategy(2)))
		require.Len(t, state.Write.Sections, 1)
		assert.Contains(t, state.Write.Sections[0], "partial")
	})

	t.Run("loop without any text is provider unavailable", func(t *testing.T) {
		registry := tools.NewRegistry(0, nil)
		stub := &stubAdapter{
			name:    "stub",
			methods: []string{"search"},
			handler: func(string, map[string]any) (tools.Result, error) {
				return tools.ValueResult("ok"), nil
			},
		}
		require.NoError(t, registry.Register(stub))

		looping := &llm.GenerateOutput{ToolCalls: []llm.ToolCall{{ID: "c", Name: "stub__search", Arguments: `{}`}}}
		fake := &scriptedLLM{outputs: []*llm.GenerateOutput{looping}}
		synth := NewSynthesizer(fake, registry, workflowConfig(), nil)

		err := synth.Run(context.Background(), plannedState("request", nil), reactiveStrategy(1))
		require.Error(t, err)
		assert.Equal(t, KindProviderUnavailable, KindOf(err))
	})
}
