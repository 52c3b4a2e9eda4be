package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/tools"
)

const (
	defaultFinalizeIterations = 5
	// sectionFingerprintLen is the prefix length used to detect duplicate
	// sections after parsing.
	sectionFingerprintLen = 200
	// evidenceDigestTop bounds how many records the synthesis prompt carries.
	evidenceDigestTop = 30
)

const finalizeSystemPrompt = `You are a research writer. Synthesize the collected evidence into a
markdown report. Structure the report with "## " section headings. Every
factual claim must be supported by the evidence; reference sources by their
URL. Do not invent sources.`

// Synthesizer runs the finalize phase: turning accumulated evidence into
// report sections and citations, either via a single LLM call or a reactive
// tool-calling loop.
type Synthesizer struct {
	llm      llm.Client
	registry *tools.Registry
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSynthesizer builds the finalize synthesizer.
func NewSynthesizer(llmClient llm.Client, registry *tools.Registry, cfg *config.Config, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{llm: llmClient, registry: registry, cfg: cfg, logger: logger}
}

// Run executes the finalize phase, filling state.sections and
// state.citations.
func (s *Synthesizer) Run(ctx context.Context, state *models.State, st *models.Strategy) error {
	ctx, span := observability.StartSpan(ctx, "phase.finalize")
	err := s.run(ctx, state, st)
	observability.EndSpan(span, err)
	return err
}

func (s *Synthesizer) run(ctx context.Context, state *models.State, st *models.Strategy) error {
	var report string
	var err error
	if st.Finalize != nil && st.Finalize.Reactive {
		report, err = s.reactive(ctx, state, st)
	} else {
		report, err = s.singleShot(ctx, state, st)
	}
	if err != nil {
		return err
	}

	sections := parseSections(report)
	sections, dropped := dedupeSections(sections)
	for _, d := range dropped {
		s.logger.Info("dropped duplicate report section", "prefix", truncate(d, 60))
	}
	state.Write.Sections = append(state.Write.Sections, sections...)
	state.Write.Citations = append(state.Write.Citations, buildCitations(state.Research.Evidence, sections)...)
	return nil
}

// singleShot produces the report with one LLM call over the evidence digest.
func (s *Synthesizer) singleShot(ctx context.Context, state *models.State, st *models.Strategy) (string, error) {
	prompt := s.synthesisPrompt(state, st)

	out, err := s.llm.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: finalizeSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Config: s.cfg.ResolveLLM(config.PhaseFinalize, st.LLMOverride(config.PhaseFinalize)),
	})
	if err != nil {
		return "", WrapError(KindProviderUnavailable, fmt.Errorf("finalize LLM call failed: %w", err))
	}
	return out.Content, nil
}

// reactive runs the ReAct loop: each turn the model either calls an adapter
// tool (the result feeds the next turn's evidence) or emits the final report.
func (s *Synthesizer) reactive(ctx context.Context, state *models.State, st *models.Strategy) (string, error) {
	maxIterations := defaultFinalizeIterations
	if st.Finalize != nil && st.Finalize.MaxIterations > 0 {
		maxIterations = st.Finalize.MaxIterations
	}
	toolBudget := newBudget(st.Limits.MaxLLMQueries)
	toolDefs := s.adapterTools()

	store := evidence.NewStore()
	store.Merge(state.Research.Evidence...)

	messages := []llm.Message{
		{Role: "system", Content: finalizeSystemPrompt + "\n\nYou may call the available search tools to fill evidence gaps before writing. When you have enough evidence, respond with the final report instead of calling a tool."},
		{Role: "user", Content: s.synthesisPrompt(state, st)},
	}

	// Repeating a tool call with identical inputs replays the earlier result
	// instead of hitting the adapter again.
	seenCalls := make(map[string]string)

	var lastContent string
	for turn := 0; turn < maxIterations; turn++ {
		input := &llm.GenerateInput{
			Messages: messages,
			Config:   s.cfg.ResolveLLM(config.PhaseFinalize, st.LLMOverride(config.PhaseFinalize)),
		}
		if toolBudget.available() {
			input.Tools = toolDefs
		}

		out, err := s.llm.Generate(ctx, input)
		if err != nil {
			return "", WrapError(KindProviderUnavailable, fmt.Errorf("finalize LLM call failed: %w", err))
		}
		lastContent = out.Content

		if len(out.ToolCalls) == 0 {
			state.Research.Evidence = store.Items()
			return out.Content, nil
		}

		messages = append(messages, llm.Message{
			Role:      "assistant",
			Content:   out.Content,
			ToolCalls: out.ToolCalls,
		})
		for _, call := range out.ToolCalls {
			key := call.Name + "\x00" + canonicalArguments(call.Arguments)
			resultText, cached := seenCalls[key]
			switch {
			case cached:
				s.logger.Debug("collapsed repeated tool call", "tool", call.Name)
			case !toolBudget.take():
				resultText = "error: tool call limit reached, write the report with the evidence you have"
			default:
				resultText = s.dispatchReactiveCall(ctx, state, call, store)
				seenCalls[key] = resultText
			}
			messages = append(messages, llm.Message{
				Role:       "tool",
				Content:    resultText,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	// Iteration cap reached: take the last text output as the report.
	state.Research.Evidence = store.Items()
	if strings.TrimSpace(lastContent) == "" {
		return "", NewError(KindProviderUnavailable, "finalize loop ended without a report")
	}
	return lastContent, nil
}

// dispatchReactiveCall executes one tool call from the loop. Failures are
// reported back to the model as text; they never abort finalize.
func (s *Synthesizer) dispatchReactiveCall(ctx context.Context, state *models.State, call llm.ToolCall, store *evidence.Store) string {
	use := strings.ReplaceAll(call.Name, "__", ".")
	inputs, err := decodeArguments(call.Arguments)
	if err != nil {
		return "error: " + err.Error()
	}

	result, err := s.registry.Invoke(ctx, use, inputs)
	if err != nil {
		state.Write.Warnings = append(state.Write.Warnings, fmt.Sprintf("finalize tool %s failed: %v", use, err))
		return "error: " + err.Error()
	}

	if result.IsEvidence() {
		store.Merge(result.Evidence...)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d results:\n", len(result.Evidence))
		for _, ev := range result.Evidence {
			fmt.Fprintf(&sb, "- %s (%s): %s\n", ev.Title, ev.URL, truncate(ev.Snippet, 200))
		}
		return sb.String()
	}
	return fmt.Sprintf("%v", result.Value)
}

// adapterTools exposes every registered adapter method as an LLM tool.
// OpenAI tool names cannot contain dots, so "provider.method" becomes
// "provider__method".
func (s *Synthesizer) adapterTools() []llm.ToolDefinition {
	names := s.registry.Names()
	sort.Strings(names)

	var defs []llm.ToolDefinition
	for _, name := range names {
		adapter, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		for _, method := range adapter.Methods() {
			defs = append(defs, llm.ToolDefinition{
				Name:        name + "__" + method,
				Description: fmt.Sprintf("Call the %s provider's %s method.", name, method),
				ParametersSchema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "description": "search query or prompt"},
    "url": {"type": "string"}
  }
}`,
			})
		}
	}
	return defs
}

func (s *Synthesizer) synthesisPrompt(state *models.State, st *models.Strategy) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Research request: %s\n", state.Scope.UserRequest)
	if len(st.Render.Sections) > 0 {
		fmt.Fprintf(&sb, "Required sections: %s\n", strings.Join(st.Render.Sections, ", "))
	}
	if st.Finalize != nil && st.Finalize.Instructions != "" {
		fmt.Fprintf(&sb, "\nInstructions:\n%s\n", st.Finalize.Instructions)
	}

	items := topByScore(state.Research.Evidence, evidenceDigestTop)
	fmt.Fprintf(&sb, "\nEvidence (%d records):\n", len(items))
	for _, ev := range items {
		fmt.Fprintf(&sb, "- ")
		if ev.Title != "" {
			fmt.Fprintf(&sb, "%s ", ev.Title)
		}
		if ev.URL != "" {
			fmt.Fprintf(&sb, "<%s> ", ev.URL)
		}
		if ev.PublishedAt != nil {
			fmt.Fprintf(&sb, "(%s) ", ev.PublishedAt.Format("2006-01-02"))
		}
		fmt.Fprintf(&sb, "%s\n", truncate(ev.Snippet, 300))
	}
	return sb.String()
}

func topByScore(items []evidence.Evidence, n int) []evidence.Evidence {
	sorted := make([]evidence.Evidence, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// parseSections splits a markdown report on "## " headings. A report without
// headings is a single section. Partial markdown never fails.
func parseSections(report string) []string {
	report = strings.TrimSpace(report)
	if report == "" {
		return nil
	}

	lines := strings.Split(report, "\n")
	var sections []string
	var current strings.Builder

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			sections = append(sections, text)
		}
		current.Reset()
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	flush()
	return sections
}

// dedupeSections drops sections whose leading fingerprint was already seen.
func dedupeSections(sections []string) (kept []string, dropped []string) {
	seen := make(map[string]bool, len(sections))
	for _, sec := range sections {
		fp := sectionFingerprint(sec)
		if seen[fp] {
			dropped = append(dropped, sec)
			continue
		}
		seen[fp] = true
		kept = append(kept, sec)
	}
	return kept, dropped
}

func sectionFingerprint(section string) string {
	fp := strings.TrimSpace(section)
	if len(fp) > sectionFingerprintLen {
		fp = fp[:sectionFingerprintLen]
	}
	return fp
}

// buildCitations emits one citation per unique canonical URL referenced by
// the sections, formatted "publisher (date): url". Sentinel records are
// included only when their text was actually used.
func buildCitations(items []evidence.Evidence, sections []string) []string {
	body := strings.Join(sections, "\n")

	var citations []string
	seen := make(map[string]bool, len(items))
	for _, ev := range items {
		if evidence.IsSentinelTool(ev.Tool) {
			if ev.Snippet == "" || !strings.Contains(body, sectionFingerprint(ev.Snippet)) {
				continue
			}
			label := ev.Title
			if label == "" {
				label = ev.Tool
			}
			citations = append(citations, label)
			continue
		}
		if ev.URL == "" || seen[ev.URL] {
			continue
		}
		if !strings.Contains(body, ev.URL) {
			continue
		}
		seen[ev.URL] = true
		citations = append(citations, formatCitation(ev))
	}
	return citations
}

func formatCitation(ev evidence.Evidence) string {
	publisher := ev.Publisher
	if publisher == "" {
		publisher = ev.Title
	}
	if ev.PublishedAt != nil {
		return fmt.Sprintf("%s (%s): %s", publisher, ev.PublishedAt.Format("2006-01-02"), ev.URL)
	}
	return fmt.Sprintf("%s: %s", publisher, ev.URL)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary so multi-byte characters are never split.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}

func decodeArguments(arguments string) (map[string]any, error) {
	if strings.TrimSpace(arguments) == "" {
		return map[string]any{}, nil
	}
	var inputs map[string]any
	if err := json.Unmarshal([]byte(arguments), &inputs); err != nil {
		return nil, fmt.Errorf("malformed tool arguments: %w", err)
	}
	return inputs, nil
}

// canonicalArguments normalizes a tool-call argument string so equivalent
// calls compare equal regardless of key order or whitespace.
func canonicalArguments(arguments string) string {
	inputs, err := decodeArguments(arguments)
	if err != nil {
		return arguments
	}
	data, err := json.Marshal(inputs)
	if err != nil {
		return arguments
	}
	return string(data)
}
