package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
)

// GroundingResult is the LLM grounding check's JSON response shape.
type GroundingResult struct {
	Grounded        bool     `json:"grounded"`
	Warnings        []string `json:"warnings"`
	Inconsistencies []string `json:"inconsistencies"`
}

// SettingLookup fetches a runtime settings document by key. Lookup failures
// are treated as "no override".
type SettingLookup func(ctx context.Context, key string) (map[string]any, error)

// qcSettingKey is the global_settings document carrying runtime QC toggles.
const qcSettingKey = "qc"

// Validator runs the QC phase. Mechanical checks always run; the LLM
// grounding check is optional and fails open. QC annotates warnings onto the
// state and never rejects the result.
type Validator struct {
	llm        llm.Client
	cfg        *config.Config
	llmEnabled bool
	settings   SettingLookup
	logger     *slog.Logger
	now        func() time.Time
}

// NewValidator builds the QC validator.
func NewValidator(llmClient llm.Client, cfg *config.Config, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		llm:        llmClient,
		cfg:        cfg,
		llmEnabled: cfg.QCLLMEnabled,
		logger:     logger,
		now:        time.Now,
	}
}

// SetSettingLookup installs the runtime settings source. When set, the
// qc document's llm_enabled field overrides the configured default per run.
func (v *Validator) SetSettingLookup(lookup SettingLookup) {
	v.settings = lookup
}

// groundingEnabled resolves the grounding-check toggle: runtime setting if
// present, configured default otherwise.
func (v *Validator) groundingEnabled(ctx context.Context) bool {
	if v.settings == nil {
		return v.llmEnabled
	}
	doc, err := v.settings(ctx, qcSettingKey)
	if err != nil || doc == nil {
		return v.llmEnabled
	}
	if enabled, ok := doc["llm_enabled"].(bool); ok {
		return enabled
	}
	return v.llmEnabled
}

// Run executes the QC phase. The returned error is always nil; all findings
// land in state.warnings.
func (v *Validator) Run(ctx context.Context, state *models.State, st *models.Strategy) error {
	ctx, span := observability.StartSpan(ctx, "phase.qc")
	defer span.End()

	warnings := v.mechanicalChecks(state, st)

	if v.groundingEnabled(ctx) {
		grounding := v.groundingCheck(ctx, state, st)
		warnings = append(warnings, grounding.Warnings...)
		for _, inc := range grounding.Inconsistencies {
			warnings = append(warnings, "inconsistency: "+inc)
		}
		if !grounding.Grounded {
			warnings = append(warnings, "report may not be fully grounded in the collected evidence")
		}
	}

	for _, w := range warnings {
		state.Write.Warnings = append(state.Write.Warnings, string(KindQCWarning)+": "+w)
	}
	return nil
}

func (v *Validator) mechanicalChecks(state *models.State, st *models.Strategy) []string {
	var warnings []string

	if len(state.Write.Sections) == 0 {
		warnings = append(warnings, "report has no sections")
	}
	for _, required := range st.Render.Sections {
		if !hasSection(state.Write.Sections, required) {
			warnings = append(warnings, fmt.Sprintf("required section %q is missing", required))
		}
	}

	if min := st.Limits.MinCitations; min > 0 {
		if n := countNonSentinelCitations(state); n < min {
			warnings = append(warnings, fmt.Sprintf("only %d unique citations, need %d", n, min))
		}
	}

	warnings = append(warnings, v.checkCitationDates(state, st)...)

	if dups := duplicateSectionCount(state.Write.Sections); dups > 0 {
		warnings = append(warnings, fmt.Sprintf("%d duplicate sections detected", dups))
	}

	return warnings
}

// checkCitationDates flags evidence dated outside the strategy's window.
// Undated records pass.
func (v *Validator) checkCitationDates(state *models.State, st *models.Strategy) []string {
	window := windowOf(state, st)
	if !window.IsValid() {
		return nil
	}
	cutoff := v.now().Add(-window.Duration())

	var warnings []string
	for _, ev := range state.Research.Evidence {
		if ev.PublishedAt == nil || evidence.IsSentinelTool(ev.Tool) {
			continue
		}
		if ev.PublishedAt.Before(cutoff) {
			warnings = append(warnings, fmt.Sprintf("citation %s dated %s falls outside the %s window",
				ev.URL, ev.PublishedAt.Format("2006-01-02"), window))
		}
	}
	return warnings
}

// groundingCheck asks a small LLM whether the report is supported by its
// citations. Any failure records a reason and reports grounded — QC must
// never silently drop a result.
func (v *Validator) groundingCheck(ctx context.Context, state *models.State, st *models.Strategy) GroundingResult {
	failOpen := func(reason string) GroundingResult {
		v.logger.Warn("grounding check unavailable", "reason", reason)
		return GroundingResult{Grounded: true, Warnings: []string{"grounding check skipped: " + reason}}
	}

	payload, err := json.Marshal(map[string]any{
		"sections":  state.Write.Sections,
		"citations": state.Write.Citations,
	})
	if err != nil {
		return failOpen("failed to encode report: " + err.Error())
	}

	out, err := v.llm.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: `You check research reports for grounding. Given sections and citations, respond with a JSON object {"grounded": bool, "warnings": [string], "inconsistencies": [string]}. Flag claims that no citation supports.`},
			{Role: "user", Content: string(payload)},
		},
		Config:   v.cfg.ResolveLLM(config.PhaseQC, st.LLMOverride(config.PhaseQC)),
		JSONMode: true,
	})
	if err != nil {
		return failOpen(err.Error())
	}

	var result GroundingResult
	if err := json.Unmarshal([]byte(out.Content), &result); err != nil {
		return failOpen("unparseable grounding response: " + err.Error())
	}
	return result
}

func hasSection(sections []string, name string) bool {
	needle := strings.ToLower(name)
	for _, sec := range sections {
		firstLine, _, _ := strings.Cut(sec, "\n")
		if strings.Contains(strings.ToLower(firstLine), needle) {
			return true
		}
	}
	return false
}

func countNonSentinelCitations(state *models.State) int {
	seen := make(map[string]bool)
	for _, c := range state.Write.Citations {
		// Sentinel citations carry no URL.
		if idx := strings.Index(c, "http"); idx >= 0 {
			seen[c[idx:]] = true
		}
	}
	return len(seen)
}

func duplicateSectionCount(sections []string) int {
	seen := make(map[string]bool, len(sections))
	dups := 0
	for _, sec := range sections {
		fp := sectionFingerprint(sec)
		if seen[fp] {
			dups++
			continue
		}
		seen[fp] = true
	}
	return dups
}
