package workflow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/scopeclassification"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/llm"
	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/observability"
	"github.com/scout-research/scout/pkg/strategy"
)

const setScopeTool = "set_scope"

const classifierSystemPrompt = `You are a research scope classifier. Given a user's research request and
the catalog of available strategies, pick exactly one strategy and decompose
the request into concrete research tasks. You must call the set_scope tool
exactly once. Pick the strategy whose category, time window, and depth best
match the request. Fill every variable the chosen strategy requires.`

// Classifier is the single LLM-gated entry point: it maps a free-text
// request onto a strategy, a task list, and a typed variable bag, caching
// results by request fingerprint.
type Classifier struct {
	llm    llm.Client
	store  *strategy.Store
	db     *ent.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewClassifier builds the scope classifier.
func NewClassifier(llmClient llm.Client, store *strategy.Store, db *ent.Client, cfg *config.Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{llm: llmClient, store: store, db: db, cfg: cfg, logger: logger}
}

// Fingerprint computes the idempotency key for a request: a hash of the
// whitespace-normalized, lowercased request plus the config version, so
// config rollouts invalidate cached classifications.
func (c *Classifier) Fingerprint(userRequest string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(userRequest), " "))
	sum := sha256.Sum256([]byte(normalized + "\x00" + c.cfg.ConfigVersion))
	return hex.EncodeToString(sum[:])
}

// Classify resolves the scope for a request. Cached results younger than the
// configured TTL are reused unless nocache is set. All failures are
// SCOPE_FAILED: no retry, no heuristic fallback.
func (c *Classifier) Classify(ctx context.Context, userRequest string, nocache bool) (*models.ScopeResult, error) {
	ctx, span := observability.StartSpan(ctx, "scope.classify")
	result, err := c.classify(ctx, userRequest, nocache)
	observability.EndSpan(span, err)
	return result, err
}

func (c *Classifier) classify(ctx context.Context, userRequest string, nocache bool) (*models.ScopeResult, error) {
	if strings.TrimSpace(userRequest) == "" {
		return nil, NewError(KindScopeFailed, "user request is empty")
	}

	fingerprint := c.Fingerprint(userRequest)

	if !nocache {
		if cached := c.cacheLookup(ctx, fingerprint); cached != nil {
			c.logger.Debug("scope cache hit", "fingerprint", fingerprint)
			return cached, nil
		}
	}

	catalog, err := c.store.List(ctx, true)
	if err != nil {
		return nil, WrapError(KindScopeFailed, fmt.Errorf("failed to load strategy catalog: %w", err))
	}
	if len(catalog) == 0 {
		return nil, NewError(KindScopeFailed, "strategy catalog is empty")
	}

	out, err := c.llm.Generate(ctx, &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: "system", Content: classifierSystemPrompt + "\n\nAvailable strategies:\n" + renderCatalog(catalog)},
			{Role: "user", Content: userRequest},
		},
		Config:    c.cfg.ResolveLLM(config.PhaseScope, nil),
		Tools:     []llm.ToolDefinition{setScopeDefinition()},
		ForceTool: setScopeTool,
	})
	if err != nil {
		return nil, WrapError(KindScopeFailed, fmt.Errorf("classifier LLM call failed: %w", err))
	}

	result, err := parseSetScope(out)
	if err != nil {
		return nil, WrapError(KindScopeFailed, err)
	}

	if err := c.validate(result, catalog); err != nil {
		return nil, WrapError(KindScopeFailed, err)
	}

	c.cacheStore(ctx, fingerprint, result)
	return result, nil
}

// cacheLookup returns a fresh cached result or nil. Expired rows are ignored
// here and removed by the cleanup sweeper.
func (c *Classifier) cacheLookup(ctx context.Context, fingerprint string) *models.ScopeResult {
	cutoff := time.Now().Add(-c.cfg.ScopeCacheTTL)
	rec, err := c.db.ScopeClassification.Query().
		Where(
			scopeclassification.ID(fingerprint),
			scopeclassification.CreatedAtGT(cutoff),
		).
		Only(ctx)
	if err != nil {
		return nil
	}

	data, err := json.Marshal(rec.Result)
	if err != nil {
		return nil
	}
	var result models.ScopeResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("discarding unparseable scope cache entry", "fingerprint", fingerprint, "error", err)
		return nil
	}
	return &result
}

// cacheStore persists a classification, last-write-wins on collision.
// Cache failures never fail classification.
func (c *Classifier) cacheStore(ctx context.Context, fingerprint string, result *models.ScopeResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return
	}

	err = c.db.ScopeClassification.Create().
		SetID(fingerprint).
		SetResult(doc).
		OnConflictColumns(scopeclassification.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		c.logger.Warn("failed to persist scope classification", "fingerprint", fingerprint, "error", err)
	}
}

func (c *Classifier) validate(result *models.ScopeResult, catalog []*models.Strategy) error {
	var chosen *models.Strategy
	for _, st := range catalog {
		if st.Meta.Slug == result.StrategySlug {
			chosen = st
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("classifier chose unknown strategy %q", result.StrategySlug)
	}
	if !result.TimeWindow.IsValid() {
		return fmt.Errorf("classifier returned invalid time_window %q", result.TimeWindow)
	}
	if !result.Depth.IsValid() {
		return fmt.Errorf("classifier returned invalid depth %q", result.Depth)
	}
	if len(result.Tasks) == 0 {
		return fmt.Errorf("classifier returned no tasks")
	}
	for _, rv := range chosen.RequiredVariables {
		if _, ok := result.Variables[rv.Name]; !ok {
			return fmt.Errorf("strategy %q requires variable %q which the classifier did not supply",
				chosen.Meta.Slug, rv.Name)
		}
	}
	return nil
}

func renderCatalog(catalog []*models.Strategy) string {
	var sb strings.Builder
	for _, st := range catalog {
		fmt.Fprintf(&sb, "- slug=%s category=%s time_window=%s depth=%s",
			st.Meta.Slug, st.Meta.Category, st.Meta.TimeWindow, st.Meta.Depth)
		if len(st.RequiredVariables) > 0 {
			names := make([]string, len(st.RequiredVariables))
			for i, rv := range st.RequiredVariables {
				names[i] = rv.Name
			}
			fmt.Fprintf(&sb, " required_variables=%s", strings.Join(names, ","))
		}
		if st.Meta.Description != "" {
			fmt.Fprintf(&sb, ": %s", st.Meta.Description)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func setScopeDefinition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        setScopeTool,
		Description: "Record the research scope: chosen strategy, classification dimensions, task decomposition, and strategy variables.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "strategy_slug": {"type": "string"},
    "category": {"type": "string"},
    "time_window": {"type": "string", "enum": ["day", "week", "month", "year"]},
    "depth": {"type": "string", "enum": ["brief", "overview", "deep", "comprehensive"]},
    "tasks": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "variables": {"type": "object"}
  },
  "required": ["strategy_slug", "category", "time_window", "depth", "tasks"]
}`,
	}
}

func parseSetScope(out *llm.GenerateOutput) (*models.ScopeResult, error) {
	if len(out.ToolCalls) != 1 {
		return nil, fmt.Errorf("classifier made %d tool calls, want exactly 1", len(out.ToolCalls))
	}
	call := out.ToolCalls[0]
	if call.Name != setScopeTool {
		return nil, fmt.Errorf("classifier called unexpected tool %q", call.Name)
	}

	var result models.ScopeResult
	if err := json.Unmarshal([]byte(call.Arguments), &result); err != nil {
		return nil, fmt.Errorf("failed to parse set_scope arguments: %w", err)
	}
	if result.Variables == nil {
		result.Variables = make(map[string]any)
	}
	return &result, nil
}
