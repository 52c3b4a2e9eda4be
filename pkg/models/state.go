package models

import (
	"time"

	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/evidence"
)

// ScopeState is the classifier's output carried through the pipeline.
type ScopeState struct {
	UserRequest  string            `json:"user_request"`
	Category     string            `json:"category"`
	TimeWindow   config.TimeWindow `json:"time_window"`
	Depth        config.Depth      `json:"depth"`
	StrategySlug string            `json:"strategy_slug"`
}

// ResearchState accumulates during the research phase. Evidence is
// append-only; dedupe happens through the evidence store.
type ResearchState struct {
	Tasks    []string            `json:"tasks"`
	Queries  map[string]string   `json:"queries,omitempty"`
	Evidence []evidence.Evidence `json:"evidence"`
}

// WriteState holds report output and the authoritative variable bag.
// Vars stays open-keyed: strategies bind new variables at runtime.
type WriteState struct {
	Sections    []string       `json:"sections"`
	Citations   []string       `json:"citations"`
	Limitations []string       `json:"limitations,omitempty"`
	Errors      []string       `json:"errors,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
	Vars        map[string]any `json:"vars"`
}

// State is the full workflow state, owned exclusively by the executor during
// an invocation and snapshotted at phase boundaries for checkpointing.
type State struct {
	ThreadID string        `json:"thread_id"`
	Scope    ScopeState    `json:"scope"`
	Research ResearchState `json:"research"`
	Write    WriteState    `json:"write"`

	// CompletedPhase is the last phase that finished; replay resumes after it.
	CompletedPhase config.Phase `json:"completed_phase,omitempty"`
}

// NewState creates a State for one invocation.
func NewState(threadID, userRequest string) *State {
	return &State{
		ThreadID: threadID,
		Scope:    ScopeState{UserRequest: userRequest},
		Research: ResearchState{Queries: make(map[string]string)},
		Write:    WriteState{Vars: make(map[string]any)},
	}
}

// ScopeResult is the validated output of the scope classifier.
type ScopeResult struct {
	StrategySlug string            `json:"strategy_slug"`
	Category     string            `json:"category"`
	TimeWindow   config.TimeWindow `json:"time_window"`
	Depth        config.Depth      `json:"depth"`
	Tasks        []string          `json:"tasks"`
	Variables    map[string]any    `json:"variables,omitempty"`
}

// ResultMetadata describes a finished workflow run.
type ResultMetadata struct {
	StrategySlug  string    `json:"strategy_slug"`
	EvidenceCount int       `json:"evidence_count"`
	ExecutedAt    time.Time `json:"executed_at"`
	Warnings      []string  `json:"warnings,omitempty"`
}

// TaskResult is the shaped output delivered to callers and webhooks.
type TaskResult struct {
	Sections  []string       `json:"sections"`
	Citations []string       `json:"citations"`
	Metadata  ResultMetadata `json:"metadata"`
}

// Webhook delivery statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// WebhookPayload is the JSON body POSTed to a task's callback URL.
type WebhookPayload struct {
	TaskID        string      `json:"task_id"`
	Email         string      `json:"email,omitempty"`
	ResearchTopic string      `json:"research_topic"`
	Frequency     string      `json:"frequency,omitempty"`
	Status        string      `json:"status"`
	Result        *TaskResult `json:"result,omitempty"`
	Error         string      `json:"error,omitempty"`
}
