package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scout-research/scout/ent"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
	"github.com/scout-research/scout/pkg/config"
	"github.com/scout-research/scout/pkg/models"
)

// Checkpointer snapshots workflow state at phase boundaries so re-invocation
// with the same thread_id resumes from the last completed phase.
type Checkpointer interface {
	// Save stores the state snapshot after phase completed.
	Save(ctx context.Context, threadID string, phase config.Phase, state *models.State) error

	// Load returns the latest snapshot for threadID, or (nil, nil) when the
	// thread has none.
	Load(ctx context.Context, threadID string) (*models.State, error)

	// Clear drops all snapshots for threadID once the workflow finishes.
	Clear(ctx context.Context, threadID string) error
}

// phaseOrder gives checkpoint recency: later phases supersede earlier ones.
var phaseOrder = map[config.Phase]int{
	config.PhaseScope:    1,
	config.PhaseFill:     2,
	config.PhaseResearch: 3,
	config.PhaseFinalize: 4,
	config.PhaseQC:       5,
	config.PhaseDone:     6,
}

// DBCheckpointer persists checkpoints in the workflow_checkpoints table, one
// row per (thread_id, phase) with upsert semantics.
type DBCheckpointer struct {
	db *ent.Client
}

// NewDBCheckpointer builds a database-backed checkpointer.
func NewDBCheckpointer(db *ent.Client) *DBCheckpointer {
	return &DBCheckpointer{db: db}
}

// Save implements Checkpointer.
func (c *DBCheckpointer) Save(ctx context.Context, threadID string, phase config.Phase, state *models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint state: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode checkpoint state: %w", err)
	}

	err = c.db.WorkflowCheckpoint.Create().
		SetThreadID(threadID).
		SetPhase(string(phase)).
		SetState(doc).
		OnConflictColumns(workflowcheckpoint.FieldThreadID, workflowcheckpoint.FieldPhase).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// Load implements Checkpointer, returning the snapshot of the latest
// completed phase.
func (c *DBCheckpointer) Load(ctx context.Context, threadID string) (*models.State, error) {
	rows, err := c.db.WorkflowCheckpoint.Query().
		Where(workflowcheckpoint.ThreadIDEQ(threadID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoints: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	latest := rows[0]
	for _, row := range rows[1:] {
		if phaseOrder[config.Phase(row.Phase)] > phaseOrder[config.Phase(latest.Phase)] {
			latest = row
		}
	}

	data, err := json.Marshal(latest.State)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint document: %w", err)
	}
	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse checkpoint state: %w", err)
	}
	state.CompletedPhase = config.Phase(latest.Phase)
	return &state, nil
}

// Clear implements Checkpointer.
func (c *DBCheckpointer) Clear(ctx context.Context, threadID string) error {
	_, err := c.db.WorkflowCheckpoint.Delete().
		Where(workflowcheckpoint.ThreadIDEQ(threadID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear checkpoints: %w", err)
	}
	return nil
}

// NopCheckpointer discards snapshots; used for one-off manual invocations
// where resume semantics add nothing.
type NopCheckpointer struct{}

func (NopCheckpointer) Save(context.Context, string, config.Phase, *models.State) error { return nil }
func (NopCheckpointer) Load(context.Context, string) (*models.State, error)             { return nil, nil }
func (NopCheckpointer) Clear(context.Context, string) error                             { return nil }
