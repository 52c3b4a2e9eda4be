package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowCheckpoint holds the schema definition for a phase-boundary state
// snapshot. One row per (thread_id, phase); re-invocation with the same
// thread_id resumes from the latest completed phase.
type WorkflowCheckpoint struct {
	ent.Schema
}

// Fields of the WorkflowCheckpoint.
func (WorkflowCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_id").
			NotEmpty(),
		field.String("phase").
			NotEmpty(),
		field.JSON("state", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the WorkflowCheckpoint.
func (WorkflowCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "phase").
			Unique(),
		index.Fields("thread_id"),
	}
}
