package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchTask holds the schema definition for a subscribed research task.
type ResearchTask struct {
	ent.Schema
}

// Fields of the ResearchTask.
func (ResearchTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty(),
		field.Text("research_topic").
			NotEmpty(),
		field.Enum("frequency").
			Values("daily", "weekly", "monthly"),
		field.String("schedule_time").
			Default("08:00").
			Comment("HH:MM, interpreted by the external scheduler"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_run_at").
			Optional().
			Nillable().
			Comment("Set only after successful webhook delivery"),
	}
}

// Indexes of the ResearchTask.
func (ResearchTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("is_active", "frequency"),
	}
}
