package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StrategyRecord holds the schema definition for a persisted strategy.
// The strategy document itself lives in yaml_content as JSONB; slug and
// priority are denormalized for lookup.
type StrategyRecord struct {
	ent.Schema
}

// Fields of the StrategyRecord.
func (StrategyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty(),
		field.JSON("yaml_content", map[string]interface{}{}).
			Comment("Strategy document (JSONB equivalent of the YAML form)"),
		field.Int("priority").
			Default(0),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StrategyRecord.
func (StrategyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
