package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScopeClassification holds the schema definition for a cached scope
// classifier result, keyed by the request fingerprint. TTL is enforced on
// read; expired rows are swept by the cleanup loop.
type ScopeClassification struct {
	ent.Schema
}

// Fields of the ScopeClassification.
func (ScopeClassification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_hash").
			Unique().
			Immutable(),
		field.JSON("result", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScopeClassification.
func (ScopeClassification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
