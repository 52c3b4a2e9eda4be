package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GlobalSetting holds the schema definition for a runtime setting.
type GlobalSetting struct {
	ent.Schema
}

// Fields of the GlobalSetting.
func (GlobalSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.JSON("value", map[string]interface{}{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
