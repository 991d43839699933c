package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for a versioned analysis prompt.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Int("version").
			Default(1),
		field.Text("template").
			Comment("Prompt body with {{placeholder}} substitution"),
		field.Bool("is_active").
			Default(false),
		field.Enum("prompt_type").
			Values("segment_analysis", "combination"),
		field.JSON("response_schema", map[string]interface{}{}).
			Optional().
			Comment("Declared structured-output schema handed to the provider"),
		field.String("mime_type").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),
		index.Fields("prompt_type", "is_active"),
	}
}
