package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for a monitored video source.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.Enum("source_type").
			Values("youtube", "telegram", "tiktok").
			Default("youtube"),
		field.String("external_id").
			Comment("Provider-side channel identifier"),
		field.String("display_name"),
		field.String("upload_collection_id").
			Optional().
			Nillable().
			Comment("Resolved uploads playlist; cached after first discovery"),
		field.String("cron_pattern").
			Default("0 */6 * * *").
			Comment("Discovery schedule"),
		field.Int("fetch_last_n").
			Default(10),
		field.Text("author_context").
			Optional().
			Nillable().
			Comment("Free-form context injected into analysis prompts"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contents", Content.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_type", "external_id").
			Unique(),
	}
}
