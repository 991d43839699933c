package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Content holds the schema definition for a discovered video.
type Content struct {
	ent.Schema
}

// Fields of the Content.
func (Content) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("channel_id").
			Immutable(),
		field.String("external_video_id").
			Unique().
			Immutable().
			Comment("Provider-side video identifier; dedupes discovery"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Int("duration_sec").
			Optional().
			Nillable().
			Comment("Authoritative duration, set by the metadata stage"),
		field.Int64("view_count").
			Optional().
			Nillable(),
		field.String("thumbnail").
			Optional().
			Nillable(),
		field.String("canonical_url").
			Optional().
			Nillable(),
		field.Int("expected_segment_count").
			Optional().
			Nillable().
			Comment("Frozen once chunk planning commits the segment set"),
		field.Enum("state").
			Values("discovered", "metadata_ready", "processing", "analyzed", "failed", "retry_pending").
			Default("discovered"),
		field.JSON("combined_analysis", map[string]interface{}{}).
			Optional(),
		field.Strings("models_used").
			Optional(),
		field.String("prompt_version").
			Optional().
			Nillable(),
		field.Time("combined_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.JSON("statistics", []map[string]interface{}{}).
			Optional().
			Comment("View-count time series appended by the stats stage"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Content.
func (Content) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("channel", Channel.Type).
			Ref("contents").
			Field("channel_id").
			Unique().
			Required().
			Immutable(),
		edge.To("segments", Segment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Content.
func (Content) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
		index.Fields("state"),
		index.Fields("state", "created_at"),
	}
}
