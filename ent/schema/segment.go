package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Segment holds the schema definition for one time-bounded slice of a video.
type Segment struct {
	ent.Schema
}

// Fields of the Segment.
func (Segment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("content_id").
			Immutable(),
		field.Int("index").
			Immutable().
			Comment("Position within the video; combination order is by index, not completion"),
		field.Int("start_sec").
			Immutable(),
		field.Int("end_sec").
			Immutable(),
		field.Int("duration_sec").
			Immutable(),
		field.Enum("state").
			Values("pending", "processing", "analyzed", "failed", "overloaded").
			Default("pending"),
		field.JSON("analysis_result", map[string]interface{}{}).
			Optional(),
		field.String("model_used").
			Optional().
			Nillable(),
		field.Int64("processing_ms").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.String("prompt_version").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Segment.
func (Segment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("content", Content.Type).
			Ref("segments").
			Field("content_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Segment.
func (Segment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id", "index").
			Unique(),
		index.Fields("content_id", "state"),
	}
}
