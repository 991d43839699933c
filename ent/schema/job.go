package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for one durable queue entry.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue").
			Immutable(),
		field.String("name").
			Immutable().
			Comment("Job kind within the queue, e.g. 'discover-channel'"),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("state").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.String("job_key").
			Optional().
			Nillable().
			Unique().
			Comment("Idempotent-enqueue handle; held while pending or active, cleared on terminal transition"),
		field.Int("priority").
			Default(0),
		field.Time("run_at").
			Default(time.Now).
			Comment("Earliest delivery time; deferrals and backoff push this forward"),
		field.Int("attempts").
			Default(0).
			Comment("Completed or failed deliveries; deferrals do not count"),
		field.Int("max_attempts").
			Default(1),
		field.Int64("backoff_base_ms").
			Default(0),
		field.Bool("remove_on_complete").
			Default(false),
		field.Int("stalled_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod that holds the active claim; drives orphan recovery"),
		field.Time("heartbeat_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "state", "run_at"),
		index.Fields("state", "heartbeat_at"),
		index.Fields("queue", "state", "priority", "run_at"),
	}
}
