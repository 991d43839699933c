package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CronJob holds the schema definition for a repeatable job definition.
// Each tick enqueues a regular Job; the row itself is never executed.
type CronJob struct {
	ent.Schema
}

// Fields of the CronJob.
func (CronJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cron_job_id").
			Unique().
			Immutable(),
		field.String("stable_id").
			Unique().
			Comment("External identity, e.g. 'discover:{channelId}'; upserts reconcile on it"),
		field.String("queue"),
		field.String("name"),
		field.JSON("payload", map[string]interface{}{}),
		field.String("cron_pattern"),
		field.Time("next_run_at"),
		field.Time("last_enqueued_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CronJob.
func (CronJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_run_at"),
	}
}
