package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaUsage holds the schema definition for one calendar-window usage counter.
// Rows are keyed by (model, window, epoch); counters only ever increase within
// a window. Stale rows are pruned by the quota-cleanup stage.
type QuotaUsage struct {
	ent.Schema
}

// Fields of the QuotaUsage.
func (QuotaUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("quota_usage_id").
			Unique().
			Immutable(),
		field.String("model"),
		field.Enum("window").
			Values("minute", "day"),
		field.Int64("epoch").
			Comment("unix/60 for minute windows, unix/86400 for day windows"),
		field.Int64("requests").
			Default(0),
		field.Int64("tokens").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QuotaUsage.
func (QuotaUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("model", "window", "epoch").
			Unique(),
		index.Fields("updated_at"),
	}
}
