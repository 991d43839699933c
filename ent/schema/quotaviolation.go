package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaViolation holds the schema definition for one recorded provider
// quota rejection. Retention is bounded by the quota-cleanup stage.
type QuotaViolation struct {
	ent.Schema
}

// Fields of the QuotaViolation.
func (QuotaViolation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("quota_violation_id").
			Unique().
			Immutable(),
		field.String("model"),
		field.Enum("kind").
			Values("rpm", "tpm", "rpd", "unknown"),
		field.Int("retry_delay_sec").
			Optional().
			Nillable().
			Comment("Provider-supplied retry-info, when present"),
		field.Text("raw_payload").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QuotaViolation.
func (QuotaViolation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("model", "created_at"),
		index.Fields("kind", "created_at"),
	}
}
