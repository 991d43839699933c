// Code generated by ent, DO NOT EDIT.

package quotaviolation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldContainsFold(FieldID, id))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldModel, v))
}

// RetryDelaySec applies equality check predicate on the "retry_delay_sec" field. It's identical to RetryDelaySecEQ.
func RetryDelaySec(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldRetryDelaySec, v))
}

// RawPayload applies equality check predicate on the "raw_payload" field. It's identical to RawPayloadEQ.
func RawPayload(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldRawPayload, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldContainsFold(FieldModel, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldKind, vs...))
}

// RetryDelaySecEQ applies the EQ predicate on the "retry_delay_sec" field.
func RetryDelaySecEQ(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldRetryDelaySec, v))
}

// RetryDelaySecNEQ applies the NEQ predicate on the "retry_delay_sec" field.
func RetryDelaySecNEQ(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldRetryDelaySec, v))
}

// RetryDelaySecIn applies the In predicate on the "retry_delay_sec" field.
func RetryDelaySecIn(vs ...int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldRetryDelaySec, vs...))
}

// RetryDelaySecNotIn applies the NotIn predicate on the "retry_delay_sec" field.
func RetryDelaySecNotIn(vs ...int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldRetryDelaySec, vs...))
}

// RetryDelaySecGT applies the GT predicate on the "retry_delay_sec" field.
func RetryDelaySecGT(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGT(FieldRetryDelaySec, v))
}

// RetryDelaySecGTE applies the GTE predicate on the "retry_delay_sec" field.
func RetryDelaySecGTE(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGTE(FieldRetryDelaySec, v))
}

// RetryDelaySecLT applies the LT predicate on the "retry_delay_sec" field.
func RetryDelaySecLT(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLT(FieldRetryDelaySec, v))
}

// RetryDelaySecLTE applies the LTE predicate on the "retry_delay_sec" field.
func RetryDelaySecLTE(v int) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLTE(FieldRetryDelaySec, v))
}

// RetryDelaySecIsNil applies the IsNil predicate on the "retry_delay_sec" field.
func RetryDelaySecIsNil() predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIsNull(FieldRetryDelaySec))
}

// RetryDelaySecNotNil applies the NotNil predicate on the "retry_delay_sec" field.
func RetryDelaySecNotNil() predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotNull(FieldRetryDelaySec))
}

// RawPayloadEQ applies the EQ predicate on the "raw_payload" field.
func RawPayloadEQ(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldRawPayload, v))
}

// RawPayloadNEQ applies the NEQ predicate on the "raw_payload" field.
func RawPayloadNEQ(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldRawPayload, v))
}

// RawPayloadIn applies the In predicate on the "raw_payload" field.
func RawPayloadIn(vs ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldRawPayload, vs...))
}

// RawPayloadNotIn applies the NotIn predicate on the "raw_payload" field.
func RawPayloadNotIn(vs ...string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldRawPayload, vs...))
}

// RawPayloadGT applies the GT predicate on the "raw_payload" field.
func RawPayloadGT(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGT(FieldRawPayload, v))
}

// RawPayloadGTE applies the GTE predicate on the "raw_payload" field.
func RawPayloadGTE(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGTE(FieldRawPayload, v))
}

// RawPayloadLT applies the LT predicate on the "raw_payload" field.
func RawPayloadLT(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLT(FieldRawPayload, v))
}

// RawPayloadLTE applies the LTE predicate on the "raw_payload" field.
func RawPayloadLTE(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLTE(FieldRawPayload, v))
}

// RawPayloadContains applies the Contains predicate on the "raw_payload" field.
func RawPayloadContains(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldContains(FieldRawPayload, v))
}

// RawPayloadHasPrefix applies the HasPrefix predicate on the "raw_payload" field.
func RawPayloadHasPrefix(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldHasPrefix(FieldRawPayload, v))
}

// RawPayloadHasSuffix applies the HasSuffix predicate on the "raw_payload" field.
func RawPayloadHasSuffix(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldHasSuffix(FieldRawPayload, v))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotNull(FieldRawPayload))
}

// RawPayloadEqualFold applies the EqualFold predicate on the "raw_payload" field.
func RawPayloadEqualFold(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEqualFold(FieldRawPayload, v))
}

// RawPayloadContainsFold applies the ContainsFold predicate on the "raw_payload" field.
func RawPayloadContainsFold(v string) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldContainsFold(FieldRawPayload, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaViolation) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaViolation) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaViolation) predicate.QuotaViolation {
	return predicate.QuotaViolation(sql.NotPredicates(p))
}
