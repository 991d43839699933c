// Code generated by ent, DO NOT EDIT.

package cronjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContainsFold(FieldID, id))
}

// StableID applies equality check predicate on the "stable_id" field. It's identical to StableIDEQ.
func StableID(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldStableID, v))
}

// Queue applies equality check predicate on the "queue" field. It's identical to QueueEQ.
func Queue(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldQueue, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldName, v))
}

// CronPattern applies equality check predicate on the "cron_pattern" field. It's identical to CronPatternEQ.
func CronPattern(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldCronPattern, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldNextRunAt, v))
}

// LastEnqueuedAt applies equality check predicate on the "last_enqueued_at" field. It's identical to LastEnqueuedAtEQ.
func LastEnqueuedAt(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldLastEnqueuedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// StableIDEQ applies the EQ predicate on the "stable_id" field.
func StableIDEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldStableID, v))
}

// StableIDNEQ applies the NEQ predicate on the "stable_id" field.
func StableIDNEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldStableID, v))
}

// StableIDIn applies the In predicate on the "stable_id" field.
func StableIDIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldStableID, vs...))
}

// StableIDNotIn applies the NotIn predicate on the "stable_id" field.
func StableIDNotIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldStableID, vs...))
}

// StableIDGT applies the GT predicate on the "stable_id" field.
func StableIDGT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldStableID, v))
}

// StableIDGTE applies the GTE predicate on the "stable_id" field.
func StableIDGTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldStableID, v))
}

// StableIDLT applies the LT predicate on the "stable_id" field.
func StableIDLT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldStableID, v))
}

// StableIDLTE applies the LTE predicate on the "stable_id" field.
func StableIDLTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldStableID, v))
}

// StableIDContains applies the Contains predicate on the "stable_id" field.
func StableIDContains(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContains(FieldStableID, v))
}

// StableIDHasPrefix applies the HasPrefix predicate on the "stable_id" field.
func StableIDHasPrefix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasPrefix(FieldStableID, v))
}

// StableIDHasSuffix applies the HasSuffix predicate on the "stable_id" field.
func StableIDHasSuffix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasSuffix(FieldStableID, v))
}

// StableIDEqualFold applies the EqualFold predicate on the "stable_id" field.
func StableIDEqualFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEqualFold(FieldStableID, v))
}

// StableIDContainsFold applies the ContainsFold predicate on the "stable_id" field.
func StableIDContainsFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContainsFold(FieldStableID, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldQueue, vs...))
}

// QueueGT applies the GT predicate on the "queue" field.
func QueueGT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldQueue, v))
}

// QueueGTE applies the GTE predicate on the "queue" field.
func QueueGTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldQueue, v))
}

// QueueLT applies the LT predicate on the "queue" field.
func QueueLT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldQueue, v))
}

// QueueLTE applies the LTE predicate on the "queue" field.
func QueueLTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldQueue, v))
}

// QueueContains applies the Contains predicate on the "queue" field.
func QueueContains(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContains(FieldQueue, v))
}

// QueueHasPrefix applies the HasPrefix predicate on the "queue" field.
func QueueHasPrefix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasPrefix(FieldQueue, v))
}

// QueueHasSuffix applies the HasSuffix predicate on the "queue" field.
func QueueHasSuffix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasSuffix(FieldQueue, v))
}

// QueueEqualFold applies the EqualFold predicate on the "queue" field.
func QueueEqualFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEqualFold(FieldQueue, v))
}

// QueueContainsFold applies the ContainsFold predicate on the "queue" field.
func QueueContainsFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContainsFold(FieldQueue, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContainsFold(FieldName, v))
}

// CronPatternEQ applies the EQ predicate on the "cron_pattern" field.
func CronPatternEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldCronPattern, v))
}

// CronPatternNEQ applies the NEQ predicate on the "cron_pattern" field.
func CronPatternNEQ(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldCronPattern, v))
}

// CronPatternIn applies the In predicate on the "cron_pattern" field.
func CronPatternIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldCronPattern, vs...))
}

// CronPatternNotIn applies the NotIn predicate on the "cron_pattern" field.
func CronPatternNotIn(vs ...string) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldCronPattern, vs...))
}

// CronPatternGT applies the GT predicate on the "cron_pattern" field.
func CronPatternGT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldCronPattern, v))
}

// CronPatternGTE applies the GTE predicate on the "cron_pattern" field.
func CronPatternGTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldCronPattern, v))
}

// CronPatternLT applies the LT predicate on the "cron_pattern" field.
func CronPatternLT(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldCronPattern, v))
}

// CronPatternLTE applies the LTE predicate on the "cron_pattern" field.
func CronPatternLTE(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldCronPattern, v))
}

// CronPatternContains applies the Contains predicate on the "cron_pattern" field.
func CronPatternContains(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContains(FieldCronPattern, v))
}

// CronPatternHasPrefix applies the HasPrefix predicate on the "cron_pattern" field.
func CronPatternHasPrefix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasPrefix(FieldCronPattern, v))
}

// CronPatternHasSuffix applies the HasSuffix predicate on the "cron_pattern" field.
func CronPatternHasSuffix(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldHasSuffix(FieldCronPattern, v))
}

// CronPatternEqualFold applies the EqualFold predicate on the "cron_pattern" field.
func CronPatternEqualFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldEqualFold(FieldCronPattern, v))
}

// CronPatternContainsFold applies the ContainsFold predicate on the "cron_pattern" field.
func CronPatternContainsFold(v string) predicate.CronJob {
	return predicate.CronJob(sql.FieldContainsFold(FieldCronPattern, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldNextRunAt, v))
}

// LastEnqueuedAtEQ applies the EQ predicate on the "last_enqueued_at" field.
func LastEnqueuedAtEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtNEQ applies the NEQ predicate on the "last_enqueued_at" field.
func LastEnqueuedAtNEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtIn applies the In predicate on the "last_enqueued_at" field.
func LastEnqueuedAtIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldLastEnqueuedAt, vs...))
}

// LastEnqueuedAtNotIn applies the NotIn predicate on the "last_enqueued_at" field.
func LastEnqueuedAtNotIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldLastEnqueuedAt, vs...))
}

// LastEnqueuedAtGT applies the GT predicate on the "last_enqueued_at" field.
func LastEnqueuedAtGT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtGTE applies the GTE predicate on the "last_enqueued_at" field.
func LastEnqueuedAtGTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtLT applies the LT predicate on the "last_enqueued_at" field.
func LastEnqueuedAtLT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtLTE applies the LTE predicate on the "last_enqueued_at" field.
func LastEnqueuedAtLTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldLastEnqueuedAt, v))
}

// LastEnqueuedAtIsNil applies the IsNil predicate on the "last_enqueued_at" field.
func LastEnqueuedAtIsNil() predicate.CronJob {
	return predicate.CronJob(sql.FieldIsNull(FieldLastEnqueuedAt))
}

// LastEnqueuedAtNotNil applies the NotNil predicate on the "last_enqueued_at" field.
func LastEnqueuedAtNotNil() predicate.CronJob {
	return predicate.CronJob(sql.FieldNotNull(FieldLastEnqueuedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CronJob {
	return predicate.CronJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CronJob) predicate.CronJob {
	return predicate.CronJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CronJob) predicate.CronJob {
	return predicate.CronJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CronJob) predicate.CronJob {
	return predicate.CronJob(sql.NotPredicates(p))
}
