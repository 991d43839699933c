// Code generated by ent, DO NOT EDIT.

package quotausage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldContainsFold(FieldID, id))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldModel, v))
}

// Epoch applies equality check predicate on the "epoch" field. It's identical to EpochEQ.
func Epoch(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldEpoch, v))
}

// Requests applies equality check predicate on the "requests" field. It's identical to RequestsEQ.
func Requests(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldRequests, v))
}

// Tokens applies equality check predicate on the "tokens" field. It's identical to TokensEQ.
func Tokens(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldTokens, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldContainsFold(FieldModel, v))
}

// WindowEQ applies the EQ predicate on the "window" field.
func WindowEQ(v Window) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldWindow, v))
}

// WindowNEQ applies the NEQ predicate on the "window" field.
func WindowNEQ(v Window) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldWindow, v))
}

// WindowIn applies the In predicate on the "window" field.
func WindowIn(vs ...Window) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldWindow, vs...))
}

// WindowNotIn applies the NotIn predicate on the "window" field.
func WindowNotIn(vs ...Window) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldWindow, vs...))
}

// EpochEQ applies the EQ predicate on the "epoch" field.
func EpochEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldEpoch, v))
}

// EpochNEQ applies the NEQ predicate on the "epoch" field.
func EpochNEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldEpoch, v))
}

// EpochIn applies the In predicate on the "epoch" field.
func EpochIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldEpoch, vs...))
}

// EpochNotIn applies the NotIn predicate on the "epoch" field.
func EpochNotIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldEpoch, vs...))
}

// EpochGT applies the GT predicate on the "epoch" field.
func EpochGT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldEpoch, v))
}

// EpochGTE applies the GTE predicate on the "epoch" field.
func EpochGTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldEpoch, v))
}

// EpochLT applies the LT predicate on the "epoch" field.
func EpochLT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldEpoch, v))
}

// EpochLTE applies the LTE predicate on the "epoch" field.
func EpochLTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldEpoch, v))
}

// RequestsEQ applies the EQ predicate on the "requests" field.
func RequestsEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldRequests, v))
}

// RequestsNEQ applies the NEQ predicate on the "requests" field.
func RequestsNEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldRequests, v))
}

// RequestsIn applies the In predicate on the "requests" field.
func RequestsIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldRequests, vs...))
}

// RequestsNotIn applies the NotIn predicate on the "requests" field.
func RequestsNotIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldRequests, vs...))
}

// RequestsGT applies the GT predicate on the "requests" field.
func RequestsGT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldRequests, v))
}

// RequestsGTE applies the GTE predicate on the "requests" field.
func RequestsGTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldRequests, v))
}

// RequestsLT applies the LT predicate on the "requests" field.
func RequestsLT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldRequests, v))
}

// RequestsLTE applies the LTE predicate on the "requests" field.
func RequestsLTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldRequests, v))
}

// TokensEQ applies the EQ predicate on the "tokens" field.
func TokensEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldTokens, v))
}

// TokensNEQ applies the NEQ predicate on the "tokens" field.
func TokensNEQ(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldTokens, v))
}

// TokensIn applies the In predicate on the "tokens" field.
func TokensIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldTokens, vs...))
}

// TokensNotIn applies the NotIn predicate on the "tokens" field.
func TokensNotIn(vs ...int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldTokens, vs...))
}

// TokensGT applies the GT predicate on the "tokens" field.
func TokensGT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldTokens, v))
}

// TokensGTE applies the GTE predicate on the "tokens" field.
func TokensGTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldTokens, v))
}

// TokensLT applies the LT predicate on the "tokens" field.
func TokensLT(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldTokens, v))
}

// TokensLTE applies the LTE predicate on the "tokens" field.
func TokensLTE(v int64) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldTokens, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.NotPredicates(p))
}
