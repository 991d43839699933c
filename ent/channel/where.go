// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldExternalID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDisplayName, v))
}

// UploadCollectionID applies equality check predicate on the "upload_collection_id" field. It's identical to UploadCollectionIDEQ.
func UploadCollectionID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUploadCollectionID, v))
}

// CronPattern applies equality check predicate on the "cron_pattern" field. It's identical to CronPatternEQ.
func CronPattern(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCronPattern, v))
}

// FetchLastN applies equality check predicate on the "fetch_last_n" field. It's identical to FetchLastNEQ.
func FetchLastN(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldFetchLastN, v))
}

// AuthorContext applies equality check predicate on the "author_context" field. It's identical to AuthorContextEQ.
func AuthorContext(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldAuthorContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldSourceType, vs...))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldExternalID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldDisplayName, v))
}

// UploadCollectionIDEQ applies the EQ predicate on the "upload_collection_id" field.
func UploadCollectionIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUploadCollectionID, v))
}

// UploadCollectionIDNEQ applies the NEQ predicate on the "upload_collection_id" field.
func UploadCollectionIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldUploadCollectionID, v))
}

// UploadCollectionIDIn applies the In predicate on the "upload_collection_id" field.
func UploadCollectionIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldUploadCollectionID, vs...))
}

// UploadCollectionIDNotIn applies the NotIn predicate on the "upload_collection_id" field.
func UploadCollectionIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldUploadCollectionID, vs...))
}

// UploadCollectionIDGT applies the GT predicate on the "upload_collection_id" field.
func UploadCollectionIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldUploadCollectionID, v))
}

// UploadCollectionIDGTE applies the GTE predicate on the "upload_collection_id" field.
func UploadCollectionIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldUploadCollectionID, v))
}

// UploadCollectionIDLT applies the LT predicate on the "upload_collection_id" field.
func UploadCollectionIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldUploadCollectionID, v))
}

// UploadCollectionIDLTE applies the LTE predicate on the "upload_collection_id" field.
func UploadCollectionIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldUploadCollectionID, v))
}

// UploadCollectionIDContains applies the Contains predicate on the "upload_collection_id" field.
func UploadCollectionIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldUploadCollectionID, v))
}

// UploadCollectionIDHasPrefix applies the HasPrefix predicate on the "upload_collection_id" field.
func UploadCollectionIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldUploadCollectionID, v))
}

// UploadCollectionIDHasSuffix applies the HasSuffix predicate on the "upload_collection_id" field.
func UploadCollectionIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldUploadCollectionID, v))
}

// UploadCollectionIDIsNil applies the IsNil predicate on the "upload_collection_id" field.
func UploadCollectionIDIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldUploadCollectionID))
}

// UploadCollectionIDNotNil applies the NotNil predicate on the "upload_collection_id" field.
func UploadCollectionIDNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldUploadCollectionID))
}

// UploadCollectionIDEqualFold applies the EqualFold predicate on the "upload_collection_id" field.
func UploadCollectionIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldUploadCollectionID, v))
}

// UploadCollectionIDContainsFold applies the ContainsFold predicate on the "upload_collection_id" field.
func UploadCollectionIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldUploadCollectionID, v))
}

// CronPatternEQ applies the EQ predicate on the "cron_pattern" field.
func CronPatternEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCronPattern, v))
}

// CronPatternNEQ applies the NEQ predicate on the "cron_pattern" field.
func CronPatternNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCronPattern, v))
}

// CronPatternIn applies the In predicate on the "cron_pattern" field.
func CronPatternIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCronPattern, vs...))
}

// CronPatternNotIn applies the NotIn predicate on the "cron_pattern" field.
func CronPatternNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCronPattern, vs...))
}

// CronPatternGT applies the GT predicate on the "cron_pattern" field.
func CronPatternGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCronPattern, v))
}

// CronPatternGTE applies the GTE predicate on the "cron_pattern" field.
func CronPatternGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCronPattern, v))
}

// CronPatternLT applies the LT predicate on the "cron_pattern" field.
func CronPatternLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCronPattern, v))
}

// CronPatternLTE applies the LTE predicate on the "cron_pattern" field.
func CronPatternLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCronPattern, v))
}

// CronPatternContains applies the Contains predicate on the "cron_pattern" field.
func CronPatternContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldCronPattern, v))
}

// CronPatternHasPrefix applies the HasPrefix predicate on the "cron_pattern" field.
func CronPatternHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldCronPattern, v))
}

// CronPatternHasSuffix applies the HasSuffix predicate on the "cron_pattern" field.
func CronPatternHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldCronPattern, v))
}

// CronPatternEqualFold applies the EqualFold predicate on the "cron_pattern" field.
func CronPatternEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldCronPattern, v))
}

// CronPatternContainsFold applies the ContainsFold predicate on the "cron_pattern" field.
func CronPatternContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldCronPattern, v))
}

// FetchLastNEQ applies the EQ predicate on the "fetch_last_n" field.
func FetchLastNEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldFetchLastN, v))
}

// FetchLastNNEQ applies the NEQ predicate on the "fetch_last_n" field.
func FetchLastNNEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldFetchLastN, v))
}

// FetchLastNIn applies the In predicate on the "fetch_last_n" field.
func FetchLastNIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldFetchLastN, vs...))
}

// FetchLastNNotIn applies the NotIn predicate on the "fetch_last_n" field.
func FetchLastNNotIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldFetchLastN, vs...))
}

// FetchLastNGT applies the GT predicate on the "fetch_last_n" field.
func FetchLastNGT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldFetchLastN, v))
}

// FetchLastNGTE applies the GTE predicate on the "fetch_last_n" field.
func FetchLastNGTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldFetchLastN, v))
}

// FetchLastNLT applies the LT predicate on the "fetch_last_n" field.
func FetchLastNLT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldFetchLastN, v))
}

// FetchLastNLTE applies the LTE predicate on the "fetch_last_n" field.
func FetchLastNLTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldFetchLastN, v))
}

// AuthorContextEQ applies the EQ predicate on the "author_context" field.
func AuthorContextEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldAuthorContext, v))
}

// AuthorContextNEQ applies the NEQ predicate on the "author_context" field.
func AuthorContextNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldAuthorContext, v))
}

// AuthorContextIn applies the In predicate on the "author_context" field.
func AuthorContextIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldAuthorContext, vs...))
}

// AuthorContextNotIn applies the NotIn predicate on the "author_context" field.
func AuthorContextNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldAuthorContext, vs...))
}

// AuthorContextGT applies the GT predicate on the "author_context" field.
func AuthorContextGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldAuthorContext, v))
}

// AuthorContextGTE applies the GTE predicate on the "author_context" field.
func AuthorContextGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldAuthorContext, v))
}

// AuthorContextLT applies the LT predicate on the "author_context" field.
func AuthorContextLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldAuthorContext, v))
}

// AuthorContextLTE applies the LTE predicate on the "author_context" field.
func AuthorContextLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldAuthorContext, v))
}

// AuthorContextContains applies the Contains predicate on the "author_context" field.
func AuthorContextContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldAuthorContext, v))
}

// AuthorContextHasPrefix applies the HasPrefix predicate on the "author_context" field.
func AuthorContextHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldAuthorContext, v))
}

// AuthorContextHasSuffix applies the HasSuffix predicate on the "author_context" field.
func AuthorContextHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldAuthorContext, v))
}

// AuthorContextIsNil applies the IsNil predicate on the "author_context" field.
func AuthorContextIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldAuthorContext))
}

// AuthorContextNotNil applies the NotNil predicate on the "author_context" field.
func AuthorContextNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldAuthorContext))
}

// AuthorContextEqualFold applies the EqualFold predicate on the "author_context" field.
func AuthorContextEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldAuthorContext, v))
}

// AuthorContextContainsFold applies the ContainsFold predicate on the "author_context" field.
func AuthorContextContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldAuthorContext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContents applies the HasEdge predicate on the "contents" edge.
func HasContents() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContentsTable, ContentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentsWith applies the HasEdge predicate on the "contents" edge with a given conditions (other predicates).
func HasContentsWith(preds ...predicate.Content) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newContentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.NotPredicates(p))
}
