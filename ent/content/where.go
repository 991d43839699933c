// Code generated by ent, DO NOT EDIT.

package content

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldID, id))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldChannelID, v))
}

// ExternalVideoID applies equality check predicate on the "external_video_id" field. It's identical to ExternalVideoIDEQ.
func ExternalVideoID(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldExternalVideoID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDescription, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPublishedAt, v))
}

// DurationSec applies equality check predicate on the "duration_sec" field. It's identical to DurationSecEQ.
func DurationSec(v int) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDurationSec, v))
}

// ViewCount applies equality check predicate on the "view_count" field. It's identical to ViewCountEQ.
func ViewCount(v int64) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldViewCount, v))
}

// Thumbnail applies equality check predicate on the "thumbnail" field. It's identical to ThumbnailEQ.
func Thumbnail(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldThumbnail, v))
}

// CanonicalURL applies equality check predicate on the "canonical_url" field. It's identical to CanonicalURLEQ.
func CanonicalURL(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCanonicalURL, v))
}

// ExpectedSegmentCount applies equality check predicate on the "expected_segment_count" field. It's identical to ExpectedSegmentCountEQ.
func ExpectedSegmentCount(v int) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldExpectedSegmentCount, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPromptVersion, v))
}

// CombinedAt applies equality check predicate on the "combined_at" field. It's identical to CombinedAtEQ.
func CombinedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCombinedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldChannelID, v))
}

// ExternalVideoIDEQ applies the EQ predicate on the "external_video_id" field.
func ExternalVideoIDEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldExternalVideoID, v))
}

// ExternalVideoIDNEQ applies the NEQ predicate on the "external_video_id" field.
func ExternalVideoIDNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldExternalVideoID, v))
}

// ExternalVideoIDIn applies the In predicate on the "external_video_id" field.
func ExternalVideoIDIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldExternalVideoID, vs...))
}

// ExternalVideoIDNotIn applies the NotIn predicate on the "external_video_id" field.
func ExternalVideoIDNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldExternalVideoID, vs...))
}

// ExternalVideoIDGT applies the GT predicate on the "external_video_id" field.
func ExternalVideoIDGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldExternalVideoID, v))
}

// ExternalVideoIDGTE applies the GTE predicate on the "external_video_id" field.
func ExternalVideoIDGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldExternalVideoID, v))
}

// ExternalVideoIDLT applies the LT predicate on the "external_video_id" field.
func ExternalVideoIDLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldExternalVideoID, v))
}

// ExternalVideoIDLTE applies the LTE predicate on the "external_video_id" field.
func ExternalVideoIDLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldExternalVideoID, v))
}

// ExternalVideoIDContains applies the Contains predicate on the "external_video_id" field.
func ExternalVideoIDContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldExternalVideoID, v))
}

// ExternalVideoIDHasPrefix applies the HasPrefix predicate on the "external_video_id" field.
func ExternalVideoIDHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldExternalVideoID, v))
}

// ExternalVideoIDHasSuffix applies the HasSuffix predicate on the "external_video_id" field.
func ExternalVideoIDHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldExternalVideoID, v))
}

// ExternalVideoIDEqualFold applies the EqualFold predicate on the "external_video_id" field.
func ExternalVideoIDEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldExternalVideoID, v))
}

// ExternalVideoIDContainsFold applies the ContainsFold predicate on the "external_video_id" field.
func ExternalVideoIDContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldExternalVideoID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldDescription, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldPublishedAt))
}

// DurationSecEQ applies the EQ predicate on the "duration_sec" field.
func DurationSecEQ(v int) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDurationSec, v))
}

// DurationSecNEQ applies the NEQ predicate on the "duration_sec" field.
func DurationSecNEQ(v int) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldDurationSec, v))
}

// DurationSecIn applies the In predicate on the "duration_sec" field.
func DurationSecIn(vs ...int) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldDurationSec, vs...))
}

// DurationSecNotIn applies the NotIn predicate on the "duration_sec" field.
func DurationSecNotIn(vs ...int) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldDurationSec, vs...))
}

// DurationSecGT applies the GT predicate on the "duration_sec" field.
func DurationSecGT(v int) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldDurationSec, v))
}

// DurationSecGTE applies the GTE predicate on the "duration_sec" field.
func DurationSecGTE(v int) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldDurationSec, v))
}

// DurationSecLT applies the LT predicate on the "duration_sec" field.
func DurationSecLT(v int) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldDurationSec, v))
}

// DurationSecLTE applies the LTE predicate on the "duration_sec" field.
func DurationSecLTE(v int) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldDurationSec, v))
}

// DurationSecIsNil applies the IsNil predicate on the "duration_sec" field.
func DurationSecIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldDurationSec))
}

// DurationSecNotNil applies the NotNil predicate on the "duration_sec" field.
func DurationSecNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldDurationSec))
}

// ViewCountEQ applies the EQ predicate on the "view_count" field.
func ViewCountEQ(v int64) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldViewCount, v))
}

// ViewCountNEQ applies the NEQ predicate on the "view_count" field.
func ViewCountNEQ(v int64) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldViewCount, v))
}

// ViewCountIn applies the In predicate on the "view_count" field.
func ViewCountIn(vs ...int64) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldViewCount, vs...))
}

// ViewCountNotIn applies the NotIn predicate on the "view_count" field.
func ViewCountNotIn(vs ...int64) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldViewCount, vs...))
}

// ViewCountGT applies the GT predicate on the "view_count" field.
func ViewCountGT(v int64) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldViewCount, v))
}

// ViewCountGTE applies the GTE predicate on the "view_count" field.
func ViewCountGTE(v int64) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldViewCount, v))
}

// ViewCountLT applies the LT predicate on the "view_count" field.
func ViewCountLT(v int64) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldViewCount, v))
}

// ViewCountLTE applies the LTE predicate on the "view_count" field.
func ViewCountLTE(v int64) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldViewCount, v))
}

// ViewCountIsNil applies the IsNil predicate on the "view_count" field.
func ViewCountIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldViewCount))
}

// ViewCountNotNil applies the NotNil predicate on the "view_count" field.
func ViewCountNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldViewCount))
}

// ThumbnailEQ applies the EQ predicate on the "thumbnail" field.
func ThumbnailEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldThumbnail, v))
}

// ThumbnailNEQ applies the NEQ predicate on the "thumbnail" field.
func ThumbnailNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldThumbnail, v))
}

// ThumbnailIn applies the In predicate on the "thumbnail" field.
func ThumbnailIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldThumbnail, vs...))
}

// ThumbnailNotIn applies the NotIn predicate on the "thumbnail" field.
func ThumbnailNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldThumbnail, vs...))
}

// ThumbnailGT applies the GT predicate on the "thumbnail" field.
func ThumbnailGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldThumbnail, v))
}

// ThumbnailGTE applies the GTE predicate on the "thumbnail" field.
func ThumbnailGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldThumbnail, v))
}

// ThumbnailLT applies the LT predicate on the "thumbnail" field.
func ThumbnailLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldThumbnail, v))
}

// ThumbnailLTE applies the LTE predicate on the "thumbnail" field.
func ThumbnailLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldThumbnail, v))
}

// ThumbnailContains applies the Contains predicate on the "thumbnail" field.
func ThumbnailContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldThumbnail, v))
}

// ThumbnailHasPrefix applies the HasPrefix predicate on the "thumbnail" field.
func ThumbnailHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldThumbnail, v))
}

// ThumbnailHasSuffix applies the HasSuffix predicate on the "thumbnail" field.
func ThumbnailHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldThumbnail, v))
}

// ThumbnailIsNil applies the IsNil predicate on the "thumbnail" field.
func ThumbnailIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldThumbnail))
}

// ThumbnailNotNil applies the NotNil predicate on the "thumbnail" field.
func ThumbnailNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldThumbnail))
}

// ThumbnailEqualFold applies the EqualFold predicate on the "thumbnail" field.
func ThumbnailEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldThumbnail, v))
}

// ThumbnailContainsFold applies the ContainsFold predicate on the "thumbnail" field.
func ThumbnailContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldThumbnail, v))
}

// CanonicalURLEQ applies the EQ predicate on the "canonical_url" field.
func CanonicalURLEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCanonicalURL, v))
}

// CanonicalURLNEQ applies the NEQ predicate on the "canonical_url" field.
func CanonicalURLNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldCanonicalURL, v))
}

// CanonicalURLIn applies the In predicate on the "canonical_url" field.
func CanonicalURLIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldCanonicalURL, vs...))
}

// CanonicalURLNotIn applies the NotIn predicate on the "canonical_url" field.
func CanonicalURLNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldCanonicalURL, vs...))
}

// CanonicalURLGT applies the GT predicate on the "canonical_url" field.
func CanonicalURLGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldCanonicalURL, v))
}

// CanonicalURLGTE applies the GTE predicate on the "canonical_url" field.
func CanonicalURLGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldCanonicalURL, v))
}

// CanonicalURLLT applies the LT predicate on the "canonical_url" field.
func CanonicalURLLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldCanonicalURL, v))
}

// CanonicalURLLTE applies the LTE predicate on the "canonical_url" field.
func CanonicalURLLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldCanonicalURL, v))
}

// CanonicalURLContains applies the Contains predicate on the "canonical_url" field.
func CanonicalURLContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldCanonicalURL, v))
}

// CanonicalURLHasPrefix applies the HasPrefix predicate on the "canonical_url" field.
func CanonicalURLHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldCanonicalURL, v))
}

// CanonicalURLHasSuffix applies the HasSuffix predicate on the "canonical_url" field.
func CanonicalURLHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldCanonicalURL, v))
}

// CanonicalURLIsNil applies the IsNil predicate on the "canonical_url" field.
func CanonicalURLIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldCanonicalURL))
}

// CanonicalURLNotNil applies the NotNil predicate on the "canonical_url" field.
func CanonicalURLNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldCanonicalURL))
}

// CanonicalURLEqualFold applies the EqualFold predicate on the "canonical_url" field.
func CanonicalURLEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldCanonicalURL, v))
}

// CanonicalURLContainsFold applies the ContainsFold predicate on the "canonical_url" field.
func CanonicalURLContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldCanonicalURL, v))
}

// ExpectedSegmentCountEQ applies the EQ predicate on the "expected_segment_count" field.
func ExpectedSegmentCountEQ(v int) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountNEQ applies the NEQ predicate on the "expected_segment_count" field.
func ExpectedSegmentCountNEQ(v int) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountIn applies the In predicate on the "expected_segment_count" field.
func ExpectedSegmentCountIn(vs ...int) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldExpectedSegmentCount, vs...))
}

// ExpectedSegmentCountNotIn applies the NotIn predicate on the "expected_segment_count" field.
func ExpectedSegmentCountNotIn(vs ...int) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldExpectedSegmentCount, vs...))
}

// ExpectedSegmentCountGT applies the GT predicate on the "expected_segment_count" field.
func ExpectedSegmentCountGT(v int) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountGTE applies the GTE predicate on the "expected_segment_count" field.
func ExpectedSegmentCountGTE(v int) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountLT applies the LT predicate on the "expected_segment_count" field.
func ExpectedSegmentCountLT(v int) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountLTE applies the LTE predicate on the "expected_segment_count" field.
func ExpectedSegmentCountLTE(v int) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldExpectedSegmentCount, v))
}

// ExpectedSegmentCountIsNil applies the IsNil predicate on the "expected_segment_count" field.
func ExpectedSegmentCountIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldExpectedSegmentCount))
}

// ExpectedSegmentCountNotNil applies the NotNil predicate on the "expected_segment_count" field.
func ExpectedSegmentCountNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldExpectedSegmentCount))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldState, vs...))
}

// CombinedAnalysisIsNil applies the IsNil predicate on the "combined_analysis" field.
func CombinedAnalysisIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldCombinedAnalysis))
}

// CombinedAnalysisNotNil applies the NotNil predicate on the "combined_analysis" field.
func CombinedAnalysisNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldCombinedAnalysis))
}

// ModelsUsedIsNil applies the IsNil predicate on the "models_used" field.
func ModelsUsedIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldModelsUsed))
}

// ModelsUsedNotNil applies the NotNil predicate on the "models_used" field.
func ModelsUsedNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldModelsUsed))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldPromptVersion, v))
}

// CombinedAtEQ applies the EQ predicate on the "combined_at" field.
func CombinedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCombinedAt, v))
}

// CombinedAtNEQ applies the NEQ predicate on the "combined_at" field.
func CombinedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldCombinedAt, v))
}

// CombinedAtIn applies the In predicate on the "combined_at" field.
func CombinedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldCombinedAt, vs...))
}

// CombinedAtNotIn applies the NotIn predicate on the "combined_at" field.
func CombinedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldCombinedAt, vs...))
}

// CombinedAtGT applies the GT predicate on the "combined_at" field.
func CombinedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldCombinedAt, v))
}

// CombinedAtGTE applies the GTE predicate on the "combined_at" field.
func CombinedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldCombinedAt, v))
}

// CombinedAtLT applies the LT predicate on the "combined_at" field.
func CombinedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldCombinedAt, v))
}

// CombinedAtLTE applies the LTE predicate on the "combined_at" field.
func CombinedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldCombinedAt, v))
}

// CombinedAtIsNil applies the IsNil predicate on the "combined_at" field.
func CombinedAtIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldCombinedAt))
}

// CombinedAtNotNil applies the NotNil predicate on the "combined_at" field.
func CombinedAtNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldCombinedAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldLastError, v))
}

// StatisticsIsNil applies the IsNil predicate on the "statistics" field.
func StatisticsIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldStatistics))
}

// StatisticsNotNil applies the NotNil predicate on the "statistics" field.
func StatisticsNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldStatistics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasChannel applies the HasEdge predicate on the "channel" edge.
func HasChannel() predicate.Content {
	return predicate.Content(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChannelTable, ChannelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChannelWith applies the HasEdge predicate on the "channel" edge with a given conditions (other predicates).
func HasChannelWith(preds ...predicate.Channel) predicate.Content {
	return predicate.Content(func(s *sql.Selector) {
		step := newChannelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Content {
	return predicate.Content(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.Segment) predicate.Content {
	return predicate.Content(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Content) predicate.Content {
	return predicate.Content(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Content) predicate.Content {
	return predicate.Content(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Content) predicate.Content {
	return predicate.Content(sql.NotPredicates(p))
}
