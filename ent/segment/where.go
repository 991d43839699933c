// Code generated by ent, DO NOT EDIT.

package segment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vidsage/vidsage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldID, id))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldContentID, v))
}

// Index applies equality check predicate on the "index" field. It's identical to IndexEQ.
func Index(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldIndex, v))
}

// StartSec applies equality check predicate on the "start_sec" field. It's identical to StartSecEQ.
func StartSec(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldStartSec, v))
}

// EndSec applies equality check predicate on the "end_sec" field. It's identical to EndSecEQ.
func EndSec(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldEndSec, v))
}

// DurationSec applies equality check predicate on the "duration_sec" field. It's identical to DurationSecEQ.
func DurationSec(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldDurationSec, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldModelUsed, v))
}

// ProcessingMs applies equality check predicate on the "processing_ms" field. It's identical to ProcessingMsEQ.
func ProcessingMs(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldProcessingMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldError, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldRetryCount, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldContentID, v))
}

// IndexEQ applies the EQ predicate on the "index" field.
func IndexEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldIndex, v))
}

// IndexNEQ applies the NEQ predicate on the "index" field.
func IndexNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldIndex, v))
}

// IndexIn applies the In predicate on the "index" field.
func IndexIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldIndex, vs...))
}

// IndexNotIn applies the NotIn predicate on the "index" field.
func IndexNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldIndex, vs...))
}

// IndexGT applies the GT predicate on the "index" field.
func IndexGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldIndex, v))
}

// IndexGTE applies the GTE predicate on the "index" field.
func IndexGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldIndex, v))
}

// IndexLT applies the LT predicate on the "index" field.
func IndexLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldIndex, v))
}

// IndexLTE applies the LTE predicate on the "index" field.
func IndexLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldIndex, v))
}

// StartSecEQ applies the EQ predicate on the "start_sec" field.
func StartSecEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldStartSec, v))
}

// StartSecNEQ applies the NEQ predicate on the "start_sec" field.
func StartSecNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldStartSec, v))
}

// StartSecIn applies the In predicate on the "start_sec" field.
func StartSecIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldStartSec, vs...))
}

// StartSecNotIn applies the NotIn predicate on the "start_sec" field.
func StartSecNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldStartSec, vs...))
}

// StartSecGT applies the GT predicate on the "start_sec" field.
func StartSecGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldStartSec, v))
}

// StartSecGTE applies the GTE predicate on the "start_sec" field.
func StartSecGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldStartSec, v))
}

// StartSecLT applies the LT predicate on the "start_sec" field.
func StartSecLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldStartSec, v))
}

// StartSecLTE applies the LTE predicate on the "start_sec" field.
func StartSecLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldStartSec, v))
}

// EndSecEQ applies the EQ predicate on the "end_sec" field.
func EndSecEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldEndSec, v))
}

// EndSecNEQ applies the NEQ predicate on the "end_sec" field.
func EndSecNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldEndSec, v))
}

// EndSecIn applies the In predicate on the "end_sec" field.
func EndSecIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldEndSec, vs...))
}

// EndSecNotIn applies the NotIn predicate on the "end_sec" field.
func EndSecNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldEndSec, vs...))
}

// EndSecGT applies the GT predicate on the "end_sec" field.
func EndSecGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldEndSec, v))
}

// EndSecGTE applies the GTE predicate on the "end_sec" field.
func EndSecGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldEndSec, v))
}

// EndSecLT applies the LT predicate on the "end_sec" field.
func EndSecLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldEndSec, v))
}

// EndSecLTE applies the LTE predicate on the "end_sec" field.
func EndSecLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldEndSec, v))
}

// DurationSecEQ applies the EQ predicate on the "duration_sec" field.
func DurationSecEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldDurationSec, v))
}

// DurationSecNEQ applies the NEQ predicate on the "duration_sec" field.
func DurationSecNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldDurationSec, v))
}

// DurationSecIn applies the In predicate on the "duration_sec" field.
func DurationSecIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldDurationSec, vs...))
}

// DurationSecNotIn applies the NotIn predicate on the "duration_sec" field.
func DurationSecNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldDurationSec, vs...))
}

// DurationSecGT applies the GT predicate on the "duration_sec" field.
func DurationSecGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldDurationSec, v))
}

// DurationSecGTE applies the GTE predicate on the "duration_sec" field.
func DurationSecGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldDurationSec, v))
}

// DurationSecLT applies the LT predicate on the "duration_sec" field.
func DurationSecLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldDurationSec, v))
}

// DurationSecLTE applies the LTE predicate on the "duration_sec" field.
func DurationSecLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldDurationSec, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldState, vs...))
}

// AnalysisResultIsNil applies the IsNil predicate on the "analysis_result" field.
func AnalysisResultIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldAnalysisResult))
}

// AnalysisResultNotNil applies the NotNil predicate on the "analysis_result" field.
func AnalysisResultNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldAnalysisResult))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldModelUsed, v))
}

// ProcessingMsEQ applies the EQ predicate on the "processing_ms" field.
func ProcessingMsEQ(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldProcessingMs, v))
}

// ProcessingMsNEQ applies the NEQ predicate on the "processing_ms" field.
func ProcessingMsNEQ(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldProcessingMs, v))
}

// ProcessingMsIn applies the In predicate on the "processing_ms" field.
func ProcessingMsIn(vs ...int64) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldProcessingMs, vs...))
}

// ProcessingMsNotIn applies the NotIn predicate on the "processing_ms" field.
func ProcessingMsNotIn(vs ...int64) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldProcessingMs, vs...))
}

// ProcessingMsGT applies the GT predicate on the "processing_ms" field.
func ProcessingMsGT(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldProcessingMs, v))
}

// ProcessingMsGTE applies the GTE predicate on the "processing_ms" field.
func ProcessingMsGTE(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldProcessingMs, v))
}

// ProcessingMsLT applies the LT predicate on the "processing_ms" field.
func ProcessingMsLT(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldProcessingMs, v))
}

// ProcessingMsLTE applies the LTE predicate on the "processing_ms" field.
func ProcessingMsLTE(v int64) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldProcessingMs, v))
}

// ProcessingMsIsNil applies the IsNil predicate on the "processing_ms" field.
func ProcessingMsIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldProcessingMs))
}

// ProcessingMsNotNil applies the NotNil predicate on the "processing_ms" field.
func ProcessingMsNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldProcessingMs))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldError, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldRetryCount, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldPromptVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContent applies the HasEdge predicate on the "content" edge.
func HasContent() predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentWith applies the HasEdge predicate on the "content" edge with a given conditions (other predicates).
func HasContentWith(preds ...predicate.Content) predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := newContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.NotPredicates(p))
}
