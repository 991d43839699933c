// Code generated by ent, DO NOT EDIT.

package segment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the segment type in the database.
	Label = "segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "segment_id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldIndex holds the string denoting the index field in the database.
	FieldIndex = "index"
	// FieldStartSec holds the string denoting the start_sec field in the database.
	FieldStartSec = "start_sec"
	// FieldEndSec holds the string denoting the end_sec field in the database.
	FieldEndSec = "end_sec"
	// FieldDurationSec holds the string denoting the duration_sec field in the database.
	FieldDurationSec = "duration_sec"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAnalysisResult holds the string denoting the analysis_result field in the database.
	FieldAnalysisResult = "analysis_result"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldProcessingMs holds the string denoting the processing_ms field in the database.
	FieldProcessingMs = "processing_ms"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeContent holds the string denoting the content edge name in mutations.
	EdgeContent = "content"
	// ContentFieldID holds the string denoting the ID field of the Content.
	ContentFieldID = "content_id"
	// Table holds the table name of the segment in the database.
	Table = "segments"
	// ContentTable is the table that holds the content relation/edge.
	ContentTable = "segments"
	// ContentInverseTable is the table name for the Content entity.
	// It exists in this package in order to avoid circular dependency with the "content" package.
	ContentInverseTable = "contents"
	// ContentColumn is the table column denoting the content relation/edge.
	ContentColumn = "content_id"
)

// Columns holds all SQL columns for segment fields.
var Columns = []string{
	FieldID,
	FieldContentID,
	FieldIndex,
	FieldStartSec,
	FieldEndSec,
	FieldDurationSec,
	FieldState,
	FieldAnalysisResult,
	FieldModelUsed,
	FieldProcessingMs,
	FieldError,
	FieldRetryCount,
	FieldPromptVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StatePending is the default value of the State enum.
const DefaultState = StatePending

// State values.
const (
	StatePending    State = "pending"
	StateProcessing State = "processing"
	StateAnalyzed   State = "analyzed"
	StateFailed     State = "failed"
	StateOverloaded State = "overloaded"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateProcessing, StateAnalyzed, StateFailed, StateOverloaded:
		return nil
	default:
		return fmt.Errorf("segment: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Segment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByIndex orders the results by the index field.
func ByIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndex, opts...).ToFunc()
}

// ByStartSec orders the results by the start_sec field.
func ByStartSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartSec, opts...).ToFunc()
}

// ByEndSec orders the results by the end_sec field.
func ByEndSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndSec, opts...).ToFunc()
}

// ByDurationSec orders the results by the duration_sec field.
func ByDurationSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSec, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByProcessingMs orders the results by the processing_ms field.
func ByProcessingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMs, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByContentField orders the results by content field.
func ByContentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentStep(), sql.OrderByField(field, opts...))
	}
}
func newContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentInverseTable, ContentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
	)
}
