// Code generated by ent, DO NOT EDIT.

package content

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the content type in the database.
	Label = "content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldExternalVideoID holds the string denoting the external_video_id field in the database.
	FieldExternalVideoID = "external_video_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldDurationSec holds the string denoting the duration_sec field in the database.
	FieldDurationSec = "duration_sec"
	// FieldViewCount holds the string denoting the view_count field in the database.
	FieldViewCount = "view_count"
	// FieldThumbnail holds the string denoting the thumbnail field in the database.
	FieldThumbnail = "thumbnail"
	// FieldCanonicalURL holds the string denoting the canonical_url field in the database.
	FieldCanonicalURL = "canonical_url"
	// FieldExpectedSegmentCount holds the string denoting the expected_segment_count field in the database.
	FieldExpectedSegmentCount = "expected_segment_count"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCombinedAnalysis holds the string denoting the combined_analysis field in the database.
	FieldCombinedAnalysis = "combined_analysis"
	// FieldModelsUsed holds the string denoting the models_used field in the database.
	FieldModelsUsed = "models_used"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldCombinedAt holds the string denoting the combined_at field in the database.
	FieldCombinedAt = "combined_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldStatistics holds the string denoting the statistics field in the database.
	FieldStatistics = "statistics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeChannel holds the string denoting the channel edge name in mutations.
	EdgeChannel = "channel"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// ChannelFieldID holds the string denoting the ID field of the Channel.
	ChannelFieldID = "channel_id"
	// SegmentFieldID holds the string denoting the ID field of the Segment.
	SegmentFieldID = "segment_id"
	// Table holds the table name of the content in the database.
	Table = "contents"
	// ChannelTable is the table that holds the channel relation/edge.
	ChannelTable = "contents"
	// ChannelInverseTable is the table name for the Channel entity.
	// It exists in this package in order to avoid circular dependency with the "channel" package.
	ChannelInverseTable = "channels"
	// ChannelColumn is the table column denoting the channel relation/edge.
	ChannelColumn = "channel_id"
	// SegmentsTable is the table that holds the segments relation/edge.
	SegmentsTable = "segments"
	// SegmentsInverseTable is the table name for the Segment entity.
	// It exists in this package in order to avoid circular dependency with the "segment" package.
	SegmentsInverseTable = "segments"
	// SegmentsColumn is the table column denoting the segments relation/edge.
	SegmentsColumn = "content_id"
)

// Columns holds all SQL columns for content fields.
var Columns = []string{
	FieldID,
	FieldChannelID,
	FieldExternalVideoID,
	FieldTitle,
	FieldDescription,
	FieldPublishedAt,
	FieldDurationSec,
	FieldViewCount,
	FieldThumbnail,
	FieldCanonicalURL,
	FieldExpectedSegmentCount,
	FieldState,
	FieldCombinedAnalysis,
	FieldModelsUsed,
	FieldPromptVersion,
	FieldCombinedAt,
	FieldLastError,
	FieldStatistics,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateDiscovered is the default value of the State enum.
const DefaultState = StateDiscovered

// State values.
const (
	StateDiscovered    State = "discovered"
	StateMetadataReady State = "metadata_ready"
	StateProcessing    State = "processing"
	StateAnalyzed      State = "analyzed"
	StateFailed        State = "failed"
	StateRetryPending  State = "retry_pending"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDiscovered, StateMetadataReady, StateProcessing, StateAnalyzed, StateFailed, StateRetryPending:
		return nil
	default:
		return fmt.Errorf("content: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Content queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByExternalVideoID orders the results by the external_video_id field.
func ByExternalVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalVideoID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByDurationSec orders the results by the duration_sec field.
func ByDurationSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSec, opts...).ToFunc()
}

// ByViewCount orders the results by the view_count field.
func ByViewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewCount, opts...).ToFunc()
}

// ByThumbnail orders the results by the thumbnail field.
func ByThumbnail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnail, opts...).ToFunc()
}

// ByCanonicalURL orders the results by the canonical_url field.
func ByCanonicalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalURL, opts...).ToFunc()
}

// ByExpectedSegmentCount orders the results by the expected_segment_count field.
func ByExpectedSegmentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedSegmentCount, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByCombinedAt orders the results by the combined_at field.
func ByCombinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombinedAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByChannelField orders the results by channel field.
func ByChannelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChannelStep(), sql.OrderByField(field, opts...))
	}
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChannelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChannelInverseTable, ChannelFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChannelTable, ChannelColumn),
	)
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, SegmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
	)
}
