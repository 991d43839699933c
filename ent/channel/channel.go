// Code generated by ent, DO NOT EDIT.

package channel

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the channel type in the database.
	Label = "channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "channel_id"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldUploadCollectionID holds the string denoting the upload_collection_id field in the database.
	FieldUploadCollectionID = "upload_collection_id"
	// FieldCronPattern holds the string denoting the cron_pattern field in the database.
	FieldCronPattern = "cron_pattern"
	// FieldFetchLastN holds the string denoting the fetch_last_n field in the database.
	FieldFetchLastN = "fetch_last_n"
	// FieldAuthorContext holds the string denoting the author_context field in the database.
	FieldAuthorContext = "author_context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeContents holds the string denoting the contents edge name in mutations.
	EdgeContents = "contents"
	// ContentFieldID holds the string denoting the ID field of the Content.
	ContentFieldID = "content_id"
	// Table holds the table name of the channel in the database.
	Table = "channels"
	// ContentsTable is the table that holds the contents relation/edge.
	ContentsTable = "contents"
	// ContentsInverseTable is the table name for the Content entity.
	// It exists in this package in order to avoid circular dependency with the "content" package.
	ContentsInverseTable = "contents"
	// ContentsColumn is the table column denoting the contents relation/edge.
	ContentsColumn = "channel_id"
)

// Columns holds all SQL columns for channel fields.
var Columns = []string{
	FieldID,
	FieldSourceType,
	FieldExternalID,
	FieldDisplayName,
	FieldUploadCollectionID,
	FieldCronPattern,
	FieldFetchLastN,
	FieldAuthorContext,
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
	// DefaultCronPattern holds the default value on creation for the "cron_pattern" field.
	DefaultCronPattern string
	// DefaultFetchLastN holds the default value on creation for the "fetch_last_n" field.
	DefaultFetchLastN int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeYoutube is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeYoutube

// SourceType values.
const (
	SourceTypeYoutube  SourceType = "youtube"
	SourceTypeTelegram SourceType = "telegram"
	SourceTypeTiktok   SourceType = "tiktok"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeYoutube, SourceTypeTelegram, SourceTypeTiktok:
		return nil
	default:
		return fmt.Errorf("channel: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Channel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByUploadCollectionID orders the results by the upload_collection_id field.
func ByUploadCollectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadCollectionID, opts...).ToFunc()
}

// ByCronPattern orders the results by the cron_pattern field.
func ByCronPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronPattern, opts...).ToFunc()
}

// ByFetchLastN orders the results by the fetch_last_n field.
func ByFetchLastN(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchLastN, opts...).ToFunc()
}

// ByAuthorContext orders the results by the author_context field.
func ByAuthorContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorContext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByContentsCount orders the results by contents count.
func ByContentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContentsStep(), opts...)
	}
}

// ByContents orders the results by contents terms.
func ByContents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newContentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentsInverseTable, ContentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContentsTable, ContentsColumn),
	)
}
