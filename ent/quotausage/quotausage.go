// Code generated by ent, DO NOT EDIT.

package quotausage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quotausage type in the database.
	Label = "quota_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "quota_usage_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldEpoch holds the string denoting the epoch field in the database.
	FieldEpoch = "epoch"
	// FieldRequests holds the string denoting the requests field in the database.
	FieldRequests = "requests"
	// FieldTokens holds the string denoting the tokens field in the database.
	FieldTokens = "tokens"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the quotausage in the database.
	Table = "quota_usages"
)

// Columns holds all SQL columns for quotausage fields.
var Columns = []string{
	FieldID,
	FieldModel,
	FieldWindow,
	FieldEpoch,
	FieldRequests,
	FieldTokens,
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
	// DefaultRequests holds the default value on creation for the "requests" field.
	DefaultRequests int64
	// DefaultTokens holds the default value on creation for the "tokens" field.
	DefaultTokens int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Window defines the type for the "window" enum field.
type Window string

// Window values.
const (
	WindowMinute Window = "minute"
	WindowDay    Window = "day"
)

func (w Window) String() string {
	return string(w)
}

// WindowValidator is a validator for the "window" field enum values. It is called by the builders before save.
func WindowValidator(w Window) error {
	switch w {
	case WindowMinute, WindowDay:
		return nil
	default:
		return fmt.Errorf("quotausage: invalid enum value for window field: %q", w)
	}
}

// OrderOption defines the ordering options for the QuotaUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByWindow orders the results by the window field.
func ByWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindow, opts...).ToFunc()
}

// ByEpoch orders the results by the epoch field.
func ByEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpoch, opts...).ToFunc()
}

// ByRequests orders the results by the requests field.
func ByRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequests, opts...).ToFunc()
}

// ByTokens orders the results by the tokens field.
func ByTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokens, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
