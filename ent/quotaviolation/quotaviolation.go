// Code generated by ent, DO NOT EDIT.

package quotaviolation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quotaviolation type in the database.
	Label = "quota_violation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "quota_violation_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldRetryDelaySec holds the string denoting the retry_delay_sec field in the database.
	FieldRetryDelaySec = "retry_delay_sec"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the quotaviolation in the database.
	Table = "quota_violations"
)

// Columns holds all SQL columns for quotaviolation fields.
var Columns = []string{
	FieldID,
	FieldModel,
	FieldKind,
	FieldRetryDelaySec,
	FieldRawPayload,
	FieldCreatedAt,
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
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindRpm     Kind = "rpm"
	KindTpm     Kind = "tpm"
	KindRpd     Kind = "rpd"
	KindUnknown Kind = "unknown"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindRpm, KindTpm, KindRpd, KindUnknown:
		return nil
	default:
		return fmt.Errorf("quotaviolation: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the QuotaViolation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByRetryDelaySec orders the results by the retry_delay_sec field.
func ByRetryDelaySec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryDelaySec, opts...).ToFunc()
}

// ByRawPayload orders the results by the raw_payload field.
func ByRawPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPayload, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
