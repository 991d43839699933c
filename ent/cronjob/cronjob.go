// Code generated by ent, DO NOT EDIT.

package cronjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cronjob type in the database.
	Label = "cron_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cron_job_id"
	// FieldStableID holds the string denoting the stable_id field in the database.
	FieldStableID = "stable_id"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCronPattern holds the string denoting the cron_pattern field in the database.
	FieldCronPattern = "cron_pattern"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastEnqueuedAt holds the string denoting the last_enqueued_at field in the database.
	FieldLastEnqueuedAt = "last_enqueued_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the cronjob in the database.
	Table = "cron_jobs"
)

// Columns holds all SQL columns for cronjob fields.
var Columns = []string{
	FieldID,
	FieldStableID,
	FieldQueue,
	FieldName,
	FieldPayload,
	FieldCronPattern,
	FieldNextRunAt,
	FieldLastEnqueuedAt,
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

// OrderOption defines the ordering options for the CronJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStableID orders the results by the stable_id field.
func ByStableID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStableID, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCronPattern orders the results by the cron_pattern field.
func ByCronPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronPattern, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastEnqueuedAt orders the results by the last_enqueued_at field.
func ByLastEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEnqueuedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
