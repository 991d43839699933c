// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/cronjob"
)

// CronJob is the model entity for the CronJob schema.
type CronJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// External identity, e.g. 'discover:{channelId}'; upserts reconcile on it
	StableID string `json:"stable_id,omitempty"`
	// Queue holds the value of the "queue" field.
	Queue string `json:"queue,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CronPattern holds the value of the "cron_pattern" field.
	CronPattern string `json:"cron_pattern,omitempty"`
	// NextRunAt holds the value of the "next_run_at" field.
	NextRunAt time.Time `json:"next_run_at,omitempty"`
	// LastEnqueuedAt holds the value of the "last_enqueued_at" field.
	LastEnqueuedAt *time.Time `json:"last_enqueued_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CronJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cronjob.FieldPayload:
			values[i] = new([]byte)
		case cronjob.FieldID, cronjob.FieldStableID, cronjob.FieldQueue, cronjob.FieldName, cronjob.FieldCronPattern:
			values[i] = new(sql.NullString)
		case cronjob.FieldNextRunAt, cronjob.FieldLastEnqueuedAt, cronjob.FieldCreatedAt, cronjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CronJob fields.
func (_m *CronJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cronjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cronjob.FieldStableID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stable_id", values[i])
			} else if value.Valid {
				_m.StableID = value.String
			}
		case cronjob.FieldQueue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue", values[i])
			} else if value.Valid {
				_m.Queue = value.String
			}
		case cronjob.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case cronjob.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case cronjob.FieldCronPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_pattern", values[i])
			} else if value.Valid {
				_m.CronPattern = value.String
			}
		case cronjob.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = value.Time
			}
		case cronjob.FieldLastEnqueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_enqueued_at", values[i])
			} else if value.Valid {
				_m.LastEnqueuedAt = new(time.Time)
				*_m.LastEnqueuedAt = value.Time
			}
		case cronjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cronjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CronJob.
// This includes values selected through modifiers, order, etc.
func (_m *CronJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CronJob.
// Note that you need to call CronJob.Unwrap() before calling this method if this CronJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CronJob) Update() *CronJobUpdateOne {
	return NewCronJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CronJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CronJob) Unwrap() *CronJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CronJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CronJob) String() string {
	var builder strings.Builder
	builder.WriteString("CronJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stable_id=")
	builder.WriteString(_m.StableID)
	builder.WriteString(", ")
	builder.WriteString("queue=")
	builder.WriteString(_m.Queue)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("cron_pattern=")
	builder.WriteString(_m.CronPattern)
	builder.WriteString(", ")
	builder.WriteString("next_run_at=")
	builder.WriteString(_m.NextRunAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastEnqueuedAt; v != nil {
		builder.WriteString("last_enqueued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CronJobs is a parsable slice of CronJob.
type CronJobs []*CronJob
