// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/quotaviolation"
)

// QuotaViolation is the model entity for the QuotaViolation schema.
type QuotaViolation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind quotaviolation.Kind `json:"kind,omitempty"`
	// Provider-supplied retry-info, when present
	RetryDelaySec *int `json:"retry_delay_sec,omitempty"`
	// RawPayload holds the value of the "raw_payload" field.
	RawPayload string `json:"raw_payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaViolation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotaviolation.FieldRetryDelaySec:
			values[i] = new(sql.NullInt64)
		case quotaviolation.FieldID, quotaviolation.FieldModel, quotaviolation.FieldKind, quotaviolation.FieldRawPayload:
			values[i] = new(sql.NullString)
		case quotaviolation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaViolation fields.
func (_m *QuotaViolation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotaviolation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case quotaviolation.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case quotaviolation.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = quotaviolation.Kind(value.String)
			}
		case quotaviolation.FieldRetryDelaySec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_delay_sec", values[i])
			} else if value.Valid {
				_m.RetryDelaySec = new(int)
				*_m.RetryDelaySec = int(value.Int64)
			}
		case quotaviolation.FieldRawPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value.Valid {
				_m.RawPayload = value.String
			}
		case quotaviolation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaViolation.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaViolation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaViolation.
// Note that you need to call QuotaViolation.Unwrap() before calling this method if this QuotaViolation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaViolation) Update() *QuotaViolationUpdateOne {
	return NewQuotaViolationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaViolation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaViolation) Unwrap() *QuotaViolation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaViolation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaViolation) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaViolation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.RetryDelaySec; v != nil {
		builder.WriteString("retry_delay_sec=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(_m.RawPayload)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaViolations is a parsable slice of QuotaViolation.
type QuotaViolations []*QuotaViolation
