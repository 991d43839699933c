// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/quotausage"
)

// QuotaUsage is the model entity for the QuotaUsage schema.
type QuotaUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Window holds the value of the "window" field.
	Window quotausage.Window `json:"window,omitempty"`
	// unix/60 for minute windows, unix/86400 for day windows
	Epoch int64 `json:"epoch,omitempty"`
	// Requests holds the value of the "requests" field.
	Requests int64 `json:"requests,omitempty"`
	// Tokens holds the value of the "tokens" field.
	Tokens int64 `json:"tokens,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotausage.FieldEpoch, quotausage.FieldRequests, quotausage.FieldTokens:
			values[i] = new(sql.NullInt64)
		case quotausage.FieldID, quotausage.FieldModel, quotausage.FieldWindow:
			values[i] = new(sql.NullString)
		case quotausage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaUsage fields.
func (_m *QuotaUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotausage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case quotausage.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case quotausage.FieldWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value.Valid {
				_m.Window = quotausage.Window(value.String)
			}
		case quotausage.FieldEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field epoch", values[i])
			} else if value.Valid {
				_m.Epoch = value.Int64
			}
		case quotausage.FieldRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requests", values[i])
			} else if value.Valid {
				_m.Requests = value.Int64
			}
		case quotausage.FieldTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = value.Int64
			}
		case quotausage.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaUsage.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaUsage.
// Note that you need to call QuotaUsage.Unwrap() before calling this method if this QuotaUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaUsage) Update() *QuotaUsageUpdateOne {
	return NewQuotaUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaUsage) Unwrap() *QuotaUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaUsage) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(fmt.Sprintf("%v", _m.Window))
	builder.WriteString(", ")
	builder.WriteString("epoch=")
	builder.WriteString(fmt.Sprintf("%v", _m.Epoch))
	builder.WriteString(", ")
	builder.WriteString("requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requests))
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaUsages is a parsable slice of QuotaUsage.
type QuotaUsages []*QuotaUsage
