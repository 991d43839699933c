// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/segment"
)

// Segment is the model entity for the Segment schema.
type Segment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID string `json:"content_id,omitempty"`
	// Position within the video; combination order is by index, not completion
	Index int `json:"index,omitempty"`
	// StartSec holds the value of the "start_sec" field.
	StartSec int `json:"start_sec,omitempty"`
	// EndSec holds the value of the "end_sec" field.
	EndSec int `json:"end_sec,omitempty"`
	// DurationSec holds the value of the "duration_sec" field.
	DurationSec int `json:"duration_sec,omitempty"`
	// State holds the value of the "state" field.
	State segment.State `json:"state,omitempty"`
	// AnalysisResult holds the value of the "analysis_result" field.
	AnalysisResult map[string]interface{} `json:"analysis_result,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed *string `json:"model_used,omitempty"`
	// ProcessingMs holds the value of the "processing_ms" field.
	ProcessingMs *int64 `json:"processing_ms,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion *string `json:"prompt_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SegmentQuery when eager-loading is set.
	Edges        SegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SegmentEdges holds the relations/edges for other nodes in the graph.
type SegmentEdges struct {
	// Content holds the value of the content edge.
	Content *Content `json:"content,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContentOrErr returns the Content value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SegmentEdges) ContentOrErr() (*Content, error) {
	if e.Content != nil {
		return e.Content, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: content.Label}
	}
	return nil, &NotLoadedError{edge: "content"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Segment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case segment.FieldAnalysisResult:
			values[i] = new([]byte)
		case segment.FieldIndex, segment.FieldStartSec, segment.FieldEndSec, segment.FieldDurationSec, segment.FieldProcessingMs, segment.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case segment.FieldID, segment.FieldContentID, segment.FieldState, segment.FieldModelUsed, segment.FieldError, segment.FieldPromptVersion:
			values[i] = new(sql.NullString)
		case segment.FieldCreatedAt, segment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Segment fields.
func (_m *Segment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case segment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case segment.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				_m.ContentID = value.String
			}
		case segment.FieldIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field index", values[i])
			} else if value.Valid {
				_m.Index = int(value.Int64)
			}
		case segment.FieldStartSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_sec", values[i])
			} else if value.Valid {
				_m.StartSec = int(value.Int64)
			}
		case segment.FieldEndSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_sec", values[i])
			} else if value.Valid {
				_m.EndSec = int(value.Int64)
			}
		case segment.FieldDurationSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_sec", values[i])
			} else if value.Valid {
				_m.DurationSec = int(value.Int64)
			}
		case segment.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = segment.State(value.String)
			}
		case segment.FieldAnalysisResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalysisResult); err != nil {
					return fmt.Errorf("unmarshal field analysis_result: %w", err)
				}
			}
		case segment.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = new(string)
				*_m.ModelUsed = value.String
			}
		case segment.FieldProcessingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_ms", values[i])
			} else if value.Valid {
				_m.ProcessingMs = new(int64)
				*_m.ProcessingMs = value.Int64
			}
		case segment.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case segment.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case segment.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = new(string)
				*_m.PromptVersion = value.String
			}
		case segment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case segment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Segment.
// This includes values selected through modifiers, order, etc.
func (_m *Segment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContent queries the "content" edge of the Segment entity.
func (_m *Segment) QueryContent() *ContentQuery {
	return NewSegmentClient(_m.config).QueryContent(_m)
}

// Update returns a builder for updating this Segment.
// Note that you need to call Segment.Unwrap() before calling this method if this Segment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Segment) Update() *SegmentUpdateOne {
	return NewSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Segment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Segment) Unwrap() *Segment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Segment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Segment) String() string {
	var builder strings.Builder
	builder.WriteString("Segment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_id=")
	builder.WriteString(_m.ContentID)
	builder.WriteString(", ")
	builder.WriteString("index=")
	builder.WriteString(fmt.Sprintf("%v", _m.Index))
	builder.WriteString(", ")
	builder.WriteString("start_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartSec))
	builder.WriteString(", ")
	builder.WriteString("end_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSec))
	builder.WriteString(", ")
	builder.WriteString("duration_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSec))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("analysis_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisResult))
	builder.WriteString(", ")
	if v := _m.ModelUsed; v != nil {
		builder.WriteString("model_used=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessingMs; v != nil {
		builder.WriteString("processing_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.PromptVersion; v != nil {
		builder.WriteString("prompt_version=")
		builder.WriteString(*v)
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

// Segments is a parsable slice of Segment.
type Segments []*Segment
