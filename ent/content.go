// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
)

// Content is the model entity for the Content schema.
type Content struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChannelID holds the value of the "channel_id" field.
	ChannelID string `json:"channel_id,omitempty"`
	// Provider-side video identifier; dedupes discovery
	ExternalVideoID string `json:"external_video_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Authoritative duration, set by the metadata stage
	DurationSec *int `json:"duration_sec,omitempty"`
	// ViewCount holds the value of the "view_count" field.
	ViewCount *int64 `json:"view_count,omitempty"`
	// Thumbnail holds the value of the "thumbnail" field.
	Thumbnail *string `json:"thumbnail,omitempty"`
	// CanonicalURL holds the value of the "canonical_url" field.
	CanonicalURL *string `json:"canonical_url,omitempty"`
	// Frozen once chunk planning commits the segment set
	ExpectedSegmentCount *int `json:"expected_segment_count,omitempty"`
	// State holds the value of the "state" field.
	State content.State `json:"state,omitempty"`
	// CombinedAnalysis holds the value of the "combined_analysis" field.
	CombinedAnalysis map[string]interface{} `json:"combined_analysis,omitempty"`
	// ModelsUsed holds the value of the "models_used" field.
	ModelsUsed []string `json:"models_used,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion *string `json:"prompt_version,omitempty"`
	// CombinedAt holds the value of the "combined_at" field.
	CombinedAt *time.Time `json:"combined_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// View-count time series appended by the stats stage
	Statistics []map[string]interface{} `json:"statistics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentQuery when eager-loading is set.
	Edges        ContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentEdges holds the relations/edges for other nodes in the graph.
type ContentEdges struct {
	// Channel holds the value of the channel edge.
	Channel *Channel `json:"channel,omitempty"`
	// Segments holds the value of the segments edge.
	Segments []*Segment `json:"segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChannelOrErr returns the Channel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentEdges) ChannelOrErr() (*Channel, error) {
	if e.Channel != nil {
		return e.Channel, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: channel.Label}
	}
	return nil, &NotLoadedError{edge: "channel"}
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e ContentEdges) SegmentsOrErr() ([]*Segment, error) {
	if e.loadedTypes[1] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Content) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case content.FieldCombinedAnalysis, content.FieldModelsUsed, content.FieldStatistics:
			values[i] = new([]byte)
		case content.FieldDurationSec, content.FieldViewCount, content.FieldExpectedSegmentCount:
			values[i] = new(sql.NullInt64)
		case content.FieldID, content.FieldChannelID, content.FieldExternalVideoID, content.FieldTitle, content.FieldDescription, content.FieldThumbnail, content.FieldCanonicalURL, content.FieldState, content.FieldPromptVersion, content.FieldLastError:
			values[i] = new(sql.NullString)
		case content.FieldPublishedAt, content.FieldCombinedAt, content.FieldCreatedAt, content.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Content fields.
func (_m *Content) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case content.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case content.FieldChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = value.String
			}
		case content.FieldExternalVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_video_id", values[i])
			} else if value.Valid {
				_m.ExternalVideoID = value.String
			}
		case content.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case content.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case content.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case content.FieldDurationSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_sec", values[i])
			} else if value.Valid {
				_m.DurationSec = new(int)
				*_m.DurationSec = int(value.Int64)
			}
		case content.FieldViewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field view_count", values[i])
			} else if value.Valid {
				_m.ViewCount = new(int64)
				*_m.ViewCount = value.Int64
			}
		case content.FieldThumbnail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail", values[i])
			} else if value.Valid {
				_m.Thumbnail = new(string)
				*_m.Thumbnail = value.String
			}
		case content.FieldCanonicalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_url", values[i])
			} else if value.Valid {
				_m.CanonicalURL = new(string)
				*_m.CanonicalURL = value.String
			}
		case content.FieldExpectedSegmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_segment_count", values[i])
			} else if value.Valid {
				_m.ExpectedSegmentCount = new(int)
				*_m.ExpectedSegmentCount = int(value.Int64)
			}
		case content.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = content.State(value.String)
			}
		case content.FieldCombinedAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field combined_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CombinedAnalysis); err != nil {
					return fmt.Errorf("unmarshal field combined_analysis: %w", err)
				}
			}
		case content.FieldModelsUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field models_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelsUsed); err != nil {
					return fmt.Errorf("unmarshal field models_used: %w", err)
				}
			}
		case content.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = new(string)
				*_m.PromptVersion = value.String
			}
		case content.FieldCombinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field combined_at", values[i])
			} else if value.Valid {
				_m.CombinedAt = new(time.Time)
				*_m.CombinedAt = value.Time
			}
		case content.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case content.FieldStatistics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field statistics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Statistics); err != nil {
					return fmt.Errorf("unmarshal field statistics: %w", err)
				}
			}
		case content.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case content.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Content.
// This includes values selected through modifiers, order, etc.
func (_m *Content) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChannel queries the "channel" edge of the Content entity.
func (_m *Content) QueryChannel() *ChannelQuery {
	return NewContentClient(_m.config).QueryChannel(_m)
}

// QuerySegments queries the "segments" edge of the Content entity.
func (_m *Content) QuerySegments() *SegmentQuery {
	return NewContentClient(_m.config).QuerySegments(_m)
}

// Update returns a builder for updating this Content.
// Note that you need to call Content.Unwrap() before calling this method if this Content
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Content) Update() *ContentUpdateOne {
	return NewContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Content entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Content) Unwrap() *Content {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Content is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Content) String() string {
	var builder strings.Builder
	builder.WriteString("Content(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("channel_id=")
	builder.WriteString(_m.ChannelID)
	builder.WriteString(", ")
	builder.WriteString("external_video_id=")
	builder.WriteString(_m.ExternalVideoID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSec; v != nil {
		builder.WriteString("duration_sec=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ViewCount; v != nil {
		builder.WriteString("view_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Thumbnail; v != nil {
		builder.WriteString("thumbnail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CanonicalURL; v != nil {
		builder.WriteString("canonical_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpectedSegmentCount; v != nil {
		builder.WriteString("expected_segment_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("combined_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.CombinedAnalysis))
	builder.WriteString(", ")
	builder.WriteString("models_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelsUsed))
	builder.WriteString(", ")
	if v := _m.PromptVersion; v != nil {
		builder.WriteString("prompt_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CombinedAt; v != nil {
		builder.WriteString("combined_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("statistics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Statistics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contents is a parsable slice of Content.
type Contents []*Content
