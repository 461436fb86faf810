// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
)

// InteractionEvent is the model entity for the InteractionEvent schema.
type InteractionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Input holds the value of the "input" field.
	Input string `json:"input,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent string `json:"agent,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// UsedFallback holds the value of the "used_fallback" field.
	UsedFallback bool `json:"used_fallback,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldSuccess, interactionevent.FieldUsedFallback:
			values[i] = new(sql.NullBool)
		case interactionevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case interactionevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case interactionevent.FieldUserID, interactionevent.FieldInput, interactionevent.FieldAgent, interactionevent.FieldError:
			values[i] = new(sql.NullString)
		case interactionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case interactionevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionEvent fields.
func (_m *InteractionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case interactionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interactionevent.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = value.String
			}
		case interactionevent.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case interactionevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case interactionevent.FieldUsedFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field used_fallback", values[i])
			} else if value.Valid {
				_m.UsedFallback = value.Bool
			}
		case interactionevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case interactionevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case interactionevent.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case interactionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InteractionEvent.
// Note that you need to call InteractionEvent.Unwrap() before calling this method if this InteractionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionEvent) Update() *InteractionEventUpdateOne {
	return NewInteractionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionEvent) Unwrap() *InteractionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(_m.Input)
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("used_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedFallback))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionEvents is a parsable slice of InteractionEvent.
type InteractionEvents []*InteractionEvent
