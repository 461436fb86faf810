// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
)

// IngestionJob is the model entity for the IngestionJob schema.
type IngestionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// InputText holds the value of the "input_text" field.
	InputText *string `json:"input_text,omitempty"`
	// UploadID holds the value of the "upload_id" field.
	UploadID *uuid.UUID `json:"upload_id,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// AgentResponse holds the value of the "agent_response" field.
	AgentResponse *string `json:"agent_response,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary *string `json:"result_summary,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestionjob.FieldUploadID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case ingestionjob.FieldMetadata:
			values[i] = new([]byte)
		case ingestionjob.FieldUserID, ingestionjob.FieldInputText, ingestionjob.FieldStatus, ingestionjob.FieldAgentResponse, ingestionjob.FieldResultSummary, ingestionjob.FieldLastError:
			values[i] = new(sql.NullString)
		case ingestionjob.FieldCreatedAt, ingestionjob.FieldFinishedAt, ingestionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case ingestionjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestionJob fields.
func (_m *IngestionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ingestionjob.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case ingestionjob.FieldInputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value.Valid {
				_m.InputText = new(string)
				*_m.InputText = value.String
			}
		case ingestionjob.FieldUploadID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field upload_id", values[i])
			} else if value.Valid {
				_m.UploadID = new(uuid.UUID)
				*_m.UploadID = *value.S.(*uuid.UUID)
			}
		case ingestionjob.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case ingestionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ingestionjob.FieldAgentResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_response", values[i])
			} else if value.Valid {
				_m.AgentResponse = new(string)
				*_m.AgentResponse = value.String
			}
		case ingestionjob.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case ingestionjob.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case ingestionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ingestionjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case ingestionjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IngestionJob.
// This includes values selected through modifiers, order, etc.
func (_m *IngestionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestionJob.
// Note that you need to call IngestionJob.Unwrap() before calling this method if this IngestionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestionJob) Update() *IngestionJobUpdateOne {
	return NewIngestionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestionJob) Unwrap() *IngestionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestionJob) String() string {
	var builder strings.Builder
	builder.WriteString("IngestionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.InputText; v != nil {
		builder.WriteString("input_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UploadID; v != nil {
		builder.WriteString("upload_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.AgentResponse; v != nil {
		builder.WriteString("agent_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IngestionJobs is a parsable slice of IngestionJob.
type IngestionJobs []*IngestionJob
