// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
)

// MetricsSnapshot is the model entity for the MetricsSnapshot schema.
type MetricsSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Total holds the value of the "total" field.
	Total int64 `json:"total,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int64 `json:"success_count,omitempty"`
	// FallbackCount holds the value of the "fallback_count" field.
	FallbackCount int64 `json:"fallback_count,omitempty"`
	// LatencySumMs holds the value of the "latency_sum_ms" field.
	LatencySumMs int64 `json:"latency_sum_ms,omitempty"`
	// ConfidenceSum holds the value of the "confidence_sum" field.
	ConfidenceSum float64 `json:"confidence_sum,omitempty"`
	// LatencyLt2s holds the value of the "latency_lt_2s" field.
	LatencyLt2s int64 `json:"latency_lt_2s,omitempty"`
	// Latency2s5s holds the value of the "latency_2s_5s" field.
	Latency2s5s int64 `json:"latency_2s_5s,omitempty"`
	// LatencyGt5s holds the value of the "latency_gt_5s" field.
	LatencyGt5s int64 `json:"latency_gt_5s,omitempty"`
	// ConfidenceLow holds the value of the "confidence_low" field.
	ConfidenceLow int64 `json:"confidence_low,omitempty"`
	// ConfidenceMedium holds the value of the "confidence_medium" field.
	ConfidenceMedium int64 `json:"confidence_medium,omitempty"`
	// ConfidenceHigh holds the value of the "confidence_high" field.
	ConfidenceHigh int64 `json:"confidence_high,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricsSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricssnapshot.FieldConfidenceSum:
			values[i] = new(sql.NullFloat64)
		case metricssnapshot.FieldTotal, metricssnapshot.FieldSuccessCount, metricssnapshot.FieldFallbackCount, metricssnapshot.FieldLatencySumMs, metricssnapshot.FieldLatencyLt2s, metricssnapshot.FieldLatency2s5s, metricssnapshot.FieldLatencyGt5s, metricssnapshot.FieldConfidenceLow, metricssnapshot.FieldConfidenceMedium, metricssnapshot.FieldConfidenceHigh:
			values[i] = new(sql.NullInt64)
		case metricssnapshot.FieldKey:
			values[i] = new(sql.NullString)
		case metricssnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case metricssnapshot.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricsSnapshot fields.
func (_m *MetricsSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricssnapshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case metricssnapshot.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case metricssnapshot.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Int64
			}
		case metricssnapshot.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = value.Int64
			}
		case metricssnapshot.FieldFallbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_count", values[i])
			} else if value.Valid {
				_m.FallbackCount = value.Int64
			}
		case metricssnapshot.FieldLatencySumMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_sum_ms", values[i])
			} else if value.Valid {
				_m.LatencySumMs = value.Int64
			}
		case metricssnapshot.FieldConfidenceSum:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_sum", values[i])
			} else if value.Valid {
				_m.ConfidenceSum = value.Float64
			}
		case metricssnapshot.FieldLatencyLt2s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_lt_2s", values[i])
			} else if value.Valid {
				_m.LatencyLt2s = value.Int64
			}
		case metricssnapshot.FieldLatency2s5s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_2s_5s", values[i])
			} else if value.Valid {
				_m.Latency2s5s = value.Int64
			}
		case metricssnapshot.FieldLatencyGt5s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_gt_5s", values[i])
			} else if value.Valid {
				_m.LatencyGt5s = value.Int64
			}
		case metricssnapshot.FieldConfidenceLow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_low", values[i])
			} else if value.Valid {
				_m.ConfidenceLow = value.Int64
			}
		case metricssnapshot.FieldConfidenceMedium:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_medium", values[i])
			} else if value.Valid {
				_m.ConfidenceMedium = value.Int64
			}
		case metricssnapshot.FieldConfidenceHigh:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_high", values[i])
			} else if value.Valid {
				_m.ConfidenceHigh = value.Int64
			}
		case metricssnapshot.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MetricsSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *MetricsSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MetricsSnapshot.
// Note that you need to call MetricsSnapshot.Unwrap() before calling this method if this MetricsSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricsSnapshot) Update() *MetricsSnapshotUpdateOne {
	return NewMetricsSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricsSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricsSnapshot) Unwrap() *MetricsSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricsSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricsSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("MetricsSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("fallback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackCount))
	builder.WriteString(", ")
	builder.WriteString("latency_sum_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencySumMs))
	builder.WriteString(", ")
	builder.WriteString("confidence_sum=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceSum))
	builder.WriteString(", ")
	builder.WriteString("latency_lt_2s=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyLt2s))
	builder.WriteString(", ")
	builder.WriteString("latency_2s_5s=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latency2s5s))
	builder.WriteString(", ")
	builder.WriteString("latency_gt_5s=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyGt5s))
	builder.WriteString(", ")
	builder.WriteString("confidence_low=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceLow))
	builder.WriteString(", ")
	builder.WriteString("confidence_medium=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceMedium))
	builder.WriteString(", ")
	builder.WriteString("confidence_high=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceHigh))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MetricsSnapshots is a parsable slice of MetricsSnapshot.
type MetricsSnapshots []*MetricsSnapshot
