// Code generated by ent, DO NOT EDIT.

package metricssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the metricssnapshot type in the database.
	Label = "metrics_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldSuccessCount holds the string denoting the success_count field in the database.
	FieldSuccessCount = "success_count"
	// FieldFallbackCount holds the string denoting the fallback_count field in the database.
	FieldFallbackCount = "fallback_count"
	// FieldLatencySumMs holds the string denoting the latency_sum_ms field in the database.
	FieldLatencySumMs = "latency_sum_ms"
	// FieldConfidenceSum holds the string denoting the confidence_sum field in the database.
	FieldConfidenceSum = "confidence_sum"
	// FieldLatencyLt2s holds the string denoting the latency_lt_2s field in the database.
	FieldLatencyLt2s = "latency_lt_2s"
	// FieldLatency2s5s holds the string denoting the latency_2s_5s field in the database.
	FieldLatency2s5s = "latency_2s_5s"
	// FieldLatencyGt5s holds the string denoting the latency_gt_5s field in the database.
	FieldLatencyGt5s = "latency_gt_5s"
	// FieldConfidenceLow holds the string denoting the confidence_low field in the database.
	FieldConfidenceLow = "confidence_low"
	// FieldConfidenceMedium holds the string denoting the confidence_medium field in the database.
	FieldConfidenceMedium = "confidence_medium"
	// FieldConfidenceHigh holds the string denoting the confidence_high field in the database.
	FieldConfidenceHigh = "confidence_high"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the metricssnapshot in the database.
	Table = "metrics_snapshots"
)

// Columns holds all SQL columns for metricssnapshot fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldTotal,
	FieldSuccessCount,
	FieldFallbackCount,
	FieldLatencySumMs,
	FieldConfidenceSum,
	FieldLatencyLt2s,
	FieldLatency2s5s,
	FieldLatencyGt5s,
	FieldConfidenceLow,
	FieldConfidenceMedium,
	FieldConfidenceHigh,
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
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int64
	// TotalValidator is a validator for the "total" field. It is called by the builders before save.
	TotalValidator func(int64) error
	// DefaultSuccessCount holds the default value on creation for the "success_count" field.
	DefaultSuccessCount int64
	// SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	SuccessCountValidator func(int64) error
	// DefaultFallbackCount holds the default value on creation for the "fallback_count" field.
	DefaultFallbackCount int64
	// FallbackCountValidator is a validator for the "fallback_count" field. It is called by the builders before save.
	FallbackCountValidator func(int64) error
	// DefaultLatencySumMs holds the default value on creation for the "latency_sum_ms" field.
	DefaultLatencySumMs int64
	// LatencySumMsValidator is a validator for the "latency_sum_ms" field. It is called by the builders before save.
	LatencySumMsValidator func(int64) error
	// DefaultConfidenceSum holds the default value on creation for the "confidence_sum" field.
	DefaultConfidenceSum float64
	// DefaultLatencyLt2s holds the default value on creation for the "latency_lt_2s" field.
	DefaultLatencyLt2s int64
	// LatencyLt2sValidator is a validator for the "latency_lt_2s" field. It is called by the builders before save.
	LatencyLt2sValidator func(int64) error
	// DefaultLatency2s5s holds the default value on creation for the "latency_2s_5s" field.
	DefaultLatency2s5s int64
	// Latency2s5sValidator is a validator for the "latency_2s_5s" field. It is called by the builders before save.
	Latency2s5sValidator func(int64) error
	// DefaultLatencyGt5s holds the default value on creation for the "latency_gt_5s" field.
	DefaultLatencyGt5s int64
	// LatencyGt5sValidator is a validator for the "latency_gt_5s" field. It is called by the builders before save.
	LatencyGt5sValidator func(int64) error
	// DefaultConfidenceLow holds the default value on creation for the "confidence_low" field.
	DefaultConfidenceLow int64
	// ConfidenceLowValidator is a validator for the "confidence_low" field. It is called by the builders before save.
	ConfidenceLowValidator func(int64) error
	// DefaultConfidenceMedium holds the default value on creation for the "confidence_medium" field.
	DefaultConfidenceMedium int64
	// ConfidenceMediumValidator is a validator for the "confidence_medium" field. It is called by the builders before save.
	ConfidenceMediumValidator func(int64) error
	// DefaultConfidenceHigh holds the default value on creation for the "confidence_high" field.
	DefaultConfidenceHigh int64
	// ConfidenceHighValidator is a validator for the "confidence_high" field. It is called by the builders before save.
	ConfidenceHighValidator func(int64) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MetricsSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// BySuccessCount orders the results by the success_count field.
func BySuccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCount, opts...).ToFunc()
}

// ByFallbackCount orders the results by the fallback_count field.
func ByFallbackCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackCount, opts...).ToFunc()
}

// ByLatencySumMs orders the results by the latency_sum_ms field.
func ByLatencySumMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencySumMs, opts...).ToFunc()
}

// ByConfidenceSum orders the results by the confidence_sum field.
func ByConfidenceSum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceSum, opts...).ToFunc()
}

// ByLatencyLt2s orders the results by the latency_lt_2s field.
func ByLatencyLt2s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyLt2s, opts...).ToFunc()
}

// ByLatency2s5s orders the results by the latency_2s_5s field.
func ByLatency2s5s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatency2s5s, opts...).ToFunc()
}

// ByLatencyGt5s orders the results by the latency_gt_5s field.
func ByLatencyGt5s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyGt5s, opts...).ToFunc()
}

// ByConfidenceLow orders the results by the confidence_low field.
func ByConfidenceLow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLow, opts...).ToFunc()
}

// ByConfidenceMedium orders the results by the confidence_medium field.
func ByConfidenceMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceMedium, opts...).ToFunc()
}

// ByConfidenceHigh orders the results by the confidence_high field.
func ByConfidenceHigh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceHigh, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
