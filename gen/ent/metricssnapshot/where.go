// Code generated by ent, DO NOT EDIT.

package metricssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldKey, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldTotal, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldSuccessCount, v))
}

// FallbackCount applies equality check predicate on the "fallback_count" field. It's identical to FallbackCountEQ.
func FallbackCount(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldFallbackCount, v))
}

// LatencySumMs applies equality check predicate on the "latency_sum_ms" field. It's identical to LatencySumMsEQ.
func LatencySumMs(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencySumMs, v))
}

// ConfidenceSum applies equality check predicate on the "confidence_sum" field. It's identical to ConfidenceSumEQ.
func ConfidenceSum(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceSum, v))
}

// LatencyLt2s applies equality check predicate on the "latency_lt_2s" field. It's identical to LatencyLt2sEQ.
func LatencyLt2s(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencyLt2s, v))
}

// Latency2s5s applies equality check predicate on the "latency_2s_5s" field. It's identical to Latency2s5sEQ.
func Latency2s5s(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatency2s5s, v))
}

// LatencyGt5s applies equality check predicate on the "latency_gt_5s" field. It's identical to LatencyGt5sEQ.
func LatencyGt5s(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencyGt5s, v))
}

// ConfidenceLow applies equality check predicate on the "confidence_low" field. It's identical to ConfidenceLowEQ.
func ConfidenceLow(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceLow, v))
}

// ConfidenceMedium applies equality check predicate on the "confidence_medium" field. It's identical to ConfidenceMediumEQ.
func ConfidenceMedium(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceMedium, v))
}

// ConfidenceHigh applies equality check predicate on the "confidence_high" field. It's identical to ConfidenceHighEQ.
func ConfidenceHigh(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceHigh, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldContainsFold(FieldKey, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldTotal, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldSuccessCount, v))
}

// FallbackCountEQ applies the EQ predicate on the "fallback_count" field.
func FallbackCountEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldFallbackCount, v))
}

// FallbackCountNEQ applies the NEQ predicate on the "fallback_count" field.
func FallbackCountNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldFallbackCount, v))
}

// FallbackCountIn applies the In predicate on the "fallback_count" field.
func FallbackCountIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldFallbackCount, vs...))
}

// FallbackCountNotIn applies the NotIn predicate on the "fallback_count" field.
func FallbackCountNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldFallbackCount, vs...))
}

// FallbackCountGT applies the GT predicate on the "fallback_count" field.
func FallbackCountGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldFallbackCount, v))
}

// FallbackCountGTE applies the GTE predicate on the "fallback_count" field.
func FallbackCountGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldFallbackCount, v))
}

// FallbackCountLT applies the LT predicate on the "fallback_count" field.
func FallbackCountLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldFallbackCount, v))
}

// FallbackCountLTE applies the LTE predicate on the "fallback_count" field.
func FallbackCountLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldFallbackCount, v))
}

// LatencySumMsEQ applies the EQ predicate on the "latency_sum_ms" field.
func LatencySumMsEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencySumMs, v))
}

// LatencySumMsNEQ applies the NEQ predicate on the "latency_sum_ms" field.
func LatencySumMsNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldLatencySumMs, v))
}

// LatencySumMsIn applies the In predicate on the "latency_sum_ms" field.
func LatencySumMsIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldLatencySumMs, vs...))
}

// LatencySumMsNotIn applies the NotIn predicate on the "latency_sum_ms" field.
func LatencySumMsNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldLatencySumMs, vs...))
}

// LatencySumMsGT applies the GT predicate on the "latency_sum_ms" field.
func LatencySumMsGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldLatencySumMs, v))
}

// LatencySumMsGTE applies the GTE predicate on the "latency_sum_ms" field.
func LatencySumMsGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldLatencySumMs, v))
}

// LatencySumMsLT applies the LT predicate on the "latency_sum_ms" field.
func LatencySumMsLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldLatencySumMs, v))
}

// LatencySumMsLTE applies the LTE predicate on the "latency_sum_ms" field.
func LatencySumMsLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldLatencySumMs, v))
}

// ConfidenceSumEQ applies the EQ predicate on the "confidence_sum" field.
func ConfidenceSumEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceSum, v))
}

// ConfidenceSumNEQ applies the NEQ predicate on the "confidence_sum" field.
func ConfidenceSumNEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldConfidenceSum, v))
}

// ConfidenceSumIn applies the In predicate on the "confidence_sum" field.
func ConfidenceSumIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldConfidenceSum, vs...))
}

// ConfidenceSumNotIn applies the NotIn predicate on the "confidence_sum" field.
func ConfidenceSumNotIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldConfidenceSum, vs...))
}

// ConfidenceSumGT applies the GT predicate on the "confidence_sum" field.
func ConfidenceSumGT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldConfidenceSum, v))
}

// ConfidenceSumGTE applies the GTE predicate on the "confidence_sum" field.
func ConfidenceSumGTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldConfidenceSum, v))
}

// ConfidenceSumLT applies the LT predicate on the "confidence_sum" field.
func ConfidenceSumLT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldConfidenceSum, v))
}

// ConfidenceSumLTE applies the LTE predicate on the "confidence_sum" field.
func ConfidenceSumLTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldConfidenceSum, v))
}

// LatencyLt2sEQ applies the EQ predicate on the "latency_lt_2s" field.
func LatencyLt2sEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencyLt2s, v))
}

// LatencyLt2sNEQ applies the NEQ predicate on the "latency_lt_2s" field.
func LatencyLt2sNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldLatencyLt2s, v))
}

// LatencyLt2sIn applies the In predicate on the "latency_lt_2s" field.
func LatencyLt2sIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldLatencyLt2s, vs...))
}

// LatencyLt2sNotIn applies the NotIn predicate on the "latency_lt_2s" field.
func LatencyLt2sNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldLatencyLt2s, vs...))
}

// LatencyLt2sGT applies the GT predicate on the "latency_lt_2s" field.
func LatencyLt2sGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldLatencyLt2s, v))
}

// LatencyLt2sGTE applies the GTE predicate on the "latency_lt_2s" field.
func LatencyLt2sGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldLatencyLt2s, v))
}

// LatencyLt2sLT applies the LT predicate on the "latency_lt_2s" field.
func LatencyLt2sLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldLatencyLt2s, v))
}

// LatencyLt2sLTE applies the LTE predicate on the "latency_lt_2s" field.
func LatencyLt2sLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldLatencyLt2s, v))
}

// Latency2s5sEQ applies the EQ predicate on the "latency_2s_5s" field.
func Latency2s5sEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatency2s5s, v))
}

// Latency2s5sNEQ applies the NEQ predicate on the "latency_2s_5s" field.
func Latency2s5sNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldLatency2s5s, v))
}

// Latency2s5sIn applies the In predicate on the "latency_2s_5s" field.
func Latency2s5sIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldLatency2s5s, vs...))
}

// Latency2s5sNotIn applies the NotIn predicate on the "latency_2s_5s" field.
func Latency2s5sNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldLatency2s5s, vs...))
}

// Latency2s5sGT applies the GT predicate on the "latency_2s_5s" field.
func Latency2s5sGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldLatency2s5s, v))
}

// Latency2s5sGTE applies the GTE predicate on the "latency_2s_5s" field.
func Latency2s5sGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldLatency2s5s, v))
}

// Latency2s5sLT applies the LT predicate on the "latency_2s_5s" field.
func Latency2s5sLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldLatency2s5s, v))
}

// Latency2s5sLTE applies the LTE predicate on the "latency_2s_5s" field.
func Latency2s5sLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldLatency2s5s, v))
}

// LatencyGt5sEQ applies the EQ predicate on the "latency_gt_5s" field.
func LatencyGt5sEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldLatencyGt5s, v))
}

// LatencyGt5sNEQ applies the NEQ predicate on the "latency_gt_5s" field.
func LatencyGt5sNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldLatencyGt5s, v))
}

// LatencyGt5sIn applies the In predicate on the "latency_gt_5s" field.
func LatencyGt5sIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldLatencyGt5s, vs...))
}

// LatencyGt5sNotIn applies the NotIn predicate on the "latency_gt_5s" field.
func LatencyGt5sNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldLatencyGt5s, vs...))
}

// LatencyGt5sGT applies the GT predicate on the "latency_gt_5s" field.
func LatencyGt5sGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldLatencyGt5s, v))
}

// LatencyGt5sGTE applies the GTE predicate on the "latency_gt_5s" field.
func LatencyGt5sGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldLatencyGt5s, v))
}

// LatencyGt5sLT applies the LT predicate on the "latency_gt_5s" field.
func LatencyGt5sLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldLatencyGt5s, v))
}

// LatencyGt5sLTE applies the LTE predicate on the "latency_gt_5s" field.
func LatencyGt5sLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldLatencyGt5s, v))
}

// ConfidenceLowEQ applies the EQ predicate on the "confidence_low" field.
func ConfidenceLowEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceLow, v))
}

// ConfidenceLowNEQ applies the NEQ predicate on the "confidence_low" field.
func ConfidenceLowNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldConfidenceLow, v))
}

// ConfidenceLowIn applies the In predicate on the "confidence_low" field.
func ConfidenceLowIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldConfidenceLow, vs...))
}

// ConfidenceLowNotIn applies the NotIn predicate on the "confidence_low" field.
func ConfidenceLowNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldConfidenceLow, vs...))
}

// ConfidenceLowGT applies the GT predicate on the "confidence_low" field.
func ConfidenceLowGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldConfidenceLow, v))
}

// ConfidenceLowGTE applies the GTE predicate on the "confidence_low" field.
func ConfidenceLowGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldConfidenceLow, v))
}

// ConfidenceLowLT applies the LT predicate on the "confidence_low" field.
func ConfidenceLowLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldConfidenceLow, v))
}

// ConfidenceLowLTE applies the LTE predicate on the "confidence_low" field.
func ConfidenceLowLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldConfidenceLow, v))
}

// ConfidenceMediumEQ applies the EQ predicate on the "confidence_medium" field.
func ConfidenceMediumEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceMedium, v))
}

// ConfidenceMediumNEQ applies the NEQ predicate on the "confidence_medium" field.
func ConfidenceMediumNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldConfidenceMedium, v))
}

// ConfidenceMediumIn applies the In predicate on the "confidence_medium" field.
func ConfidenceMediumIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldConfidenceMedium, vs...))
}

// ConfidenceMediumNotIn applies the NotIn predicate on the "confidence_medium" field.
func ConfidenceMediumNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldConfidenceMedium, vs...))
}

// ConfidenceMediumGT applies the GT predicate on the "confidence_medium" field.
func ConfidenceMediumGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldConfidenceMedium, v))
}

// ConfidenceMediumGTE applies the GTE predicate on the "confidence_medium" field.
func ConfidenceMediumGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldConfidenceMedium, v))
}

// ConfidenceMediumLT applies the LT predicate on the "confidence_medium" field.
func ConfidenceMediumLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldConfidenceMedium, v))
}

// ConfidenceMediumLTE applies the LTE predicate on the "confidence_medium" field.
func ConfidenceMediumLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldConfidenceMedium, v))
}

// ConfidenceHighEQ applies the EQ predicate on the "confidence_high" field.
func ConfidenceHighEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldConfidenceHigh, v))
}

// ConfidenceHighNEQ applies the NEQ predicate on the "confidence_high" field.
func ConfidenceHighNEQ(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldConfidenceHigh, v))
}

// ConfidenceHighIn applies the In predicate on the "confidence_high" field.
func ConfidenceHighIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldConfidenceHigh, vs...))
}

// ConfidenceHighNotIn applies the NotIn predicate on the "confidence_high" field.
func ConfidenceHighNotIn(vs ...int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldConfidenceHigh, vs...))
}

// ConfidenceHighGT applies the GT predicate on the "confidence_high" field.
func ConfidenceHighGT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldConfidenceHigh, v))
}

// ConfidenceHighGTE applies the GTE predicate on the "confidence_high" field.
func ConfidenceHighGTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldConfidenceHigh, v))
}

// ConfidenceHighLT applies the LT predicate on the "confidence_high" field.
func ConfidenceHighLT(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldConfidenceHigh, v))
}

// ConfidenceHighLTE applies the LTE predicate on the "confidence_high" field.
func ConfidenceHighLTE(v int64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldConfidenceHigh, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.NotPredicates(p))
}
