// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// MetricsSnapshotUpdate is the builder for updating MetricsSnapshot entities.
type MetricsSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *MetricsSnapshotMutation
}

// Where appends a list predicates to the MetricsSnapshotUpdate builder.
func (_u *MetricsSnapshotUpdate) Where(ps ...predicate.MetricsSnapshot) *MetricsSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *MetricsSnapshotUpdate) SetKey(v string) *MetricsSnapshotUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableKey(v *string) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *MetricsSnapshotUpdate) SetTotal(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableTotal(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *MetricsSnapshotUpdate) AddTotal(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *MetricsSnapshotUpdate) SetSuccessCount(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableSuccessCount(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *MetricsSnapshotUpdate) AddSuccessCount(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *MetricsSnapshotUpdate) SetFallbackCount(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableFallbackCount(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *MetricsSnapshotUpdate) AddFallbackCount(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// SetLatencySumMs sets the "latency_sum_ms" field.
func (_u *MetricsSnapshotUpdate) SetLatencySumMs(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetLatencySumMs()
	_u.mutation.SetLatencySumMs(v)
	return _u
}

// SetNillableLatencySumMs sets the "latency_sum_ms" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableLatencySumMs(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetLatencySumMs(*v)
	}
	return _u
}

// AddLatencySumMs adds value to the "latency_sum_ms" field.
func (_u *MetricsSnapshotUpdate) AddLatencySumMs(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddLatencySumMs(v)
	return _u
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_u *MetricsSnapshotUpdate) SetConfidenceSum(v float64) *MetricsSnapshotUpdate {
	_u.mutation.ResetConfidenceSum()
	_u.mutation.SetConfidenceSum(v)
	return _u
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableConfidenceSum(v *float64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetConfidenceSum(*v)
	}
	return _u
}

// AddConfidenceSum adds value to the "confidence_sum" field.
func (_u *MetricsSnapshotUpdate) AddConfidenceSum(v float64) *MetricsSnapshotUpdate {
	_u.mutation.AddConfidenceSum(v)
	return _u
}

// SetLatencyLt2s sets the "latency_lt_2s" field.
func (_u *MetricsSnapshotUpdate) SetLatencyLt2s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetLatencyLt2s()
	_u.mutation.SetLatencyLt2s(v)
	return _u
}

// SetNillableLatencyLt2s sets the "latency_lt_2s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableLatencyLt2s(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetLatencyLt2s(*v)
	}
	return _u
}

// AddLatencyLt2s adds value to the "latency_lt_2s" field.
func (_u *MetricsSnapshotUpdate) AddLatencyLt2s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddLatencyLt2s(v)
	return _u
}

// SetLatency2s5s sets the "latency_2s_5s" field.
func (_u *MetricsSnapshotUpdate) SetLatency2s5s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetLatency2s5s()
	_u.mutation.SetLatency2s5s(v)
	return _u
}

// SetNillableLatency2s5s sets the "latency_2s_5s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableLatency2s5s(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetLatency2s5s(*v)
	}
	return _u
}

// AddLatency2s5s adds value to the "latency_2s_5s" field.
func (_u *MetricsSnapshotUpdate) AddLatency2s5s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddLatency2s5s(v)
	return _u
}

// SetLatencyGt5s sets the "latency_gt_5s" field.
func (_u *MetricsSnapshotUpdate) SetLatencyGt5s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetLatencyGt5s()
	_u.mutation.SetLatencyGt5s(v)
	return _u
}

// SetNillableLatencyGt5s sets the "latency_gt_5s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableLatencyGt5s(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetLatencyGt5s(*v)
	}
	return _u
}

// AddLatencyGt5s adds value to the "latency_gt_5s" field.
func (_u *MetricsSnapshotUpdate) AddLatencyGt5s(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddLatencyGt5s(v)
	return _u
}

// SetConfidenceLow sets the "confidence_low" field.
func (_u *MetricsSnapshotUpdate) SetConfidenceLow(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetConfidenceLow()
	_u.mutation.SetConfidenceLow(v)
	return _u
}

// SetNillableConfidenceLow sets the "confidence_low" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableConfidenceLow(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetConfidenceLow(*v)
	}
	return _u
}

// AddConfidenceLow adds value to the "confidence_low" field.
func (_u *MetricsSnapshotUpdate) AddConfidenceLow(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddConfidenceLow(v)
	return _u
}

// SetConfidenceMedium sets the "confidence_medium" field.
func (_u *MetricsSnapshotUpdate) SetConfidenceMedium(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetConfidenceMedium()
	_u.mutation.SetConfidenceMedium(v)
	return _u
}

// SetNillableConfidenceMedium sets the "confidence_medium" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableConfidenceMedium(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetConfidenceMedium(*v)
	}
	return _u
}

// AddConfidenceMedium adds value to the "confidence_medium" field.
func (_u *MetricsSnapshotUpdate) AddConfidenceMedium(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddConfidenceMedium(v)
	return _u
}

// SetConfidenceHigh sets the "confidence_high" field.
func (_u *MetricsSnapshotUpdate) SetConfidenceHigh(v int64) *MetricsSnapshotUpdate {
	_u.mutation.ResetConfidenceHigh()
	_u.mutation.SetConfidenceHigh(v)
	return _u
}

// SetNillableConfidenceHigh sets the "confidence_high" field if the given value is not nil.
func (_u *MetricsSnapshotUpdate) SetNillableConfidenceHigh(v *int64) *MetricsSnapshotUpdate {
	if v != nil {
		_u.SetConfidenceHigh(*v)
	}
	return _u
}

// AddConfidenceHigh adds value to the "confidence_high" field.
func (_u *MetricsSnapshotUpdate) AddConfidenceHigh(v int64) *MetricsSnapshotUpdate {
	_u.mutation.AddConfidenceHigh(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MetricsSnapshotUpdate) SetUpdatedAt(v time.Time) *MetricsSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MetricsSnapshotMutation object of the builder.
func (_u *MetricsSnapshotUpdate) Mutation() *MetricsSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricsSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricsSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MetricsSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := metricssnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricsSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := metricssnapshot.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := metricssnapshot.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := metricssnapshot.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FallbackCount(); ok {
		if err := metricssnapshot.FallbackCountValidator(v); err != nil {
			return &ValidationError{Name: "fallback_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.fallback_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencySumMs(); ok {
		if err := metricssnapshot.LatencySumMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_sum_ms", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_sum_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyLt2s(); ok {
		if err := metricssnapshot.LatencyLt2sValidator(v); err != nil {
			return &ValidationError{Name: "latency_lt_2s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_lt_2s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Latency2s5s(); ok {
		if err := metricssnapshot.Latency2s5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_2s_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_2s_5s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyGt5s(); ok {
		if err := metricssnapshot.LatencyGt5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_gt_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_gt_5s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLow(); ok {
		if err := metricssnapshot.ConfidenceLowValidator(v); err != nil {
			return &ValidationError{Name: "confidence_low", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_low": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceMedium(); ok {
		if err := metricssnapshot.ConfidenceMediumValidator(v); err != nil {
			return &ValidationError{Name: "confidence_medium", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_medium": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceHigh(); ok {
		if err := metricssnapshot.ConfidenceHighValidator(v); err != nil {
			return &ValidationError{Name: "confidence_high", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_high": %w`, err)}
		}
	}
	return nil
}

func (_u *MetricsSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricssnapshot.Table, metricssnapshot.Columns, sqlgraph.NewFieldSpec(metricssnapshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(metricssnapshot.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(metricssnapshot.FieldTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(metricssnapshot.FieldTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(metricssnapshot.FieldSuccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(metricssnapshot.FieldSuccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(metricssnapshot.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(metricssnapshot.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencySumMs(); ok {
		_spec.SetField(metricssnapshot.FieldLatencySumMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencySumMs(); ok {
		_spec.AddField(metricssnapshot.FieldLatencySumMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceSum(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceSum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceSum(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceSum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyLt2s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyLt2s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyLt2s(); ok {
		_spec.AddField(metricssnapshot.FieldLatencyLt2s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Latency2s5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatency2s5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatency2s5s(); ok {
		_spec.AddField(metricssnapshot.FieldLatency2s5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencyGt5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyGt5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyGt5s(); ok {
		_spec.AddField(metricssnapshot.FieldLatencyGt5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceLow(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceLow, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLow(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceLow, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceMedium(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceMedium, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceMedium(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceMedium, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceHigh(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceHigh, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceHigh(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceHigh, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricsSnapshotUpdateOne is the builder for updating a single MetricsSnapshot entity.
type MetricsSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricsSnapshotMutation
}

// SetKey sets the "key" field.
func (_u *MetricsSnapshotUpdateOne) SetKey(v string) *MetricsSnapshotUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableKey(v *string) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *MetricsSnapshotUpdateOne) SetTotal(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableTotal(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *MetricsSnapshotUpdateOne) AddTotal(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *MetricsSnapshotUpdateOne) SetSuccessCount(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableSuccessCount(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *MetricsSnapshotUpdateOne) AddSuccessCount(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *MetricsSnapshotUpdateOne) SetFallbackCount(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableFallbackCount(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *MetricsSnapshotUpdateOne) AddFallbackCount(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// SetLatencySumMs sets the "latency_sum_ms" field.
func (_u *MetricsSnapshotUpdateOne) SetLatencySumMs(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetLatencySumMs()
	_u.mutation.SetLatencySumMs(v)
	return _u
}

// SetNillableLatencySumMs sets the "latency_sum_ms" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableLatencySumMs(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetLatencySumMs(*v)
	}
	return _u
}

// AddLatencySumMs adds value to the "latency_sum_ms" field.
func (_u *MetricsSnapshotUpdateOne) AddLatencySumMs(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddLatencySumMs(v)
	return _u
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_u *MetricsSnapshotUpdateOne) SetConfidenceSum(v float64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetConfidenceSum()
	_u.mutation.SetConfidenceSum(v)
	return _u
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableConfidenceSum(v *float64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetConfidenceSum(*v)
	}
	return _u
}

// AddConfidenceSum adds value to the "confidence_sum" field.
func (_u *MetricsSnapshotUpdateOne) AddConfidenceSum(v float64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddConfidenceSum(v)
	return _u
}

// SetLatencyLt2s sets the "latency_lt_2s" field.
func (_u *MetricsSnapshotUpdateOne) SetLatencyLt2s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetLatencyLt2s()
	_u.mutation.SetLatencyLt2s(v)
	return _u
}

// SetNillableLatencyLt2s sets the "latency_lt_2s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableLatencyLt2s(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetLatencyLt2s(*v)
	}
	return _u
}

// AddLatencyLt2s adds value to the "latency_lt_2s" field.
func (_u *MetricsSnapshotUpdateOne) AddLatencyLt2s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddLatencyLt2s(v)
	return _u
}

// SetLatency2s5s sets the "latency_2s_5s" field.
func (_u *MetricsSnapshotUpdateOne) SetLatency2s5s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetLatency2s5s()
	_u.mutation.SetLatency2s5s(v)
	return _u
}

// SetNillableLatency2s5s sets the "latency_2s_5s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableLatency2s5s(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetLatency2s5s(*v)
	}
	return _u
}

// AddLatency2s5s adds value to the "latency_2s_5s" field.
func (_u *MetricsSnapshotUpdateOne) AddLatency2s5s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddLatency2s5s(v)
	return _u
}

// SetLatencyGt5s sets the "latency_gt_5s" field.
func (_u *MetricsSnapshotUpdateOne) SetLatencyGt5s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetLatencyGt5s()
	_u.mutation.SetLatencyGt5s(v)
	return _u
}

// SetNillableLatencyGt5s sets the "latency_gt_5s" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableLatencyGt5s(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetLatencyGt5s(*v)
	}
	return _u
}

// AddLatencyGt5s adds value to the "latency_gt_5s" field.
func (_u *MetricsSnapshotUpdateOne) AddLatencyGt5s(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddLatencyGt5s(v)
	return _u
}

// SetConfidenceLow sets the "confidence_low" field.
func (_u *MetricsSnapshotUpdateOne) SetConfidenceLow(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetConfidenceLow()
	_u.mutation.SetConfidenceLow(v)
	return _u
}

// SetNillableConfidenceLow sets the "confidence_low" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableConfidenceLow(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetConfidenceLow(*v)
	}
	return _u
}

// AddConfidenceLow adds value to the "confidence_low" field.
func (_u *MetricsSnapshotUpdateOne) AddConfidenceLow(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddConfidenceLow(v)
	return _u
}

// SetConfidenceMedium sets the "confidence_medium" field.
func (_u *MetricsSnapshotUpdateOne) SetConfidenceMedium(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetConfidenceMedium()
	_u.mutation.SetConfidenceMedium(v)
	return _u
}

// SetNillableConfidenceMedium sets the "confidence_medium" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableConfidenceMedium(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetConfidenceMedium(*v)
	}
	return _u
}

// AddConfidenceMedium adds value to the "confidence_medium" field.
func (_u *MetricsSnapshotUpdateOne) AddConfidenceMedium(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddConfidenceMedium(v)
	return _u
}

// SetConfidenceHigh sets the "confidence_high" field.
func (_u *MetricsSnapshotUpdateOne) SetConfidenceHigh(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.ResetConfidenceHigh()
	_u.mutation.SetConfidenceHigh(v)
	return _u
}

// SetNillableConfidenceHigh sets the "confidence_high" field if the given value is not nil.
func (_u *MetricsSnapshotUpdateOne) SetNillableConfidenceHigh(v *int64) *MetricsSnapshotUpdateOne {
	if v != nil {
		_u.SetConfidenceHigh(*v)
	}
	return _u
}

// AddConfidenceHigh adds value to the "confidence_high" field.
func (_u *MetricsSnapshotUpdateOne) AddConfidenceHigh(v int64) *MetricsSnapshotUpdateOne {
	_u.mutation.AddConfidenceHigh(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MetricsSnapshotUpdateOne) SetUpdatedAt(v time.Time) *MetricsSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MetricsSnapshotMutation object of the builder.
func (_u *MetricsSnapshotUpdateOne) Mutation() *MetricsSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the MetricsSnapshotUpdate builder.
func (_u *MetricsSnapshotUpdateOne) Where(ps ...predicate.MetricsSnapshot) *MetricsSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricsSnapshotUpdateOne) Select(field string, fields ...string) *MetricsSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetricsSnapshot entity.
func (_u *MetricsSnapshotUpdateOne) Save(ctx context.Context) (*MetricsSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsSnapshotUpdateOne) SaveX(ctx context.Context) *MetricsSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricsSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MetricsSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := metricssnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricsSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := metricssnapshot.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := metricssnapshot.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := metricssnapshot.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FallbackCount(); ok {
		if err := metricssnapshot.FallbackCountValidator(v); err != nil {
			return &ValidationError{Name: "fallback_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.fallback_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencySumMs(); ok {
		if err := metricssnapshot.LatencySumMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_sum_ms", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_sum_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyLt2s(); ok {
		if err := metricssnapshot.LatencyLt2sValidator(v); err != nil {
			return &ValidationError{Name: "latency_lt_2s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_lt_2s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Latency2s5s(); ok {
		if err := metricssnapshot.Latency2s5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_2s_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_2s_5s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyGt5s(); ok {
		if err := metricssnapshot.LatencyGt5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_gt_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_gt_5s": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLow(); ok {
		if err := metricssnapshot.ConfidenceLowValidator(v); err != nil {
			return &ValidationError{Name: "confidence_low", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_low": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceMedium(); ok {
		if err := metricssnapshot.ConfidenceMediumValidator(v); err != nil {
			return &ValidationError{Name: "confidence_medium", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_medium": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceHigh(); ok {
		if err := metricssnapshot.ConfidenceHighValidator(v); err != nil {
			return &ValidationError{Name: "confidence_high", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_high": %w`, err)}
		}
	}
	return nil
}

func (_u *MetricsSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *MetricsSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricssnapshot.Table, metricssnapshot.Columns, sqlgraph.NewFieldSpec(metricssnapshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetricsSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metricssnapshot.FieldID)
		for _, f := range fields {
			if !metricssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metricssnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(metricssnapshot.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(metricssnapshot.FieldTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(metricssnapshot.FieldTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(metricssnapshot.FieldSuccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(metricssnapshot.FieldSuccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(metricssnapshot.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(metricssnapshot.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencySumMs(); ok {
		_spec.SetField(metricssnapshot.FieldLatencySumMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencySumMs(); ok {
		_spec.AddField(metricssnapshot.FieldLatencySumMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceSum(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceSum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceSum(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceSum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyLt2s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyLt2s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyLt2s(); ok {
		_spec.AddField(metricssnapshot.FieldLatencyLt2s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Latency2s5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatency2s5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatency2s5s(); ok {
		_spec.AddField(metricssnapshot.FieldLatency2s5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LatencyGt5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyGt5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyGt5s(); ok {
		_spec.AddField(metricssnapshot.FieldLatencyGt5s, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceLow(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceLow, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLow(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceLow, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceMedium(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceMedium, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceMedium(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceMedium, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfidenceHigh(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceHigh, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceHigh(); ok {
		_spec.AddField(metricssnapshot.FieldConfidenceHigh, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MetricsSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
