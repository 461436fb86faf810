// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
)

// MetricsSnapshotCreate is the builder for creating a MetricsSnapshot entity.
type MetricsSnapshotCreate struct {
	config
	mutation *MetricsSnapshotMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *MetricsSnapshotCreate) SetKey(v string) *MetricsSnapshotCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *MetricsSnapshotCreate) SetTotal(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableTotal(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *MetricsSnapshotCreate) SetSuccessCount(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableSuccessCount(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFallbackCount sets the "fallback_count" field.
func (_c *MetricsSnapshotCreate) SetFallbackCount(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetFallbackCount(v)
	return _c
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableFallbackCount(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetFallbackCount(*v)
	}
	return _c
}

// SetLatencySumMs sets the "latency_sum_ms" field.
func (_c *MetricsSnapshotCreate) SetLatencySumMs(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetLatencySumMs(v)
	return _c
}

// SetNillableLatencySumMs sets the "latency_sum_ms" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableLatencySumMs(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetLatencySumMs(*v)
	}
	return _c
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_c *MetricsSnapshotCreate) SetConfidenceSum(v float64) *MetricsSnapshotCreate {
	_c.mutation.SetConfidenceSum(v)
	return _c
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableConfidenceSum(v *float64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetConfidenceSum(*v)
	}
	return _c
}

// SetLatencyLt2s sets the "latency_lt_2s" field.
func (_c *MetricsSnapshotCreate) SetLatencyLt2s(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetLatencyLt2s(v)
	return _c
}

// SetNillableLatencyLt2s sets the "latency_lt_2s" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableLatencyLt2s(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetLatencyLt2s(*v)
	}
	return _c
}

// SetLatency2s5s sets the "latency_2s_5s" field.
func (_c *MetricsSnapshotCreate) SetLatency2s5s(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetLatency2s5s(v)
	return _c
}

// SetNillableLatency2s5s sets the "latency_2s_5s" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableLatency2s5s(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetLatency2s5s(*v)
	}
	return _c
}

// SetLatencyGt5s sets the "latency_gt_5s" field.
func (_c *MetricsSnapshotCreate) SetLatencyGt5s(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetLatencyGt5s(v)
	return _c
}

// SetNillableLatencyGt5s sets the "latency_gt_5s" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableLatencyGt5s(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetLatencyGt5s(*v)
	}
	return _c
}

// SetConfidenceLow sets the "confidence_low" field.
func (_c *MetricsSnapshotCreate) SetConfidenceLow(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetConfidenceLow(v)
	return _c
}

// SetNillableConfidenceLow sets the "confidence_low" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableConfidenceLow(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetConfidenceLow(*v)
	}
	return _c
}

// SetConfidenceMedium sets the "confidence_medium" field.
func (_c *MetricsSnapshotCreate) SetConfidenceMedium(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetConfidenceMedium(v)
	return _c
}

// SetNillableConfidenceMedium sets the "confidence_medium" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableConfidenceMedium(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetConfidenceMedium(*v)
	}
	return _c
}

// SetConfidenceHigh sets the "confidence_high" field.
func (_c *MetricsSnapshotCreate) SetConfidenceHigh(v int64) *MetricsSnapshotCreate {
	_c.mutation.SetConfidenceHigh(v)
	return _c
}

// SetNillableConfidenceHigh sets the "confidence_high" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableConfidenceHigh(v *int64) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetConfidenceHigh(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MetricsSnapshotCreate) SetUpdatedAt(v time.Time) *MetricsSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MetricsSnapshotCreate) SetID(v uuid.UUID) *MetricsSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableID(v *uuid.UUID) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MetricsSnapshotMutation object of the builder.
func (_c *MetricsSnapshotCreate) Mutation() *MetricsSnapshotMutation {
	return _c.mutation
}

// Save creates the MetricsSnapshot in the database.
func (_c *MetricsSnapshotCreate) Save(ctx context.Context) (*MetricsSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricsSnapshotCreate) SaveX(ctx context.Context) *MetricsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricsSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Total(); !ok {
		v := metricssnapshot.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := metricssnapshot.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FallbackCount(); !ok {
		v := metricssnapshot.DefaultFallbackCount
		_c.mutation.SetFallbackCount(v)
	}
	if _, ok := _c.mutation.LatencySumMs(); !ok {
		v := metricssnapshot.DefaultLatencySumMs
		_c.mutation.SetLatencySumMs(v)
	}
	if _, ok := _c.mutation.ConfidenceSum(); !ok {
		v := metricssnapshot.DefaultConfidenceSum
		_c.mutation.SetConfidenceSum(v)
	}
	if _, ok := _c.mutation.LatencyLt2s(); !ok {
		v := metricssnapshot.DefaultLatencyLt2s
		_c.mutation.SetLatencyLt2s(v)
	}
	if _, ok := _c.mutation.Latency2s5s(); !ok {
		v := metricssnapshot.DefaultLatency2s5s
		_c.mutation.SetLatency2s5s(v)
	}
	if _, ok := _c.mutation.LatencyGt5s(); !ok {
		v := metricssnapshot.DefaultLatencyGt5s
		_c.mutation.SetLatencyGt5s(v)
	}
	if _, ok := _c.mutation.ConfidenceLow(); !ok {
		v := metricssnapshot.DefaultConfidenceLow
		_c.mutation.SetConfidenceLow(v)
	}
	if _, ok := _c.mutation.ConfidenceMedium(); !ok {
		v := metricssnapshot.DefaultConfidenceMedium
		_c.mutation.SetConfidenceMedium(v)
	}
	if _, ok := _c.mutation.ConfidenceHigh(); !ok {
		v := metricssnapshot.DefaultConfidenceHigh
		_c.mutation.SetConfidenceHigh(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := metricssnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := metricssnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricsSnapshotCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "MetricsSnapshot.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := metricssnapshot.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "MetricsSnapshot.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := metricssnapshot.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "MetricsSnapshot.success_count"`)}
	}
	if v, ok := _c.mutation.SuccessCount(); ok {
		if err := metricssnapshot.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.success_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FallbackCount(); !ok {
		return &ValidationError{Name: "fallback_count", err: errors.New(`ent: missing required field "MetricsSnapshot.fallback_count"`)}
	}
	if v, ok := _c.mutation.FallbackCount(); ok {
		if err := metricssnapshot.FallbackCountValidator(v); err != nil {
			return &ValidationError{Name: "fallback_count", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.fallback_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencySumMs(); !ok {
		return &ValidationError{Name: "latency_sum_ms", err: errors.New(`ent: missing required field "MetricsSnapshot.latency_sum_ms"`)}
	}
	if v, ok := _c.mutation.LatencySumMs(); ok {
		if err := metricssnapshot.LatencySumMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_sum_ms", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_sum_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceSum(); !ok {
		return &ValidationError{Name: "confidence_sum", err: errors.New(`ent: missing required field "MetricsSnapshot.confidence_sum"`)}
	}
	if _, ok := _c.mutation.LatencyLt2s(); !ok {
		return &ValidationError{Name: "latency_lt_2s", err: errors.New(`ent: missing required field "MetricsSnapshot.latency_lt_2s"`)}
	}
	if v, ok := _c.mutation.LatencyLt2s(); ok {
		if err := metricssnapshot.LatencyLt2sValidator(v); err != nil {
			return &ValidationError{Name: "latency_lt_2s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_lt_2s": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Latency2s5s(); !ok {
		return &ValidationError{Name: "latency_2s_5s", err: errors.New(`ent: missing required field "MetricsSnapshot.latency_2s_5s"`)}
	}
	if v, ok := _c.mutation.Latency2s5s(); ok {
		if err := metricssnapshot.Latency2s5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_2s_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_2s_5s": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyGt5s(); !ok {
		return &ValidationError{Name: "latency_gt_5s", err: errors.New(`ent: missing required field "MetricsSnapshot.latency_gt_5s"`)}
	}
	if v, ok := _c.mutation.LatencyGt5s(); ok {
		if err := metricssnapshot.LatencyGt5sValidator(v); err != nil {
			return &ValidationError{Name: "latency_gt_5s", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.latency_gt_5s": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceLow(); !ok {
		return &ValidationError{Name: "confidence_low", err: errors.New(`ent: missing required field "MetricsSnapshot.confidence_low"`)}
	}
	if v, ok := _c.mutation.ConfidenceLow(); ok {
		if err := metricssnapshot.ConfidenceLowValidator(v); err != nil {
			return &ValidationError{Name: "confidence_low", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_low": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceMedium(); !ok {
		return &ValidationError{Name: "confidence_medium", err: errors.New(`ent: missing required field "MetricsSnapshot.confidence_medium"`)}
	}
	if v, ok := _c.mutation.ConfidenceMedium(); ok {
		if err := metricssnapshot.ConfidenceMediumValidator(v); err != nil {
			return &ValidationError{Name: "confidence_medium", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_medium": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceHigh(); !ok {
		return &ValidationError{Name: "confidence_high", err: errors.New(`ent: missing required field "MetricsSnapshot.confidence_high"`)}
	}
	if v, ok := _c.mutation.ConfidenceHigh(); ok {
		if err := metricssnapshot.ConfidenceHighValidator(v); err != nil {
			return &ValidationError{Name: "confidence_high", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.confidence_high": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MetricsSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *MetricsSnapshotCreate) sqlSave(ctx context.Context) (*MetricsSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MetricsSnapshotCreate) createSpec() (*MetricsSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricsSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricssnapshot.Table, sqlgraph.NewFieldSpec(metricssnapshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(metricssnapshot.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(metricssnapshot.FieldTotal, field.TypeInt64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(metricssnapshot.FieldSuccessCount, field.TypeInt64, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FallbackCount(); ok {
		_spec.SetField(metricssnapshot.FieldFallbackCount, field.TypeInt64, value)
		_node.FallbackCount = value
	}
	if value, ok := _c.mutation.LatencySumMs(); ok {
		_spec.SetField(metricssnapshot.FieldLatencySumMs, field.TypeInt64, value)
		_node.LatencySumMs = value
	}
	if value, ok := _c.mutation.ConfidenceSum(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceSum, field.TypeFloat64, value)
		_node.ConfidenceSum = value
	}
	if value, ok := _c.mutation.LatencyLt2s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyLt2s, field.TypeInt64, value)
		_node.LatencyLt2s = value
	}
	if value, ok := _c.mutation.Latency2s5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatency2s5s, field.TypeInt64, value)
		_node.Latency2s5s = value
	}
	if value, ok := _c.mutation.LatencyGt5s(); ok {
		_spec.SetField(metricssnapshot.FieldLatencyGt5s, field.TypeInt64, value)
		_node.LatencyGt5s = value
	}
	if value, ok := _c.mutation.ConfidenceLow(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceLow, field.TypeInt64, value)
		_node.ConfidenceLow = value
	}
	if value, ok := _c.mutation.ConfidenceMedium(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceMedium, field.TypeInt64, value)
		_node.ConfidenceMedium = value
	}
	if value, ok := _c.mutation.ConfidenceHigh(); ok {
		_spec.SetField(metricssnapshot.FieldConfidenceHigh, field.TypeInt64, value)
		_node.ConfidenceHigh = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MetricsSnapshotCreateBulk is the builder for creating many MetricsSnapshot entities in bulk.
type MetricsSnapshotCreateBulk struct {
	config
	err      error
	builders []*MetricsSnapshotCreate
}

// Save creates the MetricsSnapshot entities in the database.
func (_c *MetricsSnapshotCreateBulk) Save(ctx context.Context) ([]*MetricsSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricsSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricsSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MetricsSnapshotCreateBulk) SaveX(ctx context.Context) []*MetricsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
