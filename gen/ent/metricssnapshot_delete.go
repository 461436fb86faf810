// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// MetricsSnapshotDelete is the builder for deleting a MetricsSnapshot entity.
type MetricsSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *MetricsSnapshotMutation
}

// Where appends a list predicates to the MetricsSnapshotDelete builder.
func (_d *MetricsSnapshotDelete) Where(ps ...predicate.MetricsSnapshot) *MetricsSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MetricsSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MetricsSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MetricsSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(metricssnapshot.Table, sqlgraph.NewFieldSpec(metricssnapshot.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MetricsSnapshotDeleteOne is the builder for deleting a single MetricsSnapshot entity.
type MetricsSnapshotDeleteOne struct {
	_d *MetricsSnapshotDelete
}

// Where appends a list predicates to the MetricsSnapshotDelete builder.
func (_d *MetricsSnapshotDeleteOne) Where(ps ...predicate.MetricsSnapshot) *MetricsSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MetricsSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{metricssnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MetricsSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
