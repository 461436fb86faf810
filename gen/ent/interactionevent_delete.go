// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// InteractionEventDelete is the builder for deleting a InteractionEvent entity.
type InteractionEventDelete struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventDelete builder.
func (_d *InteractionEventDelete) Where(ps ...predicate.InteractionEvent) *InteractionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InteractionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InteractionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InteractionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeUUID))
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

// InteractionEventDeleteOne is the builder for deleting a single InteractionEvent entity.
type InteractionEventDeleteOne struct {
	_d *InteractionEventDelete
}

// Where appends a list predicates to the InteractionEventDelete builder.
func (_d *InteractionEventDeleteOne) Where(ps ...predicate.InteractionEvent) *InteractionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InteractionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{interactionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InteractionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
