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
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
)

// InteractionEventCreate is the builder for creating a InteractionEvent entity.
type InteractionEventCreate struct {
	config
	mutation *InteractionEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InteractionEventCreate) SetUserID(v string) *InteractionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *InteractionEventCreate) SetInput(v string) *InteractionEventCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *InteractionEventCreate) SetAgent(v string) *InteractionEventCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *InteractionEventCreate) SetSuccess(v bool) *InteractionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *InteractionEventCreate) SetUsedFallback(v bool) *InteractionEventCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableUsedFallback(v *bool) *InteractionEventCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *InteractionEventCreate) SetLatencyMs(v int64) *InteractionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InteractionEventCreate) SetConfidence(v float32) *InteractionEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableConfidence(v *float32) *InteractionEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *InteractionEventCreate) SetError(v string) *InteractionEventCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableError(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionEventCreate) SetTimestamp(v time.Time) *InteractionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableTimestamp(v *time.Time) *InteractionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionEventCreate) SetID(v uuid.UUID) *InteractionEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableID(v *uuid.UUID) *InteractionEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_c *InteractionEventCreate) Mutation() *InteractionEventMutation {
	return _c.mutation
}

// Save creates the InteractionEvent in the database.
func (_c *InteractionEventCreate) Save(ctx context.Context) (*InteractionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionEventCreate) SaveX(ctx context.Context) *InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionEventCreate) defaults() {
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := interactionevent.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := interactionevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InteractionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "InteractionEvent.input"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "InteractionEvent.agent"`)}
	}
	if v, ok := _c.mutation.Agent(); ok {
		if err := interactionevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "InteractionEvent.success"`)}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "InteractionEvent.used_fallback"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "InteractionEvent.latency_ms"`)}
	}
	if v, ok := _c.mutation.LatencyMs(); ok {
		if err := interactionevent.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.latency_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionEvent.timestamp"`)}
	}
	return nil
}

func (_c *InteractionEventCreate) sqlSave(ctx context.Context) (*InteractionEvent, error) {
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

func (_c *InteractionEventCreate) createSpec() (*InteractionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(interactionevent.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(interactionevent.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(interactionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(interactionevent.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(interactionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(interactionevent.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// InteractionEventCreateBulk is the builder for creating many InteractionEvent entities in bulk.
type InteractionEventCreateBulk struct {
	config
	err      error
	builders []*InteractionEventCreate
}

// Save creates the InteractionEvent entities in the database.
func (_c *InteractionEventCreateBulk) Save(ctx context.Context) ([]*InteractionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionEventMutation)
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
func (_c *InteractionEventCreateBulk) SaveX(ctx context.Context) []*InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
