// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
)

// ToolInvocationCreate is the builder for creating a ToolInvocation entity.
type ToolInvocationCreate struct {
	config
	mutation *ToolInvocationMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ToolInvocationCreate) SetJobID(v uuid.UUID) *ToolInvocationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *ToolInvocationCreate) SetCallID(v string) *ToolInvocationCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ToolInvocationCreate) SetName(v string) *ToolInvocationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolInvocationCreate) SetStatus(v string) *ToolInvocationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *ToolInvocationCreate) SetArguments(v json.RawMessage) *ToolInvocationCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ToolInvocationCreate) SetOutput(v json.RawMessage) *ToolInvocationCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolInvocationCreate) SetCreatedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCreatedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolInvocationCreate) SetUpdatedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableUpdatedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolInvocationCreate) SetID(v uuid.UUID) *ToolInvocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableID(v *uuid.UUID) *ToolInvocationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_c *ToolInvocationCreate) Mutation() *ToolInvocationMutation {
	return _c.mutation
}

// Save creates the ToolInvocation in the database.
func (_c *ToolInvocationCreate) Save(ctx context.Context) (*ToolInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolInvocationCreate) SaveX(ctx context.Context) *ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolInvocationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolinvocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := toolinvocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := toolinvocation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolInvocationCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ToolInvocation.job_id"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "ToolInvocation.call_id"`)}
	}
	if v, ok := _c.mutation.CallID(); ok {
		if err := toolinvocation.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.call_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ToolInvocation.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := toolinvocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolInvocation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolInvocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ToolInvocation.updated_at"`)}
	}
	return nil
}

func (_c *ToolInvocationCreate) sqlSave(ctx context.Context) (*ToolInvocation, error) {
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

func (_c *ToolInvocationCreate) createSpec() (*ToolInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolinvocation.Table, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(toolinvocation.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(toolinvocation.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(toolinvocation.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(toolinvocation.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolinvocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(toolinvocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ToolInvocationCreateBulk is the builder for creating many ToolInvocation entities in bulk.
type ToolInvocationCreateBulk struct {
	config
	err      error
	builders []*ToolInvocationCreate
}

// Save creates the ToolInvocation entities in the database.
func (_c *ToolInvocationCreateBulk) Save(ctx context.Context) ([]*ToolInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolInvocationMutation)
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
func (_c *ToolInvocationCreateBulk) SaveX(ctx context.Context) []*ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
