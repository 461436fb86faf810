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
	"github.com/pantryops/pantryd/gen/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AuditEntryCreate) SetUserID(v string) *AuditEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetItemNames sets the "item_names" field.
func (_c *AuditEntryCreate) SetItemNames(v []string) *AuditEntryCreate {
	_c.mutation.SetItemNames(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *AuditEntryCreate) SetDetail(v json.RawMessage) *AuditEntryCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditEntryCreate) SetCreatedAt(v time.Time) *AuditEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableCreatedAt(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableID(v *uuid.UUID) *AuditEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := auditentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AuditEntry.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := auditentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemNames(); !ok {
		return &ValidationError{Name: "item_names", err: errors.New(`ent: missing required field "AuditEntry.item_names"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditEntry.created_at"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(auditentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ItemNames(); ok {
		_spec.SetField(auditentry.FieldItemNames, field.TypeJSON, value)
		_node.ItemNames = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(auditentry.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
