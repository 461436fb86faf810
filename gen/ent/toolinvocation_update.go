// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
)

// ToolInvocationUpdate is the builder for updating ToolInvocation entities.
type ToolInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdate) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ToolInvocationUpdate) SetJobID(v uuid.UUID) *ToolInvocationUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableJobID(v *uuid.UUID) *ToolInvocationUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *ToolInvocationUpdate) SetCallID(v string) *ToolInvocationUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableCallID(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ToolInvocationUpdate) SetName(v string) *ToolInvocationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableName(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolInvocationUpdate) SetStatus(v string) *ToolInvocationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableStatus(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolInvocationUpdate) SetArguments(v json.RawMessage) *ToolInvocationUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// AppendArguments appends value to the "arguments" field.
func (_u *ToolInvocationUpdate) AppendArguments(v json.RawMessage) *ToolInvocationUpdate {
	_u.mutation.AppendArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolInvocationUpdate) ClearArguments() *ToolInvocationUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ToolInvocationUpdate) SetOutput(v json.RawMessage) *ToolInvocationUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *ToolInvocationUpdate) AppendOutput(v json.RawMessage) *ToolInvocationUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInvocationUpdate) ClearOutput() *ToolInvocationUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolInvocationUpdate) SetUpdatedAt(v time.Time) *ToolInvocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdate) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolInvocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolInvocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolinvocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdate) check() error {
	if v, ok := _u.mutation.CallID(); ok {
		if err := toolinvocation.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := toolinvocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(toolinvocation.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(toolinvocation.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(toolinvocation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolinvocation.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArguments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolinvocation.FieldArguments, value)
		})
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolinvocation.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolinvocation.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinvocation.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolinvocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolInvocationUpdateOne is the builder for updating a single ToolInvocation entity.
type ToolInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// SetJobID sets the "job_id" field.
func (_u *ToolInvocationUpdateOne) SetJobID(v uuid.UUID) *ToolInvocationUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableJobID(v *uuid.UUID) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *ToolInvocationUpdateOne) SetCallID(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableCallID(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ToolInvocationUpdateOne) SetName(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableName(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolInvocationUpdateOne) SetStatus(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableStatus(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolInvocationUpdateOne) SetArguments(v json.RawMessage) *ToolInvocationUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// AppendArguments appends value to the "arguments" field.
func (_u *ToolInvocationUpdateOne) AppendArguments(v json.RawMessage) *ToolInvocationUpdateOne {
	_u.mutation.AppendArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolInvocationUpdateOne) ClearArguments() *ToolInvocationUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ToolInvocationUpdateOne) SetOutput(v json.RawMessage) *ToolInvocationUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *ToolInvocationUpdateOne) AppendOutput(v json.RawMessage) *ToolInvocationUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInvocationUpdateOne) ClearOutput() *ToolInvocationUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolInvocationUpdateOne) SetUpdatedAt(v time.Time) *ToolInvocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdateOne) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdateOne) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolInvocationUpdateOne) Select(field string, fields ...string) *ToolInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolInvocation entity.
func (_u *ToolInvocationUpdateOne) Save(ctx context.Context) (*ToolInvocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) SaveX(ctx context.Context) *ToolInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolInvocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolinvocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdateOne) check() error {
	if v, ok := _u.mutation.CallID(); ok {
		if err := toolinvocation.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := toolinvocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolInvocationUpdateOne) sqlSave(ctx context.Context) (_node *ToolInvocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolinvocation.FieldID)
		for _, f := range fields {
			if !toolinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolinvocation.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(toolinvocation.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(toolinvocation.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(toolinvocation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolinvocation.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArguments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolinvocation.FieldArguments, value)
		})
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolinvocation.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolinvocation.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinvocation.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolinvocation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ToolInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
