// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/auditentry"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AuditEntryUpdate) SetUserID(v string) *AuditEntryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableUserID(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdate) SetAction(v string) *AuditEntryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableAction(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemNames sets the "item_names" field.
func (_u *AuditEntryUpdate) SetItemNames(v []string) *AuditEntryUpdate {
	_u.mutation.SetItemNames(v)
	return _u
}

// AppendItemNames appends value to the "item_names" field.
func (_u *AuditEntryUpdate) AppendItemNames(v []string) *AuditEntryUpdate {
	_u.mutation.AppendItemNames(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditEntryUpdate) SetDetail(v json.RawMessage) *AuditEntryUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *AuditEntryUpdate) AppendDetail(v json.RawMessage) *AuditEntryUpdate {
	_u.mutation.AppendDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditEntryUpdate) ClearDetail() *AuditEntryUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEntryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := auditentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(auditentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemNames(); ok {
		_spec.SetField(auditentry.FieldItemNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditentry.FieldItemNames, value)
		})
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(auditentry.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditentry.FieldDetail, value)
		})
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(auditentry.FieldDetail, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// SetUserID sets the "user_id" field.
func (_u *AuditEntryUpdateOne) SetUserID(v string) *AuditEntryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableUserID(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdateOne) SetAction(v string) *AuditEntryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableAction(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetItemNames sets the "item_names" field.
func (_u *AuditEntryUpdateOne) SetItemNames(v []string) *AuditEntryUpdateOne {
	_u.mutation.SetItemNames(v)
	return _u
}

// AppendItemNames appends value to the "item_names" field.
func (_u *AuditEntryUpdateOne) AppendItemNames(v []string) *AuditEntryUpdateOne {
	_u.mutation.AppendItemNames(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditEntryUpdateOne) SetDetail(v json.RawMessage) *AuditEntryUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *AuditEntryUpdateOne) AppendDetail(v json.RawMessage) *AuditEntryUpdateOne {
	_u.mutation.AppendDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditEntryUpdateOne) ClearDetail() *AuditEntryUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEntry entity.
func (_u *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEntryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := auditentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(auditentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemNames(); ok {
		_spec.SetField(auditentry.FieldItemNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditentry.FieldItemNames, value)
		})
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(auditentry.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditentry.FieldDetail, value)
		})
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(auditentry.FieldDetail, field.TypeJSON)
	}
	_node = &AuditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
