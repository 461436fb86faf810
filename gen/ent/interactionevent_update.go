// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdate) SetUserID(v string) *InteractionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableUserID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *InteractionEventUpdate) SetInput(v string) *InteractionEventUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableInput(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *InteractionEventUpdate) SetAgent(v string) *InteractionEventUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableAgent(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *InteractionEventUpdate) SetSuccess(v bool) *InteractionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSuccess(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *InteractionEventUpdate) SetUsedFallback(v bool) *InteractionEventUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableUsedFallback(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *InteractionEventUpdate) SetLatencyMs(v int64) *InteractionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableLatencyMs(v *int64) *InteractionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *InteractionEventUpdate) AddLatencyMs(v int64) *InteractionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InteractionEventUpdate) SetConfidence(v float32) *InteractionEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableConfidence(v *float32) *InteractionEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InteractionEventUpdate) AddConfidence(v float32) *InteractionEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InteractionEventUpdate) ClearConfidence() *InteractionEventUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetError sets the "error" field.
func (_u *InteractionEventUpdate) SetError(v string) *InteractionEventUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableError(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *InteractionEventUpdate) ClearError() *InteractionEventUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Agent(); ok {
		if err := interactionevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := interactionevent.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.latency_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(interactionevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(interactionevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(interactionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(interactionevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(interactionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(interactionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interactionevent.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interactionevent.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(interactionevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(interactionevent.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdateOne) SetUserID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableUserID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *InteractionEventUpdateOne) SetInput(v string) *InteractionEventUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableInput(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *InteractionEventUpdateOne) SetAgent(v string) *InteractionEventUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableAgent(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *InteractionEventUpdateOne) SetSuccess(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSuccess(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *InteractionEventUpdateOne) SetUsedFallback(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableUsedFallback(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *InteractionEventUpdateOne) SetLatencyMs(v int64) *InteractionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableLatencyMs(v *int64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *InteractionEventUpdateOne) AddLatencyMs(v int64) *InteractionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InteractionEventUpdateOne) SetConfidence(v float32) *InteractionEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableConfidence(v *float32) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InteractionEventUpdateOne) AddConfidence(v float32) *InteractionEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InteractionEventUpdateOne) ClearConfidence() *InteractionEventUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetError sets the "error" field.
func (_u *InteractionEventUpdateOne) SetError(v string) *InteractionEventUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableError(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *InteractionEventUpdateOne) ClearError() *InteractionEventUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Agent(); ok {
		if err := interactionevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := interactionevent.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.latency_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(interactionevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(interactionevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(interactionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(interactionevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(interactionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(interactionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interactionevent.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interactionevent.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(interactionevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(interactionevent.FieldError, field.TypeString)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
