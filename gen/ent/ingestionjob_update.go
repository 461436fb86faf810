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
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// IngestionJobUpdate is the builder for updating IngestionJob entities.
type IngestionJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestionJobMutation
}

// Where appends a list predicates to the IngestionJobUpdate builder.
func (_u *IngestionJobUpdate) Where(ps ...predicate.IngestionJob) *IngestionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *IngestionJobUpdate) SetUserID(v string) *IngestionJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableUserID(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *IngestionJobUpdate) SetInputText(v string) *IngestionJobUpdate {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableInputText(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *IngestionJobUpdate) ClearInputText() *IngestionJobUpdate {
	_u.mutation.ClearInputText()
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *IngestionJobUpdate) SetUploadID(v uuid.UUID) *IngestionJobUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableUploadID(v *uuid.UUID) *IngestionJobUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// ClearUploadID clears the value of the "upload_id" field.
func (_u *IngestionJobUpdate) ClearUploadID() *IngestionJobUpdate {
	_u.mutation.ClearUploadID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IngestionJobUpdate) SetMetadata(v json.RawMessage) *IngestionJobUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *IngestionJobUpdate) AppendMetadata(v json.RawMessage) *IngestionJobUpdate {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IngestionJobUpdate) ClearMetadata() *IngestionJobUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestionJobUpdate) SetStatus(v string) *IngestionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableStatus(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentResponse sets the "agent_response" field.
func (_u *IngestionJobUpdate) SetAgentResponse(v string) *IngestionJobUpdate {
	_u.mutation.SetAgentResponse(v)
	return _u
}

// SetNillableAgentResponse sets the "agent_response" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableAgentResponse(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetAgentResponse(*v)
	}
	return _u
}

// ClearAgentResponse clears the value of the "agent_response" field.
func (_u *IngestionJobUpdate) ClearAgentResponse() *IngestionJobUpdate {
	_u.mutation.ClearAgentResponse()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *IngestionJobUpdate) SetResultSummary(v string) *IngestionJobUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableResultSummary(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *IngestionJobUpdate) ClearResultSummary() *IngestionJobUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IngestionJobUpdate) SetLastError(v string) *IngestionJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableLastError(v *string) *IngestionJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IngestionJobUpdate) ClearLastError() *IngestionJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestionJobUpdate) SetFinishedAt(v time.Time) *IngestionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestionJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestionJobUpdate) ClearFinishedAt() *IngestionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestionJobUpdate) SetUpdatedAt(v time.Time) *IngestionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestionJobMutation object of the builder.
func (_u *IngestionJobUpdate) Mutation() *IngestionJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestionJobUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := ingestionjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestionjob.Table, ingestionjob.Columns, sqlgraph.NewFieldSpec(ingestionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(ingestionjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(ingestionjob.FieldInputText, field.TypeString, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(ingestionjob.FieldInputText, field.TypeString)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(ingestionjob.FieldUploadID, field.TypeUUID, value)
	}
	if _u.mutation.UploadIDCleared() {
		_spec.ClearField(ingestionjob.FieldUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ingestionjob.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestionjob.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ingestionjob.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentResponse(); ok {
		_spec.SetField(ingestionjob.FieldAgentResponse, field.TypeString, value)
	}
	if _u.mutation.AgentResponseCleared() {
		_spec.ClearField(ingestionjob.FieldAgentResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(ingestionjob.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(ingestionjob.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ingestionjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ingestionjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestionJobUpdateOne is the builder for updating a single IngestionJob entity.
type IngestionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestionJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *IngestionJobUpdateOne) SetUserID(v string) *IngestionJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableUserID(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *IngestionJobUpdateOne) SetInputText(v string) *IngestionJobUpdateOne {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableInputText(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *IngestionJobUpdateOne) ClearInputText() *IngestionJobUpdateOne {
	_u.mutation.ClearInputText()
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *IngestionJobUpdateOne) SetUploadID(v uuid.UUID) *IngestionJobUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableUploadID(v *uuid.UUID) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// ClearUploadID clears the value of the "upload_id" field.
func (_u *IngestionJobUpdateOne) ClearUploadID() *IngestionJobUpdateOne {
	_u.mutation.ClearUploadID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IngestionJobUpdateOne) SetMetadata(v json.RawMessage) *IngestionJobUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *IngestionJobUpdateOne) AppendMetadata(v json.RawMessage) *IngestionJobUpdateOne {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IngestionJobUpdateOne) ClearMetadata() *IngestionJobUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestionJobUpdateOne) SetStatus(v string) *IngestionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableStatus(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentResponse sets the "agent_response" field.
func (_u *IngestionJobUpdateOne) SetAgentResponse(v string) *IngestionJobUpdateOne {
	_u.mutation.SetAgentResponse(v)
	return _u
}

// SetNillableAgentResponse sets the "agent_response" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableAgentResponse(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetAgentResponse(*v)
	}
	return _u
}

// ClearAgentResponse clears the value of the "agent_response" field.
func (_u *IngestionJobUpdateOne) ClearAgentResponse() *IngestionJobUpdateOne {
	_u.mutation.ClearAgentResponse()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *IngestionJobUpdateOne) SetResultSummary(v string) *IngestionJobUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableResultSummary(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *IngestionJobUpdateOne) ClearResultSummary() *IngestionJobUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IngestionJobUpdateOne) SetLastError(v string) *IngestionJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableLastError(v *string) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IngestionJobUpdateOne) ClearLastError() *IngestionJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestionJobUpdateOne) SetFinishedAt(v time.Time) *IngestionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestionJobUpdateOne) ClearFinishedAt() *IngestionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestionJobUpdateOne) SetUpdatedAt(v time.Time) *IngestionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestionJobMutation object of the builder.
func (_u *IngestionJobUpdateOne) Mutation() *IngestionJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestionJobUpdate builder.
func (_u *IngestionJobUpdateOne) Where(ps ...predicate.IngestionJob) *IngestionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestionJobUpdateOne) Select(field string, fields ...string) *IngestionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestionJob entity.
func (_u *IngestionJobUpdateOne) Save(ctx context.Context) (*IngestionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionJobUpdateOne) SaveX(ctx context.Context) *IngestionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestionJobUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := ingestionjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestionJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestionjob.Table, ingestionjob.Columns, sqlgraph.NewFieldSpec(ingestionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestionjob.FieldID)
		for _, f := range fields {
			if !ingestionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestionjob.FieldID {
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
		_spec.SetField(ingestionjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(ingestionjob.FieldInputText, field.TypeString, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(ingestionjob.FieldInputText, field.TypeString)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(ingestionjob.FieldUploadID, field.TypeUUID, value)
	}
	if _u.mutation.UploadIDCleared() {
		_spec.ClearField(ingestionjob.FieldUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ingestionjob.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestionjob.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ingestionjob.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentResponse(); ok {
		_spec.SetField(ingestionjob.FieldAgentResponse, field.TypeString, value)
	}
	if _u.mutation.AgentResponseCleared() {
		_spec.ClearField(ingestionjob.FieldAgentResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(ingestionjob.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(ingestionjob.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ingestionjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ingestionjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &IngestionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
