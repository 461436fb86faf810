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
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
)

// IngestionJobCreate is the builder for creating a IngestionJob entity.
type IngestionJobCreate struct {
	config
	mutation *IngestionJobMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *IngestionJobCreate) SetUserID(v string) *IngestionJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInputText sets the "input_text" field.
func (_c *IngestionJobCreate) SetInputText(v string) *IngestionJobCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableInputText(v *string) *IngestionJobCreate {
	if v != nil {
		_c.SetInputText(*v)
	}
	return _c
}

// SetUploadID sets the "upload_id" field.
func (_c *IngestionJobCreate) SetUploadID(v uuid.UUID) *IngestionJobCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableUploadID(v *uuid.UUID) *IngestionJobCreate {
	if v != nil {
		_c.SetUploadID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *IngestionJobCreate) SetMetadata(v json.RawMessage) *IngestionJobCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestionJobCreate) SetStatus(v string) *IngestionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAgentResponse sets the "agent_response" field.
func (_c *IngestionJobCreate) SetAgentResponse(v string) *IngestionJobCreate {
	_c.mutation.SetAgentResponse(v)
	return _c
}

// SetNillableAgentResponse sets the "agent_response" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableAgentResponse(v *string) *IngestionJobCreate {
	if v != nil {
		_c.SetAgentResponse(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *IngestionJobCreate) SetResultSummary(v string) *IngestionJobCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableResultSummary(v *string) *IngestionJobCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *IngestionJobCreate) SetLastError(v string) *IngestionJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableLastError(v *string) *IngestionJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestionJobCreate) SetCreatedAt(v time.Time) *IngestionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableCreatedAt(v *time.Time) *IngestionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestionJobCreate) SetFinishedAt(v time.Time) *IngestionJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableFinishedAt(v *time.Time) *IngestionJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IngestionJobCreate) SetUpdatedAt(v time.Time) *IngestionJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableUpdatedAt(v *time.Time) *IngestionJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestionJobCreate) SetID(v uuid.UUID) *IngestionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestionJobCreate) SetNillableID(v *uuid.UUID) *IngestionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IngestionJobMutation object of the builder.
func (_c *IngestionJobCreate) Mutation() *IngestionJobMutation {
	return _c.mutation
}

// Save creates the IngestionJob in the database.
func (_c *IngestionJobCreate) Save(ctx context.Context) (*IngestionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestionJobCreate) SaveX(ctx context.Context) *IngestionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestionJobCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ingestionjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestionJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IngestionJob.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := ingestionjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IngestionJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IngestionJob.updated_at"`)}
	}
	return nil
}

func (_c *IngestionJobCreate) sqlSave(ctx context.Context) (*IngestionJob, error) {
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

func (_c *IngestionJobCreate) createSpec() (*IngestionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestionjob.Table, sqlgraph.NewFieldSpec(ingestionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(ingestionjob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(ingestionjob.FieldInputText, field.TypeString, value)
		_node.InputText = &value
	}
	if value, ok := _c.mutation.UploadID(); ok {
		_spec.SetField(ingestionjob.FieldUploadID, field.TypeUUID, value)
		_node.UploadID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(ingestionjob.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentResponse(); ok {
		_spec.SetField(ingestionjob.FieldAgentResponse, field.TypeString, value)
		_node.AgentResponse = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(ingestionjob.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(ingestionjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestionjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IngestionJobCreateBulk is the builder for creating many IngestionJob entities in bulk.
type IngestionJobCreateBulk struct {
	config
	err      error
	builders []*IngestionJobCreate
}

// Save creates the IngestionJob entities in the database.
func (_c *IngestionJobCreateBulk) Save(ctx context.Context) ([]*IngestionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestionJobMutation)
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
func (_c *IngestionJobCreateBulk) SaveX(ctx context.Context) []*IngestionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
