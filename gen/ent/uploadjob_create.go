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
	"github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
)

// UploadJobCreate is the builder for creating a UploadJob entity.
type UploadJobCreate struct {
	config
	mutation *UploadJobMutation
	hooks    []Hook
}

// SetUploadID sets the "upload_id" field.
func (_c *UploadJobCreate) SetUploadID(v uuid.UUID) *UploadJobCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UploadJobCreate) SetUserID(v string) *UploadJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *UploadJobCreate) SetStoragePath(v string) *UploadJobCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *UploadJobCreate) SetBucket(v string) *UploadJobCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *UploadJobCreate) SetContentType(v string) *UploadJobCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *UploadJobCreate) SetSourceType(v string) *UploadJobCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadJobCreate) SetStatus(v string) *UploadJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *UploadJobCreate) SetAttempts(v int) *UploadJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableAttempts(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *UploadJobCreate) SetLastError(v string) *UploadJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableLastError(v *string) *UploadJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadJobCreate) SetCreatedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCreatedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadJobCreate) SetUpdatedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableUpdatedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadJobCreate) SetID(v uuid.UUID) *UploadJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableID(v *uuid.UUID) *UploadJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_c *UploadJobCreate) SetUpload(v *Upload) *UploadJobCreate {
	return _c.SetUploadID(v.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_c *UploadJobCreate) Mutation() *UploadJobMutation {
	return _c.mutation
}

// Save creates the UploadJob in the database.
func (_c *UploadJobCreate) Save(ctx context.Context) (*UploadJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadJobCreate) SaveX(ctx context.Context) *UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadJobCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := uploadjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uploadjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadJobCreate) check() error {
	if _, ok := _c.mutation.UploadID(); !ok {
		return &ValidationError{Name: "upload_id", err: errors.New(`ent: missing required field "UploadJob.upload_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UploadJob.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := uploadjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "UploadJob.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := uploadjob.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "UploadJob.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := uploadjob.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "UploadJob.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "UploadJob.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := uploadjob.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "UploadJob.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := uploadjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "UploadJob.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := uploadjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "UploadJob.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UploadJob.updated_at"`)}
	}
	if len(_c.mutation.UploadIDs()) == 0 {
		return &ValidationError{Name: "upload", err: errors.New(`ent: missing required edge "UploadJob.upload"`)}
	}
	return nil
}

func (_c *UploadJobCreate) sqlSave(ctx context.Context) (*UploadJob, error) {
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

func (_c *UploadJobCreate) createSpec() (*UploadJob, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadjob.Table, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(uploadjob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(uploadjob.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(uploadjob.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(uploadjob.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(uploadjob.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(uploadjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(uploadjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadjob.UploadTable,
			Columns: []string{uploadjob.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UploadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadJobCreateBulk is the builder for creating many UploadJob entities in bulk.
type UploadJobCreateBulk struct {
	config
	err      error
	builders []*UploadJobCreate
}

// Save creates the UploadJob entities in the database.
func (_c *UploadJobCreateBulk) Save(ctx context.Context) ([]*UploadJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadJobMutation)
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
func (_c *UploadJobCreateBulk) SaveX(ctx context.Context) []*UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
