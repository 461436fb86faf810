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

// UploadCreate is the builder for creating a Upload entity.
type UploadCreate struct {
	config
	mutation *UploadMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UploadCreate) SetUserID(v string) *UploadCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *UploadCreate) SetFilename(v string) *UploadCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *UploadCreate) SetOriginalFilename(v string) *UploadCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *UploadCreate) SetContentType(v string) *UploadCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *UploadCreate) SetSizeBytes(v int64) *UploadCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *UploadCreate) SetNillableSizeBytes(v *int64) *UploadCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *UploadCreate) SetSourceType(v string) *UploadCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *UploadCreate) SetStoragePath(v string) *UploadCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *UploadCreate) SetBucket(v string) *UploadCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadCreate) SetStatus(v string) *UploadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *UploadCreate) SetLastError(v string) *UploadCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *UploadCreate) SetNillableLastError(v *string) *UploadCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetProcessingJobID sets the "processing_job_id" field.
func (_c *UploadCreate) SetProcessingJobID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetProcessingJobID(v)
	return _c
}

// SetNillableProcessingJobID sets the "processing_job_id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableProcessingJobID(v *uuid.UUID) *UploadCreate {
	if v != nil {
		_c.SetProcessingJobID(*v)
	}
	return _c
}

// SetIngestionJobID sets the "ingestion_job_id" field.
func (_c *UploadCreate) SetIngestionJobID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetIngestionJobID(v)
	return _c
}

// SetNillableIngestionJobID sets the "ingestion_job_id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableIngestionJobID(v *uuid.UUID) *UploadCreate {
	if v != nil {
		_c.SetIngestionJobID(*v)
	}
	return _c
}

// SetTextPreview sets the "text_preview" field.
func (_c *UploadCreate) SetTextPreview(v string) *UploadCreate {
	_c.mutation.SetTextPreview(v)
	return _c
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_c *UploadCreate) SetNillableTextPreview(v *string) *UploadCreate {
	if v != nil {
		_c.SetTextPreview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadCreate) SetCreatedAt(v time.Time) *UploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableCreatedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadCreate) SetUpdatedAt(v time.Time) *UploadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableUpdatedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadCreate) SetID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableID(v *uuid.UUID) *UploadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (_c *UploadCreate) AddJobIDs(ids ...uuid.UUID) *UploadCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (_c *UploadCreate) AddJobs(v ...*UploadJob) *UploadCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_c *UploadCreate) Mutation() *UploadMutation {
	return _c.mutation
}

// Save creates the Upload in the database.
func (_c *UploadCreate) Save(ctx context.Context) (*Upload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadCreate) SaveX(ctx context.Context) *Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := upload.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := upload.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Upload.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := upload.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Upload.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Upload.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Upload.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := upload.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Upload.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "Upload.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := upload.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "Upload.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Upload.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := upload.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Upload.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Upload.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := upload.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Upload.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "Upload.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := upload.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Upload.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Upload.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := upload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Upload.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Upload.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Upload.updated_at"`)}
	}
	return nil
}

func (_c *UploadCreate) sqlSave(ctx context.Context) (*Upload, error) {
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

func (_c *UploadCreate) createSpec() (*Upload, *sqlgraph.CreateSpec) {
	var (
		_node = &Upload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upload.Table, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(upload.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(upload.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(upload.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(upload.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(upload.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(upload.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(upload.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ProcessingJobID(); ok {
		_spec.SetField(upload.FieldProcessingJobID, field.TypeUUID, value)
		_node.ProcessingJobID = &value
	}
	if value, ok := _c.mutation.IngestionJobID(); ok {
		_spec.SetField(upload.FieldIngestionJobID, field.TypeUUID, value)
		_node.IngestionJobID = &value
	}
	if value, ok := _c.mutation.TextPreview(); ok {
		_spec.SetField(upload.FieldTextPreview, field.TypeString, value)
		_node.TextPreview = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadCreateBulk is the builder for creating many Upload entities in bulk.
type UploadCreateBulk struct {
	config
	err      error
	builders []*UploadCreate
}

// Save creates the Upload entities in the database.
func (_c *UploadCreateBulk) Save(ctx context.Context) ([]*Upload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Upload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadMutation)
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
func (_c *UploadCreateBulk) SaveX(ctx context.Context) []*Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
