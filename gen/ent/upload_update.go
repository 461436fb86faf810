// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
	"github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
)

// UploadUpdate is the builder for updating Upload entities.
type UploadUpdate struct {
	config
	hooks    []Hook
	mutation *UploadMutation
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdate) Where(ps ...predicate.Upload) *UploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadUpdate) SetUserID(v string) *UploadUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableUserID(v *string) *UploadUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdate) SetFilename(v string) *UploadUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFilename(v *string) *UploadUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadUpdate) SetOriginalFilename(v string) *UploadUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableOriginalFilename(v *string) *UploadUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadUpdate) SetContentType(v string) *UploadUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableContentType(v *string) *UploadUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *UploadUpdate) SetSizeBytes(v int64) *UploadUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableSizeBytes(v *int64) *UploadUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *UploadUpdate) AddSizeBytes(v int64) *UploadUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *UploadUpdate) ClearSizeBytes() *UploadUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *UploadUpdate) SetSourceType(v string) *UploadUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableSourceType(v *string) *UploadUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadUpdate) SetStoragePath(v string) *UploadUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableStoragePath(v *string) *UploadUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *UploadUpdate) SetBucket(v string) *UploadUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableBucket(v *string) *UploadUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadUpdate) SetStatus(v string) *UploadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableStatus(v *string) *UploadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *UploadUpdate) SetLastError(v string) *UploadUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableLastError(v *string) *UploadUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *UploadUpdate) ClearLastError() *UploadUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetProcessingJobID sets the "processing_job_id" field.
func (_u *UploadUpdate) SetProcessingJobID(v uuid.UUID) *UploadUpdate {
	_u.mutation.SetProcessingJobID(v)
	return _u
}

// SetNillableProcessingJobID sets the "processing_job_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableProcessingJobID(v *uuid.UUID) *UploadUpdate {
	if v != nil {
		_u.SetProcessingJobID(*v)
	}
	return _u
}

// ClearProcessingJobID clears the value of the "processing_job_id" field.
func (_u *UploadUpdate) ClearProcessingJobID() *UploadUpdate {
	_u.mutation.ClearProcessingJobID()
	return _u
}

// SetIngestionJobID sets the "ingestion_job_id" field.
func (_u *UploadUpdate) SetIngestionJobID(v uuid.UUID) *UploadUpdate {
	_u.mutation.SetIngestionJobID(v)
	return _u
}

// SetNillableIngestionJobID sets the "ingestion_job_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableIngestionJobID(v *uuid.UUID) *UploadUpdate {
	if v != nil {
		_u.SetIngestionJobID(*v)
	}
	return _u
}

// ClearIngestionJobID clears the value of the "ingestion_job_id" field.
func (_u *UploadUpdate) ClearIngestionJobID() *UploadUpdate {
	_u.mutation.ClearIngestionJobID()
	return _u
}

// SetTextPreview sets the "text_preview" field.
func (_u *UploadUpdate) SetTextPreview(v string) *UploadUpdate {
	_u.mutation.SetTextPreview(v)
	return _u
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableTextPreview(v *string) *UploadUpdate {
	if v != nil {
		_u.SetTextPreview(*v)
	}
	return _u
}

// ClearTextPreview clears the value of the "text_preview" field.
func (_u *UploadUpdate) ClearTextPreview() *UploadUpdate {
	_u.mutation.ClearTextPreview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadUpdate) SetUpdatedAt(v time.Time) *UploadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (_u *UploadUpdate) AddJobIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (_u *UploadUpdate) AddJobs(v ...*UploadJob) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdate) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the UploadJob entity.
func (_u *UploadUpdate) ClearJobs() *UploadUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to UploadJob entities by IDs.
func (_u *UploadUpdate) RemoveJobIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to UploadJob entities.
func (_u *UploadUpdate) RemoveJobs(v ...*UploadJob) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := upload.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Upload.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := upload.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Upload.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := upload.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "Upload.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := upload.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Upload.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := upload.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Upload.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := upload.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Upload.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Upload.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(upload.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(upload.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(upload.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(upload.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(upload.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(upload.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(upload.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(upload.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(upload.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(upload.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingJobID(); ok {
		_spec.SetField(upload.FieldProcessingJobID, field.TypeUUID, value)
	}
	if _u.mutation.ProcessingJobIDCleared() {
		_spec.ClearField(upload.FieldProcessingJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IngestionJobID(); ok {
		_spec.SetField(upload.FieldIngestionJobID, field.TypeUUID, value)
	}
	if _u.mutation.IngestionJobIDCleared() {
		_spec.ClearField(upload.FieldIngestionJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TextPreview(); ok {
		_spec.SetField(upload.FieldTextPreview, field.TypeString, value)
	}
	if _u.mutation.TextPreviewCleared() {
		_spec.ClearField(upload.FieldTextPreview, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadUpdateOne is the builder for updating a single Upload entity.
type UploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadMutation
}

// SetUserID sets the "user_id" field.
func (_u *UploadUpdateOne) SetUserID(v string) *UploadUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableUserID(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdateOne) SetFilename(v string) *UploadUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFilename(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadUpdateOne) SetOriginalFilename(v string) *UploadUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableOriginalFilename(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadUpdateOne) SetContentType(v string) *UploadUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableContentType(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *UploadUpdateOne) SetSizeBytes(v int64) *UploadUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableSizeBytes(v *int64) *UploadUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *UploadUpdateOne) AddSizeBytes(v int64) *UploadUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *UploadUpdateOne) ClearSizeBytes() *UploadUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *UploadUpdateOne) SetSourceType(v string) *UploadUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableSourceType(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadUpdateOne) SetStoragePath(v string) *UploadUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableStoragePath(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *UploadUpdateOne) SetBucket(v string) *UploadUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableBucket(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadUpdateOne) SetStatus(v string) *UploadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableStatus(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *UploadUpdateOne) SetLastError(v string) *UploadUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableLastError(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *UploadUpdateOne) ClearLastError() *UploadUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetProcessingJobID sets the "processing_job_id" field.
func (_u *UploadUpdateOne) SetProcessingJobID(v uuid.UUID) *UploadUpdateOne {
	_u.mutation.SetProcessingJobID(v)
	return _u
}

// SetNillableProcessingJobID sets the "processing_job_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableProcessingJobID(v *uuid.UUID) *UploadUpdateOne {
	if v != nil {
		_u.SetProcessingJobID(*v)
	}
	return _u
}

// ClearProcessingJobID clears the value of the "processing_job_id" field.
func (_u *UploadUpdateOne) ClearProcessingJobID() *UploadUpdateOne {
	_u.mutation.ClearProcessingJobID()
	return _u
}

// SetIngestionJobID sets the "ingestion_job_id" field.
func (_u *UploadUpdateOne) SetIngestionJobID(v uuid.UUID) *UploadUpdateOne {
	_u.mutation.SetIngestionJobID(v)
	return _u
}

// SetNillableIngestionJobID sets the "ingestion_job_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableIngestionJobID(v *uuid.UUID) *UploadUpdateOne {
	if v != nil {
		_u.SetIngestionJobID(*v)
	}
	return _u
}

// ClearIngestionJobID clears the value of the "ingestion_job_id" field.
func (_u *UploadUpdateOne) ClearIngestionJobID() *UploadUpdateOne {
	_u.mutation.ClearIngestionJobID()
	return _u
}

// SetTextPreview sets the "text_preview" field.
func (_u *UploadUpdateOne) SetTextPreview(v string) *UploadUpdateOne {
	_u.mutation.SetTextPreview(v)
	return _u
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableTextPreview(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetTextPreview(*v)
	}
	return _u
}

// ClearTextPreview clears the value of the "text_preview" field.
func (_u *UploadUpdateOne) ClearTextPreview() *UploadUpdateOne {
	_u.mutation.ClearTextPreview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadUpdateOne) SetUpdatedAt(v time.Time) *UploadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (_u *UploadUpdateOne) AddJobIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (_u *UploadUpdateOne) AddJobs(v ...*UploadJob) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdateOne) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the UploadJob entity.
func (_u *UploadUpdateOne) ClearJobs() *UploadUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to UploadJob entities by IDs.
func (_u *UploadUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to UploadJob entities.
func (_u *UploadUpdateOne) RemoveJobs(v ...*UploadJob) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdateOne) Where(ps ...predicate.Upload) *UploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadUpdateOne) Select(field string, fields ...string) *UploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Upload entity.
func (_u *UploadUpdateOne) Save(ctx context.Context) (*Upload, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdateOne) SaveX(ctx context.Context) *Upload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := upload.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Upload.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := upload.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Upload.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := upload.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "Upload.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := upload.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Upload.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := upload.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Upload.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := upload.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Upload.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Upload.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdateOne) sqlSave(ctx context.Context) (_node *Upload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Upload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upload.FieldID)
		for _, f := range fields {
			if !upload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upload.FieldID {
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
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(upload.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(upload.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(upload.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(upload.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(upload.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(upload.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(upload.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(upload.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(upload.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(upload.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingJobID(); ok {
		_spec.SetField(upload.FieldProcessingJobID, field.TypeUUID, value)
	}
	if _u.mutation.ProcessingJobIDCleared() {
		_spec.ClearField(upload.FieldProcessingJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IngestionJobID(); ok {
		_spec.SetField(upload.FieldIngestionJobID, field.TypeUUID, value)
	}
	if _u.mutation.IngestionJobIDCleared() {
		_spec.ClearField(upload.FieldIngestionJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TextPreview(); ok {
		_spec.SetField(upload.FieldTextPreview, field.TypeString, value)
	}
	if _u.mutation.TextPreviewCleared() {
		_spec.ClearField(upload.FieldTextPreview, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Upload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
