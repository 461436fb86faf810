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

// UploadJobUpdate is the builder for updating UploadJob entities.
type UploadJobUpdate struct {
	config
	hooks    []Hook
	mutation *UploadJobMutation
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdate) Where(ps ...predicate.UploadJob) *UploadJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *UploadJobUpdate) SetUploadID(v uuid.UUID) *UploadJobUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableUploadID(v *uuid.UUID) *UploadJobUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadJobUpdate) SetUserID(v string) *UploadJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableUserID(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadJobUpdate) SetStoragePath(v string) *UploadJobUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableStoragePath(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *UploadJobUpdate) SetBucket(v string) *UploadJobUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableBucket(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadJobUpdate) SetContentType(v string) *UploadJobUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableContentType(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *UploadJobUpdate) SetSourceType(v string) *UploadJobUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableSourceType(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdate) SetStatus(v string) *UploadJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableStatus(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *UploadJobUpdate) SetAttempts(v int) *UploadJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableAttempts(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *UploadJobUpdate) AddAttempts(v int) *UploadJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *UploadJobUpdate) SetLastError(v string) *UploadJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableLastError(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *UploadJobUpdate) ClearLastError() *UploadJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadJobUpdate) SetUpdatedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *UploadJobUpdate) SetUpload(v *Upload) *UploadJobUpdate {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdate) Mutation() *UploadJobMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *UploadJobUpdate) ClearUpload() *UploadJobUpdate {
	_u.mutation.ClearUpload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := uploadjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := uploadjob.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := uploadjob.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "UploadJob.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := uploadjob.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := uploadjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := uploadjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "UploadJob.attempts": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadJob.upload"`)
	}
	return nil
}

func (_u *UploadJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(uploadjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(uploadjob.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(uploadjob.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(uploadjob.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(uploadjob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(uploadjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(uploadjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(uploadjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(uploadjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadJobUpdateOne is the builder for updating a single UploadJob entity.
type UploadJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadJobMutation
}

// SetUploadID sets the "upload_id" field.
func (_u *UploadJobUpdateOne) SetUploadID(v uuid.UUID) *UploadJobUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableUploadID(v *uuid.UUID) *UploadJobUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadJobUpdateOne) SetUserID(v string) *UploadJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableUserID(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadJobUpdateOne) SetStoragePath(v string) *UploadJobUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableStoragePath(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *UploadJobUpdateOne) SetBucket(v string) *UploadJobUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableBucket(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadJobUpdateOne) SetContentType(v string) *UploadJobUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableContentType(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *UploadJobUpdateOne) SetSourceType(v string) *UploadJobUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableSourceType(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdateOne) SetStatus(v string) *UploadJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableStatus(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *UploadJobUpdateOne) SetAttempts(v int) *UploadJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableAttempts(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *UploadJobUpdateOne) AddAttempts(v int) *UploadJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *UploadJobUpdateOne) SetLastError(v string) *UploadJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableLastError(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *UploadJobUpdateOne) ClearLastError() *UploadJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadJobUpdateOne) SetUpdatedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *UploadJobUpdateOne) SetUpload(v *Upload) *UploadJobUpdateOne {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdateOne) Mutation() *UploadJobMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *UploadJobUpdateOne) ClearUpload() *UploadJobUpdateOne {
	_u.mutation.ClearUpload()
	return _u
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdateOne) Where(ps ...predicate.UploadJob) *UploadJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadJobUpdateOne) Select(field string, fields ...string) *UploadJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadJob entity.
func (_u *UploadJobUpdateOne) Save(ctx context.Context) (*UploadJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdateOne) SaveX(ctx context.Context) *UploadJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := uploadjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := uploadjob.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := uploadjob.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "UploadJob.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := uploadjob.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := uploadjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := uploadjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "UploadJob.attempts": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadJob.upload"`)
	}
	return nil
}

func (_u *UploadJobUpdateOne) sqlSave(ctx context.Context) (_node *UploadJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadjob.FieldID)
		for _, f := range fields {
			if !uploadjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadjob.FieldID {
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
		_spec.SetField(uploadjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(uploadjob.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(uploadjob.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(uploadjob.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(uploadjob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(uploadjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(uploadjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(uploadjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(uploadjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
