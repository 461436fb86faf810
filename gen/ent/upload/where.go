// Code generated by ent, DO NOT EDIT.

package upload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUserID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOriginalFilename, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldContentType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSizeBytes, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSourceType, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStoragePath, v))
}

// Bucket applies equality check predicate on the "bucket" field. It's identical to BucketEQ.
func Bucket(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldBucket, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStatus, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldLastError, v))
}

// ProcessingJobID applies equality check predicate on the "processing_job_id" field. It's identical to ProcessingJobIDEQ.
func ProcessingJobID(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessingJobID, v))
}

// IngestionJobID applies equality check predicate on the "ingestion_job_id" field. It's identical to IngestionJobIDEQ.
func IngestionJobID(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldIngestionJobID, v))
}

// TextPreview applies equality check predicate on the "text_preview" field. It's identical to TextPreviewEQ.
func TextPreview(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldTextPreview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldUserID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldFilename, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldContentType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldSizeBytes, v))
}

// SizeBytesIsNil applies the IsNil predicate on the "size_bytes" field.
func SizeBytesIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldSizeBytes))
}

// SizeBytesNotNil applies the NotNil predicate on the "size_bytes" field.
func SizeBytesNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldSizeBytes))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldSourceType, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldStoragePath, v))
}

// BucketEQ applies the EQ predicate on the "bucket" field.
func BucketEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldBucket, v))
}

// BucketNEQ applies the NEQ predicate on the "bucket" field.
func BucketNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldBucket, v))
}

// BucketIn applies the In predicate on the "bucket" field.
func BucketIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldBucket, vs...))
}

// BucketNotIn applies the NotIn predicate on the "bucket" field.
func BucketNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldBucket, vs...))
}

// BucketGT applies the GT predicate on the "bucket" field.
func BucketGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldBucket, v))
}

// BucketGTE applies the GTE predicate on the "bucket" field.
func BucketGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldBucket, v))
}

// BucketLT applies the LT predicate on the "bucket" field.
func BucketLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldBucket, v))
}

// BucketLTE applies the LTE predicate on the "bucket" field.
func BucketLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldBucket, v))
}

// BucketContains applies the Contains predicate on the "bucket" field.
func BucketContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldBucket, v))
}

// BucketHasPrefix applies the HasPrefix predicate on the "bucket" field.
func BucketHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldBucket, v))
}

// BucketHasSuffix applies the HasSuffix predicate on the "bucket" field.
func BucketHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldBucket, v))
}

// BucketEqualFold applies the EqualFold predicate on the "bucket" field.
func BucketEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldBucket, v))
}

// BucketContainsFold applies the ContainsFold predicate on the "bucket" field.
func BucketContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldBucket, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldStatus, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldLastError, v))
}

// ProcessingJobIDEQ applies the EQ predicate on the "processing_job_id" field.
func ProcessingJobIDEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessingJobID, v))
}

// ProcessingJobIDNEQ applies the NEQ predicate on the "processing_job_id" field.
func ProcessingJobIDNEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldProcessingJobID, v))
}

// ProcessingJobIDIn applies the In predicate on the "processing_job_id" field.
func ProcessingJobIDIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldProcessingJobID, vs...))
}

// ProcessingJobIDNotIn applies the NotIn predicate on the "processing_job_id" field.
func ProcessingJobIDNotIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldProcessingJobID, vs...))
}

// ProcessingJobIDGT applies the GT predicate on the "processing_job_id" field.
func ProcessingJobIDGT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldProcessingJobID, v))
}

// ProcessingJobIDGTE applies the GTE predicate on the "processing_job_id" field.
func ProcessingJobIDGTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldProcessingJobID, v))
}

// ProcessingJobIDLT applies the LT predicate on the "processing_job_id" field.
func ProcessingJobIDLT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldProcessingJobID, v))
}

// ProcessingJobIDLTE applies the LTE predicate on the "processing_job_id" field.
func ProcessingJobIDLTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldProcessingJobID, v))
}

// ProcessingJobIDIsNil applies the IsNil predicate on the "processing_job_id" field.
func ProcessingJobIDIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldProcessingJobID))
}

// ProcessingJobIDNotNil applies the NotNil predicate on the "processing_job_id" field.
func ProcessingJobIDNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldProcessingJobID))
}

// IngestionJobIDEQ applies the EQ predicate on the "ingestion_job_id" field.
func IngestionJobIDEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldIngestionJobID, v))
}

// IngestionJobIDNEQ applies the NEQ predicate on the "ingestion_job_id" field.
func IngestionJobIDNEQ(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldIngestionJobID, v))
}

// IngestionJobIDIn applies the In predicate on the "ingestion_job_id" field.
func IngestionJobIDIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldIngestionJobID, vs...))
}

// IngestionJobIDNotIn applies the NotIn predicate on the "ingestion_job_id" field.
func IngestionJobIDNotIn(vs ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldIngestionJobID, vs...))
}

// IngestionJobIDGT applies the GT predicate on the "ingestion_job_id" field.
func IngestionJobIDGT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldIngestionJobID, v))
}

// IngestionJobIDGTE applies the GTE predicate on the "ingestion_job_id" field.
func IngestionJobIDGTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldIngestionJobID, v))
}

// IngestionJobIDLT applies the LT predicate on the "ingestion_job_id" field.
func IngestionJobIDLT(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldIngestionJobID, v))
}

// IngestionJobIDLTE applies the LTE predicate on the "ingestion_job_id" field.
func IngestionJobIDLTE(v uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldIngestionJobID, v))
}

// IngestionJobIDIsNil applies the IsNil predicate on the "ingestion_job_id" field.
func IngestionJobIDIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldIngestionJobID))
}

// IngestionJobIDNotNil applies the NotNil predicate on the "ingestion_job_id" field.
func IngestionJobIDNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldIngestionJobID))
}

// TextPreviewEQ applies the EQ predicate on the "text_preview" field.
func TextPreviewEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldTextPreview, v))
}

// TextPreviewNEQ applies the NEQ predicate on the "text_preview" field.
func TextPreviewNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldTextPreview, v))
}

// TextPreviewIn applies the In predicate on the "text_preview" field.
func TextPreviewIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldTextPreview, vs...))
}

// TextPreviewNotIn applies the NotIn predicate on the "text_preview" field.
func TextPreviewNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldTextPreview, vs...))
}

// TextPreviewGT applies the GT predicate on the "text_preview" field.
func TextPreviewGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldTextPreview, v))
}

// TextPreviewGTE applies the GTE predicate on the "text_preview" field.
func TextPreviewGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldTextPreview, v))
}

// TextPreviewLT applies the LT predicate on the "text_preview" field.
func TextPreviewLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldTextPreview, v))
}

// TextPreviewLTE applies the LTE predicate on the "text_preview" field.
func TextPreviewLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldTextPreview, v))
}

// TextPreviewContains applies the Contains predicate on the "text_preview" field.
func TextPreviewContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldTextPreview, v))
}

// TextPreviewHasPrefix applies the HasPrefix predicate on the "text_preview" field.
func TextPreviewHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldTextPreview, v))
}

// TextPreviewHasSuffix applies the HasSuffix predicate on the "text_preview" field.
func TextPreviewHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldTextPreview, v))
}

// TextPreviewIsNil applies the IsNil predicate on the "text_preview" field.
func TextPreviewIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldTextPreview))
}

// TextPreviewNotNil applies the NotNil predicate on the "text_preview" field.
func TextPreviewNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldTextPreview))
}

// TextPreviewEqualFold applies the EqualFold predicate on the "text_preview" field.
func TextPreviewEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldTextPreview, v))
}

// TextPreviewContainsFold applies the ContainsFold predicate on the "text_preview" field.
func TextPreviewContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldTextPreview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.UploadJob) predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.NotPredicates(p))
}
