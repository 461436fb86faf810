package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/gen/ent"
	entupload "github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
	"github.com/pantryops/pantryd/internal/upload"
)

// UploadRepository persists uploads and their worker jobs. It also finalizes
// uploads for the ingestion runner, which knows only the ingestion job id.
type UploadRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUploadRepository(client *ent.Client, logger *slog.Logger) *UploadRepository {
	return &UploadRepository{client: client, logger: logger}
}

func (r *UploadRepository) CreateUpload(ctx context.Context, u upload.Upload) (upload.Upload, error) {
	builder := r.client.Upload.Create().
		SetUserID(u.UserID).
		SetFilename(u.Filename).
		SetOriginalFilename(u.OriginalFilename).
		SetContentType(u.ContentType).
		SetSourceType(string(u.SourceType)).
		SetStoragePath(u.StoragePath).
		SetBucket(u.Bucket).
		SetStatus(string(u.Status)).
		SetNillableSizeBytes(u.SizeBytes)
	if u.ID != uuid.Nil {
		builder = builder.SetID(u.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create upload", "user_id", u.UserID, "error", err)
		return upload.Upload{}, err
	}
	return toUpload(row), nil
}

func (r *UploadRepository) GetUpload(ctx context.Context, id uuid.UUID) (upload.Upload, error) {
	row, err := r.client.Upload.Get(ctx, id)
	if err != nil {
		return upload.Upload{}, err
	}
	return toUpload(row), nil
}

// TransitionUpload flips status only when the row still holds the expected
// from-state. The affected-row count is the compare-and-swap result.
func (r *UploadRepository) TransitionUpload(ctx context.Context, id uuid.UUID, from, to constants.UploadStatus) (bool, error) {
	n, err := r.client.Upload.Update().
		Where(entupload.IDEQ(id), entupload.StatusEQ(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UploadRepository) SetProcessingJob(ctx context.Context, id, jobID uuid.UUID) error {
	return r.client.Upload.UpdateOneID(id).SetProcessingJobID(jobID).Exec(ctx)
}

func (r *UploadRepository) AttachIngestion(ctx context.Context, id, ingestionJobID uuid.UUID, textPreview string) error {
	builder := r.client.Upload.UpdateOneID(id).SetIngestionJobID(ingestionJobID)
	if textPreview != "" {
		builder = builder.SetTextPreview(textPreview)
	}
	return builder.Exec(ctx)
}

func (r *UploadRepository) CreateJob(ctx context.Context, j upload.Job) (upload.Job, error) {
	row, err := r.client.UploadJob.Create().
		SetUploadID(j.UploadID).
		SetUserID(j.UserID).
		SetStoragePath(j.StoragePath).
		SetBucket(j.Bucket).
		SetContentType(j.ContentType).
		SetSourceType(string(j.SourceType)).
		SetStatus(string(j.Status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create upload job", "upload_id", j.UploadID, "error", err)
		return upload.Job{}, err
	}
	return toUploadJob(row), nil
}

func (r *UploadRepository) GetJob(ctx context.Context, id uuid.UUID) (upload.Job, error) {
	row, err := r.client.UploadJob.Get(ctx, id)
	if err != nil {
		return upload.Job{}, err
	}
	return toUploadJob(row), nil
}

func (r *UploadRepository) UpdateJobStatus(ctx context.Context, id uuid.UUID, status constants.UploadJobStatus, lastError *string) error {
	builder := r.client.UploadJob.UpdateOneID(id).SetStatus(string(status))
	if lastError != nil {
		builder = builder.SetLastError(*lastError)
	}
	return builder.Exec(ctx)
}

func (r *UploadRepository) IncrementJobAttempts(ctx context.Context, id uuid.UUID) error {
	return r.client.UploadJob.UpdateOneID(id).AddAttempts(1).Exec(ctx)
}

// FinalizeForIngestion resolves the upload attached to an ingestion job and
// writes its terminal state. Called by the ingestion runner only; the guarded
// transition keeps a late finalize from clobbering anything.
func (r *UploadRepository) FinalizeForIngestion(ctx context.Context, ingestionJobID uuid.UUID, success bool, lastError string) error {
	row, err := r.client.Upload.Query().
		Where(entupload.IngestionJobIDEQ(ingestionJobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("no upload attached to ingestion job %s", ingestionJobID)
		}
		return err
	}

	to := constants.UploadStatusCompleted
	if !success {
		to = constants.UploadStatusFailed
	}
	ok, err := r.TransitionUpload(ctx, row.ID, constants.UploadStatusProcessing, to)
	if err != nil {
		return err
	}
	if !ok {
		r.logger.Warn("upload finalize skipped, not in processing", "upload_id", row.ID, "target", string(to))
		return nil
	}
	if lastError != "" {
		if err := r.client.Upload.UpdateOneID(row.ID).SetLastError(lastError).Exec(ctx); err != nil {
			r.logger.Warn("failed to record upload error", "upload_id", row.ID, "error", err)
		}
	}
	return nil
}

// JobsInState lists job ids in the given state, oldest first. The daemon uses
// it to re-enqueue work that was queued when the process last stopped.
func (r *UploadRepository) JobsInState(ctx context.Context, status constants.UploadJobStatus, limit int) ([]upload.Job, error) {
	rows, err := r.client.UploadJob.Query().
		Where(uploadjob.StatusEQ(string(status))).
		Order(uploadjob.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]upload.Job, len(rows))
	for i, row := range rows {
		jobs[i] = toUploadJob(row)
	}
	return jobs, nil
}

func toUpload(row *ent.Upload) upload.Upload {
	return upload.Upload{
		ID:               row.ID,
		UserID:           row.UserID,
		Filename:         row.Filename,
		OriginalFilename: row.OriginalFilename,
		ContentType:      row.ContentType,
		SizeBytes:        row.SizeBytes,
		SourceType:       constants.SourceType(row.SourceType),
		StoragePath:      row.StoragePath,
		Bucket:           row.Bucket,
		Status:           constants.UploadStatus(row.Status),
		LastError:        row.LastError,
		ProcessingJobID:  row.ProcessingJobID,
		IngestionJobID:   row.IngestionJobID,
		TextPreview:      row.TextPreview,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toUploadJob(row *ent.UploadJob) upload.Job {
	return upload.Job{
		ID:          row.ID,
		UploadID:    row.UploadID,
		UserID:      row.UserID,
		StoragePath: row.StoragePath,
		Bucket:      row.Bucket,
		ContentType: row.ContentType,
		SourceType:  constants.SourceType(row.SourceType),
		Status:      constants.UploadJobStatus(row.Status),
		Attempts:    row.Attempts,
		LastError:   row.LastError,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
