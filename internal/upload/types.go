package upload

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
)

// Upload is the domain view of one uploads row.
type Upload struct {
	ID               uuid.UUID
	UserID           string
	Filename         string
	OriginalFilename string
	ContentType      string
	SizeBytes        *int64
	SourceType       constants.SourceType
	StoragePath      string
	Bucket           string
	Status           constants.UploadStatus
	LastError        *string
	ProcessingJobID  *uuid.UUID
	IngestionJobID   *uuid.UUID
	TextPreview      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Job is the worker-side record consumed by the processor queue.
type Job struct {
	ID          uuid.UUID
	UploadID    uuid.UUID
	UserID      string
	StoragePath string
	Bucket      string
	ContentType string
	SourceType  constants.SourceType
	Status      constants.UploadJobStatus
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repo is the persistence surface for uploads and their jobs. Transition is
// guarded: it succeeds only when the row is still in the expected from-state,
// so each state has exactly one producer.
type Repo interface {
	CreateUpload(ctx context.Context, u Upload) (Upload, error)
	GetUpload(ctx context.Context, id uuid.UUID) (Upload, error)
	TransitionUpload(ctx context.Context, id uuid.UUID, from, to constants.UploadStatus) (bool, error)
	SetProcessingJob(ctx context.Context, id, jobID uuid.UUID) error
	AttachIngestion(ctx context.Context, id, ingestionJobID uuid.UUID, textPreview string) error

	CreateJob(ctx context.Context, j Job) (Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (Job, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status constants.UploadJobStatus, lastError *string) error
	IncrementJobAttempts(ctx context.Context, id uuid.UUID) error
}

// Reservation is what a reserve call hands back to the client.
type Reservation struct {
	UploadID     uuid.UUID
	StoragePath  string
	Bucket       string
	UploadURL    string
	URLExpiresAt time.Time
	Status       constants.UploadStatus
}
