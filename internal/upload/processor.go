package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/storage"
)

const previewLen = 200

// IngestionStarter creates and runs the ingestion job once text is in hand.
type IngestionStarter interface {
	CreateFromUpload(ctx context.Context, userID string, uploadID uuid.UUID, text string, metadata json.RawMessage) (uuid.UUID, error)
	ExecuteJob(ctx context.Context, jobID uuid.UUID) error
}

// Processor is the worker-side half of the upload pipeline. It owns the job
// from queued through awaiting_parser: download, text extraction, ingestion
// handoff. Terminal upload states for a started ingestion belong to the job
// runner; the processor writes failed only for pre-ingestion errors.
type Processor struct {
	repo      Repo
	store     storage.ObjectStore
	extractor *TextExtractor
	ingestion IngestionStarter
	logger    *slog.Logger
}

func NewProcessor(repo Repo, store storage.ObjectStore, extractor *TextExtractor, ingestion IngestionStarter, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{repo: repo, store: store, extractor: extractor, ingestion: ingestion, logger: logger}
}

// Process runs one queued upload job to its handoff point. The returned error
// is for the caller's logs; the job and upload rows already carry the failure.
func (p *Processor) Process(ctx context.Context, jobID uuid.UUID) error {
	job, err := p.repo.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load upload job %s: %w", jobID, err)
	}
	if err := p.repo.IncrementJobAttempts(ctx, jobID); err != nil {
		p.logger.Warn("upload.attempts_increment_failed", "job_id", jobID, "error", err)
	}

	blob, err := p.store.Download(ctx, job.Bucket, job.StoragePath)
	if err != nil {
		return p.failBeforeIngestion(ctx, job, fmt.Errorf("download %s: %w", job.StoragePath, err))
	}
	if err := p.repo.UpdateJobStatus(ctx, jobID, constants.UploadJobStatusReceived, nil); err != nil {
		p.logger.Warn("upload.job_status_failed", "job_id", jobID, "status", "received", "error", err)
	}

	text, err := p.extractor.Extract(ctx, blob, job.ContentType, job.SourceType)
	if err != nil {
		return p.failBeforeIngestion(ctx, job, fmt.Errorf("extract text: %w", err))
	}
	if strings.TrimSpace(text) == "" {
		return p.failBeforeIngestion(ctx, job, fmt.Errorf("upload %s produced no text", job.UploadID))
	}

	ok, err := p.repo.TransitionUpload(ctx, job.UploadID, constants.UploadStatusQueued, constants.UploadStatusProcessing)
	if err != nil {
		return p.failBeforeIngestion(ctx, job, fmt.Errorf("transition upload: %w", err))
	}
	if !ok {
		// another worker already owns this upload; drop the duplicate job
		p.logger.Warn("upload.process_skipped", "upload_id", job.UploadID, "job_id", jobID)
		return nil
	}
	if err := p.repo.UpdateJobStatus(ctx, jobID, constants.UploadJobStatusAwaitingParser, nil); err != nil {
		p.logger.Warn("upload.job_status_failed", "job_id", jobID, "status", "awaiting_parser", "error", err)
	}

	metadata, _ := json.Marshal(map[string]string{
		"source_type": string(job.SourceType),
		"upload_id":   job.UploadID.String(),
	})
	ingestionID, err := p.ingestion.CreateFromUpload(ctx, job.UserID, job.UploadID, text, metadata)
	if err != nil {
		return p.failProcessing(ctx, job, fmt.Errorf("create ingestion job: %w", err))
	}
	if err := p.repo.AttachIngestion(ctx, job.UploadID, ingestionID, preview(text)); err != nil {
		p.logger.Warn("upload.attach_ingestion_failed", "upload_id", job.UploadID, "error", err)
	}

	p.logger.Info("upload.handoff",
		"upload_id", job.UploadID,
		"job_id", jobID,
		"ingestion_job_id", ingestionID,
		"chars", len(text),
	)

	// from here the ingestion runner owns the terminal states
	if err := p.ingestion.ExecuteJob(ctx, ingestionID); err != nil {
		p.markJobDone(ctx, job, err)
		return err
	}
	p.markJobDone(ctx, job, nil)
	return nil
}

// failBeforeIngestion marks both rows failed for errors that happen before
// the upload left the queued state.
func (p *Processor) failBeforeIngestion(ctx context.Context, job Job, cause error) error {
	msg := cause.Error()
	if err := p.repo.UpdateJobStatus(ctx, job.ID, constants.UploadJobStatusFailed, &msg); err != nil {
		p.logger.Error("upload.job_fail_write_failed", "job_id", job.ID, "error", err)
	}
	if ok, err := p.repo.TransitionUpload(ctx, job.UploadID, constants.UploadStatusQueued, constants.UploadStatusFailed); err != nil || !ok {
		p.logger.Warn("upload.fail_transition_skipped", "upload_id", job.UploadID, "ok", ok, "error", err)
	}
	p.logger.Error("upload.process_failed", "upload_id", job.UploadID, "job_id", job.ID, "error", cause)
	return cause
}

// failProcessing is the same for errors after the upload moved to processing
// but before an ingestion job existed.
func (p *Processor) failProcessing(ctx context.Context, job Job, cause error) error {
	msg := cause.Error()
	if err := p.repo.UpdateJobStatus(ctx, job.ID, constants.UploadJobStatusFailed, &msg); err != nil {
		p.logger.Error("upload.job_fail_write_failed", "job_id", job.ID, "error", err)
	}
	if ok, err := p.repo.TransitionUpload(ctx, job.UploadID, constants.UploadStatusProcessing, constants.UploadStatusFailed); err != nil || !ok {
		p.logger.Warn("upload.fail_transition_skipped", "upload_id", job.UploadID, "ok", ok, "error", err)
	}
	p.logger.Error("upload.process_failed", "upload_id", job.UploadID, "job_id", job.ID, "error", cause)
	return cause
}

func (p *Processor) markJobDone(ctx context.Context, job Job, runErr error) {
	status := constants.UploadJobStatusCompleted
	var lastError *string
	if runErr != nil {
		status = constants.UploadJobStatusFailed
		msg := runErr.Error()
		lastError = &msg
	}
	if err := p.repo.UpdateJobStatus(ctx, job.ID, status, lastError); err != nil {
		p.logger.Error("upload.job_done_write_failed", "job_id", job.ID, "error", err)
	}
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > previewLen {
		return text[:previewLen]
	}
	return text
}
