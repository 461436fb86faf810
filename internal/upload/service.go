package upload

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/storage"
)

const maxFilenameLen = 120

// Service owns the client-facing half of the upload state machine:
// reservation (awaiting_upload) and queueing (awaiting_upload -> queued).
// Everything after queued belongs to the processor and the job runner.
type Service struct {
	repo   Repo
	store  storage.ObjectStore
	bucket string
	urlTTL time.Duration
	logger *slog.Logger
}

func NewService(repo Repo, store storage.ObjectStore, bucket string, urlTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, store: store, bucket: bucket, urlTTL: urlTTL, logger: logger}
}

// Reserve creates the Upload record in awaiting_upload and hands back a
// signed write URL for the blob.
func (s *Service) Reserve(ctx context.Context, userID, filename, contentType string, sizeBytes int64, sourceHint string) (Reservation, error) {
	if strings.TrimSpace(filename) == "" {
		return Reservation{}, common.NewAppError("UPLOAD_RESERVE", "filename is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(contentType) == "" {
		return Reservation{}, common.NewAppError("UPLOAD_RESERVE", "content type is required", common.ErrInvalidInput)
	}

	sourceType := constants.ParseSourceType(sourceHint)
	if sourceType == constants.SourceUnknown {
		sourceType = constants.SourceTypeForContentType(contentType)
	}

	id := uuid.New()
	safe := SanitizeFilename(filename)
	path := fmt.Sprintf("uploads/%s/%s/%s", userID, id, safe)

	signed, err := s.store.SignPutURL(ctx, s.bucket, path, contentType, s.urlTTL)
	if err != nil {
		return Reservation{}, fmt.Errorf("sign upload url: %w", err)
	}

	u := Upload{
		ID:               id,
		UserID:           userID,
		Filename:         safe,
		OriginalFilename: filename,
		ContentType:      contentType,
		SourceType:       sourceType,
		StoragePath:      path,
		Bucket:           s.bucket,
		Status:           constants.UploadStatusAwaitingUpload,
	}
	if sizeBytes > 0 {
		u.SizeBytes = &sizeBytes
	}
	created, err := s.repo.CreateUpload(ctx, u)
	if err != nil {
		return Reservation{}, fmt.Errorf("create upload record: %w", err)
	}

	s.logger.Info("upload.reserved",
		"upload_id", created.ID,
		"user_id", userID,
		"source_type", string(sourceType),
		"path", path,
	)
	return Reservation{
		UploadID:     created.ID,
		StoragePath:  path,
		Bucket:       s.bucket,
		UploadURL:    signed.URL,
		URLExpiresAt: signed.ExpiresAt,
		Status:       constants.UploadStatusAwaitingUpload,
	}, nil
}

// Get returns the upload document; clients poll it for completion.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Upload, error) {
	return s.repo.GetUpload(ctx, id)
}

// Queue confirms the client wrote the blob: it flips the upload to queued and
// creates the durable job the worker consumes. Valid only from
// awaiting_upload; any other source state is an ErrInvalidState.
func (s *Service) Queue(ctx context.Context, id uuid.UUID) (Job, error) {
	u, err := s.repo.GetUpload(ctx, id)
	if err != nil {
		return Job{}, err
	}

	ok, err := s.repo.TransitionUpload(ctx, id, constants.UploadStatusAwaitingUpload, constants.UploadStatusQueued)
	if err != nil {
		return Job{}, fmt.Errorf("transition upload: %w", err)
	}
	if !ok {
		s.logger.Warn("upload.queue_rejected", "upload_id", id, "status", string(u.Status))
		return Job{}, common.NewAppError("UPLOAD_QUEUE",
			fmt.Sprintf("upload is %s, only awaiting_upload can be queued", u.Status),
			common.ErrInvalidState)
	}

	job, err := s.repo.CreateJob(ctx, Job{
		UploadID:    u.ID,
		UserID:      u.UserID,
		StoragePath: u.StoragePath,
		Bucket:      u.Bucket,
		ContentType: u.ContentType,
		SourceType:  u.SourceType,
		Status:      constants.UploadJobStatusQueued,
	})
	if err != nil {
		return Job{}, fmt.Errorf("create upload job: %w", err)
	}
	if err := s.repo.SetProcessingJob(ctx, u.ID, job.ID); err != nil {
		s.logger.Warn("upload.set_processing_job_failed", "upload_id", u.ID, "job_id", job.ID, "error", err)
	}

	s.logger.Info("upload.queued", "upload_id", u.ID, "job_id", job.ID)
	return job, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips path separators, restricts to a safe character
// class, and caps length before the name is used in a storage path.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	// keep only the final path element, whichever separator style
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	if len(name) > maxFilenameLen {
		// preserve the extension when truncating
		if dot := strings.LastIndex(name, "."); dot > 0 && len(name)-dot <= 10 {
			ext := name[dot:]
			name = name[:maxFilenameLen-len(ext)] + ext
		} else {
			name = name[:maxFilenameLen]
		}
	}
	return name
}
