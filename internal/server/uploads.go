package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/async"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/upload"
	"github.com/pantryops/pantryd/internal/utils"
)

const maxUploadBytes = 20 << 20

type UploadsService struct {
	pantryv1.UnimplementedUploadsServiceServer
	uploads *upload.Service
	queue   async.Queue
	logger  *slog.Logger
}

func NewUploadsService(uploads *upload.Service, queue async.Queue, logger *slog.Logger) *UploadsService {
	return &UploadsService{
		uploads: uploads,
		queue:   queue,
		logger:  logger,
	}
}

// ReserveUpload creates the upload record and returns a signed write URL.
// Nothing is processed until the client confirms with QueueUpload.
func (s *UploadsService) ReserveUpload(ctx context.Context, req *pantryv1.ReserveUploadRequest) (*pantryv1.ReserveUploadResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("reserve upload request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetSizeBytes() > maxUploadBytes {
		return nil, status.Errorf(codes.InvalidArgument, "file exceeds %d bytes", maxUploadBytes)
	}

	res, err := s.uploads.Reserve(ctx, userID, req.GetFilename(), req.GetContentType(), req.GetSizeBytes(), req.GetSourceHint())
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("reserve upload failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "reserve upload: %v", err)
	}

	return &pantryv1.ReserveUploadResponse{
		UploadId:     res.UploadID.String(),
		UploadUrl:    res.UploadURL,
		StoragePath:  res.StoragePath,
		Bucket:       res.Bucket,
		UrlExpiresAt: res.URLExpiresAt.UTC().Format(time.RFC3339),
		Status:       string(res.Status),
	}, nil
}

// QueueUpload confirms the blob was written and enqueues processing. Calling
// it twice, or on a finished upload, is a FAILED_PRECONDITION.
func (s *UploadsService) QueueUpload(ctx context.Context, req *pantryv1.QueueUploadRequest) (*pantryv1.QueueUploadResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetUploadId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "upload_id must be a UUID")
	}

	job, err := s.uploads.Queue(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrInvalidState) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "upload not found")
		}
		s.logger.Error("queue upload failed", "upload_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "queue upload: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		UploadID:    job.UploadID,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		// the durable job row survives; a requeue on restart picks it up
		s.logger.Error("enqueue upload job failed", "job_id", job.ID, "error", err)
	}

	return &pantryv1.QueueUploadResponse{
		UploadId: job.UploadID.String(),
		JobId:    job.ID.String(),
		Status:   string(job.Status),
	}, nil
}

func (s *UploadsService) GetUpload(ctx context.Context, req *pantryv1.GetUploadRequest) (*pantryv1.Upload, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetUploadId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "upload_id must be a UUID")
	}
	u, err := s.uploads.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to load upload", "upload_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "upload not found")
	}
	return utils.ToPBUpload(u), nil
}
