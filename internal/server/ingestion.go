package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/agent"
	"github.com/pantryops/pantryd/internal/utils"
)

// asyncJobTimeout bounds a background ingestion run detached from the RPC.
const asyncJobTimeout = 3 * time.Minute

type IngestionService struct {
	pantryv1.UnimplementedIngestionServiceServer
	executor *agent.Executor
	jobs     agent.JobStore
	logger   *slog.Logger
}

func NewIngestionService(executor *agent.Executor, jobs agent.JobStore, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		executor: executor,
		jobs:     jobs,
		logger:   logger,
	}
}

// RunAgent runs the tool-mediated flow inline and returns the agent's final
// response. The job record is durable either way.
func (s *IngestionService) RunAgent(ctx context.Context, req *pantryv1.RunAgentRequest) (*pantryv1.RunAgentResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("run agent request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	text := strings.TrimSpace(req.GetText())
	if text == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}
	metadata, err := metadataJSON(req.GetMetadataJson())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "metadata_json: %v", err)
	}

	jobID, response, err := s.executor.RunInline(ctx, userID, text, metadata)
	if err != nil {
		s.logger.Error("inline agent run failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "agent run: %v", err)
	}
	return &pantryv1.RunAgentResponse{JobId: jobID.String(), Response: response}, nil
}

// CreateIngestionJob records the job and starts it in the background. The
// caller polls GetIngestionJob for the terminal status.
func (s *IngestionService) CreateIngestionJob(ctx context.Context, req *pantryv1.CreateIngestionJobRequest) (*pantryv1.IngestionJob, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("create ingestion job request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	text := strings.TrimSpace(req.GetText())
	if text == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}
	metadata, err := metadataJSON(req.GetMetadataJson())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "metadata_json: %v", err)
	}

	job, err := s.jobs.CreateFromText(ctx, userID, text, metadata)
	if err != nil {
		s.logger.Error("failed to create ingestion job", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "create ingestion job: %v", err)
	}

	s.logger.Info("ingestion job accepted", "job_id", job.ID, "user_id", userID)
	go func(jobID uuid.UUID) {
		ctx, cancel := context.WithTimeout(context.Background(), asyncJobTimeout)
		defer cancel()
		if err := s.executor.ExecuteJob(ctx, jobID); err != nil {
			s.logger.Error("background ingestion run failed", "job_id", jobID, "error", err)
		}
	}(job.ID)

	return utils.ToPBIngestionJob(job), nil
}

func (s *IngestionService) GetIngestionJob(ctx context.Context, req *pantryv1.GetIngestionJobRequest) (*pantryv1.IngestionJob, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to load ingestion job", "job_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "ingestion job not found")
	}
	return utils.ToPBIngestionJob(job), nil
}

func metadataJSON(raw string) (json.RawMessage, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, errors.New("not valid JSON")
	}
	return json.RawMessage(raw), nil
}
