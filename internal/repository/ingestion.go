package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/gen/ent"
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
	"github.com/pantryops/pantryd/internal/agent"
)

// IngestionRepository persists ingestion jobs and their tool invocations.
type IngestionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIngestionRepository(client *ent.Client, logger *slog.Logger) *IngestionRepository {
	return &IngestionRepository{client: client, logger: logger}
}

func (r *IngestionRepository) CreateFromText(ctx context.Context, userID, text string, metadata json.RawMessage) (agent.IngestionJob, error) {
	builder := r.client.IngestionJob.Create().
		SetUserID(userID).
		SetInputText(text).
		SetStatus(string(constants.IngestionStatusPending))
	if len(metadata) > 0 {
		builder = builder.SetMetadata(metadata)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ingestion job", "user_id", userID, "error", err)
		return agent.IngestionJob{}, err
	}
	return toIngestionJob(row), nil
}

func (r *IngestionRepository) CreateFromUpload(ctx context.Context, userID string, uploadID uuid.UUID, text string, metadata json.RawMessage) (agent.IngestionJob, error) {
	builder := r.client.IngestionJob.Create().
		SetUserID(userID).
		SetUploadID(uploadID).
		SetInputText(text).
		SetStatus(string(constants.IngestionStatusPending))
	if len(metadata) > 0 {
		builder = builder.SetMetadata(metadata)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ingestion job", "user_id", userID, "upload_id", uploadID, "error", err)
		return agent.IngestionJob{}, err
	}
	return toIngestionJob(row), nil
}

func (r *IngestionRepository) Get(ctx context.Context, id uuid.UUID) (agent.IngestionJob, error) {
	row, err := r.client.IngestionJob.Get(ctx, id)
	if err != nil {
		return agent.IngestionJob{}, err
	}
	return toIngestionJob(row), nil
}

func (r *IngestionRepository) Complete(ctx context.Context, id uuid.UUID, agentResponse, resultSummary string) error {
	return r.client.IngestionJob.UpdateOneID(id).
		SetStatus(string(constants.IngestionStatusCompleted)).
		SetAgentResponse(agentResponse).
		SetResultSummary(resultSummary).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}

func (r *IngestionRepository) Fail(ctx context.Context, id uuid.UUID, lastError string) error {
	return r.client.IngestionJob.UpdateOneID(id).
		SetStatus(string(constants.IngestionStatusFailed)).
		SetLastError(lastError).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}

// ListRecent returns the user's latest jobs, newest first.
func (r *IngestionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]agent.IngestionJob, error) {
	rows, err := r.client.IngestionJob.Query().
		Where(ingestionjob.UserID(userID)).
		Order(ingestionjob.ByCreatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]agent.IngestionJob, len(rows))
	for i, row := range rows {
		jobs[i] = toIngestionJob(row)
	}
	return jobs, nil
}

// StartInvocation records a tool call before it runs.
func (r *IngestionRepository) StartInvocation(ctx context.Context, jobID uuid.UUID, callID, name string, arguments json.RawMessage) error {
	builder := r.client.ToolInvocation.Create().
		SetJobID(jobID).
		SetCallID(callID).
		SetName(name).
		SetStatus(string(constants.ToolInvocationInProgress))
	if len(arguments) > 0 {
		builder = builder.SetArguments(arguments)
	}
	return builder.Exec(ctx)
}

// CompleteInvocation attaches the output to the started row.
func (r *IngestionRepository) CompleteInvocation(ctx context.Context, jobID uuid.UUID, callID string, output json.RawMessage) error {
	n, err := r.client.ToolInvocation.Update().
		Where(toolinvocation.JobID(jobID), toolinvocation.CallID(callID)).
		SetStatus(string(constants.ToolInvocationCompleted)).
		SetOutput(output).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		r.logger.Warn("no started invocation to complete", "job_id", jobID, "call_id", callID)
	}
	return nil
}

func toIngestionJob(row *ent.IngestionJob) agent.IngestionJob {
	return agent.IngestionJob{
		ID:            row.ID,
		UserID:        row.UserID,
		InputText:     row.InputText,
		UploadID:      row.UploadID,
		Metadata:      row.Metadata,
		Status:        constants.IngestionStatus(row.Status),
		AgentResponse: row.AgentResponse,
		ResultSummary: row.ResultSummary,
		LastError:     row.LastError,
		CreatedAt:     row.CreatedAt,
		FinishedAt:    row.FinishedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
