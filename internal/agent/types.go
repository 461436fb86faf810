package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
)

// Agent labels recorded on interaction events.
const (
	AgentIngestion = "ingestion"
	AgentInline    = "agent"
)

// IngestionJob is the domain view of one ingestion_jobs row. Its terminal
// status is the only externally observable contract of an async run.
type IngestionJob struct {
	ID            uuid.UUID
	UserID        string
	InputText     *string
	UploadID      *uuid.UUID
	Metadata      json.RawMessage
	Status        constants.IngestionStatus
	AgentResponse *string
	ResultSummary *string
	LastError     *string
	CreatedAt     time.Time
	FinishedAt    *time.Time
	UpdatedAt     time.Time
}

// JobStore persists ingestion jobs. Complete and Fail are the only paths to a
// terminal status.
type JobStore interface {
	CreateFromText(ctx context.Context, userID, text string, metadata json.RawMessage) (IngestionJob, error)
	CreateFromUpload(ctx context.Context, userID string, uploadID uuid.UUID, text string, metadata json.RawMessage) (IngestionJob, error)
	Get(ctx context.Context, id uuid.UUID) (IngestionJob, error)
	Complete(ctx context.Context, id uuid.UUID, agentResponse, resultSummary string) error
	Fail(ctx context.Context, id uuid.UUID, lastError string) error
}

// InvocationStore records tool call/result pairs keyed by (job, call id).
// The record is mutated in place by a two-phase started -> completed update.
type InvocationStore interface {
	StartInvocation(ctx context.Context, jobID uuid.UUID, callID, name string, arguments json.RawMessage) error
	CompleteInvocation(ctx context.Context, jobID uuid.UUID, callID string, output json.RawMessage) error
}

// UploadFinalizer writes the terminal upload states for runs that came in
// through the upload pipeline. The job runner is the sole caller.
type UploadFinalizer interface {
	FinalizeForIngestion(ctx context.Context, ingestionJobID uuid.UUID, success bool, lastError string) error
}
