package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/internal/metrics"
)

// Executor runs ingestion jobs end to end: controller loop, terminal job
// transition, upload finalization, and exactly one interaction event per run.
type Executor struct {
	runner  *Runner
	jobs    JobStore
	uploads UploadFinalizer
	metrics *metrics.Aggregator
	logger  *slog.Logger
}

func NewExecutor(runner *Runner, jobs JobStore, uploads UploadFinalizer, agg *metrics.Aggregator, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{runner: runner, jobs: jobs, uploads: uploads, metrics: agg, logger: logger}
}

// CreateFromUpload records a durable ingestion job for text extracted from an
// upload. The upload processor calls this at handoff time.
func (e *Executor) CreateFromUpload(ctx context.Context, userID string, uploadID uuid.UUID, text string, metadata json.RawMessage) (uuid.UUID, error) {
	job, err := e.jobs.CreateFromUpload(ctx, userID, uploadID, text, metadata)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create ingestion job: %w", err)
	}
	return job.ID, nil
}

// ExecuteJob loads the job, runs the controller, and writes the terminal
// state. A failed job stays failed until the caller re-submits; there is no
// automatic retry.
func (e *Executor) ExecuteJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := e.jobs.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load ingestion job: %w", err)
	}

	start := time.Now()
	info, runErr := e.runner.Run(ctx, job)
	latency := time.Since(start).Milliseconds()

	if runErr != nil {
		e.logger.Error("ingestion.job_failed", "job_id", jobID, "error", runErr)
		if err := e.jobs.Fail(ctx, jobID, runErr.Error()); err != nil {
			e.logger.Error("ingestion.mark_failed_error", "job_id", jobID, "error", err)
		}
		e.finalizeUpload(ctx, job, false, runErr.Error())
		e.emit(ctx, job, info, latency, false, runErr)
		return runErr
	}

	if err := e.jobs.Complete(ctx, jobID, info.Response, info.Summary); err != nil {
		e.logger.Error("ingestion.mark_completed_error", "job_id", jobID, "error", err)
	}
	e.finalizeUpload(ctx, job, true, "")
	e.emit(ctx, job, info, latency, true, nil)

	e.logger.Info("ingestion.job_completed",
		"job_id", jobID,
		"user_id", job.UserID,
		"turns", info.Turns,
		"latency_ms", latency,
	)
	return nil
}

// RunInline is the synchronous wrapper: same tool-mediated flow, but the
// response returns to the caller directly. The job record is still durable,
// and its ID comes back so callers can look the run up later.
func (e *Executor) RunInline(ctx context.Context, userID, text string, metadata json.RawMessage) (uuid.UUID, string, error) {
	job, err := e.jobs.CreateFromText(ctx, userID, text, metadata)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("create inline job: %w", err)
	}

	start := time.Now()
	info, runErr := e.runner.Run(ctx, job)
	latency := time.Since(start).Milliseconds()

	if runErr != nil {
		if err := e.jobs.Fail(ctx, job.ID, runErr.Error()); err != nil {
			e.logger.Error("agent.inline.mark_failed_error", "job_id", job.ID, "error", err)
		}
		e.emitInline(ctx, job, info, latency, false, runErr)
		return job.ID, "", runErr
	}

	if err := e.jobs.Complete(ctx, job.ID, info.Response, info.Summary); err != nil {
		e.logger.Error("agent.inline.mark_completed_error", "job_id", job.ID, "error", err)
	}
	e.emitInline(ctx, job, info, latency, true, nil)
	return job.ID, info.Response, nil
}

func (e *Executor) finalizeUpload(ctx context.Context, job IngestionJob, success bool, lastError string) {
	if e.uploads == nil || job.UploadID == nil {
		return
	}
	if err := e.uploads.FinalizeForIngestion(ctx, job.ID, success, lastError); err != nil {
		e.logger.Error("ingestion.finalize_upload_failed", "job_id", job.ID, "error", err)
	}
}

func (e *Executor) emit(ctx context.Context, job IngestionJob, info RunInfo, latency int64, success bool, runErr error) {
	e.emitEvent(ctx, job, AgentIngestion, info, latency, success, runErr)
}

func (e *Executor) emitInline(ctx context.Context, job IngestionJob, info RunInfo, latency int64, success bool, runErr error) {
	e.emitEvent(ctx, job, AgentInline, info, latency, success, runErr)
}

// emitEvent records exactly one interaction event per run. usedFallback is
// true iff the run failed or the parse tool reported fallback use.
func (e *Executor) emitEvent(ctx context.Context, job IngestionJob, agentName string, info RunInfo, latency int64, success bool, runErr error) {
	if e.metrics == nil {
		return
	}
	input := ""
	if job.InputText != nil {
		input = *job.InputText
	}
	ev := metrics.Event{
		UserID:       job.UserID,
		Input:        input,
		Agent:        agentName,
		Success:      success,
		UsedFallback: info.UsedFallback || !success,
		LatencyMS:    latency,
		Confidence:   info.Confidence,
		Timestamp:    time.Now().UTC(),
	}
	if runErr != nil {
		ev.Error = runErr.Error()
	}
	if err := e.metrics.Record(ctx, ev); err != nil {
		e.logger.Warn("ingestion.event_record_failed", "job_id", job.ID, "error", err)
	}
}
