package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/metrics"
)

type fakeJobStore struct {
	jobs map[uuid.UUID]IngestionJob
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[uuid.UUID]IngestionJob{}}
}

func (s *fakeJobStore) CreateFromText(_ context.Context, userID, text string, metadata json.RawMessage) (IngestionJob, error) {
	job := IngestionJob{
		ID: uuid.New(), UserID: userID, InputText: &text,
		Metadata: metadata, Status: constants.IngestionStatusPending,
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *fakeJobStore) CreateFromUpload(_ context.Context, userID string, uploadID uuid.UUID, text string, metadata json.RawMessage) (IngestionJob, error) {
	job := IngestionJob{
		ID: uuid.New(), UserID: userID, InputText: &text, UploadID: &uploadID,
		Metadata: metadata, Status: constants.IngestionStatusPending,
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *fakeJobStore) Get(_ context.Context, id uuid.UUID) (IngestionJob, error) {
	job, ok := s.jobs[id]
	if !ok {
		return IngestionJob{}, errors.New("job not found")
	}
	return job, nil
}

func (s *fakeJobStore) Complete(_ context.Context, id uuid.UUID, agentResponse, resultSummary string) error {
	job, ok := s.jobs[id]
	if !ok {
		return errors.New("job not found")
	}
	job.Status = constants.IngestionStatusCompleted
	job.AgentResponse = &agentResponse
	job.ResultSummary = &resultSummary
	s.jobs[id] = job
	return nil
}

func (s *fakeJobStore) Fail(_ context.Context, id uuid.UUID, lastError string) error {
	job, ok := s.jobs[id]
	if !ok {
		return errors.New("job not found")
	}
	job.Status = constants.IngestionStatusFailed
	job.LastError = &lastError
	s.jobs[id] = job
	return nil
}

type finalizeCall struct {
	ingestionJobID uuid.UUID
	success        bool
	lastError      string
}

type fakeFinalizer struct {
	calls []finalizeCall
}

func (f *fakeFinalizer) FinalizeForIngestion(_ context.Context, ingestionJobID uuid.UUID, success bool, lastError string) error {
	f.calls = append(f.calls, finalizeCall{ingestionJobID: ingestionJobID, success: success, lastError: lastError})
	return nil
}

type memEventStore struct {
	events []metrics.Event
}

func (s *memEventStore) Append(_ context.Context, ev metrics.Event) error {
	s.events = append(s.events, ev)
	return nil
}

func (s *memEventStore) All(_ context.Context) ([]metrics.Event, error) {
	return s.events, nil
}

type memSnapStore struct {
	snaps map[string]metrics.Delta
}

func (s *memSnapStore) AddDelta(_ context.Context, key string, d metrics.Delta) error {
	if s.snaps == nil {
		s.snaps = map[string]metrics.Delta{}
	}
	cur := s.snaps[key]
	cur.Add(d)
	s.snaps[key] = cur
	return nil
}

func (s *memSnapStore) Get(_ context.Context, key string) (metrics.Delta, bool, error) {
	d, ok := s.snaps[key]
	return d, ok, nil
}

func (s *memSnapStore) Replace(_ context.Context, snapshots map[string]metrics.Delta) error {
	s.snaps = snapshots
	return nil
}

type executorFixture struct {
	jobs      *fakeJobStore
	finalizer *fakeFinalizer
	events    *memEventStore
	exec      *Executor
}

func newExecutorFixture(t *testing.T, model *fakeModel) *executorFixture {
	t.Helper()
	jobs := newFakeJobStore()
	finalizer := &fakeFinalizer{}
	events := &memEventStore{}
	agg := metrics.NewAggregator(events, &memSnapStore{}, discardLogger())

	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, nil)
	runner := NewRunner(model, deps, 8, discardLogger())
	return &executorFixture{
		jobs:      jobs,
		finalizer: finalizer,
		events:    events,
		exec:      NewExecutor(runner, jobs, finalizer, agg, discardLogger()),
	}
}

func TestExecuteJobSuccess(t *testing.T) {
	fx := newExecutorFixture(t, &fakeModel{responses: []*llms.ContentResponse{textTurn("All done.")}})

	jobID, err := fx.exec.CreateFromUpload(context.Background(), "alice", uuid.New(), "bought milk", nil)
	if err != nil {
		t.Fatalf("CreateFromUpload: %v", err)
	}
	if err := fx.exec.ExecuteJob(context.Background(), jobID); err != nil {
		t.Fatalf("ExecuteJob: %v", err)
	}

	job := fx.jobs.jobs[jobID]
	if job.Status != constants.IngestionStatusCompleted {
		t.Errorf("status = %s, want completed", job.Status)
	}
	if job.AgentResponse == nil || *job.AgentResponse != "All done." {
		t.Errorf("response = %v", job.AgentResponse)
	}
	if job.ResultSummary == nil || *job.ResultSummary == "" {
		t.Errorf("summary = %v", job.ResultSummary)
	}

	if len(fx.finalizer.calls) != 1 {
		t.Fatalf("finalizer calls = %d, want 1", len(fx.finalizer.calls))
	}
	call := fx.finalizer.calls[0]
	if call.ingestionJobID != jobID || !call.success {
		t.Errorf("finalize call = %+v", call)
	}

	if len(fx.events.events) != 1 {
		t.Fatalf("events = %d, want exactly 1 per run", len(fx.events.events))
	}
	ev := fx.events.events[0]
	if ev.Agent != AgentIngestion || !ev.Success || ev.UsedFallback {
		t.Errorf("event = %+v", ev)
	}
	if ev.UserID != "alice" || ev.Input != "bought milk" {
		t.Errorf("event = %+v", ev)
	}
}

func TestExecuteJobFailure(t *testing.T) {
	fx := newExecutorFixture(t, &fakeModel{err: errors.New("controller down")})

	jobID, err := fx.exec.CreateFromUpload(context.Background(), "alice", uuid.New(), "bought milk", nil)
	if err != nil {
		t.Fatalf("CreateFromUpload: %v", err)
	}
	if err := fx.exec.ExecuteJob(context.Background(), jobID); err == nil {
		t.Fatal("expected run error")
	}

	job := fx.jobs.jobs[jobID]
	if job.Status != constants.IngestionStatusFailed {
		t.Errorf("status = %s, want failed", job.Status)
	}
	if job.LastError == nil {
		t.Error("last error not recorded")
	}

	if len(fx.finalizer.calls) != 1 || fx.finalizer.calls[0].success {
		t.Errorf("finalizer calls = %+v, want one failure", fx.finalizer.calls)
	}

	if len(fx.events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(fx.events.events))
	}
	ev := fx.events.events[0]
	if ev.Success {
		t.Error("event Success = true for a failed run")
	}
	if !ev.UsedFallback {
		t.Error("a failed run counts as fallback")
	}
	if ev.Error == "" {
		t.Error("event error missing")
	}
}

func TestRunInline(t *testing.T) {
	fx := newExecutorFixture(t, &fakeModel{responses: []*llms.ContentResponse{textTurn("All done.")}})

	jobID, resp, err := fx.exec.RunInline(context.Background(), "alice", "bought milk", nil)
	if err != nil {
		t.Fatalf("RunInline: %v", err)
	}
	if resp != "All done." {
		t.Errorf("response = %q", resp)
	}

	if len(fx.jobs.jobs) != 1 {
		t.Fatalf("jobs = %d, want a durable record for the inline run", len(fx.jobs.jobs))
	}
	job, ok := fx.jobs.jobs[jobID]
	if !ok {
		t.Fatalf("returned job id %s does not match the stored record", jobID)
	}
	if job.Status != constants.IngestionStatusCompleted {
		t.Errorf("status = %s", job.Status)
	}

	if len(fx.finalizer.calls) != 0 {
		t.Errorf("finalizer calls = %+v, inline runs have no upload", fx.finalizer.calls)
	}
	if len(fx.events.events) != 1 || fx.events.events[0].Agent != AgentInline {
		t.Errorf("events = %+v", fx.events.events)
	}
}
