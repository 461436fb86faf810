package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/upload"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// slowRepo blocks every GetJob call until release closes, so a worker can be
// pinned mid-job while the test fills the queue behind it.
type slowRepo struct {
	started chan uuid.UUID
	release chan struct{}
}

func newSlowRepo() *slowRepo {
	return &slowRepo{started: make(chan uuid.UUID, 16), release: make(chan struct{})}
}

func (r *slowRepo) GetJob(ctx context.Context, id uuid.UUID) (upload.Job, error) {
	r.started <- id
	select {
	case <-r.release:
	case <-ctx.Done():
	}
	return upload.Job{}, errors.New("job not found")
}

func (r *slowRepo) CreateUpload(context.Context, upload.Upload) (upload.Upload, error) {
	return upload.Upload{}, nil
}
func (r *slowRepo) GetUpload(context.Context, uuid.UUID) (upload.Upload, error) {
	return upload.Upload{}, nil
}
func (r *slowRepo) TransitionUpload(context.Context, uuid.UUID, constants.UploadStatus, constants.UploadStatus) (bool, error) {
	return true, nil
}
func (r *slowRepo) SetProcessingJob(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (r *slowRepo) AttachIngestion(context.Context, uuid.UUID, uuid.UUID, string) error {
	return nil
}
func (r *slowRepo) CreateJob(context.Context, upload.Job) (upload.Job, error) {
	return upload.Job{}, nil
}
func (r *slowRepo) UpdateJobStatus(context.Context, uuid.UUID, constants.UploadJobStatus, *string) error {
	return nil
}
func (r *slowRepo) IncrementJobAttempts(context.Context, uuid.UUID) error { return nil }

func newJob() Job {
	return Job{JobID: uuid.New(), UploadID: uuid.New(), SubmittedAt: time.Now().UTC()}
}

func TestEnqueueRejectsWhenFull(t *testing.T) {
	repo := newSlowRepo()
	proc := upload.NewProcessor(repo, nil, nil, nil, discardLogger())
	q := NewProcessorQueue(proc, discardLogger(), WithWorkers(1), WithQueueSize(1))

	// First job pins the single worker inside GetJob.
	if err := q.Enqueue(context.Background(), newJob()); err != nil {
		t.Fatalf("Enqueue first: %v", err)
	}
	select {
	case <-repo.started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first job")
	}

	// Second job fills the buffer; the third must fail fast, not block.
	if err := q.Enqueue(context.Background(), newJob()); err != nil {
		t.Fatalf("Enqueue second: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- q.Enqueue(context.Background(), newJob()) }()
	select {
	case err := <-done:
		if err == nil {
			t.Error("Enqueue on a full queue returned nil, want error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(repo.release)
	q.Shutdown(context.Background())
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	repo := newSlowRepo()
	close(repo.release)
	proc := upload.NewProcessor(repo, nil, nil, nil, discardLogger())
	q := NewProcessorQueue(proc, discardLogger(), WithWorkers(1))

	q.Shutdown(context.Background())
	if err := q.Enqueue(context.Background(), newJob()); err == nil {
		t.Error("Enqueue after Shutdown returned nil, want error")
	}

	// Shutdown is idempotent.
	q.Shutdown(context.Background())
}
