// Package async runs queued upload jobs on a bounded worker pool. The queue
// is in-process; durability lives in the upload_jobs table, not here.
package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/internal/upload"
)

// Job is one queued upload job reference. The worker loads everything else
// from the database.
type Job struct {
	JobID       uuid.UUID
	UploadID    uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// ProcessorQueue fans Jobs out to a fixed set of workers, each driving the
// upload processor end to end under a per-job timeout.
type ProcessorQueue struct {
	proc    *upload.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *upload.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.Process(ctx, job.JobID)
					cancel()

					if err != nil {
						q.logger.Error("upload processing failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("upload processed", "worker_id", workerID, "job_id", job.JobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands the job to a worker without blocking. A full or closed
// queue is the caller's problem: the durable job row survives and a
// restart requeues it.
func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return fmt.Errorf("enqueue job %s: queue is shut down", job.JobID)
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued upload job", "job_id", job.JobID, "upload_id", job.UploadID)
		return nil
	default:
		q.logger.Warn("queue full, rejecting job", "job_id", job.JobID)
		return fmt.Errorf("enqueue job %s: queue is full", job.JobID)
	}
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
