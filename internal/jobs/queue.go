package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Task is one unit of background work keyed by its job ID.
type Task struct {
	JobID string
	Run   func(ctx context.Context)
}

// Queue is a fixed-size worker pool for import jobs. Uploads submit here and
// return immediately; all outcomes flow through the progress tracker, never
// a return value.
type Queue struct {
	tasks  chan Task
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewQueue creates a queue with the given buffer capacity.
func NewQueue(capacity int, logger *slog.Logger) *Queue {
	return &Queue{
		tasks:  make(chan Task, capacity),
		logger: logger,
	}
}

// Start launches the worker goroutines. Workers drain remaining tasks after
// ctx is cancelled so accepted jobs still reach a terminal state.
func (q *Queue) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

// Submit enqueues a task without blocking. A full queue is reported to the
// caller so the upload endpoint can push back instead of stalling.
func (q *Queue) Submit(task Task) error {
	select {
	case q.tasks <- task:
		return nil
	default:
		return fmt.Errorf("job queue full, rejecting job %s", task.JobID)
	}
}

// Shutdown stops accepting work and waits for in-flight jobs to finish.
func (q *Queue) Shutdown() {
	close(q.tasks)
	q.wg.Wait()
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for task := range q.tasks {
		q.logger.Info("Worker picked up job",
			slog.Int("worker", id),
			slog.String("job_id", task.JobID),
		)
		task.Run(ctx)
	}
}
