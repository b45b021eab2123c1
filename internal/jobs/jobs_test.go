package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Lifecycle(t *testing.T) {
	tracker := jobs.NewTracker(0)

	tracker.Init("job-1")
	p, err := tracker.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusProcessing, p.Status)

	tracker.SetTotal("job-1", 10)
	tracker.Update("job-1", 4, "Processando linha 4 de 10")
	p, err = tracker.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Current)
	assert.Equal(t, 10, p.Total)

	// Counters never rewind.
	tracker.Update("job-1", 2, "stale")
	p, _ = tracker.Get("job-1")
	assert.Equal(t, 4, p.Current)

	tracker.Complete("job-1", "Concluído: 10 transações importadas")
	p, err = tracker.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, p.Status)
	assert.Equal(t, 10, p.Current)

	// Terminal state is sticky.
	tracker.Fail("job-1", "late failure")
	p, _ = tracker.Get("job-1")
	assert.Equal(t, domain.JobStatusCompleted, p.Status)
}

func TestTracker_UnknownJob(t *testing.T) {
	tracker := jobs.NewTracker(0)
	_, err := tracker.Get("missing")
	assert.Error(t, err)
}

func TestTracker_TerminalEntryExpires(t *testing.T) {
	tracker := jobs.NewTracker(20 * time.Millisecond)
	tracker.Init("job-2")
	tracker.Fail("job-2", "Erro: header row not found")

	_, err := tracker.Get("job-2")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := tracker.Get("job-2")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestQueue_RunsSubmittedTasks(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	queue := jobs.NewQueue(4, logger)
	queue.Start(context.Background(), 2)

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup

	for _, id := range []string{"a", "b", "c"} {
		wg.Add(1)
		id := id
		err := queue.Submit(jobs.Task{JobID: id, Run: func(ctx context.Context) {
			defer wg.Done()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}})
		require.NoError(t, err)
	}

	wg.Wait()
	queue.Shutdown()
	assert.Len(t, seen, 3)
}

func TestQueue_FullQueueRejects(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	queue := jobs.NewQueue(1, logger)
	// No workers started: first submit fills the buffer, second is rejected.
	require.NoError(t, queue.Submit(jobs.Task{JobID: "x", Run: func(context.Context) {}}))
	assert.Error(t, queue.Submit(jobs.Task{JobID: "y", Run: func(context.Context) {}}))
}
