// Package jobs provides the in-memory progress sink polled by the upload
// endpoints and the worker queue that runs import jobs off the request path.
// State is process-lifetime only; a restart starts clean.
package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// Tracker is a concurrency-safe map of job ID to import progress.
// Terminal entries expire after a TTL so pollers have a window to observe
// the final state without the map growing forever.
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]domain.ImportProgress
	ttl     time.Duration
}

// NewTracker creates a progress tracker whose terminal entries are retained
// for ttl before being expired.
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{
		entries: make(map[string]domain.ImportProgress),
		ttl:     ttl,
	}
}

// Init registers a job in the processing state.
func (t *Tracker) Init(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[jobID] = domain.ImportProgress{
		Status:  domain.JobStatusProcessing,
		Message: "Iniciando processamento...",
	}
}

// SetTotal records the total row count once the file has been read.
func (t *Tracker) SetTotal(jobID string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.entries[jobID]
	p.Total = total
	p.Message = "Lendo arquivo..."
	t.entries[jobID] = p
}

// Update advances the row counter. Counters only move forward; a stale
// update from a slower path never rewinds what a poller already saw.
func (t *Tracker) Update(jobID string, current int, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.entries[jobID]
	if !ok || p.Terminal() {
		return
	}
	if current > p.Current {
		p.Current = current
	}
	p.Message = message
	t.entries[jobID] = p
}

// Complete transitions the job to its successful terminal state and
// schedules expiry.
func (t *Tracker) Complete(jobID string, message string) {
	t.finish(jobID, domain.JobStatusCompleted, message)
}

// Fail transitions the job to its error terminal state and schedules expiry.
func (t *Tracker) Fail(jobID string, message string) {
	t.finish(jobID, domain.JobStatusError, message)
}

func (t *Tracker) finish(jobID string, status domain.JobStatus, message string) {
	t.mu.Lock()
	p, ok := t.entries[jobID]
	if ok && p.Terminal() {
		t.mu.Unlock()
		return
	}
	p.Status = status
	p.Message = message
	if status == domain.JobStatusCompleted {
		p.Current = p.Total
	}
	t.entries[jobID] = p
	t.mu.Unlock()

	if t.ttl > 0 {
		time.AfterFunc(t.ttl, func() { t.remove(jobID) })
	}
}

// Get returns a copy of the progress record for a job.
func (t *Tracker) Get(jobID string) (domain.ImportProgress, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.entries[jobID]
	if !ok {
		return domain.ImportProgress{}, fmt.Errorf("job not found: %s", jobID)
	}
	return p, nil
}

func (t *Tracker) remove(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, jobID)
}
