// Package relay moves fraud alerts from the transactional outbox to Kafka
// and from Kafka into the long-term archive.
package relay

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// WorkerPool bounds the number of concurrent archive writes.
type WorkerPool struct {
	pool *ants.Pool
}

// NewWorkerPool creates a pool of at most size workers.
func NewWorkerPool(size int) (*WorkerPool, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	return &WorkerPool{pool: pool}, nil
}

// Submit schedules a task, blocking when all workers are busy.
func (w *WorkerPool) Submit(task func()) error {
	if err := w.pool.Submit(task); err != nil {
		return fmt.Errorf("failed to submit task: %w", err)
	}
	return nil
}

// Release shuts the pool down, waiting for running tasks.
func (w *WorkerPool) Release() {
	w.pool.Release()
}
