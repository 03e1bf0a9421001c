package jobs

import (
	"github.com/vytor/liveboard/internal/models"
	"github.com/vytor/liveboard/internal/repository"
	"github.com/vytor/liveboard/internal/worker"
)

// WorkerQueue implements SnapshotQueue using a worker pool
type WorkerQueue struct {
	pool         *worker.Pool
	snapshotRepo repository.SnapshotRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, snapshotRepo repository.SnapshotRepository) SnapshotQueue {
	return &WorkerQueue{
		pool:         pool,
		snapshotRepo: snapshotRepo,
	}
}

func (q *WorkerQueue) EnqueueSnapshot(snapshot models.Snapshot) error {
	return q.pool.Submit(&worker.SaveSnapshotJob{
		Repo:     q.snapshotRepo,
		Snapshot: snapshot,
	})
}
