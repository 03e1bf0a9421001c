package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/liveboard/internal/models"
	"github.com/vytor/liveboard/internal/testutil/mocks"
	"github.com/vytor/liveboard/internal/worker"
)

type countingJob struct {
	runs  *atomic.Int32
	block chan struct{}
	err   error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) error {
	if j.block != nil {
		<-j.block
	}
	j.runs.Add(1)
	return j.err
}

func TestPool_StopDrainsQueuedJobs(t *testing.T) {
	var runs atomic.Int32
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())

	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Submit(&countingJob{runs: &runs}))
	}
	require.NoError(t, pool.Submit(&countingJob{runs: &runs, err: errors.New("failed")}))
	pool.Stop()

	assert.Equal(t, int32(6), runs.Load())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	var runs atomic.Int32
	err := pool.Submit(&countingJob{runs: &runs})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

func TestPool_SubmitWhenFull(t *testing.T) {
	var runs atomic.Int32
	block := make(chan struct{})
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())

	// The first job occupies the worker, the second fills the queue.
	require.NoError(t, pool.Submit(&countingJob{runs: &runs, block: block}))
	require.Eventually(t, func() bool { return pool.QueueSize() == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, pool.Submit(&countingJob{runs: &runs}))

	err := pool.Submit(&countingJob{runs: &runs})
	assert.ErrorIs(t, err, worker.ErrQueueFull)

	close(block)
	pool.Stop()
	assert.Equal(t, int32(2), runs.Load())
}

func TestSaveSnapshotJob_Run(t *testing.T) {
	repo := new(mocks.MockSnapshotRepository)
	snap := models.Snapshot{Placement: "8/8/8/8/8/8/8/8"}
	repo.On("Save", context.Background(), snap).Return(nil)

	job := &worker.SaveSnapshotJob{Repo: repo, Snapshot: snap}
	assert.Equal(t, "save_snapshot", job.Name())
	assert.NoError(t, job.Run(context.Background()))
	repo.AssertExpectations(t)
}
