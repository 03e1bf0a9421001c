package worker

import (
	"context"

	"github.com/vytor/liveboard/internal/models"
	"github.com/vytor/liveboard/internal/repository"
)

// SaveSnapshotJob writes the current board to the snapshot store.
type SaveSnapshotJob struct {
	Repo     repository.SnapshotRepository
	Snapshot models.Snapshot
}

func (j *SaveSnapshotJob) Name() string { return "save_snapshot" }

func (j *SaveSnapshotJob) Run(ctx context.Context) error {
	return j.Repo.Save(ctx, j.Snapshot)
}
