package jobs

import "github.com/vytor/liveboard/internal/models"

// SnapshotQueue provides an abstraction for persisting board snapshots in the background
type SnapshotQueue interface {
	EnqueueSnapshot(snapshot models.Snapshot) error
}
