package repository

import (
	"context"

	"github.com/vytor/liveboard/internal/models"
)

// SnapshotRepository stores the single current-board snapshot
type SnapshotRepository interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Latest returns the stored snapshot, or nil when none has been saved.
	Latest(ctx context.Context) (*models.Snapshot, error)
	Ping(ctx context.Context) error
}
