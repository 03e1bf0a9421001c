package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/liveboard/internal/logger"
	"github.com/vytor/liveboard/internal/models"
	"github.com/vytor/liveboard/internal/repository"
)

// currentSnapshotID is the only row board_snapshots may hold.
const currentSnapshotID = 1

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository implementation
func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Save upserts the single snapshot row. A snapshot older than the stored one is
// dropped, so saves that finish out of order never roll the board back.
func (r *snapshotRepository) Save(ctx context.Context, s models.Snapshot) error {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("saving snapshot: placement=%s, pieces=%d", s.Placement, s.PieceCount)

	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}

	query, args, err := sqlBuilder.Insert("board_snapshots").
		Columns("id", "placement", "grid", "piece_count", "updated_at").
		Values(currentSnapshotID, s.Placement, s.Grid, s.PieceCount, s.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
	placement = excluded.placement,
	grid = excluded.grid,
	piece_count = excluded.piece_count,
	updated_at = excluded.updated_at
WHERE excluded.updated_at >= board_snapshots.updated_at`).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save snapshot: %v", err)
		return err
	}
	log.Debug("snapshot saved")
	return nil
}

func (r *snapshotRepository) Latest(ctx context.Context) (*models.Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")

	query, args, err := sqlBuilder.
		Select("placement", "grid", "piece_count", "updated_at").
		From("board_snapshots").
		Where(squirrel.Eq{"id": currentSnapshotID}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var s models.Snapshot
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.Placement, &s.Grid, &s.PieceCount, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshot stored")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load snapshot: %v", err)
		return nil, err
	}
	log.Debug("snapshot found: placement=%s, updated_at=%s", s.Placement, s.UpdatedAt)
	return &s, nil
}

func (r *snapshotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
