package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/liveboard/internal/db"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	var count int
	err = database.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = database.QueryRowContext(ctx, `SELECT COUNT(*) FROM board_snapshots`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpen_SnapshotTableHoldsOneRow(t *testing.T) {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO board_snapshots (id, placement, grid, updated_at) VALUES (2, '8/8/8/8/8/8/8/8', '', CURRENT_TIMESTAMP)`)
	assert.Error(t, err)
}
