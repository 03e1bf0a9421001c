package board_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/liveboard/internal/board"
)

func TestGridCell_InvertsCellSquare(t *testing.T) {
	for i := 0; i < 64; i++ {
		s := board.Square(i)
		row, col := board.GridCell(s)
		assert.Equal(t, s, board.CellSquare(row, col), "square %s", s)
	}
}

func TestGridCell_Orientation(t *testing.T) {
	row, col := board.GridCell(sq(t, "h1"))
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col = board.GridCell(sq(t, "a8"))
	assert.Equal(t, 7, row)
	assert.Equal(t, 7, col)

	row, col = board.GridCell(sq(t, "e2"))
	assert.Equal(t, 3, row)
	assert.Equal(t, 1, col)
}

func TestGridText_TwoPawns(t *testing.T) {
	p, err := board.BuildPosition([]board.Record{
		{Position: "21", Piece: "P"},
		{Position: "28", Piece: "p"},
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		". p . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". P . . . . . .",
	}, "\n")
	grid := board.GridText(p)
	assert.Equal(t, want, grid)
	assert.Equal(t, 1, strings.Count(grid, "P"))
	assert.Equal(t, 1, strings.Count(grid, "p"))
	assert.Equal(t, 62, strings.Count(grid, board.EmptyToken))
}

func TestGridText_SameRecordsSameGrid(t *testing.T) {
	records := []board.Record{
		{Position: "15", Piece: "K"},
		{Position: "85", Piece: "k"},
		{Position: "74", Piece: "p"},
	}
	first, err := board.BuildPosition(records)
	require.NoError(t, err)
	second, err := board.BuildPosition(records)
	require.NoError(t, err)
	assert.Equal(t, board.GridText(first), board.GridText(second))
}

func TestParseGrid_RoundTrip(t *testing.T) {
	p, err := board.ParsePlacement("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R")
	require.NoError(t, err)

	back, err := board.ParseGrid(board.GridText(p))
	require.NoError(t, err)
	if diff := cmp.Diff(p.Pieces(), back.Pieces()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitGrid_Malformed(t *testing.T) {
	full := strings.Repeat(". . . . . . . .\n", 8)
	tests := []struct {
		name string
		grid string
	}{
		{name: "empty", grid: ""},
		{name: "seven rows", grid: strings.Repeat(". . . . . . . .\n", 7)},
		{name: "short row", grid: strings.Replace(full, ". . . . . . . .", ". . . . . . .", 1)},
		{name: "long row", grid: strings.Replace(full, ". . . . . . . .", ". . . . . . . . .", 1)},
		{name: "unknown token", grid: strings.Replace(full, ". . . . . . . .", "x . . . . . . .", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.SplitGrid(tt.grid)
			assert.ErrorIs(t, err, board.ErrMalformedGrid)

			_, err = board.ParseGrid(tt.grid)
			assert.ErrorIs(t, err, board.ErrMalformedGrid)
		})
	}
}

func TestFEN_TwoPawns(t *testing.T) {
	p, err := board.BuildPosition([]board.Record{
		{Position: "21", Piece: "P"},
		{Position: "28", Piece: "p"},
	})
	require.NoError(t, err)
	assert.Equal(t, "8/8/8/8/8/8/P6p/8", board.PlacementFEN(p))
	assert.Equal(t, "8/8/8/8/8/8/P6p/8 w - - 0 1", board.FEN(p))
}

func TestFEN_EmptyBoard(t *testing.T) {
	assert.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", board.FEN(board.NewPosition()))
}

func TestParsePlacement_RoundTrip(t *testing.T) {
	const start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	p, err := board.ParsePlacement(start + " w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 32, p.Len())
	assert.Equal(t, start, board.PlacementFEN(p))
}

func TestParsePlacement_Invalid(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8",
		"9/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/ppppppppp",
		"8/8/8/8/8/8/8/7x",
	} {
		_, err := board.ParsePlacement(fen)
		assert.ErrorIs(t, err, board.ErrInvalidPlacement, fen)
	}
}
