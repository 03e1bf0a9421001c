package board

import (
	"fmt"
	"strings"
)

const (
	// GridSize is the number of rows and of columns in grid text.
	GridSize = 8

	// EmptyToken marks an empty cell in grid text.
	EmptyToken = "."
)

// Grid text is laid out file-major: row 0 is the h-file and row 7 the a-file,
// while column 0 is rank 1 and column 7 rank 8. GridCell and CellSquare are the
// only places that know this, and each is the inverse of the other.

// GridCell returns the grid row and column holding sq.
func GridCell(sq Square) (row, col int) {
	return GridSize - 1 - sq.File(), sq.Rank()
}

// CellSquare returns the square shown at a grid row and column.
func CellSquare(row, col int) Square {
	return NewSquare(GridSize-1-row, col)
}

// GridText renders p as 8 lines of 8 space-separated tokens.
func GridText(p *Position) string {
	var sb strings.Builder
	for row := 0; row < GridSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < GridSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if pc, ok := p.At(CellSquare(row, col)); ok {
				sb.WriteString(pc.Symbol())
			} else {
				sb.WriteString(EmptyToken)
			}
		}
	}
	return sb.String()
}

// SplitGrid checks the shape of grid text and returns its tokens row-major, in
// the order they were emitted. Every token is EmptyToken or a piece symbol.
func SplitGrid(grid string) ([GridSize][GridSize]string, error) {
	var cells [GridSize][GridSize]string
	rows := strings.Split(strings.TrimSpace(grid), "\n")
	if len(rows) != GridSize {
		return cells, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedGrid, len(rows), GridSize)
	}
	for r, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != GridSize {
			return cells, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrMalformedGrid, r, len(tokens), GridSize)
		}
		for c, tok := range tokens {
			if tok != EmptyToken {
				if _, err := ParsePiece(tok); err != nil {
					return cells, fmt.Errorf("%w: row %d column %d: unknown token %q", ErrMalformedGrid, r, c, tok)
				}
			}
			cells[r][c] = tok
		}
	}
	return cells, nil
}

// ParseGrid rebuilds a position from grid text produced by GridText.
func ParseGrid(grid string) (*Position, error) {
	cells, err := SplitGrid(grid)
	if err != nil {
		return nil, err
	}
	p := NewPosition()
	for row := range cells {
		for col, tok := range cells[row] {
			if tok == EmptyToken {
				continue
			}
			pc, _ := ParsePiece(tok)
			p.Set(CellSquare(row, col), pc)
		}
	}
	return p, nil
}
