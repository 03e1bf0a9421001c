// Package features turns grid text into the one-hot input planes the move
// predictor consumes.
package features

import (
	"fmt"

	"github.com/vytor/liveboard/internal/board"
	"gorgonia.org/tensor"
)

// Planes is the size of the one-hot axis: six kinds for each color.
const Planes = 12

// planeIndex is the fixed slot order: white P,N,B,R,Q,K then black p,n,b,r,q,k.
var planeIndex = map[string]int{
	"P": 0, "N": 1, "B": 2, "R": 3, "Q": 4, "K": 5,
	"p": 6, "n": 7, "b": 8, "r": 9, "q": 10, "k": 11,
}

// PlaneIndex returns the one-hot slot for a piece symbol.
func PlaneIndex(symbol string) (int, bool) {
	i, ok := planeIndex[symbol]
	return i, ok
}

// Tensor is an 8x8x12 float32 grid indexed [row, col, plane], rows and columns
// in grid text order.
type Tensor struct {
	dense *tensor.Dense
}

func newTensor() *Tensor {
	backing := make([]float32, board.GridSize*board.GridSize*Planes)
	return &Tensor{
		dense: tensor.New(
			tensor.WithShape(board.GridSize, board.GridSize, Planes),
			tensor.WithBacking(backing),
		),
	}
}

// FromGrid parses grid text and sets a single 1.0 per occupied cell.
func FromGrid(grid string) (*Tensor, error) {
	cells, err := board.SplitGrid(grid)
	if err != nil {
		return nil, err
	}
	t := newTensor()
	for row := range cells {
		for col, tok := range cells[row] {
			if tok == board.EmptyToken {
				continue
			}
			plane, ok := PlaneIndex(tok)
			if !ok {
				return nil, fmt.Errorf("%w: no plane for %q", board.ErrMalformedGrid, tok)
			}
			if err := t.dense.SetAt(float32(1), row, col, plane); err != nil {
				return nil, fmt.Errorf("set [%d,%d,%d]: %w", row, col, plane, err)
			}
		}
	}
	return t, nil
}

// Shape returns the tensor dimensions, always (8, 8, 12).
func (t *Tensor) Shape() []int {
	return []int(t.dense.Shape().Clone())
}

// At returns the value at [row, col, plane].
func (t *Tensor) At(row, col, plane int) (float32, error) {
	v, err := t.dense.At(row, col, plane)
	if err != nil {
		return 0, err
	}
	return v.(float32), nil
}

// Data returns the row-major backing slice. Adding a leading batch dimension of
// one does not change the layout.
func (t *Tensor) Data() []float32 {
	return t.dense.Data().([]float32)
}

// Sum returns the total of all entries, which equals the number of occupied cells.
func (t *Tensor) Sum() float32 {
	var total float32
	for _, v := range t.Data() {
		total += v
	}
	return total
}
