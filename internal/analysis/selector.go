// Package analysis filters externally ranked move candidates down to the first
// one that is legal on the tracked board.
package analysis

import (
	"github.com/vytor/liveboard/internal/board"
)

// SelectMove rebuilds the position from grid text and returns the first
// identifier in ranked that is a legal move there. ranked is expected in
// descending confidence. ok is false when no candidate is legal, which is a
// normal outcome; identifiers that do not parse are skipped. The only error is a
// malformed grid.
func SelectMove(grid string, ranked []string) (move Move, ok bool, err error) {
	pos, err := board.ParseGrid(grid)
	if err != nil {
		return Move{}, false, err
	}
	legal, err := LegalMoves(pos)
	if err != nil {
		return Move{}, false, err
	}
	for _, id := range ranked {
		m, err := ParseMove(id)
		if err != nil {
			continue
		}
		if legal.Contains(m) {
			return m, true, nil
		}
	}
	return Move{}, false, nil
}
