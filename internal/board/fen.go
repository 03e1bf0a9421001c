package board

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
)

// untrackedFENFields fills the FEN fields this package does not model: white to
// move, no castling rights, no en passant target, fresh clocks.
const untrackedFENFields = "w - - 0 1"

// PlacementFEN returns the piece-placement field of p, rank 8 first.
func PlacementFEN(p *Position) string {
	return EngineBoard(p).String()
}

// FEN returns a full FEN string for p with placeholder values for the state p
// does not track.
func FEN(p *Position) string {
	return PlacementFEN(p) + " " + untrackedFENFields
}

// ParsePlacement decodes the piece-placement field of a FEN string. Any fields
// after the first are ignored.
func ParsePlacement(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPlacement)
	}
	b, err := DecodeFEN(func() (*chess.Board, error) {
		b := &chess.Board{}
		return b, b.UnmarshalText([]byte(fields[0]))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPlacement, fields[0], err)
	}
	return FromEngineBoard(b), nil
}
