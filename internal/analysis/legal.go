package analysis

import (
	"fmt"
	"sort"

	"github.com/corentings/chess/v2"
	"github.com/vytor/liveboard/internal/board"
)

// MoveSet is a set of moves.
type MoveSet map[Move]struct{}

// Contains reports whether m is in the set. Promotion kind is part of the match.
func (s MoveSet) Contains(m Move) bool {
	_, ok := s[m]
	return ok
}

// Strings returns the identifiers in sorted order.
func (s MoveSet) Strings() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// LegalMoves returns every move either side could legally make from the piece
// placement of p. Side to move is not tracked, so the set is the union of the
// white-to-move and black-to-move move lists, and a black candidate such as
// "h2h1q" is accepted as readily as a white one. Castling and en passant never
// appear because the position carries no rights for them.
func LegalMoves(p *board.Position) (MoveSet, error) {
	set := make(MoveSet)
	placement := board.EngineBoard(p).String()
	for _, side := range []string{"w", "b"} {
		fen := fmt.Sprintf("%s %s - - 0 1", placement, side)
		opt, err := board.DecodeFEN(func() (func(*chess.Game), error) {
			return chess.FEN(fen)
		})
		if err != nil {
			return nil, fmt.Errorf("load position %q: %w", fen, err)
		}
		game := chess.NewGame(opt)
		for _, m := range game.ValidMoves() {
			set[fromEngine(m.S1(), m.S2(), m.Promo())] = struct{}{}
		}
	}
	return set, nil
}
