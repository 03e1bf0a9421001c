package analysis

import (
	"errors"
	"fmt"

	"github.com/vytor/liveboard/internal/board"
)

// ErrInvalidMove indicates a move identifier that is not in "e2e4" / "e7e8q" form.
var ErrInvalidMove = errors.New("invalid move identifier")

// Move is an origin and destination square plus an optional promotion kind.
type Move struct {
	From  board.Square
	To    board.Square
	Promo board.Kind
}

// String returns the 4 or 5 character identifier, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promo != board.NoKind {
		s += string(m.Promo.Letter())
	}
	return s
}

// ParseMove parses a move identifier. Promotion letters must be lowercase n, b, r or q.
func ParseMove(id string) (Move, error) {
	if len(id) != 4 && len(id) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, id)
	}
	from, ok := board.ParseSquare(id[0:2])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q has bad origin", ErrInvalidMove, id)
	}
	to, ok := board.ParseSquare(id[2:4])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q has bad destination", ErrInvalidMove, id)
	}
	m := Move{From: from, To: to}
	if len(id) == 5 {
		switch id[4] {
		case 'n':
			m.Promo = board.Knight
		case 'b':
			m.Promo = board.Bishop
		case 'r':
			m.Promo = board.Rook
		case 'q':
			m.Promo = board.Queen
		default:
			return Move{}, fmt.Errorf("%w: %q has bad promotion", ErrInvalidMove, id)
		}
	}
	return m, nil
}
