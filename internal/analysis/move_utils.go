package analysis

import (
	"github.com/corentings/chess/v2"
	"github.com/vytor/liveboard/internal/board"
)

// fromEngine converts the rules library's move parts into a Move.
func fromEngine(s1, s2 chess.Square, promo chess.PieceType) Move {
	m := Move{
		From: board.SquareFromEngine(s1),
		To:   board.SquareFromEngine(s2),
	}

	switch promo {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		m.Promo = board.KindFromEngine(promo)
	}

	return m
}
