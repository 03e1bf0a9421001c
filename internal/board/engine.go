package board

import (
	"sync"

	"github.com/corentings/chess/v2"
)

// fenMu serializes FEN decoding in the rules library, which splits the board
// field into a package-level buffer.
var fenMu sync.Mutex

// DecodeFEN runs decode while holding the FEN decoding lock. Every call into
// chess.FEN or chess.Board.UnmarshalText must go through it.
func DecodeFEN[T any](decode func() (T, error)) (T, error) {
	fenMu.Lock()
	defer fenMu.Unlock()
	return decode()
}

// EngineBoard converts p into the rules library's board.
func EngineBoard(p *Position) *chess.Board {
	m := make(map[chess.Square]chess.Piece, p.Len())
	for sq, pc := range p.Pieces() {
		m[EngineSquare(sq)] = chess.NewPiece(engineKind(pc.Kind), engineColor(pc.Color))
	}
	return chess.NewBoard(m)
}

// FromEngineBoard converts a rules library board back into a Position.
func FromEngineBoard(b *chess.Board) *Position {
	p := NewPosition()
	for sq, pc := range b.SquareMap() {
		kind := KindFromEngine(pc.Type())
		if kind == NoKind {
			continue
		}
		color := White
		if pc.Color() == chess.Black {
			color = Black
		}
		p.Set(SquareFromEngine(sq), Piece{Kind: kind, Color: color})
	}
	return p
}

func EngineSquare(sq Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File()), chess.Rank(sq.Rank()))
}

func SquareFromEngine(sq chess.Square) Square {
	return NewSquare(int(sq.File()), int(sq.Rank()))
}

// KindFromEngine maps a rules library piece type to a Kind, NoKind for none.
func KindFromEngine(t chess.PieceType) Kind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoKind
}

func engineKind(k Kind) chess.PieceType {
	switch k {
	case Pawn:
		return chess.Pawn
	case Knight:
		return chess.Knight
	case Bishop:
		return chess.Bishop
	case Rook:
		return chess.Rook
	case Queen:
		return chess.Queen
	case King:
		return chess.King
	}
	return chess.NoPieceType
}

func engineColor(c Color) chess.Color {
	if c == Black {
		return chess.Black
	}
	return chess.White
}
