package board

import (
	"fmt"
	"strings"
	"unicode"
)

// Square identifies one of the 64 cells, a1 = 0 through h8 = 63.
type Square int

// NoSquare is returned alongside errors.
const NoSquare Square = -1

// NewSquare returns the square for a zero-based file (a = 0) and rank (1 = 0).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file, a = 0.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank, rank 1 = 0.
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), true
}

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a piece kind. The zero value means no piece.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const kindLetters = " pnbrqk"

// Letter returns the lowercase label letter for k.
func (k Kind) Letter() byte {
	if k <= NoKind || k > King {
		return '?'
	}
	return kindLetters[k]
}

// KindFromLetter maps a lowercase label letter to its kind.
func KindFromLetter(r rune) (Kind, bool) {
	i := strings.IndexRune(kindLetters, r)
	if i <= 0 {
		return NoKind, false
	}
	return Kind(i), true
}

type Piece struct {
	Kind  Kind
	Color Color
}

// IsEmpty reports whether p is the zero piece.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Symbol returns the piece letter, uppercase for white and lowercase for black.
func (p Piece) Symbol() string {
	l := rune(p.Kind.Letter())
	if p.Color == White {
		l = unicode.ToUpper(l)
	}
	return string(l)
}

func (p Piece) String() string { return p.Symbol() }

// ParsePiece decodes a single-letter label. Case carries the color.
func ParsePiece(label string) (Piece, error) {
	runes := []rune(label)
	if len(runes) != 1 {
		return Piece{}, fmt.Errorf("%w: %q", ErrUnknownPieceKind, label)
	}
	r := runes[0]
	kind, ok := KindFromLetter(unicode.ToLower(r))
	if !ok {
		return Piece{}, fmt.Errorf("%w: %q", ErrUnknownPieceKind, label)
	}
	color := Black
	if unicode.IsUpper(r) {
		color = White
	}
	return Piece{Kind: kind, Color: color}, nil
}

// Position is piece placement only. Castling, en passant and clocks are not tracked.
type Position struct {
	squares [64]Piece
}

// NewPosition returns an empty position.
func NewPosition() *Position {
	return &Position{}
}

// Set places pc on sq, replacing whatever was there.
func (p *Position) Set(sq Square, pc Piece) {
	p.squares[sq] = pc
}

// At returns the piece on sq, if any.
func (p *Position) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	pc := p.squares[sq]
	return pc, !pc.IsEmpty()
}

// Len returns the number of occupied squares.
func (p *Position) Len() int {
	n := 0
	for _, pc := range p.squares {
		if !pc.IsEmpty() {
			n++
		}
	}
	return n
}

// Pieces returns the occupied squares as a map.
func (p *Position) Pieces() map[Square]Piece {
	out := make(map[Square]Piece)
	for sq, pc := range p.squares {
		if !pc.IsEmpty() {
			out[Square(sq)] = pc
		}
	}
	return out
}
