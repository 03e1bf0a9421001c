package board

import "errors"

// Sentinel errors returned by the board package. Callers match them with errors.Is.
var (
	// ErrInvalidCoordinate indicates an external cell code outside the reader's numbering.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnknownPieceKind indicates a piece label that is not one of p, n, b, r, q, k.
	ErrUnknownPieceKind = errors.New("unknown piece kind")

	// ErrMalformedGrid indicates grid text that is not 8 rows of 8 known tokens.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrInvalidPlacement indicates a FEN piece-placement field that cannot be decoded.
	ErrInvalidPlacement = errors.New("invalid piece placement")
)
