package board

import "fmt"

// Record is one entry of the reader's board-state message.
type Record struct {
	Position CellCode `json:"position"`
	Piece    string   `json:"piece"`
}

// BuildPosition places every record on a fresh, empty position. Records apply in
// order, so a later record for the same square replaces an earlier one. The result
// is not checked for reachability: the source is a physical board, not a game.
func BuildPosition(records []Record) (*Position, error) {
	p := NewPosition()
	for i, rec := range records {
		pc, err := ParsePiece(rec.Piece)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		sq, err := ToSquare(rec.Position)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		p.Set(sq, pc)
	}
	return p, nil
}
