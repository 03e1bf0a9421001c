package models

import "time"

// Snapshot is the persisted copy of the current board. Only one is ever kept.
type Snapshot struct {
	Placement  string    `json:"placement"`
	Grid       string    `json:"grid"`
	PieceCount int       `json:"piece_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}
