// Package session holds the one board the service tracks.
package session

import (
	"sync/atomic"

	"github.com/vytor/liveboard/internal/board"
)

// Store owns the single current position. Replace swaps the whole position in
// one atomic step: it never merges, and readers see either the old or the new
// board, never a mix. Updates are not otherwise coordinated. When two updates
// overlap, whichever calls Replace last wins, which matches one physical board
// having one true state.
type Store struct {
	current atomic.Pointer[board.Position]
}

// NewStore returns a store holding an empty board.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(board.NewPosition())
	return s
}

// Replace installs p as the current position. A nil p resets to an empty board.
func (s *Store) Replace(p *board.Position) {
	if p == nil {
		p = board.NewPosition()
	}
	s.current.Store(p)
}

// Current returns the current position. Callers must not modify it.
func (s *Store) Current() *board.Position {
	return s.current.Load()
}
