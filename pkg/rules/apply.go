package rules

import (
	"fmt"

	"github.com/tablutai/tablut/pkg/board"
)

// Apply produces the successor position for a legal move: the origin
// cell is cleared, the destination cell receives the moved piece, the
// mover tag is updated, and captures are resolved from the destination.
// Returns an error if m is not legal for the side that owns the piece at
// m.From (spec §4.1 move application).
func Apply(pos *board.Position, m board.Move) (*board.Position, error) {
	piece := pos.Occupant(m.From)
	side, ok := piece.Side()
	if !ok {
		return nil, fmt.Errorf("apply %v: origin is empty", m)
	}
	if !IsLegal(pos, side, m) {
		return nil, fmt.Errorf("apply %v: illegal for %v", m, side)
	}

	next := pos.Clone()
	next.Place(m.From, board.Empty)
	next.Place(m.To, piece)
	next.SetMover(board.MoverOf(side))

	resolveCaptures(next, side, m.To)
	return next, nil
}
