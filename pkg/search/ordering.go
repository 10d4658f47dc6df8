// Package search implements the Tree Searcher (spec §4.3): a fixed-depth
// minimax-style search with mean-of-children opponent modeling,
// domain-specific move ordering, a last-ply restriction, and a
// winning-move early cutoff. It depends on board and rules only; the
// scorer is never consulted here (spec §4.3).
package search

import (
	"github.com/tablutai/tablut/pkg/board"
	"golang.org/x/exp/slices"
)

// order reorders moves by the domain heuristic for the side to move
// (spec §4.3 "Move ordering"):
//   - White: King moves first;
//   - Black: moves landing orthogonally adjacent to the King first.
//
// Ties keep their original (generation) order, matching the teacher's
// stable-sort move-ordering idiom (pkg/search/exploration.go).
func order(pos *board.Position, side board.Side, moves []board.Move) []board.Move {
	king, hasKing := pos.KingSquare()

	priority := func(m board.Move) int {
		if side == board.White {
			if m.From == king {
				return 0
			}
			return 1
		}
		if hasKing && isAdjacent(m.To, king) {
			return 0
		}
		return 1
	}

	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(a, b board.Move) int {
		return priority(a) - priority(b)
	})
	return ordered
}

// restrictLastPly narrows the candidate set at depth D-1, the ply right
// before the search horizon (spec §4.3):
//   - White: King moves only;
//   - Black: moves landing orthogonally adjacent to the King; if none,
//     the node has no children.
func restrictLastPly(pos *board.Position, side board.Side, moves []board.Move) []board.Move {
	king, hasKing := pos.KingSquare()

	var restricted []board.Move
	for _, m := range moves {
		switch {
		case side == board.White:
			if m.From == king {
				restricted = append(restricted, m)
			}
		case hasKing && isAdjacent(m.To, king):
			restricted = append(restricted, m)
		}
	}
	return restricted
}

func isAdjacent(a, b board.Square) bool {
	dr := a.Row() - b.Row()
	dc := a.Col() - b.Col()
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}
