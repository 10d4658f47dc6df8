package rules

import "github.com/tablutai/tablut/pkg/board"

// IsKingCaptured implements the King-capture test (spec §4.1), checked
// independently after a Black move. Every branch returns an explicit
// boolean; the open-board case never falls through undecided (spec §9
// open question, resolved here to "not captured" unless the two-sided
// sandwich condition holds).
func IsKingCaptured(pos *board.Position) bool {
	king, ok := pos.KingSquare()
	if !ok {
		return false
	}

	switch {
	case king == board.CastleSquare:
		return allNeighborsBlack(pos, king)
	case isAdjacentToCastle(king):
		return nonCastleNeighborsBlack(pos, king)
	default:
		return isSandwichedOnOpenBoard(pos, king)
	}
}

func isAdjacentToCastle(sq board.Square) bool {
	for _, d := range directions {
		r, c := sq.Row()+d[0], sq.Col()+d[1]
		if board.InBounds(r, c) && board.NewSquare(r, c) == board.CastleSquare {
			return true
		}
	}
	return false
}

// allNeighborsBlack: King on (4,4), captured iff all four orthogonal
// neighbors are black.
func allNeighborsBlack(pos *board.Position, king board.Square) bool {
	for _, d := range directions {
		r, c := king.Row()+d[0], king.Col()+d[1]
		if !board.InBounds(r, c) || pos.Occupant(board.NewSquare(r, c)) != board.BlackSoldier {
			return false
		}
	}
	return true
}

// nonCastleNeighborsBlack: King adjacent to the castle, captured iff its
// three non-castle orthogonal neighbors are black (the castle itself
// counts as the fourth "wall").
func nonCastleNeighborsBlack(pos *board.Position, king board.Square) bool {
	for _, d := range directions {
		r, c := king.Row()+d[0], king.Col()+d[1]
		if !board.InBounds(r, c) {
			return false // castle-adjacency already checked; an off-board wall is not a valid surround
		}
		sq := board.NewSquare(r, c)
		if sq == board.CastleSquare {
			continue // the castle is the fourth wall
		}
		if pos.Occupant(sq) != board.BlackSoldier {
			return false
		}
	}
	return true
}

// isSandwichedOnOpenBoard: King on a plain or escape cell, captured iff
// there exist two opposite orthogonal neighbors that are both black
// (the classic two-sided sandwich). This function is the authority on
// the spec's noted open-board fallthrough ambiguity: every path below
// returns explicitly.
func isSandwichedOnOpenBoard(pos *board.Position, king board.Square) bool {
	axes := [2][2][2]int{
		{{-1, 0}, {1, 0}},
		{{0, -1}, {0, 1}},
	}
	for _, axis := range axes {
		if isBlackAt(pos, king, axis[0]) && isBlackAt(pos, king, axis[1]) {
			return true
		}
	}
	return false
}

func isBlackAt(pos *board.Position, from board.Square, d [2]int) bool {
	r, c := from.Row()+d[0], from.Col()+d[1]
	return board.InBounds(r, c) && pos.Occupant(board.NewSquare(r, c)) == board.BlackSoldier
}
