package rules

import "github.com/tablutai/tablut/pkg/board"

// Outcome determines the terminal status after mover played m to reach
// next (spec §4.1 "Terminal detection"), checked in this order:
//  1. the moved piece was the King and landed on an escape cell: White
//     wins immediately (invariant 5);
//  2. mover was Black and the King-capture test succeeds: Black wins;
//  3. the side to move next in `next` has no legal moves: the side that
//     just moved wins (a stalemate loss for the side stuck without a
//     reply);
//  4. otherwise the game continues.
func Outcome(next *board.Position, mover board.Side, m board.Move) board.Result {
	if next.Occupant(m.To) == board.King && board.TerrainAt(m.To) == board.Escape {
		return board.Result{Outcome: board.WhiteWins, Reason: board.KingEscaped}
	}

	if mover == board.Black && IsKingCaptured(next) {
		return board.Result{Outcome: board.BlackWins, Reason: board.KingCaptured}
	}

	nextSide := next.SideToMove()
	if len(LegalMoves(next, nextSide)) == 0 {
		return stalemateResult(mover)
	}

	return board.Result{}
}

// DecidedAtRest checks the terminal conditions that hold for a position
// on its own, without reference to the move that produced it (invariant
// 5: "the moment a King sits on an escape cell with White to move, White
// has won"). Used when a position arrives from the match server rather
// than from our own Apply, so there is no `m` to hand to Outcome.
func DecidedAtRest(pos *board.Position) (board.Result, bool) {
	king, ok := pos.KingSquare()
	if ok && board.TerrainAt(king) == board.Escape && pos.SideToMove() == board.White {
		return board.Result{Outcome: board.WhiteWins, Reason: board.KingEscaped}, true
	}
	return board.Result{}, false
}

func stalemateResult(justMoved board.Side) board.Result {
	if justMoved == board.White {
		return board.Result{Outcome: board.WhiteWins, Reason: board.Stalemate}
	}
	return board.Result{Outcome: board.BlackWins, Reason: board.Stalemate}
}
