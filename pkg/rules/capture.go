package rules

import "github.com/tablutai/tablut/pkg/board"

// resolveCaptures removes soldiers custodially sandwiched by the piece
// that just landed on `at`, in all four directions at once (spec §4.1
// "Capture resolution"). pos is mutated in place; callers pass a
// position they exclusively own (a freshly cloned successor).
func resolveCaptures(pos *board.Position, mover board.Side, at board.Square) {
	enemy, anchors := captureGeometry(mover)

	for _, d := range directions {
		run := captureRun(pos, at, d, enemy)
		if len(run) == 0 {
			continue
		}

		beyondR := at.Row() + d[0]*(len(run)+1)
		beyondC := at.Col() + d[1]*(len(run)+1)
		if !board.InBounds(beyondR, beyondC) {
			continue
		}
		anchor := board.NewSquare(beyondR, beyondC)
		if !isAnchorFor(pos, anchor, anchors) {
			continue
		}

		for _, sq := range run {
			pos.Place(sq, board.Empty)
		}
	}
}

// captureGeometry returns the enemy occupant and the set of anchor kinds
// for the side that just moved (spec §4.1):
//   - Black just moved: enemy is white soldiers; anchors are black
//     soldiers or camp cells (never the King).
//   - White just moved: enemy is black soldiers; anchors are white
//     soldiers, the King, or the castle cell.
func captureGeometry(mover board.Side) (enemy board.Occupant, anchors anchorSet) {
	if mover == board.Black {
		return board.WhiteSoldier, anchorSet{soldier: board.BlackSoldier, campAnchor: true}
	}
	return board.BlackSoldier, anchorSet{soldier: board.WhiteSoldier, king: true, castleAnchor: true}
}

type anchorSet struct {
	soldier      board.Occupant
	king         bool
	campAnchor   bool
	castleAnchor bool
}

// captureRun collects the contiguous run of enemy soldiers starting at
// the neighbor of `at` in direction d. A run only counts if it then
// reaches a real cell (not falls off the board) before being measured
// against an anchor by the caller.
func captureRun(pos *board.Position, at board.Square, d [2]int, enemy board.Occupant) []board.Square {
	var run []board.Square
	for step := 1; ; step++ {
		r, c := at.Row()+d[0]*step, at.Col()+d[1]*step
		if !board.InBounds(r, c) {
			return nil // ran off the board before an anchor could close it
		}
		sq := board.NewSquare(r, c)
		if pos.Occupant(sq) != enemy {
			break
		}
		run = append(run, sq)
	}
	return run
}

func isAnchorFor(pos *board.Position, sq board.Square, anchors anchorSet) bool {
	if anchors.castleAnchor && sq == board.CastleSquare {
		return true
	}
	o := pos.Occupant(sq)
	if o == anchors.soldier {
		return true
	}
	if anchors.king && o == board.King {
		return true
	}
	if anchors.campAnchor && board.TerrainAt(sq) == board.Camp {
		return true
	}
	return false
}
