// Package rules implements the Tablut rules engine: move generation,
// move application with capture resolution, and terminal detection
// (spec §4.1). It depends only on package board, keeping the
// Board Model ← Rules Engine ← Tree Searcher ← Decision Policy
// dependency chain one-way (spec §9).
package rules

import "github.com/tablutai/tablut/pkg/board"

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// LegalMoves returns every legal move for the given side in the
// position: the pieces the side controls (White controls white soldiers
// and the King; Black controls black soldiers), sliding orthogonally
// until blocked, filtered by isLegalDestination.
func LegalMoves(pos *board.Position, side board.Side) []board.Move {
	var moves []board.Move

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			from := board.NewSquare(r, c)
			o := pos.Occupant(from)
			owner, ok := o.Side()
			if !ok || owner != side {
				continue
			}

			for _, d := range directions {
				for step := 1; ; step++ {
					nr, nc := r+d[0]*step, c+d[1]*step
					if !board.InBounds(nr, nc) {
						break
					}
					to := board.NewSquare(nr, nc)
					if pos.Occupant(to) != board.Empty {
						break // path blocked; no further destinations this direction
					}
					if isLegalDestination(from, to, o) {
						moves = append(moves, board.Move{From: from, To: to})
					}
				}
			}
		}
	}
	return moves
}

// isLegalDestination reports whether a sliding piece may land on an
// otherwise-reachable empty square, per spec §4.1:
//   - the castle is never a legal destination for anyone;
//   - camps are legal only for a black soldier moving from its camp
//     group's center cell, and only within that same group;
//   - escape and plain cells are always acceptable.
func isLegalDestination(from, to board.Square, piece board.Occupant) bool {
	switch board.TerrainAt(to) {
	case board.Castle:
		return false
	case board.Camp:
		return piece == board.BlackSoldier && board.IsCampReentryAllowed(from, to)
	default: // Plain, Escape
		return true
	}
}

// IsLegal reports whether m is a legal move for side in pos: orthogonal,
// non-zero, origin owned by side, path clear, destination acceptable.
func IsLegal(pos *board.Position, side board.Side, m board.Move) bool {
	if !m.IsOrthogonal() {
		return false
	}
	o := pos.Occupant(m.From)
	owner, ok := o.Side()
	if !ok || owner != side {
		return false
	}

	r0, c0 := m.From.Row(), m.From.Col()
	r1, c1 := m.To.Row(), m.To.Col()
	dr, dc := sign(r1-r0), sign(c1-c0)

	for r, c := r0+dr, c0+dc; ; r, c = r+dr, c+dc {
		sq := board.NewSquare(r, c)
		if sq == m.To {
			return isLegalDestination(m.From, m.To, o)
		}
		if pos.Occupant(sq) != board.Empty {
			return false
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
