// Package board contains the Tablut board representation: terrain
// classification, occupants, and the immutable Position value type.
// Move generation, move application and terminal detection live one
// layer up, in package rules, so that this package has no outgoing
// dependency on the rest of the engine (spec §9 "Module cross-imports").
package board

import (
	"fmt"
	"strings"
)

// Position is an immutable 9x9 board snapshot: the occupant of every
// cell, plus a tag for the side that produced it (or Initial for the
// starting layout). Terrain is not stored; it is a pure function of the
// coordinates (TerrainAt) and is recomputed on demand.
type Position struct {
	cells [Size][Size]Occupant
	mover Mover
}

// NewInitialPosition returns the Tablut starting position: Black on all
// 16 camp cells, White in a cross through the castle with the King at
// the center.
func NewInitialPosition() *Position {
	p := &Position{mover: Initial}

	for _, g := range campGroups {
		for _, sq := range g.Cells {
			p.cells[sq.Row()][sq.Col()] = BlackSoldier
		}
	}

	whiteCross := []Square{
		NewSquare(2, 4), NewSquare(3, 4), NewSquare(5, 4), NewSquare(6, 4),
		NewSquare(4, 2), NewSquare(4, 3), NewSquare(4, 5), NewSquare(4, 6),
	}
	for _, sq := range whiteCross {
		p.cells[sq.Row()][sq.Col()] = WhiteSoldier
	}
	p.cells[4][4] = King

	return p
}

// NewEmptyPosition returns a position with every cell empty, for tests
// and for converting server boards that specify every occupant directly.
func NewEmptyPosition(mover Mover) *Position {
	return &Position{mover: mover}
}

// Occupant returns the content of a square.
func (p *Position) Occupant(sq Square) Occupant {
	return p.cells[sq.Row()][sq.Col()]
}

// Place sets the occupant of a square. Exported for protocol decoding and
// test setup; the rules engine uses it to build successor positions. Not
// used to mutate a Position already handed to other code — Clone first.
func (p *Position) Place(sq Square, o Occupant) {
	p.cells[sq.Row()][sq.Col()] = o
}

// Mover returns the side that produced this position (or Initial).
func (p *Position) Mover() Mover {
	return p.mover
}

// SideToMove returns whose turn it is: White after Initial or after
// Black moved, Black after White moved.
func (p *Position) SideToMove() Side {
	if p.mover == MoverWhite {
		return Black
	}
	return White
}

// SetMover mutates p's mover tag in place. Intended for use by the rules
// engine on a position it just cloned for a successor, not on a position
// shared with other code.
func (p *Position) SetMover(m Mover) {
	p.mover = m
}

// WithMover returns a shallow copy of p tagged with the given mover,
// leaving cells untouched. Used by protocol decoding, which infers
// occupants from the server but has no move to attribute.
func (p *Position) WithMover(m Mover) *Position {
	c := p.Clone()
	c.mover = m
	return c
}

// Clone returns a deep copy suitable for mutating into a successor
// position.
func (p *Position) Clone() *Position {
	c := &Position{mover: p.mover}
	c.cells = p.cells
	return c
}

// KingSquare returns the King's square. Ok is false if the King is off
// the board (should never happen per invariant 1, but callers that run
// before full validation should check).
func (p *Position) KingSquare() (Square, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.cells[r][c] == King {
				return NewSquare(r, c), true
			}
		}
	}
	return 0, false
}

// Count returns the number of cells occupied by o.
func (p *Position) Count(o Occupant) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.cells[r][c] == o {
				n++
			}
		}
	}
	return n
}

// Equals reports whether two positions have identical occupants. Mover
// is not compared; this is used to detect "apply never yields the
// input" (spec §8), which only concerns board content.
func (p *Position) Equals(o *Position) bool {
	return p.cells == o.cells
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteString(p.cells[r][c].String())
		}
		if r != Size-1 {
			sb.WriteRune('\n')
		}
	}
	return fmt.Sprintf("%v [mover=%v]", sb.String(), p.mover)
}
