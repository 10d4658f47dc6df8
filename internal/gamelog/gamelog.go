// Package gamelog writes the optional, purely informational per-turn
// game log (spec §6 "Persisted state"): a move attribution line followed
// by a 9-row ASCII board. The original source distinguished camp, castle
// and plain empty cells with separate glyphs; here Position.Occupant
// never encodes terrain, so an empty cell always renders as the single
// "." glyph regardless of what's beneath it — the normalization the spec
// calls for falls out of the board representation rather than needing an
// explicit collapsing step.
package gamelog

import (
	"fmt"
	"io"

	"github.com/tablutai/tablut/pkg/board"
)

// Log appends per-turn entries to an underlying writer, usually an
// append-mode file.
type Log struct {
	w io.Writer
}

// New wraps w as a game log sink.
func New(w io.Writer) *Log {
	return &Log{w: w}
}

// Append writes one turn's attribution line and resulting board.
func (l *Log) Append(ply int, side board.Side, m board.Move, pos *board.Position) error {
	if _, err := fmt.Fprintf(l.w, "%d. %v %v\n", ply, side, m); err != nil {
		return err
	}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if _, err := fmt.Fprint(l.w, pos.Occupant(board.NewSquare(r, c)).String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(l.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(l.w)
	return err
}
