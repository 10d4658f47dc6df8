package eval

import "github.com/tablutai/tablut/pkg/board"

// Material is the stub heuristic from spec §4.2, sufficient to
// bootstrap correctness tests without a trained model:
// (#white + 3*hasKing) - #black.
type Material struct{}

func (Material) Evaluate(pos *board.Position) float64 {
	white := pos.Count(board.WhiteSoldier)
	black := pos.Count(board.BlackSoldier)

	hasKing := 0
	if _, ok := pos.KingSquare(); ok {
		hasKing = 1
	}

	return float64(white+3*hasKing) - float64(black)
}
