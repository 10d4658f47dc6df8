package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/eval"
)

func TestMaterialInitialPosition(t *testing.T) {
	pos := board.NewInitialPosition()
	score := eval.Material{}.Evaluate(pos)

	// 8 white + 3 for the king - 16 black.
	assert.Equal(t, float64(8+3-16), score)
}

// Scorer stability: score(P) depends only on the board, not last-mover
// or ply count (spec §8).
func TestMaterialStability(t *testing.T) {
	pos := board.NewInitialPosition()
	tagged := pos.WithMover(board.MoverWhite)

	assert.Equal(t, eval.Material{}.Evaluate(pos), eval.Material{}.Evaluate(tagged))
}

func TestMaterialNoKingOmitsBonus(t *testing.T) {
	pos := board.NewEmptyPosition(board.Initial)
	pos.Place(board.NewSquare(0, 0), board.WhiteSoldier)
	pos.Place(board.NewSquare(1, 1), board.BlackSoldier)

	assert.Equal(t, float64(0), eval.Material{}.Evaluate(pos))
}
