package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/engine"
	"github.com/tablutai/tablut/pkg/eval"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester", board.White, eval.Material{})

	assert.True(t, board.NewInitialPosition().Equals(e.Position()))
	assert.Equal(t, board.White, e.Side())
}

func TestEngineApplyAdvancesPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester", board.Black, eval.Material{})

	m := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(2, 2)}
	require.NoError(t, e.Apply(ctx, m))

	assert.Equal(t, board.WhiteSoldier, e.Position().Occupant(board.NewSquare(2, 2)))
	assert.Equal(t, board.Empty, e.Position().Occupant(board.NewSquare(2, 4)))
}

func TestEngineApplyRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester", board.White, eval.Material{})

	m := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(4, 4)} // castle
	assert.Error(t, e.Apply(ctx, m))
}

func TestEngineDecidePlaysALegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester", board.White, eval.Material{})

	before := e.Position()
	m, err := e.Decide(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, board.CastleSquare, m.To)
	assert.False(t, before.Equals(e.Position()))
}
