package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/rules"
)

func TestLegalMovesAreOrthogonal(t *testing.T) {
	pos := board.NewInitialPosition()

	for _, m := range rules.LegalMoves(pos, board.White) {
		assert.True(t, m.IsOrthogonal(), "move %v not orthogonal", m)
	}
	for _, m := range rules.LegalMoves(pos, board.Black) {
		assert.True(t, m.IsOrthogonal(), "move %v not orthogonal", m)
	}
}

func TestLegalMovesNeverTargetCastle(t *testing.T) {
	pos := board.NewInitialPosition()

	for _, m := range rules.LegalMoves(pos, board.White) {
		assert.NotEqual(t, board.CastleSquare, m.To)
	}
}

func TestScenario1InitialPositionMoves(t *testing.T) {
	pos := board.NewInitialPosition()

	good := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(2, 2)}
	bad := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(4, 4)}

	assert.True(t, rules.IsLegal(pos, board.White, good))
	assert.False(t, rules.IsLegal(pos, board.White, bad))
}

func TestOnlyCampCenterMayReenterCamp(t *testing.T) {
	pos := board.NewEmptyPosition(board.Initial)
	pos.Place(board.NewSquare(0, 4), board.BlackSoldier) // camp group center
	pos.Place(board.NewSquare(3, 3), board.BlackSoldier) // not a camp center

	fromCenter := board.Move{From: board.NewSquare(0, 4), To: board.NewSquare(0, 3)}
	assert.True(t, rules.IsLegal(pos, board.Black, fromCenter))

	fromElsewhere := board.Move{From: board.NewSquare(3, 3), To: board.NewSquare(3, 0)}
	assert.False(t, rules.IsLegal(pos, board.Black, fromElsewhere))
}

func TestIsLegalRejectsBlockedPath(t *testing.T) {
	pos := board.NewEmptyPosition(board.Initial)
	pos.Place(board.NewSquare(4, 4), board.King)
	pos.Place(board.NewSquare(4, 6), board.BlackSoldier)

	blocked := board.Move{From: board.NewSquare(4, 4), To: board.NewSquare(4, 8)}
	assert.False(t, rules.IsLegal(pos, board.White, blocked))
}

func TestIsLegalRejectsWrongOwner(t *testing.T) {
	pos := board.NewInitialPosition()
	m := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(2, 2)}

	assert.False(t, rules.IsLegal(pos, board.Black, m))
}
