package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablutai/tablut/pkg/board"
)

func TestTerrainAtCastle(t *testing.T) {
	assert.Equal(t, board.Castle, board.TerrainAt(board.NewSquare(4, 4)))
}

func TestTerrainAtCampCells(t *testing.T) {
	camps := []board.Square{
		board.NewSquare(0, 3), board.NewSquare(0, 4), board.NewSquare(0, 5), board.NewSquare(1, 4),
		board.NewSquare(4, 0), board.NewSquare(3, 0), board.NewSquare(5, 0), board.NewSquare(4, 1),
	}
	for _, sq := range camps {
		assert.Equalf(t, board.Camp, board.TerrainAt(sq), "square %v", sq)
	}
}

func TestTerrainAtEscapeCells(t *testing.T) {
	assert.Equal(t, board.Escape, board.TerrainAt(board.NewSquare(0, 1)))
	assert.Equal(t, board.Escape, board.TerrainAt(board.NewSquare(8, 2)))
	assert.Equal(t, board.Escape, board.TerrainAt(board.NewSquare(1, 0)))
}

func TestTerrainAtPlain(t *testing.T) {
	assert.Equal(t, board.Plain, board.TerrainAt(board.NewSquare(2, 4)))
}

func TestIsCampReentryAllowed(t *testing.T) {
	center := board.NewSquare(0, 4)
	other := board.NewSquare(0, 3)

	assert.True(t, board.IsCampReentryAllowed(center, other))
	assert.False(t, board.IsCampReentryAllowed(other, center))
	assert.False(t, board.IsCampReentryAllowed(board.NewSquare(4, 0), other))
}
