package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/pkg/board"
)

func TestParseSquareRoundTrip(t *testing.T) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			sq := board.NewSquare(r, c)

			parsed, err := board.ParseSquare(sq.String())
			require.NoError(t, err)
			assert.Equal(t, sq, parsed)
		}
	}
}

func TestParseSquareNotation(t *testing.T) {
	sq, err := board.ParseSquare("e5")
	require.NoError(t, err)
	assert.Equal(t, 4, sq.Row())
	assert.Equal(t, 4, sq.Col())
	assert.Equal(t, "e5", sq.String())
}

func TestParseSquareInvalid(t *testing.T) {
	_, err := board.ParseSquare("z9")
	assert.Error(t, err)

	_, err = board.ParseSquare("a0")
	assert.Error(t, err)

	_, err = board.ParseSquare("a")
	assert.Error(t, err)
}
