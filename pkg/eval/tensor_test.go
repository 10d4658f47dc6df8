package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/eval"
)

// Encoding round-trip: the three occupant channels together with the
// three terrain channels recover the occupant grid exactly (spec §8).
func TestEncodeRoundTrip(t *testing.T) {
	pos := board.NewInitialPosition()
	tensor := eval.Encode(pos)

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			sq := board.NewSquare(r, c)
			want := pos.Occupant(sq)

			var got board.Occupant
			switch {
			case tensor[eval.ChannelWhite][r][c] == 1:
				got = board.WhiteSoldier
			case tensor[eval.ChannelBlack][r][c] == 1:
				got = board.BlackSoldier
			case tensor[eval.ChannelKing][r][c] == 1:
				got = board.King
			default:
				got = board.Empty
			}
			assert.Equalf(t, want, got, "square %v", sq)
		}
	}
}

func TestEncodeTerrainChannelsMatchCastle(t *testing.T) {
	pos := board.NewInitialPosition()
	tensor := eval.Encode(pos)

	assert.Equal(t, float32(1), tensor[eval.ChannelCastle][4][4])
	assert.Equal(t, float32(0), tensor[eval.ChannelCastle][0][0])
}
