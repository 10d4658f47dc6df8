package eval

import "github.com/tablutai/tablut/pkg/board"

// Channels, in the order the model expects (spec §4.2).
const (
	ChannelCamp = iota
	ChannelCastle
	ChannelEscape
	ChannelWhite
	ChannelBlack
	ChannelKing
	NumChannels
)

// Tensor is the fixed 6x9x9 encoding consumed by the convolutional
// scorer. Terrain channels are constant across positions; occupant
// channels are derived per call.
type Tensor [NumChannels][board.Size][board.Size]float32

// Encode derives the tensor for a position. Together with the three
// occupant channels, the three terrain channels recover the occupant
// grid exactly (spec §8 "Encoding round-trip"): a cell is White iff its
// white channel is 1, Black iff its black channel is 1, King iff its
// king channel is 1, and otherwise Empty.
func Encode(pos *board.Position) Tensor {
	var t Tensor
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			sq := board.NewSquare(r, c)
			switch board.TerrainAt(sq) {
			case board.Camp:
				t[ChannelCamp][r][c] = 1
			case board.Castle:
				t[ChannelCastle][r][c] = 1
			case board.Escape:
				t[ChannelEscape][r][c] = 1
			}

			switch pos.Occupant(sq) {
			case board.WhiteSoldier:
				t[ChannelWhite][r][c] = 1
			case board.BlackSoldier:
				t[ChannelBlack][r][c] = 1
			case board.King:
				t[ChannelKing][r][c] = 1
			}
		}
	}
	return t
}
