package matchproto

import (
	"fmt"

	"github.com/tablutai/tablut/pkg/board"
)

// cellOccupant translates one server cell string to an Occupant (spec
// §6 "Terrain inference from server cells"). THRONE is deliberately
// folded into Empty: terrain, including the castle, is recomputed from
// coordinates, never trusted from the server.
func cellOccupant(cell string) (board.Occupant, error) {
	switch cell {
	case "EMPTY", "THRONE":
		return board.Empty, nil
	case "WHITE":
		return board.WhiteSoldier, nil
	case "BLACK":
		return board.BlackSoldier, nil
	case "KING":
		return board.King, nil
	default:
		return 0, fmt.Errorf("unrecognized cell value: %q", cell)
	}
}

// moverForTurn picks the Mover tag that makes the decoded position's
// SideToMove match the server's turn field. The terminal turn values
// carry no side to move; Initial is used as a harmless placeholder since
// the caller is expected to stop acting on a terminal message.
func moverForTurn(turn string) (board.Mover, error) {
	switch turn {
	case TurnWhite:
		return board.MoverBlack, nil
	case TurnBlack:
		return board.MoverWhite, nil
	case TurnWhiteWins, TurnBlackWins, TurnDraw:
		return board.Initial, nil
	default:
		return 0, fmt.Errorf("unrecognized turn value: %q", turn)
	}
}

// DecodePosition converts a server message into a Position. The caller
// must check IsTerminal(sm.Turn) separately; a terminal message still
// decodes successfully so it can be logged, but its side to move is
// meaningless.
func DecodePosition(sm ServerMessage) (*board.Position, error) {
	mover, err := moverForTurn(sm.Turn)
	if err != nil {
		return nil, err
	}

	pos := board.NewEmptyPosition(mover)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			o, err := cellOccupant(sm.Board[r][c])
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			pos.Place(board.NewSquare(r, c), o)
		}
	}
	return pos, nil
}

// EncodeMove converts a legal move and the side that played it into the
// engine→server wire form.
func EncodeMove(m board.Move, side board.Side) EngineMove {
	turn := "W"
	if side == board.Black {
		turn = "B"
	}
	return EngineMove{From: m.From.String(), To: m.To.String(), Turn: turn}
}
