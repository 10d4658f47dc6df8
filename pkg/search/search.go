package search

import (
	"math"

	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/rules"
)

// DefaultDepth is the fixed search horizon D (spec §4.3).
const DefaultDepth = 3

// winValue, lossValue and the depth-1 stalemate amplification factor are
// the node-value constants from spec §4.3.
const (
	winValue            = 1.0
	lossValue           = -100.0
	stalemateAmplifyAt1 = 5.0
)

// Run searches to depth maxDepth from pos for engineSide, the engine's
// own side (the root's side to move). It returns the chosen move and the
// root's propagated value. ok is false if the engine has no legal move
// at the root (a terminal position already, per spec §7 "No legal
// moves").
func Run(pos *board.Position, engineSide board.Side, maxDepth int) (best board.Move, value float64, ok bool) {
	moves := rules.LegalMoves(pos, engineSide)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}
	moves = order(pos, engineSide, moves)

	bestValue := math.Inf(-1)
	for _, m := range moves {
		v, won := evalMove(pos, engineSide, m, engineSide, 1, maxDepth)
		if v > bestValue {
			bestValue = v
			best = m
		}
		// Root is depth 0, an even (engine-to-move) ply: the early
		// cutoff applies here too (spec §4.3 "Early cutoff").
		if won {
			break
		}
	}
	return best, bestValue, true
}

// evalMove evaluates the child node reached by sideToMove playing m from
// parentPos, landing at the given depth. It returns the node's value and
// whether an engine-side win was found anywhere in its subtree (the
// signal the early-cutoff rule watches for).
func evalMove(parentPos *board.Position, sideToMove board.Side, m board.Move, engineSide board.Side, depth, maxDepth int) (float64, bool) {
	next, err := rules.Apply(parentPos, m)
	if err != nil {
		// The move came from rules.LegalMoves, so this should not
		// happen; treat defensively as a non-contributing child.
		return 0, false
	}

	if res := rules.Outcome(next, sideToMove, m); res.Decided() {
		if res.Winner() != engineSide {
			return lossValue, false
		}
		if depth == 1 && res.Reason == board.Stalemate {
			// Depth-1 penalty amplification (spec §4.3): the opponent
			// had no reply to our candidate root move.
			return winValue * stalemateAmplifyAt1, true
		}
		return winValue, true
	}

	if depth == maxDepth {
		return 0, false // non-terminal leaf at the horizon
	}

	return expand(next, next.SideToMove(), engineSide, depth, maxDepth)
}

// expand computes a node's value by generating and aggregating its
// children: max over children if the node's side to move is the
// engine's side, mean otherwise (spec §4.3 "Interior nodes"; §9
// "Opponent model choice" — mean is deliberate, not a bug).
func expand(pos *board.Position, sideToMove, engineSide board.Side, depth, maxDepth int) (float64, bool) {
	moves := rules.LegalMoves(pos, sideToMove)
	moves = order(pos, sideToMove, moves)
	if depth == maxDepth-1 {
		moves = restrictLastPly(pos, sideToMove, moves)
	}
	if len(moves) == 0 {
		return 0, false
	}

	isEngineNode := sideToMove == engineSide
	best := math.Inf(-1)
	sum := 0.0
	anyWon := false

	for _, m := range moves {
		v, won := evalMove(pos, sideToMove, m, engineSide, depth+1, maxDepth)
		sum += v
		if v > best {
			best = v
		}
		if won {
			anyWon = true
		}
		// Early cutoff (spec §4.3): at an even-depth (engine-to-move)
		// node, stop expanding further siblings once a child signals
		// an engine-side win somewhere in its subtree.
		if depth%2 == 0 && won {
			break
		}
	}

	if isEngineNode {
		return best, anyWon
	}
	return sum / float64(len(moves)), anyWon
}
