package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/seekerror/logw"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/eval"
	"github.com/tablutai/tablut/pkg/rules"
	"github.com/tablutai/tablut/pkg/search"
)

// ErrNoLegalMoves signals the terminal, non-error condition of spec §7
// "No legal moves": the side to move has no options and has lost. The
// caller should report no move and await the server's terminal signal.
var ErrNoLegalMoves = errors.New("engine: no legal moves")

// PolicyOptions are the Decision Policy's configuration knobs (spec
// §4.4), all with the defaults the spec states.
type PolicyOptions struct {
	// WarmupWhite and WarmupBlack are the per-side ply count up to and
	// including which the policy plays pure scorer-greedy, before the tree
	// searcher is ever consulted.
	WarmupWhite, WarmupBlack int
	// Depth is the Tree Searcher's fixed horizon D.
	Depth int
	// ThresholdWhite and ThresholdBlack are the root-value cutoffs above
	// which the tree's choice is trusted over the scorer-greedy fallback.
	ThresholdWhite, ThresholdBlack float64
}

// DefaultPolicyOptions returns spec §4.4's stated defaults.
func DefaultPolicyOptions() PolicyOptions {
	return PolicyOptions{
		WarmupWhite:    4,
		WarmupBlack:    4,
		Depth:          search.DefaultDepth,
		ThresholdWhite: 0.0,
		ThresholdBlack: 0.0,
	}
}

func (o PolicyOptions) warmup(s board.Side) int {
	if s == board.White {
		return o.WarmupWhite
	}
	return o.WarmupBlack
}

func (o PolicyOptions) threshold(s board.Side) float64 {
	if s == board.White {
		return o.ThresholdWhite
	}
	return o.ThresholdBlack
}

// Policy is the Decision Policy (spec §4.4): it chooses, per turn, between
// pure scorer-greedy play and the Tree Searcher's recommendation, gated by
// a warmup period, a castle shortcut for Black, and a root-value
// threshold. It is the only component that depends on both the Positional
// Scorer and the Tree Searcher.
type Policy struct {
	scorer eval.Evaluator
	opts   PolicyOptions

	mu    sync.Mutex
	plies map[board.Side]int
}

// NewPolicy constructs a Decision Policy around the given scorer.
func NewPolicy(scorer eval.Evaluator, opts PolicyOptions) *Policy {
	return &Policy{
		scorer: scorer,
		opts:   opts,
		plies:  map[board.Side]int{board.White: 0, board.Black: 0},
	}
}

// Decide returns the engine's move for side at position pos (spec §4.4).
// It returns ErrNoLegalMoves, not an error, when side has lost.
func (p *Policy) Decide(ctx context.Context, pos *board.Position, side board.Side) (board.Move, error) {
	moves := rules.LegalMoves(pos, side)
	if len(moves) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}

	p.mu.Lock()
	p.plies[side]++
	ply := p.plies[side]
	p.mu.Unlock()

	if ply <= p.opts.warmup(side) {
		logw.Debugf(ctx, "policy: ply %v within warmup for %v, playing scorer-greedy", ply, side)
		return p.greedy(pos, side, moves), nil
	}

	if side == board.Black {
		if king, ok := pos.KingSquare(); ok && king == board.CastleSquare {
			logw.Debugf(ctx, "policy: king still on castle, tree offers no advantage, playing scorer-greedy")
			return p.greedy(pos, side, moves), nil
		}
	}

	best, value, ok := search.Run(pos, side, p.opts.Depth)
	if ok && value > p.opts.threshold(side) {
		logw.Debugf(ctx, "policy: tree root value %v exceeds threshold, playing %v", value, best)
		return best, nil
	}

	logw.Debugf(ctx, "policy: tree root value %v at or below threshold, falling back to scorer-greedy", value)
	return p.greedy(pos, side, moves), nil
}

// greedy evaluates every legal move's resulting position with the scorer
// and returns the one White prefers highest, Black lowest (spec §4.4
// step 2). It degrades to the first legal move if scoring fails
// outright, since a turn must never go unplayed.
func (p *Policy) greedy(pos *board.Position, side board.Side, moves []board.Move) board.Move {
	best := moves[0]
	bestScore, ok := p.scoreMove(pos, best)
	if !ok {
		return best
	}

	for _, m := range moves[1:] {
		s, ok := p.scoreMove(pos, m)
		if !ok {
			continue
		}
		if (side == board.White && s > bestScore) || (side == board.Black && s < bestScore) {
			best, bestScore = m, s
		}
	}
	return best
}

func (p *Policy) scoreMove(pos *board.Position, m board.Move) (float64, bool) {
	next, err := rules.Apply(pos, m)
	if err != nil {
		return 0, false
	}
	return p.scorer.Evaluate(next), true
}

func (o PolicyOptions) String() string {
	return fmt.Sprintf("{warmup=(%v,%v), depth=%v, threshold=(%v,%v)}",
		o.WarmupWhite, o.WarmupBlack, o.Depth, o.ThresholdWhite, o.ThresholdBlack)
}
