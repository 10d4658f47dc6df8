// Package engine wires the Board Model, Rules Engine, Tree Searcher and
// Positional Scorer into the Decision Policy (spec §4.4), and exposes the
// per-game state a match driver needs: apply the opponent's move, decide
// our own, and track the position across turns.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/eval"
	"github.com/tablutai/tablut/pkg/rules"
)

var version = build.NewVersion(0, 1, 0)

// Option is an engine creation option.
type Option func(*Engine)

// WithPolicyOptions overrides the Decision Policy's default knobs.
func WithPolicyOptions(opts PolicyOptions) Option {
	return func(e *Engine) {
		e.policyOpts = opts
	}
}

// WithZobrist configures the engine's game log to use the given random
// seed instead of the default seed of zero. The seed never affects move
// choice; Zobrist hashing is logging-only (spec §9).
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// Engine plays one side of one match: it owns the current Game state and
// the Decision Policy, and is the unit a match driver turns into moves.
type Engine struct {
	name, author string
	side         board.Side
	scorer       eval.Evaluator
	policyOpts   PolicyOptions
	seed         int64

	mu     sync.Mutex
	zt     *board.ZobristTable
	game   *board.Game
	policy *Policy
}

// New constructs an Engine for the given side, starting from the initial
// position, scored by scorer (the Positional Scorer, injected per spec §9
// "Scorer pluggability").
func New(ctx context.Context, name, author string, side board.Side, scorer eval.Evaluator, opts ...Option) *Engine {
	e := &Engine{
		name:       name,
		author:     author,
		side:       side,
		scorer:     scorer,
		policyOpts: DefaultPolicyOptions(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	e.game = board.NewGame(e.zt, board.NewInitialPosition())
	e.policy = NewPolicy(scorer, e.policyOpts)

	logw.Infof(ctx, "initialized engine: %v, side=%v, policy=%v", e.Name(), e.side, e.policyOpts)
	return e
}

// Name returns the engine's name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Side returns the side this engine instance plays.
func (e *Engine) Side() board.Side {
	return e.side
}

// Position returns the current position.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.game.Position()
}

// Plies returns the number of moves applied since the engine was created
// or last Sync'd, for log attribution.
func (e *Engine) Plies() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.game.Plies()
}

// Sync replaces the current position with one received from the match
// server, without recording a move (spec §6: the server is the source of
// truth for board state; the engine does not replay its own history
// against it). Used on connect and whenever the server's board disagrees
// with the engine's local copy due to an opponent move already folded in.
func (e *Engine) Sync(pos *board.Position) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.game = board.NewGame(e.zt, pos)
}

// Apply records a move already known to have been played (typically the
// opponent's), advancing the engine's internal game state.
func (e *Engine) Apply(ctx context.Context, m board.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := rules.Apply(e.game.Position(), m)
	if err != nil {
		return fmt.Errorf("apply %v: %w", m, err)
	}
	e.game.Advance(next, m)
	logw.Debugf(ctx, "applied %v: %v", m, e.game)
	return nil
}

// Decide chooses and plays this engine's move at the current position,
// advancing the game state in place. It returns ErrNoLegalMoves, not an
// error, when this engine's side has no legal move (spec §7).
func (e *Engine) Decide(ctx context.Context) (board.Move, error) {
	e.mu.Lock()
	pos := e.game.Position()
	e.mu.Unlock()

	m, err := e.policy.Decide(ctx, pos, e.side)
	if err != nil {
		return board.Move{}, err
	}

	if err := e.Apply(ctx, m); err != nil {
		return board.Move{}, fmt.Errorf("decide: %w", err)
	}
	return m, nil
}
