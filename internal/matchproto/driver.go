package matchproto

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/seekerror/logw"
	"github.com/tablutai/tablut/internal/gamelog"
	"github.com/tablutai/tablut/internal/store"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/engine"
	"github.com/tablutai/tablut/pkg/rules"
)

// Port is the TCP port the match server listens on for a given side
// (spec §6: "5800 if White, 5801 if Black").
func Port(side board.Side) int {
	if side == board.Black {
		return 5801
	}
	return 5800
}

// Driver drives one Engine through a single match over a TCP connection
// to the match server, translating server messages into engine turns and
// engine moves back into wire frames.
type Driver struct {
	conn net.Conn
	e    *engine.Engine

	log     *gamelog.Log
	store   *store.Store
	matchID string
	moves   []board.Move
}

// Option configures optional Driver behavior.
type Option func(*Driver)

// WithGameLog appends a per-turn ASCII attribution line to log for every
// move this engine plays (spec §6 "Persisted state").
func WithGameLog(log *gamelog.Log) Option {
	return func(d *Driver) {
		d.log = log
	}
}

// WithStore persists one Record to s, keyed by matchID, when the match
// reaches a terminal turn (domain-stack enrichment, see DESIGN.md).
func WithStore(s *store.Store, matchID string) Option {
	return func(d *Driver) {
		d.store = s
		d.matchID = matchID
	}
}

// Dial connects to host at the port for e's side and sends the engine's
// name as the connection's first frame.
func Dial(ctx context.Context, host string, timeout time.Duration, e *engine.Engine, opts ...Option) (*Driver, error) {
	addr := fmt.Sprintf("%s:%d", host, Port(e.Side()))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %v: %w", addr, err)
	}

	if err := WriteName(conn, e.Name()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send name: %w", err)
	}

	d := &Driver{conn: conn, e: e}
	for _, fn := range opts {
		fn(d)
	}

	logw.Infof(ctx, "connected to match server %v as %v (%v)", addr, e.Name(), e.Side())
	return d, nil
}

// Close closes the underlying connection.
func (d *Driver) Close() error {
	return d.conn.Close()
}

// Run services server messages until the match ends or a protocol error
// occurs (spec §7: protocol errors are fatal). It returns nil on a clean
// terminal turn value, and a non-nil error on any fatal condition. The
// engine having no legal move to offer is not fatal: no move is sent and
// the loop waits for the server's terminal turn value.
func (d *Driver) Run(ctx context.Context) error {
	for {
		sm, err := ReadMessage(d.conn)
		if err != nil {
			return fmt.Errorf("protocol error: %w", err)
		}

		if IsTerminal(sm.Turn) {
			logw.Infof(ctx, "match ended: %v", sm.Turn)
			d.persist(ctx, sm.Turn)
			return nil
		}

		pos, err := DecodePosition(sm)
		if err != nil {
			return fmt.Errorf("protocol error: %w", err)
		}

		if result, decided := rules.DecidedAtRest(pos); decided {
			logw.Infof(ctx, "position already decided: %v", result)
			d.e.Sync(pos)
			continue
		}
		d.e.Sync(pos)

		if sm.Turn != turnString(d.e.Side()) {
			// Not our turn; wait for the next message.
			continue
		}

		m, err := d.e.Decide(ctx)
		if err != nil {
			if err == engine.ErrNoLegalMoves {
				logw.Infof(ctx, "no legal moves, conceding and awaiting terminal turn")
				continue
			}
			return fmt.Errorf("decide: %w", err)
		}

		if err := WriteMove(d.conn, EncodeMove(m, d.e.Side())); err != nil {
			return fmt.Errorf("protocol error: %w", err)
		}

		d.moves = append(d.moves, m)
		if d.log != nil {
			if err := d.log.Append(d.e.Plies(), d.e.Side(), m, d.e.Position()); err != nil {
				logw.Errorf(ctx, "game log append failed: %v", err)
			}
		}
	}
}

// persist saves a match record for the terminal turn value t, if a store
// was configured. Only this engine's own moves are recorded: the wire
// protocol (spec §6) never echoes the opponent's move back, only the
// resulting board, so there is nothing to attribute on their turns.
func (d *Driver) persist(ctx context.Context, t string) {
	if d.store == nil {
		return
	}

	rec := store.Record{
		MatchID:    d.matchID,
		Side:       d.e.Side(),
		Moves:      d.moves,
		Result:     resultFromTurn(t),
		FinishedAt: time.Now(),
	}
	if err := d.store.Save(rec); err != nil {
		logw.Errorf(ctx, "persist match record failed: %v", err)
	}
}

func resultFromTurn(t string) board.Result {
	switch t {
	case TurnWhiteWins:
		return board.Result{Outcome: board.WhiteWins}
	case TurnBlackWins:
		return board.Result{Outcome: board.BlackWins}
	default:
		return board.Result{}
	}
}

func turnString(side board.Side) string {
	if side == board.Black {
		return TurnBlack
	}
	return TurnWhite
}
