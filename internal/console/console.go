// Package console is a debug-only terminal driver for manual play
// against an Engine, adapted from the teacher's pkg/engine/console
// driver: a goroutine pumps input lines in, rendered output lines out,
// shutdown via iox.AsyncCloser. Commands are trimmed to this domain:
// reset, move, show, eval, quit.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/engine"
	"github.com/tablutai/tablut/pkg/eval"
	"github.com/tablutai/tablut/pkg/rules"
)

const ProtocolName = "console"

// Driver reads command lines and writes rendered output lines, letting a
// developer play both sides of a match against the engine by hand.
type Driver struct {
	iox.AsyncCloser

	e      *engine.Engine
	scorer eval.Evaluator
	out    chan<- string
}

// NewDriver starts processing in on a new goroutine and returns the
// output channel the caller should drain.
func NewDriver(ctx context.Context, e *engine.Engine, scorer eval.Evaluator, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		scorer:      scorer,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v), playing %v", d.e.Name(), d.e.Author(), d.e.Side())
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "input stream broken, exiting")
				return
			}
			d.handle(ctx, strings.TrimSpace(line))

		case <-d.Closed():
			logw.Infof(ctx, "driver closed")
			return
		}
	}
}

func (d *Driver) handle(ctx context.Context, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]
	switch cmd {
	case "reset", "r":
		d.e.Sync(board.NewInitialPosition())
		d.printBoard()

	case "move", "m":
		if len(args) != 2 {
			d.out <- "usage: move <from> <to>"
			return
		}
		d.applyMove(ctx, args[0], args[1])

	case "show", "p":
		d.printBoard()

	case "eval":
		d.out <- fmt.Sprintf("score: %v", d.scorer.Evaluate(d.e.Position()))

	case "quit", "exit", "q":
		d.Close()

	default:
		// Assume "<from> <to>" shorthand if not a recognized command.
		if len(args) == 1 {
			d.applyMove(ctx, cmd, args[0])
			return
		}
		d.out <- fmt.Sprintf("unrecognized command: %q", cmd)
	}
}

func (d *Driver) applyMove(ctx context.Context, from, to string) {
	f, err := board.ParseSquare(from)
	if err != nil {
		d.out <- fmt.Sprintf("invalid square: %v", from)
		return
	}
	t, err := board.ParseSquare(to)
	if err != nil {
		d.out <- fmt.Sprintf("invalid square: %v", to)
		return
	}

	side := d.e.Position().SideToMove()
	m := board.Move{From: f, To: t}
	if !rules.IsLegal(d.e.Position(), side, m) {
		d.out <- fmt.Sprintf("illegal move: %v", m)
		return
	}
	if err := d.e.Apply(ctx, m); err != nil {
		d.out <- fmt.Sprintf("apply failed: %v", err)
		return
	}
	d.printBoard()
}

func (d *Driver) printBoard() {
	d.out <- ""
	d.out <- d.e.Position().String()
	d.out <- ""
}
