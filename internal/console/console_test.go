package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/internal/console"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/engine"
	"github.com/tablutai/tablut/pkg/eval"
)

func drain(t *testing.T, out <-chan string, contains string, timeout time.Duration) string {
	t.Helper()

	deadline := time.After(timeout)
	var seen []string
	for {
		select {
		case line, ok := <-out:
			if !ok {
				return strings.Join(seen, "\n")
			}
			seen = append(seen, line)
			if strings.Contains(line, contains) {
				return strings.Join(seen, "\n")
			}
		case <-deadline:
			require.Fail(t, "timed out waiting for output", "want substring %q, got %q", contains, seen)
			return ""
		}
	}
}

func TestConsoleMoveCommandAppliesALegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester", board.White, eval.Material{})

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, eval.Material{}, in)
	drain(t, out, "playing white", time.Second)

	// c5 (4,2) -> c4 (3,2): a one-step vertical move along an empty file.
	in <- "move c5 c4"
	// "eval" is processed strictly after "move" since handle runs
	// synchronously per input line; its reply is a sync barrier proving
	// the move already applied.
	in <- "eval"
	drain(t, out, "score:", time.Second)

	assert.Equal(t, board.WhiteSoldier, e.Position().Occupant(board.NewSquare(3, 2)))
	assert.Equal(t, board.Empty, e.Position().Occupant(board.NewSquare(4, 2)))
}

func TestConsoleEvalCommandReportsScore(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester", board.Black, eval.Material{})

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, eval.Material{}, in)
	drain(t, out, "playing black", time.Second)

	in <- "eval"
	got := drain(t, out, "score:", time.Second)
	assert.Contains(t, got, "score:")
}

func TestConsoleQuitClosesDriver(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester", board.White, eval.Material{})

	in := make(chan string, 10)
	d, out := console.NewDriver(ctx, e, eval.Material{}, in)
	drain(t, out, "playing white", time.Second)

	in <- "quit"
	select {
	case <-d.Closed():
	case <-time.After(time.Second):
		require.Fail(t, "driver did not close after quit")
	}
}
