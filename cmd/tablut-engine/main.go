// tablut-engine connects to a Tablut match server and plays one side of
// a match to completion (spec §6 "Invocation"), or runs a debug console
// session for manual play.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/tablutai/tablut/internal/console"
	"github.com/tablutai/tablut/internal/gamelog"
	"github.com/tablutai/tablut/internal/matchproto"
	"github.com/tablutai/tablut/internal/store"
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/engine"
	"github.com/tablutai/tablut/pkg/eval"
	"github.com/tablutai/tablut/pkg/eval/model"
)

var (
	modelPath = flag.String("model", "", "path to the scorer's weight file; falls back to the material heuristic if empty")
	storeDir  = flag.String("store", "", "directory for the persisted match store; disabled if empty")
	logPath   = flag.String("gamelog", "", "path to append the per-turn ASCII game log; disabled if empty")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	args := flag.Args()
	if len(args) == 0 {
		logw.Exitf(ctx, "usage: tablut-engine <white|black> <timeout-seconds> <host>\n       tablut-engine console <white|black>")
	}

	if args[0] == console.ProtocolName {
		runConsole(ctx, args[1:])
		return
	}

	if len(args) != 3 {
		logw.Exitf(ctx, "usage: tablut-engine <white|black> <timeout-seconds> <host>")
	}

	side, err := parseSide(args[0])
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}
	timeoutSeconds, err := parseTimeout(args[1])
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}
	host := args[2]

	scorer := loadScorer(ctx)
	e := engine.New(ctx, "tablut-engine", "tablutai", side, scorer)

	var opts []matchproto.Option
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logw.Exitf(ctx, "open game log %v: %v", *logPath, err)
		}
		defer f.Close()
		opts = append(opts, matchproto.WithGameLog(gamelog.New(f)))
	}
	if *storeDir != "" {
		s, err := store.Open(*storeDir)
		if err != nil {
			logw.Exitf(ctx, "open match store %v: %v", *storeDir, err)
		}
		defer s.Close()
		matchID := fmt.Sprintf("%s-%s-%d", host, side, time.Now().UnixNano())
		opts = append(opts, matchproto.WithStore(s, matchID))
	}

	driver, err := matchproto.Dial(ctx, host, time.Duration(timeoutSeconds)*time.Second, e, opts...)
	if err != nil {
		logw.Exitf(ctx, "connect to %v failed: %v", host, err)
	}
	defer driver.Close()

	if err := driver.Run(ctx); err != nil {
		logw.Errorf(ctx, "match ended with error: %v", err)
		os.Exit(1)
	}
}

// runConsole starts an interactive debug session against the engine,
// reading commands from stdin and writing rendered output to stdout
// (grounded on morlock's cmd/morlock protocol-select idiom).
func runConsole(ctx context.Context, args []string) {
	side := board.White
	if len(args) > 0 {
		s, err := parseSide(args[0])
		if err != nil {
			logw.Exitf(ctx, "%v", err)
		}
		side = s
	}

	scorer := loadScorer(ctx)
	e := engine.New(ctx, "tablut-engine", "tablutai", side, scorer)

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, scorer, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}

func parseSide(s string) (board.Side, error) {
	switch s {
	case "white":
		return board.White, nil
	case "black":
		return board.Black, nil
	default:
		return 0, fmt.Errorf("color must be \"white\" or \"black\", got %q", s)
	}
}

func parseTimeout(s string) (int, error) {
	var seconds int
	if _, err := fmt.Sscanf(s, "%d", &seconds); err != nil || seconds <= 0 {
		return 0, fmt.Errorf("timeout must be a positive integer, got %q", s)
	}
	return seconds, nil
}

// loadScorer loads the configured model file, falling back to the
// material heuristic if no path is set or loading fails (spec §7
// "Scorer failure" degrades, it never blocks startup).
func loadScorer(ctx context.Context) eval.Evaluator {
	if *modelPath == "" {
		logw.Infof(ctx, "no model path configured, using material heuristic")
		return eval.Material{}
	}

	m, err := model.LoadModel(*modelPath)
	if err != nil {
		logw.Errorf(ctx, "load model %v failed: %v, falling back to material heuristic", *modelPath, err)
		return eval.Material{}
	}

	logw.Infof(ctx, "loaded model: %v", *modelPath)
	return eval.Safe(ctx, m, eval.Material{})
}
