package eval

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/tablutai/tablut/pkg/board"
)

// safe wraps a primary Evaluator with a fallback, recovering from any
// panic the primary raises so a turn degrades gracefully instead of
// crashing (spec §7 "Scorer failure": "Fall back to scorer-greedy using
// a material-count heuristic; never crash a turn on scorer issues").
type safe struct {
	ctx      context.Context
	primary  Evaluator
	fallback Evaluator
}

// Safe returns an Evaluator that tries primary first and falls back to
// fallback if primary panics.
func Safe(ctx context.Context, primary, fallback Evaluator) Evaluator {
	return &safe{ctx: ctx, primary: primary, fallback: fallback}
}

func (s *safe) Evaluate(pos *board.Position) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			logw.Errorf(s.ctx, "scorer failed, falling back to material: %v", r)
			score = s.fallback.Evaluate(pos)
		}
	}()
	return s.primary.Evaluate(pos)
}
