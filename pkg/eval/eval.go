// Package eval contains the positional scorer: a pure function from a
// position to a scalar, higher favoring White (spec §4.2). The tree
// searcher never calls into this package (spec §4.3 "the scorer is not
// invoked inside the tree"); only the decision policy does.
package eval

import "github.com/tablutai/tablut/pkg/board"

// Evaluator is a static position evaluator. Implementations must be
// referentially transparent: the same position always yields the same
// score (spec §8 "Scorer stability").
type Evaluator interface {
	Evaluate(pos *board.Position) float64
}

// Batch is an optional refinement (spec §4.2, §5): an evaluator that can
// score many positions in one call, e.g. to amortize a model's setup
// cost across a search horizon's worth of leaves.
type Batch interface {
	EvaluateBatch(positions []*board.Position) []float64
}
