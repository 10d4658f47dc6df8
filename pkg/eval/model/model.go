package model

import (
	"github.com/tablutai/tablut/pkg/board"
	"github.com/tablutai/tablut/pkg/eval"
)

// Model is the learned positional scorer: a pre-trained set of weights
// evaluated against the spec's 6-channel tensor encoding. It implements
// eval.Evaluator and eval.Batch.
type Model struct {
	w *Weights
}

// New wraps a loaded set of weights as an Evaluator.
func New(w *Weights) *Model {
	return &Model{w: w}
}

// LoadModel loads the immutable model file at startup (spec §6 "Model
// artifact"); the path is a configuration value.
func LoadModel(path string) (*Model, error) {
	w, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(w), nil
}

func (m *Model) Evaluate(pos *board.Position) float64 {
	t := eval.Encode(pos)
	return m.w.Forward(&t)
}

// EvaluateBatch is the optional batched refinement (spec §4.2, §5): it
// simply serializes Evaluate since the forward pass is cheap and
// allocation-light, but gives callers a hook for a future vectorized
// implementation without changing the Evaluator contract.
func (m *Model) EvaluateBatch(positions []*board.Position) []float64 {
	scores := make([]float64, len(positions))
	for i, p := range positions {
		scores[i] = m.Evaluate(p)
	}
	return scores
}
