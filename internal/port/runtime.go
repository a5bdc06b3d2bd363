package port

import "context"

// Runtime is the external ML inference engine. It is a black box:
// given model inputs for one sequence it returns per-token hidden
// states and, for models that compute it, a pooled sentence embedding.
type Runtime interface {
	Forward(ctx context.Context, inputIDs, attentionMask, tokenTypeIDs []int64) (RuntimeOutput, error)
}

// RuntimeOutput carries the raw model output for one sequence.
// HiddenStates has shape [sequence_length][hidden_size]. Pooled is nil
// when the model does not produce a pooled embedding.
type RuntimeOutput struct {
	HiddenStates [][]float32
	Pooled       []float32
}
