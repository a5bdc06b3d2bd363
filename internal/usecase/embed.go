package usecase

import (
	"context"
	"fmt"

	"vexa/internal/adapter/embedding"
	"vexa/internal/adapter/tokenizer"
	"vexa/internal/port"
)

// EmbedUseCase is the embedding pipeline: tokenize, run the external
// inference runtime, post-process into an L2-normalized vector. It
// implements port.Embedder.
type EmbedUseCase struct {
	tokenizer *tokenizer.Tokenizer
	runtime   port.Runtime
	seqLen    int
	dimension int
}

// NewEmbedUseCase creates the pipeline. seqLen is the model's fixed
// input length; dimension the expected embedding size.
func NewEmbedUseCase(tok *tokenizer.Tokenizer, runtime port.Runtime, seqLen, dimension int) (*EmbedUseCase, error) {
	if seqLen <= 0 {
		return nil, fmt.Errorf("invalid sequence length %d", seqLen)
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dimension)
	}
	return &EmbedUseCase{
		tokenizer: tok,
		runtime:   runtime,
		seqLen:    seqLen,
		dimension: dimension,
	}, nil
}

// Embed turns one text into a normalized embedding. When the runtime
// returns a pooled sentence embedding it is used directly (normalized);
// otherwise the per-token hidden states are mean-pooled over the
// attention mask.
func (u *EmbedUseCase) Embed(ctx context.Context, text string) ([]float32, error) {
	enc := u.tokenizer.Encode(text, true)
	enc = u.tokenizer.Pad(enc, u.seqLen)

	tokenTypeIDs := make([]int64, len(enc.IDs))
	out, err := u.runtime.Forward(ctx, enc.IDs, enc.AttentionMask, tokenTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to run inference: %w", err)
	}

	var vec []float32
	if len(out.Pooled) > 0 {
		vec, err = embedding.L2Normalize(out.Pooled)
	} else {
		vec, err = embedding.PoolAndNormalize(out.HiddenStates, enc.AttentionMask)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to post-process embedding: %w", err)
	}

	if len(vec) != u.dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: expected %d, got %d", u.dimension, len(vec))
	}
	return vec, nil
}

// Dimension returns the embedding vector dimension.
func (u *EmbedUseCase) Dimension() int {
	return u.dimension
}
