package port

import "context"

// Embedder turns text into a fixed-length L2-normalized vector.
type Embedder interface {
	// Embed generates the embedding for one text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int
}
