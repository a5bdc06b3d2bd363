package port

import (
	"context"

	"vexa/internal/domain"
)

// VectorStore persists (content, embedding) pairs and answers
// similarity queries. Implementations own all synchronization: every
// method is safe for concurrent callers.
type VectorStore interface {
	// Initialize prepares the underlying storage. Idempotent; calling
	// it on an initialized store is a no-op.
	Initialize() error

	// Insert appends one record with a freshly assigned, strictly
	// increasing ID. A failed insert leaves no partial record visible.
	Insert(ctx context.Context, content string, embedding []float32) (domain.Record, error)

	// BatchInsert appends multiple records as a single atomic unit:
	// concurrent readers observe none or all of the batch.
	BatchInsert(ctx context.Context, items []InsertItem) ([]domain.Record, error)

	// Query returns stored records ranked by descending similarity to
	// the given embedding, ties broken by ascending ID, together with
	// the total number of stored records.
	Query(ctx context.Context, embedding []float32) ([]domain.SearchResult, int, error)

	// GetWithPagination returns up to limit records in ascending ID
	// order, starting strictly after cursor (0 starts from the first
	// record).
	GetWithPagination(ctx context.Context, limit int, cursor uint64) (domain.Page, error)

	Close() error
}

// InsertItem is one pending record for BatchInsert.
type InsertItem struct {
	Content   string
	Embedding []float32
}
