// Package usecase composes the core components: the embedding
// pipeline, asset resolution, and the add/search/list operations the
// presentation layer calls.
package usecase

import (
	"context"
	"fmt"

	"vexa/internal/domain"
	"vexa/internal/port"
)

// LibraryUseCase is the user-facing orchestration over the embedder
// and the vector store. A failed embedding or store write aborts the
// operation and leaves prior state untouched.
type LibraryUseCase struct {
	store    port.VectorStore
	embedder port.Embedder
}

// NewLibraryUseCase creates the library orchestrator.
func NewLibraryUseCase(store port.VectorStore, embedder port.Embedder) *LibraryUseCase {
	return &LibraryUseCase{store: store, embedder: embedder}
}

// Add embeds content and stores it as a new record.
func (u *LibraryUseCase) Add(ctx context.Context, content string) (domain.Record, error) {
	vec, err := u.embedder.Embed(ctx, content)
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to embed content: %w", err)
	}
	return u.store.Insert(ctx, content, vec)
}

// AddBatch embeds every content and stores the whole set atomically:
// either all records become visible or none.
func (u *LibraryUseCase) AddBatch(ctx context.Context, contents []string) ([]domain.Record, error) {
	items := make([]port.InsertItem, 0, len(contents))
	for i, content := range contents {
		vec, err := u.embedder.Embed(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("failed to embed item %d: %w", i, err)
		}
		items = append(items, port.InsertItem{Content: content, Embedding: vec})
	}
	return u.store.BatchInsert(ctx, items)
}

// Search embeds the query and returns stored records ranked by
// similarity, plus the total number of stored records.
func (u *LibraryUseCase) Search(ctx context.Context, query string) ([]domain.SearchResult, int, error) {
	vec, err := u.embedder.Embed(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to embed query: %w", err)
	}
	return u.store.Query(ctx, vec)
}

// List pages through stored records by cursor.
func (u *LibraryUseCase) List(ctx context.Context, limit int, cursor uint64) (domain.Page, error) {
	return u.store.GetWithPagination(ctx, limit, cursor)
}
