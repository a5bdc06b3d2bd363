package store

import (
	"context"
	"errors"
	"fmt"

	"vexa/internal/domain"
	"vexa/internal/port"
)

// ErrNotSupported is returned by every operation of UnsupportedStore.
var ErrNotSupported = errors.New("vector store not supported on this platform")

// UnsupportedStore is the capability-tagged variant for platforms
// without native storage. It is selected at construction time, not
// discovered by trial: every operation deterministically fails with
// ErrNotSupported.
type UnsupportedStore struct{}

// NewUnsupportedStore creates the stub store.
func NewUnsupportedStore() *UnsupportedStore {
	return &UnsupportedStore{}
}

func (s *UnsupportedStore) Initialize() error {
	return fmt.Errorf("initialize: %w", ErrNotSupported)
}

func (s *UnsupportedStore) Insert(ctx context.Context, content string, embedding []float32) (domain.Record, error) {
	return domain.Record{}, fmt.Errorf("insert: %w", ErrNotSupported)
}

func (s *UnsupportedStore) BatchInsert(ctx context.Context, items []port.InsertItem) ([]domain.Record, error) {
	return nil, fmt.Errorf("batch insert: %w", ErrNotSupported)
}

func (s *UnsupportedStore) Query(ctx context.Context, embedding []float32) ([]domain.SearchResult, int, error) {
	return nil, 0, fmt.Errorf("query: %w", ErrNotSupported)
}

func (s *UnsupportedStore) GetWithPagination(ctx context.Context, limit int, cursor uint64) (domain.Page, error) {
	return domain.Page{}, fmt.Errorf("get with pagination: %w", ErrNotSupported)
}

func (s *UnsupportedStore) Close() error {
	return nil
}
