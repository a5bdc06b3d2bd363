package store

import (
	"context"
	"errors"
	"testing"

	"vexa/internal/port"
)

func TestUnsupportedStore_AllOperationsFail(t *testing.T) {
	s := NewUnsupportedStore()
	ctx := context.Background()

	if err := s.Initialize(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Initialize: expected ErrNotSupported, got %v", err)
	}
	if _, err := s.Insert(ctx, "x", []float32{1}); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Insert: expected ErrNotSupported, got %v", err)
	}
	if _, err := s.BatchInsert(ctx, []port.InsertItem{{Content: "x"}}); !errors.Is(err, ErrNotSupported) {
		t.Errorf("BatchInsert: expected ErrNotSupported, got %v", err)
	}
	if _, _, err := s.Query(ctx, []float32{1}); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Query: expected ErrNotSupported, got %v", err)
	}
	if _, err := s.GetWithPagination(ctx, 10, 0); !errors.Is(err, ErrNotSupported) {
		t.Errorf("GetWithPagination: expected ErrNotSupported, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: expected nil, got %v", err)
	}
}

func TestUnsupportedStore_ImplementsVectorStore(t *testing.T) {
	var _ port.VectorStore = NewUnsupportedStore()
	var _ port.VectorStore = &BoltStore{}
}
