// Package memstore provides a purely in-memory VectorStore with the
// same contract as the bbolt-backed store. It backs hosts without a
// writable filesystem and keeps tests fast.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vexa/internal/domain"
	"vexa/internal/port"
)

const maxQueryResults = 50

// MemoryStore keeps records in an id-ordered slice guarded by an
// RWMutex: writes are serialized, reads see a consistent snapshot.
type MemoryStore struct {
	mu        sync.RWMutex
	records   []domain.Record
	nextID    uint64
	dimension int
}

// NewMemoryStore creates an empty in-memory store for embeddings of
// the given dimension.
func NewMemoryStore(dimension int) (*MemoryStore, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dimension)
	}
	return &MemoryStore{dimension: dimension}, nil
}

// Initialize is a no-op: memory needs no schema.
func (s *MemoryStore) Initialize() error {
	return nil
}

func (s *MemoryStore) Insert(ctx context.Context, content string, embedding []float32) (domain.Record, error) {
	records, err := s.BatchInsert(ctx, []port.InsertItem{{Content: content, Embedding: embedding}})
	if err != nil {
		return domain.Record{}, err
	}
	return records[0], nil
}

func (s *MemoryStore) BatchInsert(ctx context.Context, items []port.InsertItem) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	for i, item := range items {
		if len(item.Embedding) != s.dimension {
			return nil, fmt.Errorf("item %d: embedding dimension mismatch: expected %d, got %d", i, s.dimension, len(item.Embedding))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Unix(time.Now().Unix(), 0)
	added := make([]domain.Record, 0, len(items))
	for _, item := range items {
		s.nextID++
		vec := make([]float32, len(item.Embedding))
		copy(vec, item.Embedding)
		rec := domain.Record{
			ID:        s.nextID,
			Content:   item.Content,
			Embedding: vec,
			CreatedAt: now,
		}
		s.records = append(s.records, rec)
		added = append(added, rec)
	}
	return added, nil
}

func (s *MemoryStore) Query(ctx context.Context, embedding []float32) ([]domain.SearchResult, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if len(embedding) != s.dimension {
		return nil, 0, fmt.Errorf("query dimension mismatch: expected %d, got %d", s.dimension, len(embedding))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.SearchResult, 0, len(s.records))
	for _, rec := range s.records {
		results = append(results, domain.SearchResult{
			Record: domain.Record{ID: rec.ID, Content: rec.Content, CreatedAt: rec.CreatedAt},
			Score:  dotProduct(embedding, rec.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.ID < results[j].Record.ID
	})
	if len(results) > maxQueryResults {
		results = results[:maxQueryResults]
	}
	return results, len(s.records), nil
}

func (s *MemoryStore) GetWithPagination(ctx context.Context, limit int, cursor uint64) (domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return domain.Page{}, err
	}
	if limit <= 0 {
		return domain.Page{}, fmt.Errorf("invalid pagination limit %d", limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Records are id-ordered; find the first id strictly after cursor.
	start := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].ID > cursor
	})

	page := domain.Page{NextCursor: cursor}
	for i := start; i < len(s.records) && len(page.Records) < limit; i++ {
		rec := s.records[i]
		rec.Embedding = nil
		page.Records = append(page.Records, rec)
	}
	page.HasMore = start+len(page.Records) < len(s.records)
	if n := len(page.Records); n > 0 {
		page.NextCursor = page.Records[n-1].ID
	}
	return page, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func dotProduct(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
