// Package store provides the durable vector store: append-only
// (content, embedding) records in bbolt with similarity queries and
// cursor pagination.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"vexa/internal/domain"
	"vexa/internal/port"
)

var (
	bucketRecords    = []byte("records")
	bucketEmbeddings = []byte("embeddings")
)

// maxQueryResults bounds Query so a similarity search never
// materializes the whole store in its result.
const maxQueryResults = 50

// BoltStore is the native VectorStore implementation backed by bbolt.
// Writes are serialized by bbolt's single-writer transaction; reads
// run on consistent snapshots, so a reader never observes a write in
// progress. Pagination is a live view: records inserted between pages
// appear in later pages, while already-returned pages are never
// disturbed (ids are append-only).
type BoltStore struct {
	db        *bbolt.DB
	dimension int
}

type recordMeta struct {
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// NewBoltStore opens (or creates) the store database at path.
// dimension fixes the embedding size accepted by Insert.
func NewBoltStore(path string, dimension int) (*BoltStore, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dimension)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s := &BoltStore{db: db, dimension: dimension}
	if err := s.Initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Initialize creates the buckets if absent. Safe to call repeatedly.
func (s *BoltStore) Initialize() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketRecords, bucketEmbeddings} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	return nil
}

// Insert appends one record. The id comes from the records bucket
// sequence and is strictly increasing across the life of the store.
func (s *BoltStore) Insert(ctx context.Context, content string, embedding []float32) (domain.Record, error) {
	records, err := s.BatchInsert(ctx, []port.InsertItem{{Content: content, Embedding: embedding}})
	if err != nil {
		return domain.Record{}, err
	}
	return records[0], nil
}

// BatchInsert appends all items in one transaction. Readers see none
// or all of the batch.
func (s *BoltStore) BatchInsert(ctx context.Context, items []port.InsertItem) ([]domain.Record, error) {
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

	now := time.Now()
	records := make([]domain.Record, 0, len(items))
	err := s.db.Update(func(tx *bbolt.Tx) error {
		rb := tx.Bucket(bucketRecords)
		eb := tx.Bucket(bucketEmbeddings)
		if rb == nil || eb == nil {
			return fmt.Errorf("store not initialized")
		}

		for _, item := range items {
			id, err := rb.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to assign record id: %w", err)
			}
			key := itob(id)

			meta, err := json.Marshal(recordMeta{
				Content:   item.Content,
				CreatedAt: now.Unix(),
			})
			if err != nil {
				return err
			}
			if err := rb.Put(key, meta); err != nil {
				return fmt.Errorf("failed to write record %d: %w", id, err)
			}
			if err := eb.Put(key, encodeEmbedding(item.Embedding)); err != nil {
				return fmt.Errorf("failed to write embedding %d: %w", id, err)
			}

			records = append(records, domain.Record{
				ID:        id,
				Content:   item.Content,
				Embedding: item.Embedding,
				CreatedAt: time.Unix(now.Unix(), 0),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Query ranks all stored records by descending dot product with the
// query embedding. Stored embeddings are L2-normalized, so dot product
// equals cosine similarity. Ties break by ascending id. Results are
// capped at maxQueryResults; the returned count is the total number of
// stored records.
func (s *BoltStore) Query(ctx context.Context, embedding []float32) ([]domain.SearchResult, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if len(embedding) != s.dimension {
		return nil, 0, fmt.Errorf("query dimension mismatch: expected %d, got %d", s.dimension, len(embedding))
	}

	var results []domain.SearchResult
	total := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		rb := tx.Bucket(bucketRecords)
		eb := tx.Bucket(bucketEmbeddings)
		if rb == nil || eb == nil {
			return fmt.Errorf("store not initialized")
		}

		return eb.ForEach(func(k, v []byte) error {
			total++
			vec, err := decodeEmbedding(v)
			if err != nil {
				return fmt.Errorf("record %d: %w", btoi(k), err)
			}
			score := dotProduct(embedding, vec)

			meta := rb.Get(k)
			if meta == nil {
				return fmt.Errorf("record %d has embedding but no content", btoi(k))
			}
			var rm recordMeta
			if err := json.Unmarshal(meta, &rm); err != nil {
				return err
			}

			results = append(results, domain.SearchResult{
				Record: domain.Record{
					ID:        btoi(k),
					Content:   rm.Content,
					CreatedAt: time.Unix(rm.CreatedAt, 0),
				},
				Score: score,
			})
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
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
	return results, total, nil
}

// GetWithPagination returns up to limit records in ascending id order
// starting strictly after cursor. HasMore is computed by looking one
// record past the page, never inferred from the page length.
func (s *BoltStore) GetWithPagination(ctx context.Context, limit int, cursor uint64) (domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return domain.Page{}, err
	}
	if limit <= 0 {
		return domain.Page{}, fmt.Errorf("invalid pagination limit %d", limit)
	}

	page := domain.Page{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		rb := tx.Bucket(bucketRecords)
		if rb == nil {
			return fmt.Errorf("store not initialized")
		}

		c := rb.Cursor()
		k, v := c.Seek(itob(cursor + 1))
		for k != nil && len(page.Records) < limit {
			var rm recordMeta
			if err := json.Unmarshal(v, &rm); err != nil {
				return err
			}
			page.Records = append(page.Records, domain.Record{
				ID:        btoi(k),
				Content:   rm.Content,
				CreatedAt: time.Unix(rm.CreatedAt, 0),
			})
			k, v = c.Next()
		}
		// k now points one past the page: exactly the lookahead that
		// decides HasMore.
		page.HasMore = k != nil
		return nil
	})
	if err != nil {
		return domain.Page{}, err
	}

	if n := len(page.Records); n > 0 {
		page.NextCursor = page.Records[n-1].ID
	} else {
		page.NextCursor = cursor
	}
	return page, nil
}

// Close releases the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
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
