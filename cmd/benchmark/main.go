// Benchmark harness for the vector store and tokenizer: fills a
// temporary store with synthetic normalized vectors and measures
// query and pagination latency, so store changes can be compared
// without a model runtime.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vexa/internal/adapter/store"
	"vexa/internal/port"
)

func main() {
	records := flag.Int("n", 10000, "Number of synthetic records")
	dimension := flag.Int("dim", 384, "Embedding dimension")
	queries := flag.Int("q", 100, "Number of timed queries")
	pageSize := flag.Int("page", 20, "Pagination page size")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if err := run(*records, *dimension, *queries, *pageSize, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(n, dim, queries, pageSize int, seed int64) error {
	dir, err := os.MkdirTemp("", "vexa-bench-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	st, err := store.NewBoltStore(filepath.Join(dir, "store.db"), dim)
	if err != nil {
		return err
	}
	defer st.Close()

	rng := rand.New(rand.NewSource(seed))
	ctx := context.Background()

	fmt.Println("VECTOR STORE BENCHMARK")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Records: %d, dimension: %d\n\n", n, dim)

	start := time.Now()
	const batch = 500
	for i := 0; i < n; i += batch {
		end := i + batch
		if end > n {
			end = n
		}
		items := make([]port.InsertItem, 0, end-i)
		for j := i; j < end; j++ {
			items = append(items, port.InsertItem{
				Content:   fmt.Sprintf("synthetic record %d", j),
				Embedding: randomUnitVector(rng, dim),
			})
		}
		if _, err := st.BatchInsert(ctx, items); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("Insert: %v total, %.1f records/s\n", elapsed.Round(time.Millisecond), float64(n)/elapsed.Seconds())

	start = time.Now()
	for i := 0; i < queries; i++ {
		if _, _, err := st.Query(ctx, randomUnitVector(rng, dim)); err != nil {
			return err
		}
	}
	elapsed = time.Since(start)
	fmt.Printf("Query:  %v/query over %d queries\n", (elapsed / time.Duration(queries)).Round(time.Microsecond), queries)

	start = time.Now()
	pages := 0
	cursor := uint64(0)
	for {
		page, err := st.GetWithPagination(ctx, pageSize, cursor)
		if err != nil {
			return err
		}
		pages++
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	elapsed = time.Since(start)
	fmt.Printf("Paginate: %v over %d pages of %d\n", elapsed.Round(time.Millisecond), pages, pageSize)

	return nil
}

func randomUnitVector(rng *rand.Rand, dim int) []float32 {
	vec := make([]float32, dim)
	var sum float64
	for i := range vec {
		v := rng.NormFloat64()
		vec[i] = float32(v)
		sum += v * v
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
